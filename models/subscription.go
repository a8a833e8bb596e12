package models

import "time"

// Subscription is a recurring payment with its next renewal date.
type Subscription struct {
	Meta

	Name       string    `json:"name"`
	URL        string    `json:"url"`
	ExpiryDate time.Time `json:"expiry_date"`
	Amount     float64   `json:"amount"`
}
