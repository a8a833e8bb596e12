package models

// Contact is a single address-book entry.
type Contact struct {
	Meta

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}
