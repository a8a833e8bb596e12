package models

import "time"

// TransactionType classifies a finance entry as money in or money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// TransactionCategory is the closed set of spending buckets.
type TransactionCategory string

const (
	CategoryPersonal TransactionCategory = "personal"
	CategoryWork     TransactionCategory = "work"
	CategoryExtra    TransactionCategory = "extra"
)

// TransactionCategories is the exhaustive list of valid categories.
// The form mapper is the sole enforcement point: the record store never
// checks membership itself.
var TransactionCategories = []TransactionCategory{
	CategoryPersonal,
	CategoryWork,
	CategoryExtra,
}

// Transaction is one finance ledger entry.
type Transaction struct {
	Meta

	Title    string              `json:"title"`
	Amount   float64             `json:"amount"`
	Date     time.Time           `json:"date"`
	Category TransactionCategory `json:"category"`
	Type     TransactionType     `json:"type"`
}
