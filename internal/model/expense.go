package model

import "github.com/shopspring/decimal"

// Expense represents a validated row of an expenses CSV.
type Expense struct {
	Category string
	Amount   decimal.Decimal
	Date     string // free text, may be empty
}
