package model

import "github.com/shopspring/decimal"

// Wallet is an account bucket holding a running balance.
// Balance is authoritative and never recomputed from the transaction set.
type Wallet struct {
	ID       string
	Name     string
	Balance  decimal.Decimal // may be negative
	Currency string          // ISO-4217-like code
}
