package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies the direction of a cash movement.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction represents a single recorded cash movement.
// Amount is always non-negative; direction is carried by Kind.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Category    string
	Description string
	Timestamp   time.Time
	WalletID    string
	WalletName  string // denormalized display label
}

// Signed returns the amount with the sign implied by Kind
// (income positive, expense negative).
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
