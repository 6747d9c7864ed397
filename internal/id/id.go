// Package id generates record identifiers: a typed prefix plus a short
// UUID-derived suffix, e.g. "txn-9f3c2a1b".
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	prefixTransaction = "txn"
	prefixWallet      = "wal"
	prefixBudget      = "bud"
	prefixUser        = "usr"

	suffixLen = 8
)

// NewTransactionID returns a fresh transaction ID.
func NewTransactionID() string { return newID(prefixTransaction) }

// NewWalletID returns a fresh wallet ID.
func NewWalletID() string { return newID(prefixWallet) }

// NewBudgetID returns a fresh budget ID.
func NewBudgetID() string { return newID(prefixBudget) }

// NewUserID returns a fresh user ID.
func NewUserID() string { return newID(prefixUser) }

func newID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%s", prefix, strings.ReplaceAll(u.String(), "-", "")[:suffixLen])
}

// IsTransactionID reports whether id carries the transaction prefix.
func IsTransactionID(id string) bool { return strings.HasPrefix(id, prefixTransaction+"-") }

// IsWalletID reports whether id carries the wallet prefix.
func IsWalletID(id string) bool { return strings.HasPrefix(id, prefixWallet+"-") }

// IsBudgetID reports whether id carries the budget prefix.
func IsBudgetID(id string) bool { return strings.HasPrefix(id, prefixBudget+"-") }
