package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixes(t *testing.T) {
	assert.True(t, IsTransactionID(NewTransactionID()))
	assert.True(t, IsWalletID(NewWalletID()))
	assert.True(t, IsBudgetID(NewBudgetID()))

	assert.False(t, IsTransactionID(NewWalletID()))
	assert.False(t, IsBudgetID("bud_123"))
}

func TestLength(t *testing.T) {
	// "txn-" + 8 hex chars.
	assert.Len(t, NewTransactionID(), 12)
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTransactionID()
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}
