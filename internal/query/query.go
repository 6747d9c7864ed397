// Package query filters and orders transaction collections for display.
package query

import (
	"sort"
	"strings"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// KindFilter narrows a listing to one transaction kind, or passes everything.
type KindFilter string

const (
	FilterAll     KindFilter = "all"
	FilterIncome  KindFilter = KindFilter(model.KindIncome)
	FilterExpense KindFilter = KindFilter(model.KindExpense)
)

// ParseKindFilter maps a user-supplied string to a KindFilter. Empty means all.
func ParseKindFilter(s string) (KindFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FilterAll):
		return FilterAll, true
	case string(FilterIncome):
		return FilterIncome, true
	case string(FilterExpense):
		return FilterExpense, true
	}
	return FilterAll, false
}

// Filter returns the transactions matching both the search text and the kind
// filter. Search is a case-insensitive substring match against description or
// category; empty search matches everything. Input order is preserved.
func Filter(txns []model.Transaction, search string, kind KindFilter) []model.Transaction {
	needle := strings.ToLower(search)

	var out []model.Transaction
	for _, t := range txns {
		if !matchesSearch(t, needle) {
			continue
		}
		if kind != FilterAll && string(t.Kind) != string(kind) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortByRecency returns a new slice ordered newest first. The sort is stable:
// transactions with identical timestamps keep their relative input order.
func SortByRecency(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func matchesSearch(t model.Transaction, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.Category), needle)
}
