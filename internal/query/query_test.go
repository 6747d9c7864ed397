package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func sample() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Kind: model.KindExpense, Category: "Food", Description: "Grocery shopping"},
		{ID: "t2", Kind: model.KindExpense, Category: "Transport", Description: "Bus fare"},
		{ID: "t3", Kind: model.KindIncome, Category: "Salary", Description: "Monthly pay"},
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

func TestFilter_SearchMatchesCategory(t *testing.T) {
	got := Filter(sample(), "food", FilterAll)
	assert.Equal(t, []string{"t1"}, ids(got))
}

func TestFilter_SearchMatchesDescription(t *testing.T) {
	got := Filter(sample(), "BUS", FilterAll)
	assert.Equal(t, []string{"t2"}, ids(got))
}

func TestFilter_EmptySearchMatchesAll(t *testing.T) {
	got := Filter(sample(), "", FilterAll)
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(got))
}

func TestFilter_Kind(t *testing.T) {
	got := Filter(sample(), "", FilterIncome)
	assert.Equal(t, []string{"t3"}, ids(got))

	got = Filter(sample(), "", FilterExpense)
	assert.Equal(t, []string{"t1", "t2"}, ids(got))
}

func TestFilter_SearchAndKindCombine(t *testing.T) {
	got := Filter(sample(), "o", FilterExpense)
	assert.Equal(t, []string{"t1", "t2"}, ids(got))

	got = Filter(sample(), "salary", FilterExpense)
	assert.Empty(t, got)
}

func TestFilter_NoFuzzyMatching(t *testing.T) {
	got := Filter(sample(), "grocery shoping", FilterAll)
	assert.Empty(t, got)
}

func TestParseKindFilter(t *testing.T) {
	tests := []struct {
		in   string
		want KindFilter
		ok   bool
	}{
		{"", FilterAll, true},
		{"all", FilterAll, true},
		{"Income", FilterIncome, true},
		{" expense ", FilterExpense, true},
		{"transfer", FilterAll, false},
	}
	for _, tt := range tests {
		got, ok := ParseKindFilter(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestSortByRecency(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		{ID: "old", Timestamp: base},
		{ID: "new", Timestamp: base.AddDate(0, 0, 2)},
		{ID: "mid", Timestamp: base.AddDate(0, 0, 1)},
	}

	got := SortByRecency(txns)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got))

	// Input untouched.
	assert.Equal(t, []string{"old", "new", "mid"}, ids(txns))
}

func TestSortByRecency_StableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		{ID: "a", Timestamp: ts},
		{ID: "b", Timestamp: ts},
		{ID: "c", Timestamp: ts.Add(time.Hour)},
		{ID: "d", Timestamp: ts},
	}

	got := SortByRecency(txns)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(got))
}
