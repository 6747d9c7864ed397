// Package aggregate reduces transaction and budget collections into summary
// figures. Every function is a pure transform of its inputs: no state is kept
// between calls and inputs are never mutated.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// AmountSelector picks the amount a transaction contributes to a bucket.
type AmountSelector func(model.Transaction) decimal.Decimal

// SelectAll counts every transaction's amount regardless of kind.
func SelectAll(t model.Transaction) decimal.Decimal {
	return t.Amount
}

// SelectKind counts only transactions of the given kind.
func SelectKind(kind model.TransactionKind) AmountSelector {
	return func(t model.Transaction) decimal.Decimal {
		if t.Kind != kind {
			return decimal.Zero
		}
		return t.Amount
	}
}

// TotalByKind sums the amounts of all transactions with the given kind.
// An empty input yields zero.
func TotalByKind(txns []model.Transaction, kind model.TransactionKind) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Kind == kind {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalBudgeted sums the limits across all budgets.
func TotalBudgeted(budgets []model.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Amount)
	}
	return total
}

// TotalSpent sums accumulated spend across all budgets.
func TotalSpent(budgets []model.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Spent)
	}
	return total
}

// DayBucket is the aggregated total for one calendar day.
type DayBucket struct {
	Day   time.Time
	Label string // weekday abbreviation, e.g. "Mon"
	Total decimal.Decimal
}

// BucketByDay sums transaction amounts into one bucket per day. The caller
// supplies the complete day partition (consecutive calendar days, oldest
// first); transactions dated outside it are silently excluded. Matching is by
// calendar date in each day's location, never time of day. Days with no
// matching transactions yield a zero total.
func BucketByDay(txns []model.Transaction, days []time.Time, selector AmountSelector) []DayBucket {
	buckets := make([]DayBucket, len(days))
	for i, day := range days {
		buckets[i] = DayBucket{Day: day, Label: day.Format("Mon"), Total: decimal.Zero}
	}

	for _, t := range txns {
		for i, day := range days {
			if sameDate(t.Timestamp, day) {
				buckets[i].Total = buckets[i].Total.Add(selector(t))
				break
			}
		}
	}
	return buckets
}

// LastSevenDays returns the canonical 7-day window ending on now's calendar
// day, oldest first.
func LastSevenDays(now time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		days[i] = now.AddDate(0, 0, i-6)
	}
	return days
}

// CategoryShare is one category's slice of total budget spend.
type CategoryShare struct {
	Category string
	Spent    decimal.Decimal
	Share    decimal.Decimal // Spent / TotalSpent; zero when nothing is spent
}

// DistributionByCategory reports per-budget spend and its share of the total,
// preserving input order. When total spend is zero every share is zero rather
// than a division error.
func DistributionByCategory(budgets []model.Budget) []CategoryShare {
	total := TotalSpent(budgets)

	shares := make([]CategoryShare, len(budgets))
	for i, b := range budgets {
		share := decimal.Zero
		if total.IsPositive() {
			share = b.Spent.Div(total)
		}
		shares[i] = CategoryShare{Category: b.Category, Spent: b.Spent, Share: share}
	}
	return shares
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
