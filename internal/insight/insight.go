// Package insight derives budget health from raw budget records.
package insight

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Status classifies how far along a budget is.
type Status string

const (
	StatusGood      Status = "good"      // <= 80% used
	StatusWarning   Status = "warning"   // > 80% and <= 100% used
	StatusOverspent Status = "overspent" // > 100% used
)

var (
	warnThreshold = decimal.NewFromInt(80)
	overThreshold = decimal.NewFromInt(100)
)

// BudgetInsight is the derived view of a single budget.
type BudgetInsight struct {
	Budget                  model.Budget
	PercentageUsed          decimal.Decimal
	Remaining               decimal.Decimal // negative when overspent
	DaysInPeriod            int
	DailyAverageSpend       decimal.Decimal
	RemainingDailyAllowance decimal.Decimal
	Status                  Status
}

// moneyPlaces is the rounding applied to per-day figures.
const moneyPlaces = 2

// ForBudget computes the insight for one budget. A zero limit yields a zero
// percentage (and therefore StatusGood) rather than a division error,
// regardless of what was spent.
func ForBudget(b model.Budget) BudgetInsight {
	pct := decimal.Zero
	if !b.Amount.IsZero() {
		pct = b.Spent.Div(b.Amount).Mul(overThreshold)
	}

	days := decimal.NewFromInt(int64(b.Period.Days()))
	remaining := b.Amount.Sub(b.Spent)

	return BudgetInsight{
		Budget:                  b,
		PercentageUsed:          pct,
		Remaining:               remaining,
		DaysInPeriod:            b.Period.Days(),
		DailyAverageSpend:       b.Spent.DivRound(days, moneyPlaces),
		RemainingDailyAllowance: remaining.DivRound(days, moneyPlaces),
		Status:                  classify(pct),
	}
}

// ForBudgets computes insights for every budget, preserving input order.
func ForBudgets(budgets []model.Budget) []BudgetInsight {
	insights := make([]BudgetInsight, len(budgets))
	for i, b := range budgets {
		insights[i] = ForBudget(b)
	}
	return insights
}

func classify(pct decimal.Decimal) Status {
	switch {
	case pct.GreaterThan(overThreshold):
		return StatusOverspent
	case pct.GreaterThan(warnThreshold):
		return StatusWarning
	default:
		return StatusGood
	}
}
