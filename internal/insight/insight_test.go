package insight

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func monthly(amount, spent string) model.Budget {
	return model.Budget{
		Category: "Food",
		Amount:   dec(amount),
		Spent:    dec(spent),
		Period:   model.PeriodMonthly,
	}
}

func TestForBudget_Good(t *testing.T) {
	got := ForBudget(monthly("5000", "3200"))

	assert.True(t, dec("64").Equal(got.PercentageUsed), "got %s", got.PercentageUsed)
	assert.Equal(t, StatusGood, got.Status)
	assert.True(t, dec("1800").Equal(got.Remaining))
	assert.Equal(t, 30, got.DaysInPeriod)
	assert.True(t, dec("106.67").Equal(got.DailyAverageSpend), "got %s", got.DailyAverageSpend)
	assert.True(t, dec("60").Equal(got.RemainingDailyAllowance), "got %s", got.RemainingDailyAllowance)
}

func TestForBudget_Warning(t *testing.T) {
	got := ForBudget(monthly("4000", "3800"))

	assert.True(t, dec("95").Equal(got.PercentageUsed))
	assert.Equal(t, StatusWarning, got.Status)
}

func TestForBudget_Overspent(t *testing.T) {
	got := ForBudget(monthly("2000", "2100"))

	assert.True(t, dec("105").Equal(got.PercentageUsed))
	assert.Equal(t, StatusOverspent, got.Status)
	assert.True(t, dec("-100").Equal(got.Remaining))
}

func TestForBudget_ZeroLimit(t *testing.T) {
	// A zero limit must not divide; the percentage is defined as zero.
	got := ForBudget(monthly("0", "500"))

	assert.True(t, got.PercentageUsed.IsZero())
	assert.Equal(t, StatusGood, got.Status)
	assert.True(t, dec("-500").Equal(got.Remaining))
}

func TestForBudget_Boundaries(t *testing.T) {
	tests := []struct {
		spent string
		want  Status
	}{
		{"3200", StatusGood},    // 80% exactly
		{"3201", StatusWarning}, // just over 80%
		{"4000", StatusWarning}, // 100% exactly
		{"4001", StatusOverspent},
	}
	for _, tt := range tests {
		got := ForBudget(monthly("4000", tt.spent))
		assert.Equal(t, tt.want, got.Status, "spent %s", tt.spent)
	}
}

func TestForBudget_PeriodDays(t *testing.T) {
	tests := []struct {
		period model.BudgetPeriod
		days   int
	}{
		{model.PeriodDaily, 1},
		{model.PeriodWeekly, 7},
		{model.PeriodMonthly, 30},
		{model.PeriodYearly, 365},
	}
	for _, tt := range tests {
		b := model.Budget{Amount: dec("700"), Spent: dec("70"), Period: tt.period}
		got := ForBudget(b)
		assert.Equal(t, tt.days, got.DaysInPeriod, "period %s", tt.period)
	}
}

func TestForBudgets_PreservesOrder(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Amount: dec("100"), Spent: dec("10"), Period: model.PeriodWeekly},
		{Category: "Transport", Amount: dec("100"), Spent: dec("95"), Period: model.PeriodWeekly},
	}

	got := ForBudgets(budgets)
	require.Len(t, got, 2)
	assert.Equal(t, "Food", got[0].Budget.Category)
	assert.Equal(t, StatusWarning, got[1].Status)
}

func TestTips_Ordering(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Amount: dec("2000"), Spent: dec("2100")},
		{Category: "Transport", Amount: dec("1000"), Spent: dec("1500")},
		{Category: "Fun", Amount: dec("500"), Spent: dec("100")},
	}

	tips := Tips(budgets)
	require.Len(t, tips, 3)
	assert.Contains(t, tips[0], "2 categories")
	assert.Contains(t, tips[1], "Food")
	assert.Equal(t, savingsTip, tips[2])
}

func TestTips_NoOverspend(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Amount: dec("2000"), Spent: dec("500")},
	}

	tips := Tips(budgets)
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "Food")
	assert.Equal(t, savingsTip, tips[1])
}

func TestTips_HighestSpendTieKeepsFirst(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Transport", Amount: dec("2000"), Spent: dec("900")},
		{Category: "Food", Amount: dec("2000"), Spent: dec("900")},
	}

	tips := Tips(budgets)
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "Transport")
}

func TestTips_Empty(t *testing.T) {
	tips := Tips(nil)
	require.Len(t, tips, 1)
	assert.Equal(t, savingsTip, tips[0])
}
