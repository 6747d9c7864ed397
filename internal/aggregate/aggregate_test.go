package aggregate

import (
	"testing"
	"time"

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

func txn(kind model.TransactionKind, amount string, ts time.Time) model.Transaction {
	return model.Transaction{
		ID:        "txn-test",
		Kind:      kind,
		Amount:    dec(amount),
		Timestamp: ts,
	}
}

func TestTotalByKind(t *testing.T) {
	txns := []model.Transaction{
		txn(model.KindExpense, "120.50", time.Now()),
		txn(model.KindIncome, "5000.00", time.Now()),
		txn(model.KindExpense, "79.50", time.Now()),
	}

	assert.True(t, dec("200.00").Equal(TotalByKind(txns, model.KindExpense)))
	assert.True(t, dec("5000.00").Equal(TotalByKind(txns, model.KindIncome)))
}

func TestTotalByKind_Empty(t *testing.T) {
	assert.True(t, TotalByKind(nil, model.KindExpense).IsZero())
	assert.True(t, TotalByKind([]model.Transaction{}, model.KindIncome).IsZero())
}

func TestBudgetTotals(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Amount: dec("5000"), Spent: dec("2500")},
		{Category: "Transport", Amount: dec("2000"), Spent: dec("1200")},
	}

	assert.True(t, dec("7000").Equal(TotalBudgeted(budgets)))
	assert.True(t, dec("3700").Equal(TotalSpent(budgets)))
	assert.True(t, TotalBudgeted(nil).IsZero())
	assert.True(t, TotalSpent(nil).IsZero())
}

func TestBucketByDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	days := LastSevenDays(now)
	require.Len(t, days, 7)

	// Only day index 2 has activity: one expense and one income.
	target := days[2]
	morning := time.Date(target.Year(), target.Month(), target.Day(), 9, 0, 0, 0, time.UTC)
	evening := time.Date(target.Year(), target.Month(), target.Day(), 20, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txn(model.KindExpense, "1500", morning),
		txn(model.KindIncome, "500", evening),
		// Outside the window, silently excluded.
		txn(model.KindExpense, "999", now.AddDate(0, 0, -10)),
	}

	all := BucketByDay(txns, days, SelectAll)
	require.Len(t, all, 7)
	for i, b := range all {
		if i == 2 {
			assert.True(t, dec("2000").Equal(b.Total), "day %d", i)
		} else {
			assert.True(t, b.Total.IsZero(), "day %d", i)
		}
	}

	expenses := BucketByDay(txns, days, SelectKind(model.KindExpense))
	assert.True(t, dec("1500").Equal(expenses[2].Total))

	incomes := BucketByDay(txns, days, SelectKind(model.KindIncome))
	assert.True(t, dec("500").Equal(incomes[2].Total))
}

func TestBucketByDay_Labels(t *testing.T) {
	// 2026-03-14 is a Saturday, so the window runs Sun..Sat.
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	buckets := BucketByDay(nil, LastSevenDays(now), SelectAll)

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, labels)
}

func TestBucketByDay_IgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txn(model.KindExpense, "10", day),
		txn(model.KindExpense, "15", day.Add(23*time.Hour+59*time.Minute)),
	}

	buckets := BucketByDay(txns, []time.Time{day}, SelectAll)
	require.Len(t, buckets, 1)
	assert.True(t, dec("25").Equal(buckets[0].Total))
}

func TestDistributionByCategory(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Spent: dec("2500")},
		{Category: "Transport", Spent: dec("1500")},
		{Category: "Fun", Spent: dec("1000")},
	}

	shares := DistributionByCategory(budgets)
	require.Len(t, shares, 3)
	assert.Equal(t, "Food", shares[0].Category)
	assert.InDelta(t, 0.5, shares[0].Share.InexactFloat64(), 1e-9)
	assert.InDelta(t, 0.3, shares[1].Share.InexactFloat64(), 1e-9)
	assert.InDelta(t, 0.2, shares[2].Share.InexactFloat64(), 1e-9)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Share)
	}
	assert.InDelta(t, 1.0, sum.InexactFloat64(), 1e-9)
}

func TestDistributionByCategory_ZeroSpend(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Spent: decimal.Zero},
		{Category: "Transport", Spent: decimal.Zero},
	}

	shares := DistributionByCategory(budgets)
	require.Len(t, shares, 2)
	for _, s := range shares {
		assert.True(t, s.Share.IsZero())
	}
}

func TestDistributionByCategory_Empty(t *testing.T) {
	assert.Empty(t, DistributionByCategory(nil))
}
