package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence unit a budget's limit applies over.
type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Days returns the fixed day count for the period. Not calendar-aware:
// months are always 30 days and years 365.
func (p BudgetPeriod) Days() int {
	switch p {
	case PeriodDaily:
		return 1
	case PeriodWeekly:
		return 7
	case PeriodYearly:
		return 365
	default:
		return 30
	}
}

// Valid reports whether p is one of the four known periods.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget is a spending limit over a period. Spent is adjusted only through
// explicit update operations, never recomputed from the transaction set.
type Budget struct {
	ID        string
	Category  string
	Amount    decimal.Decimal // limit
	Spent     decimal.Decimal
	Period    BudgetPeriod
	StartDate time.Time
}
