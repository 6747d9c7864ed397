package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/insight"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newBudgetCommand(dataDir *string) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:     "budget",
		Aliases: []string{"budgets"},
		Short:   "Budget operations",
	}
	budgetCmd.AddCommand(newBudgetListCommand(dataDir))
	budgetCmd.AddCommand(newBudgetAddCommand(dataDir))
	budgetCmd.AddCommand(newBudgetSpendCommand(dataDir))
	return budgetCmd
}

func newBudgetListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with their current health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			if len(rt.snap.Budgets) == 0 {
				cmd.Println("No budgets yet. Add one with 'pocketbook budget add'.")
				return nil
			}

			for _, in := range insight.ForBudgets(rt.snap.Budgets) {
				b := in.Budget
				cmd.Printf("%s  %-16s %s / %s  (%s%% used, %s)\n",
					b.ID, b.Category,
					rt.money(b.Spent), rt.money(b.Amount),
					in.PercentageUsed.StringFixed(1), in.Status)
				cmd.Printf("    remaining %s over %d days -> %s/day (spent %s/day so far)\n",
					rt.money(in.Remaining), in.DaysInPeriod,
					rt.money(in.RemainingDailyAllowance), rt.money(in.DailyAverageSpend))
			}

			cmd.Println("\nTips")
			for _, tip := range insight.Tips(rt.snap.Budgets) {
				cmd.Printf("  - %s\n", tip)
			}
			return nil
		},
	}
}

func newBudgetAddCommand(dataDir *string) *cobra.Command {
	var category string
	var amount string
	var period string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			limit, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			if !limit.IsPositive() {
				return fmt.Errorf("budget amount must be positive, got %s", limit)
			}

			p := model.BudgetPeriod(strings.ToLower(period))
			if !p.Valid() {
				return fmt.Errorf("unknown period %q (daily, weekly, monthly, yearly)", period)
			}

			b := model.Budget{
				ID:        id.NewBudgetID(),
				Category:  category,
				Amount:    limit,
				Spent:     decimal.Zero,
				Period:    p,
				StartDate: time.Now(),
			}

			details := fmt.Sprintf("%s %s per %s", category, limit.StringFixed(2), p)
			if err := rt.apply(rt.snap.AddBudget(b), "budget.add", details, b.ID); err != nil {
				return err
			}
			cmd.Printf("Added budget %s (%s)\n", b.ID, details)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "budget category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&amount, "amount", "", "spending limit (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonthly), "daily, weekly, monthly, or yearly")

	return cmd
}

func newBudgetSpendCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "spend <budget-id> <amount>",
		Short: "Record spend against a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}

			next, err := rt.snap.AddSpend(args[0], amount)
			if err != nil {
				return fmt.Errorf("budget %s: %w", args[0], err)
			}

			if err := rt.apply(next, "budget.spend", amount.StringFixed(2), args[0]); err != nil {
				return err
			}

			b, _ := next.Budget(args[0])
			in := insight.ForBudget(b)
			cmd.Printf("%s: %s / %s used (%s)\n", b.Category, rt.money(b.Spent), rt.money(b.Amount), in.Status)
			return nil
		},
	}
}
