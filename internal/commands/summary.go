package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/aggregate"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newSummaryCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show balances, totals, and the last seven days of spending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			income := aggregate.TotalByKind(rt.snap.Transactions, model.KindIncome)
			expense := aggregate.TotalByKind(rt.snap.Transactions, model.KindExpense)

			cmd.Printf("Income:   %s\n", rt.money(income))
			cmd.Printf("Expenses: %s\n", rt.money(expense))
			cmd.Printf("Net:      %s\n", rt.money(income.Sub(expense)))

			if len(rt.snap.Wallets) > 0 {
				cmd.Println("\nWallets")
				for _, w := range rt.snap.Wallets {
					cmd.Printf("  %-20s %s %s\n", w.Name, w.Currency, w.Balance.StringFixed(2))
				}
			}

			cmd.Println("\nLast 7 days (expenses)")
			days := aggregate.LastSevenDays(time.Now())
			buckets := aggregate.BucketByDay(rt.snap.Transactions, days, aggregate.SelectKind(model.KindExpense))
			for _, b := range buckets {
				cmd.Printf("  %s  %s\n", b.Label, rt.money(b.Total))
			}

			if len(rt.snap.Budgets) > 0 {
				cmd.Println("\nSpending by budget category")
				shares := aggregate.DistributionByCategory(rt.snap.Budgets)
				for _, s := range shares {
					pct := s.Share.Mul(hundred)
					cmd.Printf("  %-20s %s  (%s%%)\n", s.Category, rt.money(s.Spent), pct.StringFixed(1))
				}
				cmd.Printf("  Total budgeted: %s, total spent: %s\n",
					rt.money(aggregate.TotalBudgeted(rt.snap.Budgets)),
					rt.money(aggregate.TotalSpent(rt.snap.Budgets)))
			}

			return nil
		},
	}
}
