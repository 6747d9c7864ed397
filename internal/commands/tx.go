package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/importer"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/query"
	"github.com/pocketbook-dev/pocketbook/internal/snapshot"
)

func newTxCommand(dataDir *string) *cobra.Command {
	txCmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Transaction operations",
	}
	txCmd.AddCommand(newTxListCommand(dataDir))
	txCmd.AddCommand(newTxAddCommand(dataDir))
	txCmd.AddCommand(newTxImportCommand(dataDir))
	return txCmd
}

func newTxListCommand(dataDir *string) *cobra.Command {
	var search string
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			kf, ok := query.ParseKindFilter(kind)
			if !ok {
				return fmt.Errorf("unknown kind %q (all, income, expense)", kind)
			}

			txns := query.SortByRecency(query.Filter(rt.snap.Transactions, search, kf))
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			if len(txns) == 0 {
				cmd.Println("No matching transactions.")
				return nil
			}

			for _, t := range txns {
				sign := "+"
				if t.Kind == model.KindExpense {
					sign = "-"
				}
				cmd.Printf("%s  %s  %s%s  %-14s %s (%s)\n",
					t.Timestamp.Format("2006-01-02"), t.ID,
					sign, rt.money(t.Amount), t.Category, t.Description, t.WalletName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match against description or category")
	cmd.Flags().StringVar(&kind, "kind", "all", "all, income, or expense")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many (0 = all)")

	return cmd
}

func newTxAddCommand(dataDir *string) *cobra.Command {
	var walletID string
	var kind string
	var amount string
	var category string
	var description string
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			k := model.TransactionKind(strings.ToLower(kind))
			if k != model.KindIncome && k != model.KindExpense {
				return fmt.Errorf("unknown kind %q (income or expense)", kind)
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			if amt.IsNegative() {
				return fmt.Errorf("amount must be non-negative; use --kind expense for money out")
			}

			ts := time.Now()
			if date != "" {
				ts, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			t := model.Transaction{
				ID:          id.NewTransactionID(),
				Kind:        k,
				Amount:      amt,
				Category:    category,
				Description: description,
				Timestamp:   ts,
				WalletID:    walletID,
			}

			next, err := rt.snap.AddTransaction(t)
			if err != nil {
				return fmt.Errorf("wallet %s: %w", walletID, err)
			}

			details := fmt.Sprintf("%s (%s %s)", description, k, amt.StringFixed(2))
			if err := rt.apply(next, "tx.add", details, t.ID); err != nil {
				return err
			}

			w, _ := next.Wallet(walletID)
			cmd.Printf("Recorded %s. %s balance: %s\n", t.ID, w.Name, rt.money(w.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet ID (required)")
	_ = cmd.MarkFlagRequired("wallet")
	cmd.Flags().StringVar(&kind, "kind", string(model.KindExpense), "income or expense")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, non-negative (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")

	return cmd
}

func newTxImportCommand(dataDir *string) *cobra.Command {
	var walletID string
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a bank CSV export, or list pending files in import/",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				files, err := importer.Scan(rt.dir)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					cmd.Println("No CSV files waiting in import/.")
					return nil
				}
				for _, f := range files {
					cmd.Printf("%s  (%d bytes)\n", f.Name, f.Size)
				}
				return nil
			}

			if walletID == "" {
				return fmt.Errorf("--wallet is required when importing a file")
			}
			wallet, ok := rt.snap.Wallet(walletID)
			if !ok {
				return fmt.Errorf("wallet %s: %w", walletID, snapshot.ErrWalletNotFound)
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			next := rt.snap
			txns := importer.Assign(rows, wallet)
			for _, t := range txns {
				next, err = next.AddTransaction(t)
				if err != nil {
					return err
				}
			}

			details := fmt.Sprintf("%s (%d transactions)", args[0], len(txns))
			if err := rt.apply(next, "tx.import", details, wallet.ID); err != nil {
				return err
			}

			w, _ := next.Wallet(walletID)
			cmd.Printf("Imported %d transactions. %s balance: %s\n", len(txns), w.Name, rt.money(w.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet ID to import into")
	cmd.Flags().StringVar(&format, "format", "generic", "bank export format")

	return cmd
}
