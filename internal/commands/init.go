package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/gitops"
	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/snapcsv"
	"github.com/pocketbook-dev/pocketbook/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Pocketbook data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, currency, useGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "display currency code")
	cmd.Flags().BoolVar(&useGit, "git", false, "track the data directory with git")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, currency string, useGit bool) error {
	if snapcsv.Exists(dir) {
		return fmt.Errorf("%s already contains a Pocketbook data directory", dir)
	}

	for _, d := range []string{"logs", "import"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	cfg.Preferences.Currency = currency
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Every fresh directory starts with one cash wallet so transactions have
	// somewhere to land.
	snap := snapshot.Snapshot{
		Wallets: []model.Wallet{
			{ID: id.NewWalletID(), Name: "Cash", Balance: decimal.Zero, Currency: currency},
		},
	}
	if err := snapcsv.SaveSnapshot(dir, snap); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: create data directory for "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		cmd.Printf("Initialized Pocketbook data directory at %s (%s)\n", dir, hash)
		return nil
	}

	cmd.Printf("Initialized Pocketbook data directory at %s\n", dir)
	return nil
}
