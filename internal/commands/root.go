package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "pocketbook",
		Short:   "Personal finance tracking from the terminal",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", ".", "data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand(&dataDir))
	rootCmd.AddCommand(newBudgetCommand(&dataDir))
	rootCmd.AddCommand(newTxCommand(&dataDir))
	rootCmd.AddCommand(newProfileCommand(&dataDir))

	return rootCmd
}
