package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for serpmaster.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serpmaster",
		Short: "SEO audit and keyword research client for SERP-Master",
		Long: `serpmaster runs SEO analysis through the SERP-Master backend and turns
the results into shareable reports.

It can audit a site's technical SEO, compare it against competitors,
research keywords, analyze niches, and generate content strategies.
Fetched audits are saved to a local history database so score changes
can be tracked over time.

The backend address is read from the SERPMASTER_API_URL environment
variable (or a .env file) and defaults to http://localhost:8000.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewKeywordsCmd())
	cmd.AddCommand(NewNicheCmd())
	cmd.AddCommand(NewStrategyCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewHealthCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
