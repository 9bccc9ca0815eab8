package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
)

// NewHealthCmd creates the health command.
func NewHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check connectivity to the SERP-Master backend",
		Long: `Health calls the backend's health endpoint and reports whether it is
reachable from this machine with the current configuration.

Examples:
  # Check the configured backend
  serpmaster health

  # Check a specific backend
  serpmaster health --api-url https://api.serpmaster.example`,
		Args: cobra.NoArgs,
		RunE: runHealthCmd,
	}

	cmd.Flags().StringP("api-url", "u", "",
		"Backend base URL (overrides SERPMASTER_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for the health request")

	return cmd
}

// runHealthCmd executes the health command.
func runHealthCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" { //nolint:errcheck // flag is declared above
		cfg.APIBaseURL = apiURL
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	client, err := newAPIClient(cfg, "", logger)
	if err != nil {
		return err
	}

	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("backend %s is not healthy: %w", cfg.APIBaseURL, err)
	}

	fmt.Printf("Backend %s is healthy.\n", cfg.APIBaseURL)
	return nil
}
