package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/model"
)

// NewStrategyCmd creates the strategy command.
func NewStrategyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy <site>",
		Short: "Generate a content strategy for a site",
		Long: `Strategy asks the backend for a content strategy: thematic pillars,
each grouping keyword clusters that a single piece of content can target.

Examples:
  # Generate and print a content strategy
  serpmaster strategy https://my-site.com

  # Dump the raw strategy as JSON
  serpmaster strategy --json https://my-site.com`,
		Args: cobra.ExactArgs(1),
		RunE: runStrategyCmd,
	}

	cmd.Flags().StringP("api-url", "u", "",
		"Backend base URL (overrides SERPMASTER_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().BoolP("json", "j", false,
		"Output the strategy as JSON")

	return cmd
}

// runStrategyCmd executes the strategy command.
func runStrategyCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.Targets = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" { //nolint:errcheck // flag is declared above
		cfg.APIBaseURL = apiURL
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	client, err := newAPIClient(cfg, args[0], logger)
	if err != nil {
		return err
	}

	strategy, err := client.GenerateStrategy(ctx, args[0])
	if err != nil {
		return fmt.Errorf("strategy generation for %s: %w", args[0], err)
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(strategy)
	}

	printStrategy(strategy)
	return nil
}

// printStrategy writes the strategy pillars and clusters to stdout.
func printStrategy(strategy *model.ContentStrategy) {
	fmt.Printf("Content strategy for %s\n", strategy.Site)

	for i, pillar := range strategy.Pillars {
		fmt.Printf("\n%d. %s\n", i+1, pillar.Name)
		if pillar.Description != "" {
			fmt.Printf("   %s\n", pillar.Description)
		}
		for _, cluster := range pillar.Clusters {
			fmt.Printf("   - %s (%d keywords)\n", cluster.Topic, len(cluster.Keywords))
			for _, kw := range cluster.Keywords {
				fmt.Printf("       %-36s vol %-7d diff %d\n", kw.Keyword, kw.Volume, kw.Difficulty)
			}
		}
	}
}
