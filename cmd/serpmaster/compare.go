package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <your-site> <competitor>...",
		Short: "Compare a site against its competitors",
		Long: `Compare submits your site and one or more competitor sites to the
backend for a head-to-head SEO comparison, polls until it completes,
and renders the result.

The comparison ranks all sites by score, lists keywords competitors rank
for that your site does not, highlights quick wins, and proposes a
competitive strategy.

Examples:
  # Compare against two competitors
  serpmaster compare https://my-site.com https://rival-a.com https://rival-b.com

  # Save the comparison as a Markdown download
  serpmaster compare --markdown --download https://my-site.com https://rival-a.com`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().StringP("api-url", "u", "",
		"Backend base URL (overrides SERPMASTER_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().DurationP("poll-interval", "p", config.DefaultPollInterval,
		"Fixed delay between comparison status polls")
	cmd.Flags().IntP("max-polls", "P", config.DefaultMaxPollAttempts,
		"Maximum number of status polls before giving up")
	cmd.Flags().StringP("config", "c", "",
		"Project file path (default: .serpmaster in current or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report")
	cmd.Flags().Bool("html", false,
		"Output self-contained HTML print view")
	cmd.Flags().Bool("csv", false,
		"Output keyword gaps as CSV")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("download", "d", false,
		"Write report to the conventional artifact filename (comparison-<site>-<date>)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildCompareConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	userSite := cfg.Targets[0]
	competitors := cfg.Targets[1:]

	client, err := newAPIClient(cfg, userSite, logger)
	if err != nil {
		return err
	}

	handle, err := client.StartComparison(ctx, userSite, competitors)
	if err != nil {
		return fmt.Errorf("failed to start comparison: %w", err)
	}
	logger.Info("comparison started",
		"site", userSite,
		"competitors", competitors,
		"comparison_id", handle.TaskID,
	)

	result, err := newPoller(cfg, userSite, client, logger).WaitForComparison(ctx, handle.TaskID)
	if err != nil {
		return fmt.Errorf("comparison %s: %w", handle.TaskID, err)
	}

	if result.UserSite == "" {
		result.UserSite = userSite
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}

	return outputComparisonReport(cfg, result)
}

// buildCompareConfig creates a Config from the compare command's flags.
// Compare shares most flags with audit but has no batch or history
// settings: a comparison is a single backend task and is not persisted.
func buildCompareConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.PollInterval, err = cmd.Flags().GetDuration("poll-interval")
	if err != nil {
		return nil, err
	}

	cfg.MaxPollAttempts, err = cmd.Flags().GetInt("max-polls")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if err := loadProjectFile(cfg); err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.HTMLReport, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, err
	}

	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Download, err = cmd.Flags().GetBool("download")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args

	return cfg, nil
}
