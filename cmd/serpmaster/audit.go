package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/database"
	"github.com/klatt42/serpmaster/internal/model"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [url]...",
		Short: "Run a technical SEO audit against one or more sites",
		Long: `Audit submits each URL to the SERP-Master backend for a technical SEO
audit, polls until the audit completes, and renders the result.

The audit scores the site across the backend's dimensions (SEO, AEO, GEO)
and reports issues bucketed by severity, with quick wins highlighted.
Completed audits are saved to the local history database so 'serpmaster
history' can track score changes.

Examples:
  # Audit a single site and print a terminal summary
  serpmaster audit https://example.com

  # Audit several sites concurrently
  serpmaster audit https://a.example https://b.example

  # Write a Markdown report to the conventional download filename
  serpmaster audit --markdown --download https://example.com

  # Write a self-contained HTML print view to a chosen path
  serpmaster audit --html -o report.html https://example.com

  # Use per-site settings from a project file
  serpmaster audit -c .serpmaster https://example.com

Project file (.serpmaster) example:
  sites:
    example.com:
      apiKey: "site-specific-key"
      pollIntervalSeconds: 10
      headers:
        X-Staging-Bypass: "1"`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	// Backend flags
	cmd.Flags().StringP("api-url", "u", "",
		"Backend base URL (overrides SERPMASTER_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().DurationP("poll-interval", "p", config.DefaultPollInterval,
		"Fixed delay between audit status polls")
	cmd.Flags().IntP("max-polls", "P", config.DefaultMaxPollAttempts,
		"Maximum number of status polls before giving up")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent audits")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Project file path (default: .serpmaster in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report")
	cmd.Flags().Bool("html", false,
		"Output self-contained HTML print view")
	cmd.Flags().Bool("csv", false,
		"Output issues as CSV")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("download", "d", false,
		"Write report to the conventional artifact filename (seo-audit-<site>-<date>)")
	cmd.Flags().Bool("no-save", false,
		"Skip saving the audit to the local history database")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	return runAudits(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
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

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the audit targets
	cfg.Targets = args

	return cfg, nil
}

// runAudits audits every target, concurrently when more than one is given.
func runAudits(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting audits",
		"targets", cfg.Targets,
		"apiBaseURL", cfg.APIBaseURL,
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()
		logger.Info("history database opened", "dir", cfg.DBDir)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.BatchSize)

	results := make([]*model.AuditResult, len(cfg.Targets))
	for i, target := range cfg.Targets {
		group.Go(func() error {
			result, err := auditOne(ctx, cfg, target, logger)
			if err != nil {
				return fmt.Errorf("audit %s: %w", target, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	// Report and persist sequentially so output is not interleaved.
	for _, result := range results {
		if err := outputAuditReport(cfg, result); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", result.URL, err)
		}
		if db != nil {
			if err := saveAudit(ctx, db, result, cfg, logger); err != nil {
				logger.Error("failed to save audit", "site", result.URL, "error", err)
			}
		}
	}

	return nil
}

// auditOne runs a single audit from submission to completion.
func auditOne(ctx context.Context, cfg *config.Config, target string, logger *slog.Logger) (*model.AuditResult, error) {
	client, err := newAPIClient(cfg, target, logger)
	if err != nil {
		return nil, err
	}

	handle, err := client.StartAudit(ctx, target)
	if err != nil {
		return nil, err
	}
	logger.Info("audit started", "site", target, "task_id", handle.TaskID)

	start := time.Now()
	result, err := newPoller(cfg, target, client, logger).WaitForAudit(ctx, handle.TaskID)
	if err != nil {
		return nil, err
	}
	logger.Info("audit completed",
		"site", target,
		"task_id", handle.TaskID,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"score", result.Score.TotalScore,
	)

	// Some backend responses omit echo fields; fill them from what we know.
	if result.URL == "" {
		result.URL = target
	}
	if result.TaskID == "" {
		result.TaskID = handle.TaskID
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}

	return result, nil
}

// saveAudit persists a completed audit unless the site's project config
// opts out of history.
func saveAudit(ctx context.Context, db *database.HistoryDB, result *model.AuditResult, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Project != nil {
		siteConfig := cfg.Project.GetSiteConfig(stripProtocol(result.URL))
		if siteConfig.SaveHistory != nil && !*siteConfig.SaveHistory {
			logger.Debug("history disabled for site", "site", result.URL)
			return nil
		}
	}

	id, err := db.SaveAudit(ctx, result)
	if err != nil {
		return err
	}
	logger.Debug("audit saved", "site", result.URL, "id", id)
	return nil
}
