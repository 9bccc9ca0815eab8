package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/api"
	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/export"
	"github.com/klatt42/serpmaster/internal/log"
	"github.com/klatt42/serpmaster/internal/model"
	"github.com/klatt42/serpmaster/internal/report"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the redacting structured logger and installs it as
// the process default.
func setupLogger(verbose bool) *slog.Logger {
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newAPIClient builds an API client for the given site, applying per-site
// project configuration (API key, extra headers) over the global config.
func newAPIClient(cfg *config.Config, site string, logger *slog.Logger) (*api.Client, error) {
	opts := []api.Option{
		api.WithLogger(logger),
		api.WithRateLimit(config.DefaultRequestsPerSecond),
	}

	apiKey := cfg.APIKey
	if cfg.Project != nil {
		siteConfig := cfg.Project.GetSiteConfig(stripProtocol(site))
		if siteConfig.APIKey != "" {
			apiKey = siteConfig.APIKey
		}
		if len(siteConfig.Headers) > 0 {
			opts = append(opts, api.WithHeaders(siteConfig.Headers))
		}
	}
	if apiKey != "" {
		opts = append(opts, api.WithAPIKey(apiKey))
	}

	return api.NewClient(cfg.APIBaseURL, cfg.Timeout, opts...)
}

// newPoller builds a task poller for the given site, honoring a per-site
// poll interval override from the project file.
func newPoller(cfg *config.Config, site string, client *api.Client, logger *slog.Logger) *api.Poller {
	interval := cfg.PollInterval
	if cfg.Project != nil {
		if override := cfg.Project.GetSiteConfig(stripProtocol(site)).PollIntervalSeconds; override > 0 {
			interval = time.Duration(override) * time.Second
		}
	}

	return api.NewPoller(client,
		api.WithInterval(interval),
		api.WithMaxAttempts(cfg.MaxPollAttempts),
		api.WithPollerLogger(logger),
	)
}

// stripProtocol removes an http:// or https:// prefix. Project file site
// sections are keyed without a protocol.
func stripProtocol(site string) string {
	for _, prefix := range []string{"http://", "https://"} {
		site = strings.TrimPrefix(site, prefix)
	}
	return site
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	case cfg.HTMLReport:
		return report.NewHTMLWriter(output)
	case cfg.CSVReport:
		return report.NewCSVWriter(output)
	default:
		return report.NewTextWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// openReportOutput resolves the report destination: an explicit --output
// path, a derived --download artifact filename, or stdout. The returned
// cleanup function closes the file when one was opened.
func openReportOutput(cfg *config.Config, artifactName string) (io.Writer, func(), error) {
	path := cfg.ReportFile
	if cfg.Download {
		path = artifactName
	}
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Writing report to %s\n", path)
	return f, func() { _ = f.Close() }, nil
}

// outputAuditReport writes an audit result in the configured format to the
// configured destination.
func outputAuditReport(cfg *config.Config, result *model.AuditResult) error {
	artifact := export.AuditFilename(result.URL, result.Timestamp, cfg.ReportExtension())

	output, closeFn, err := openReportOutput(cfg, artifact)
	if err != nil {
		return err
	}
	defer closeFn()

	_, err = newReportWriter(cfg, output).WriteAudit(result)
	return err
}

// outputComparisonReport writes a comparison result in the configured
// format to the configured destination.
func outputComparisonReport(cfg *config.Config, result *model.ComparisonResult) error {
	artifact := export.ComparisonFilename(result.UserSite, result.Timestamp, cfg.ReportExtension())

	output, closeFn, err := openReportOutput(cfg, artifact)
	if err != nil {
		return err
	}
	defer closeFn()

	_, err = newReportWriter(cfg, output).WriteComparison(result)
	return err
}

// loadProjectFile loads the .serpmaster project file into the config.
// An explicitly requested file must exist; otherwise a missing file just
// means no per-site settings.
func loadProjectFile(cfg *config.Config) error {
	explicit := cfg.ConfigFilePath != ""
	path := config.FindConfigFile(cfg.ConfigFilePath)

	if path == "" {
		if explicit {
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		cfg.Project = &config.File{Sites: make(map[string]config.SiteConfig)}
		return nil
	}

	project, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	cfg.Project = project
	return nil
}
