package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Default configuration values.
const (
	// DefaultAPIBaseURL is the development backend address. Production
	// deployments set SERPMASTER_API_URL instead.
	DefaultAPIBaseURL = "http://localhost:8000"

	// DefaultTimeout is the per-request HTTP timeout. Audit and comparison
	// tasks run asynchronously server-side, so individual requests are
	// short; 30 seconds leaves headroom for slow keyword queries.
	DefaultTimeout = 30 * time.Second

	// DefaultPollInterval is the fixed delay between task status polls.
	// The backend recommends polling every 5-10 seconds; there is no
	// backoff because audits finish within a few minutes.
	DefaultPollInterval = 5 * time.Second

	// DefaultMaxPollAttempts caps status polling. At the default interval
	// this allows ten minutes before a task is declared stuck.
	DefaultMaxPollAttempts = 120

	// DefaultBatchSize is the number of concurrent audits when several
	// URLs are given. Kept low to respect backend rate limits.
	DefaultBatchSize = 4

	// DefaultRequestsPerSecond limits outbound API calls. The backend's
	// public tier allows 5 req/s; we stay under it.
	DefaultRequestsPerSecond = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "serpmaster"

	// EnvAPIBaseURL is the environment variable holding the backend base URL.
	EnvAPIBaseURL = "SERPMASTER_API_URL"

	// EnvAPIKey is the environment variable holding the backend API key.
	EnvAPIKey = "SERPMASTER_API_KEY"
)

// Config holds all configuration options for a serpmaster invocation.
// It is populated from defaults, the environment, and CLI flags, then
// passed explicitly to the components that need it.
//
// Design decision: The original web UI read its API base URL from a
// module-level environment lookup and shared an ambient provider context
// across all views. Here the configuration is an explicit value threaded
// through constructors, so there is no process-global state to reason about.
type Config struct {
	// APIBaseURL is the backend base URL, without a trailing slash.
	APIBaseURL string

	// APIKey is the optional backend API key sent with each request.
	APIKey string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// PollInterval is the fixed delay between task status polls.
	PollInterval time.Duration

	// MaxPollAttempts caps the number of status polls per task.
	MaxPollAttempts int

	// BatchSize is the number of concurrent audits for multi-URL runs.
	BatchSize int

	// Verbose enables debug-level log output.
	Verbose bool

	// JSONReport selects JSON report output.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	MarkdownReport bool

	// HTMLReport selects the self-contained HTML print view.
	HTMLReport bool

	// CSVReport selects CSV output.
	CSVReport bool

	// ReportFile is the output file path. Empty means stdout.
	ReportFile string

	// Download writes the report to the conventional artifact filename
	// (seo-audit-<site>-<date>.<ext>) in the current directory.
	Download bool

	// Targets is the list of URLs or keywords the command operates on.
	Targets []string

	// ConfigFilePath is an explicit project config file path. Empty means
	// search the standard locations.
	ConfigFilePath string

	// Project holds per-site settings loaded from the project file.
	Project *File

	// DBDir is the directory for the local audit history database.
	DBDir string

	// SaveToDB controls whether fetched audits are persisted to history.
	SaveToDB bool
}

// NewConfig creates a Config with defaults and environment overrides applied.
// A .env file in the working directory is loaded first when present; a
// missing .env is not an error.
func NewConfig() *Config {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	cfg := &Config{
		APIBaseURL:      DefaultAPIBaseURL,
		Timeout:         DefaultTimeout,
		PollInterval:    DefaultPollInterval,
		MaxPollAttempts: DefaultMaxPollAttempts,
		BatchSize:       DefaultBatchSize,
	}

	if url := os.Getenv(EnvAPIBaseURL); url != "" {
		cfg.APIBaseURL = url
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}

	return cfg
}

// XDGDataDir returns the XDG data directory for serpmaster.
// On Linux: ~/.local/share/serpmaster
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for serpmaster.
// On Linux: ~/.config/serpmaster
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks that the configuration is usable and returns a sentinel
// error describing the first problem found.
//
// Design decision: We validate once after CLI parsing rather than at each
// point of use, so errors surface before any network traffic.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if c.APIBaseURL == "" {
		return ErrNoAPIBaseURL
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.PollInterval <= 0 {
		return ErrInvalidPollInterval
	}

	if c.MaxPollAttempts <= 0 {
		return ErrInvalidPollAttempts
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// Report formats are mutually exclusive
	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.HTMLReport, c.CSVReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	// --download derives the filename itself, so an explicit path conflicts
	if c.Download && c.ReportFile != "" {
		return ErrConflictingOutputs
	}

	return nil
}

// ReportExtension returns the artifact file extension for the selected
// report format.
func (c *Config) ReportExtension() string {
	switch {
	case c.JSONReport:
		return ".json"
	case c.HTMLReport:
		return ".html"
	case c.CSVReport:
		return ".csv"
	default:
		return ".md"
	}
}
