package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/log"
	"github.com/klatt42/serpmaster/internal/report"
)

// TestNewReportWriter tests report writer selection from the config.
func TestNewReportWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{name: "json", cfg: &config.Config{JSONReport: true}, want: "*report.JSONWriter"},
		{name: "markdown", cfg: &config.Config{MarkdownReport: true}, want: "*report.MarkdownWriter"},
		{name: "html", cfg: &config.Config{HTMLReport: true}, want: "*report.HTMLWriter"},
		{name: "csv", cfg: &config.Config{CSVReport: true}, want: "*report.CSVWriter"},
		{name: "default is text", cfg: &config.Config{}, want: "*report.TextWriter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			writer := newReportWriter(tt.cfg, os.Stderr)

			var got string
			switch writer.(type) {
			case *report.JSONWriter:
				got = "*report.JSONWriter"
			case *report.MarkdownWriter:
				got = "*report.MarkdownWriter"
			case *report.HTMLWriter:
				got = "*report.HTMLWriter"
			case *report.CSVWriter:
				got = "*report.CSVWriter"
			case *report.TextWriter:
				got = "*report.TextWriter"
			}
			if got != tt.want {
				t.Errorf("newReportWriter() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestOpenReportOutput tests report destination resolution.
func TestOpenReportOutput(t *testing.T) {
	t.Parallel()

	t.Run("stdout by default", func(t *testing.T) {
		t.Parallel()

		output, closeFn, err := openReportOutput(&config.Config{}, "artifact.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closeFn()

		if output != os.Stdout {
			t.Error("expected stdout when no destination is configured")
		}
	})

	t.Run("explicit output path creates directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "nested", "out.md")
		cfg := &config.Config{ReportFile: path}

		output, closeFn, err := openReportOutput(cfg, "artifact.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := output.Write([]byte("# Report\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		closeFn()

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if string(content) != "# Report\n" {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("download uses the artifact name", func(t *testing.T) {
		t.Parallel()

		artifact := filepath.Join(t.TempDir(), "seo-audit-example-com-2026-03-01.md")
		cfg := &config.Config{Download: true}

		output, closeFn, err := openReportOutput(cfg, artifact)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := output.Write([]byte("x")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		closeFn()

		if _, err := os.Stat(artifact); err != nil {
			t.Errorf("artifact file not created: %v", err)
		}
	})
}

// TestNewPoller tests per-site poll interval overrides.
func TestNewPoller(t *testing.T) {
	t.Parallel()

	logger := log.NewLogger(os.Stderr, false)
	cfg := config.NewConfig()
	cfg.PollInterval = 5 * time.Second
	cfg.Project = &config.File{
		Sites: map[string]config.SiteConfig{
			"slow.example.com": {PollIntervalSeconds: 30},
		},
	}

	client, err := newAPIClient(cfg, "https://slow.example.com", logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if poller := newPoller(cfg, "https://slow.example.com", client, logger); poller == nil {
		t.Fatal("expected a poller")
	}
	if poller := newPoller(cfg, "https://other.example.com", client, logger); poller == nil {
		t.Fatal("expected a poller")
	}
}
