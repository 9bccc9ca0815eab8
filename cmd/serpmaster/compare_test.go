package main

import (
	"testing"

	"github.com/klatt42/serpmaster/internal/config"
)

// TestNewCompareCmd tests the compare command creation.
func TestNewCompareCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCompareCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "compare <your-site> <competitor>..." {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("requires at least two arguments", func(t *testing.T) {
		t.Parallel()
		if err := cmd.Args(cmd, []string{"https://my-site.com"}); err == nil {
			t.Error("expected error for a single argument")
		}
		if err := cmd.Args(cmd, []string{"https://my-site.com", "https://rival.com"}); err != nil {
			t.Errorf("unexpected error for two arguments: %v", err)
		}
	})

	t.Run("has report format flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "html", "csv", "output", "download"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("has no batch flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("batch") != nil {
			t.Error("compare should not have a batch flag")
		}
	})
}

// TestBuildCompareConfig tests config construction from compare flags.
func TestBuildCompareConfig(t *testing.T) {
	t.Run("targets are positional arguments", func(t *testing.T) {
		cmd := NewCompareCmd()
		if err := cmd.ParseFlags([]string{"--markdown"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		args := []string{"https://my-site.com", "https://rival-a.com", "https://rival-b.com"}
		cfg, err := buildCompareConfig(cmd, args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Targets) != 3 {
			t.Fatalf("Targets = %v, want 3 entries", cfg.Targets)
		}
		if cfg.Targets[0] != "https://my-site.com" {
			t.Errorf("Targets[0] = %q, want the user site first", cfg.Targets[0])
		}
		if !cfg.MarkdownReport {
			t.Error("MarkdownReport = false")
		}
	})

	t.Run("validates cleanly with defaults", func(t *testing.T) {
		t.Setenv(config.EnvAPIBaseURL, "")

		cmd := NewCompareCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildCompareConfig(cmd, []string{"https://a.com", "https://b.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}
