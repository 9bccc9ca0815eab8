package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/klatt42/serpmaster/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("output defaults to project file name", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.DefValue != config.DefaultConfigFile {
			t.Errorf("output default = %q, want %q", flag.DefValue, config.DefaultConfigFile)
		}
	})
}

// TestRunInitCmd tests project file creation.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates project file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "subdir", "project.yaml")
		cmd := NewInitCmd()
		if err := cmd.ParseFlags([]string{"-o", path}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if err := runInitCmd(cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read generated file: %v", err)
		}
		if !strings.Contains(string(content), "sites:") {
			t.Error("generated file missing sites section")
		}

		// The template must be loadable by the project file parser.
		var f config.File
		if err := yaml.Unmarshal(content, &f); err != nil {
			t.Errorf("generated file is not valid YAML: %v", err)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "project.yaml")
		if err := os.WriteFile(path, []byte("sites: {}\n"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		cmd := NewInitCmd()
		if err := cmd.ParseFlags([]string{"-o", path}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if err := runInitCmd(cmd, nil); err == nil {
			t.Error("expected error for existing file")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "project.yaml")
		if err := os.WriteFile(path, []byte("old content"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		cmd := NewInitCmd()
		if err := cmd.ParseFlags([]string{"-o", path, "-f"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if err := runInitCmd(cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read generated file: %v", err)
		}
		if string(content) == "old content" {
			t.Error("file was not overwritten")
		}
	})
}
