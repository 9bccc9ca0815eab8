package main

import "testing"

// TestNewNicheCmd tests the niche command creation.
func TestNewNicheCmd(t *testing.T) {
	t.Parallel()

	cmd := NewNicheCmd()

	if cmd.Use != "niche <seed>" {
		t.Errorf("unexpected use: %q", cmd.Use)
	}
	if err := cmd.Args(cmd, nil); err == nil {
		t.Error("expected error for no arguments")
	}
	for _, name := range []string{"sort", "desc", "csv", "output", "download"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected %s flag", name)
		}
	}
}

// TestNewStrategyCmd tests the strategy command creation.
func TestNewStrategyCmd(t *testing.T) {
	t.Parallel()

	cmd := NewStrategyCmd()

	if cmd.Use != "strategy <site>" {
		t.Errorf("unexpected use: %q", cmd.Use)
	}
	if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
		t.Error("expected error for two arguments")
	}
	if cmd.Flags().Lookup("json") == nil {
		t.Error("expected json flag")
	}
}
