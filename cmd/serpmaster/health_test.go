package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestNewHealthCmd tests the health command creation.
func TestNewHealthCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHealthCmd()

	if cmd.Use != "health" {
		t.Errorf("unexpected use: %q", cmd.Use)
	}
	if cmd.Flags().Lookup("api-url") == nil {
		t.Error("expected api-url flag")
	}
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("expected error for positional arguments")
	}
}

// TestRunHealthCmd tests the health check against a stub backend.
func TestRunHealthCmd(t *testing.T) {
	t.Run("healthy backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/health" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck // test handler
		}))
		defer server.Close()

		cmd := NewHealthCmd()
		if err := cmd.ParseFlags([]string{"--api-url", server.URL}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if err := runHealthCmd(cmd, nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unreachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		server.Close()

		cmd := NewHealthCmd()
		if err := cmd.ParseFlags([]string{"--api-url", server.URL}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if err := runHealthCmd(cmd, nil); err == nil {
			t.Error("expected error for unreachable backend")
		}
	})
}
