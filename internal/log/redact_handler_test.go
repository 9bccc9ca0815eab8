package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestRedactHandlerMasksSensitiveKeys tests key-based masking.
func TestRedactHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "api_key attribute", key: "api_key", value: "super-secret"},
		{name: "authorization header", key: "Authorization", value: "Bearer abc"},
		{name: "cookie header", key: "cookie", value: "session=xyz"},
		{name: "password", key: "password", value: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("request", tt.key, tt.value)

			output := buf.String()
			if strings.Contains(output, tt.value) {
				t.Errorf("output contains raw value %q: %s", tt.value, output)
			}
			if !strings.Contains(output, MaskValue) {
				t.Errorf("output missing mask value: %s", output)
			}
		})
	}
}

// TestRedactHandlerMasksSensitiveValues tests pattern-based masking.
func TestRedactHandlerMasksSensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "bearer token", value: "Bearer eyJhbGciOi"},
		{name: "api key prefix", value: "sk-abcdefghij0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("request", "header", tt.value)

			if strings.Contains(buf.String(), tt.value) {
				t.Errorf("output contains raw value %q: %s", tt.value, buf.String())
			}
		})
	}
}

// TestRedactHandlerPassesOrdinaryAttrs tests that normal values survive.
func TestRedactHandlerPassesOrdinaryAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("audit started", "url", "https://example.com", "attempts", 3)

	output := buf.String()
	if !strings.Contains(output, "https://example.com") {
		t.Errorf("expected URL to pass through unmasked: %s", output)
	}
	if strings.Contains(output, MaskValue) {
		t.Errorf("unexpected masking of ordinary attributes: %s", output)
	}
}

// TestNewLoggerLevels tests the verbose flag's effect on the log level.
func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected info to be suppressed, got: %s", buf.String())
		}

		logger.Warn("visible")
		if buf.Len() == 0 {
			t.Error("expected warn to be logged")
		}
	})

	t.Run("verbose level allows debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("visible")
		if buf.Len() == 0 {
			t.Error("expected debug to be logged in verbose mode")
		}
	})
}
