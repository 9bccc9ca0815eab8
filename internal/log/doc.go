// Package log provides logging with automatic redaction of API credentials,
// built on top of the standard slog package.
//
// The backend API is typically accessed with an API key, and the project
// configuration file may carry per-site authentication headers. The
// RedactHandler masks these values in all log output so that verbose logs
// can be shared when reporting problems without leaking credentials.
//
// Usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Info("request sent",
//	    "api_key", "sk-abc123", // masked in output
//	    "url", "https://example.com",
//	)
package log
