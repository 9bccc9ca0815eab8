package config

import "errors"

// Configuration validation errors returned by Config.Validate().
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate() so callers can use errors.Is()
// while still getting human-readable messages.
var (
	// ErrNoTarget is returned when no URL or keyword argument is given.
	ErrNoTarget = errors.New("no target specified: provide a URL or keyword argument")

	// ErrNoAPIBaseURL is returned when the backend base URL is empty.
	ErrNoAPIBaseURL = errors.New("no API base URL: set SERPMASTER_API_URL or use --api-url")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidPollInterval is returned when the poll interval is not positive.
	ErrInvalidPollInterval = errors.New("invalid poll interval: must be positive")

	// ErrInvalidPollAttempts is returned when the poll attempt budget is not positive.
	ErrInvalidPollAttempts = errors.New("invalid poll attempts: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, --html, and --csv is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: choose at most one of --json, --markdown, --html, --csv")

	// ErrConflictingOutputs is returned when --download is combined with an
	// explicit --output path.
	ErrConflictingOutputs = errors.New("conflicting outputs: --download and --output cannot be used together")
)
