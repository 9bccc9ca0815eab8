package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling with errors.Is.
var (
	// ErrUnexpectedShape is returned when a backend response decodes but is
	// missing fields the contract requires. The original web UI accessed
	// response fields without validation; here malformed payloads fail
	// loudly instead of propagating zero values.
	ErrUnexpectedShape = errors.New("unexpected response shape")

	// ErrTaskFailed is returned when a backend task reaches the failed
	// terminal state.
	ErrTaskFailed = errors.New("task failed")

	// ErrPollBudgetExceeded is returned when a task does not reach a
	// terminal state within the configured number of polls.
	ErrPollBudgetExceeded = errors.New("poll budget exceeded: task did not finish in time")

	// ErrInvalidBaseURL is returned by NewClient for an unusable base URL.
	ErrInvalidBaseURL = errors.New("invalid API base URL")
)

// StatusError is returned when the backend responds with a non-2xx status.
// Message carries the backend's error body when one was readable.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Endpoint is the request path.
	Endpoint string

	// Message is the backend's error text, possibly empty.
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("api: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}
