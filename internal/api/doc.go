// Package api provides the HTTP client for the SERP-Master backend.
//
// The backend runs audits and comparisons as asynchronous tasks: a start
// request returns a task handle, the client polls the status endpoint at a
// fixed interval, and a terminal status carries the result payload.
// Keyword research, niche analysis, and strategy generation are synchronous
// request/response calls.
//
// The client validates response shapes instead of duck-typing field access:
// a payload missing its required fields yields ErrUnexpectedShape rather
// than a zero-valued result. Every request carries a generated request ID
// header and passes through a rate limiter so status polling cannot exceed
// the backend's request budget.
package api
