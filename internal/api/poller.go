package api

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/klatt42/serpmaster/internal/model"
)

// Poller waits for asynchronous backend tasks to finish by re-fetching
// their status at a fixed interval. There is no backoff or jitter: audits
// finish within minutes and the client rate limiter already bounds request
// volume.
//
// Design decision: The original UI let a late status response overwrite a
// newer one because nothing fenced the callbacks. Here every poll gets a
// monotonic sequence number at request time and a response is applied only
// if no newer poll has been applied, so a superseded response is discarded
// rather than clobbering fresher state. Within a single WaitForAudit or
// WaitForComparison call the polls are sequential and the fence never
// trips; it exists so a Poller shared across goroutines, or a future
// concurrent poll strategy, keeps the same no-stale-overwrite guarantee.
type Poller struct {
	// client performs the status requests.
	client *Client

	// interval is the fixed delay between polls.
	interval time.Duration

	// maxAttempts caps the number of polls before giving up.
	maxAttempts int

	// logger reports per-poll progress at debug level.
	logger *slog.Logger

	// seq numbers polls at request time.
	seq atomic.Uint64

	// lastApplied is the highest sequence number whose response was applied.
	lastApplied atomic.Uint64
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithInterval sets the fixed polling interval.
func WithInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithMaxAttempts sets the poll attempt budget.
func WithMaxAttempts(n int) PollerOption {
	return func(p *Poller) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithPollerLogger sets the logger for poll progress output.
func WithPollerLogger(logger *slog.Logger) PollerOption {
	return func(p *Poller) {
		p.logger = logger
	}
}

// NewPoller creates a Poller with a 5 second interval and a budget of 120
// attempts unless overridden.
func NewPoller(client *Client, opts ...PollerOption) *Poller {
	p := &Poller{
		client:      client,
		interval:    5 * time.Second,
		maxAttempts: 120,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// apply records a response's sequence number. It returns false when a newer
// poll has already been applied, in which case the response must be
// discarded.
func (p *Poller) apply(seq uint64) bool {
	for {
		last := p.lastApplied.Load()
		if seq <= last {
			return false
		}
		if p.lastApplied.CompareAndSwap(last, seq) {
			return true
		}
	}
}

// WaitForAudit polls an audit task until it completes and returns its
// result. It returns ErrTaskFailed when the backend reports failure,
// ErrPollBudgetExceeded when the attempt budget runs out, and the context
// error on cancellation.
func (p *Poller) WaitForAudit(ctx context.Context, taskID string) (*model.AuditResult, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		seq := p.seq.Add(1)

		status, err := p.client.AuditStatus(ctx, taskID)
		if err != nil {
			return nil, fmt.Errorf("audit status poll %d: %w", attempt, err)
		}

		if !p.apply(seq) {
			// A newer poll was applied while this one was in flight.
			p.logger.Debug("discarding stale audit status", "task_id", taskID, "seq", seq)
		} else {
			p.logger.Debug("audit status",
				"task_id", taskID,
				"status", status.Status,
				"progress", status.Progress,
				"attempt", attempt,
			)

			switch status.Status {
			case StateComplete:
				return status.Result, nil
			case StateFailed:
				return nil, fmt.Errorf("%w: %s", ErrTaskFailed, status.Error)
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return nil, fmt.Errorf("%w (task %s, %d attempts)", ErrPollBudgetExceeded, taskID, p.maxAttempts)
}

// WaitForComparison polls a comparison task until it completes, then
// fetches the result from the results endpoint.
func (p *Poller) WaitForComparison(ctx context.Context, comparisonID string) (*model.ComparisonResult, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		seq := p.seq.Add(1)

		status, err := p.client.ComparisonStatus(ctx, comparisonID)
		if err != nil {
			return nil, fmt.Errorf("comparison status poll %d: %w", attempt, err)
		}

		if !p.apply(seq) {
			p.logger.Debug("discarding stale comparison status", "comparison_id", comparisonID, "seq", seq)
		} else {
			p.logger.Debug("comparison status",
				"comparison_id", comparisonID,
				"status", status.Status,
				"progress", status.Progress,
				"attempt", attempt,
			)

			switch status.Status {
			case StateComplete:
				return p.client.ComparisonResults(ctx, comparisonID)
			case StateFailed:
				return nil, fmt.Errorf("%w: %s", ErrTaskFailed, status.Error)
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return nil, fmt.Errorf("%w (comparison %s, %d attempts)", ErrPollBudgetExceeded, comparisonID, p.maxAttempts)
}
