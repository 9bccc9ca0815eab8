package api

import (
	"context"
	"fmt"

	"github.com/klatt42/serpmaster/internal/model"
)

// TaskState is the lifecycle state of an asynchronous backend task.
type TaskState string

// Task lifecycle states. Complete and failed are terminal.
const (
	StateQueued     TaskState = "queued"
	StateProcessing TaskState = "processing"
	StateComplete   TaskState = "complete"
	StateFailed     TaskState = "failed"
)

// Terminal reports whether the state ends the task lifecycle.
func (s TaskState) Terminal() bool {
	return s == StateComplete || s == StateFailed
}

// TaskHandle identifies a started backend task.
type TaskHandle struct {
	// TaskID is the backend's task identifier.
	TaskID string `json:"task_id"`

	// Status is the initial task state.
	Status TaskState `json:"status"`
}

// AuditStatus is the status envelope for an audit task.
type AuditStatus struct {
	// TaskID echoes the polled task.
	TaskID string `json:"task_id"`

	// Status is the task state.
	Status TaskState `json:"status"`

	// Progress is the backend's completion estimate, 0-100.
	Progress int `json:"progress"`

	// Result carries the audit result once Status is complete.
	Result *model.AuditResult `json:"result,omitempty"`

	// Error carries the failure reason once Status is failed.
	Error string `json:"error,omitempty"`
}

// ComparisonStatus is the status envelope for a comparison task.
// Unlike audits, completed comparison results are fetched from a separate
// results endpoint.
type ComparisonStatus struct {
	// ComparisonID echoes the polled comparison.
	ComparisonID string `json:"comparison_id"`

	// Status is the task state.
	Status TaskState `json:"status"`

	// Progress is the backend's completion estimate, 0-100.
	Progress int `json:"progress"`

	// Error carries the failure reason once Status is failed.
	Error string `json:"error,omitempty"`
}

// StartAudit starts a technical SEO audit for the given URL and returns the
// task handle used for polling.
func (c *Client) StartAudit(ctx context.Context, siteURL string) (*TaskHandle, error) {
	req := struct {
		URL string `json:"url"`
	}{URL: siteURL}

	var handle TaskHandle
	if err := c.postJSON(ctx, "/api/seo/audit/technical", req, &handle); err != nil {
		return nil, err
	}
	if handle.TaskID == "" {
		return nil, fmt.Errorf("%w: audit start returned no task_id", ErrUnexpectedShape)
	}
	return &handle, nil
}

// AuditStatus polls the status of an audit task.
func (c *Client) AuditStatus(ctx context.Context, taskID string) (*AuditStatus, error) {
	req := struct {
		TaskID string `json:"task_id"`
	}{TaskID: taskID}

	var status AuditStatus
	if err := c.postJSON(ctx, "/api/seo/audit/status", req, &status); err != nil {
		return nil, err
	}
	if status.Status == "" {
		return nil, fmt.Errorf("%w: audit status returned no status", ErrUnexpectedShape)
	}
	if status.Status == StateComplete && status.Result == nil {
		return nil, fmt.Errorf("%w: complete audit carried no result", ErrUnexpectedShape)
	}
	return &status, nil
}

// StartComparison starts a competitor comparison and returns the task
// handle used for polling.
func (c *Client) StartComparison(ctx context.Context, userSite string, competitors []string) (*TaskHandle, error) {
	req := struct {
		UserSite    string   `json:"user_site"`
		Competitors []string `json:"competitors"`
	}{UserSite: userSite, Competitors: competitors}

	var handle struct {
		ComparisonID string    `json:"comparison_id"`
		Status       TaskState `json:"status"`
	}
	if err := c.postJSON(ctx, "/api/compare/start", req, &handle); err != nil {
		return nil, err
	}
	if handle.ComparisonID == "" {
		return nil, fmt.Errorf("%w: comparison start returned no comparison_id", ErrUnexpectedShape)
	}
	return &TaskHandle{TaskID: handle.ComparisonID, Status: handle.Status}, nil
}

// ComparisonStatus polls the status of a comparison task.
func (c *Client) ComparisonStatus(ctx context.Context, comparisonID string) (*ComparisonStatus, error) {
	req := struct {
		ComparisonID string `json:"comparison_id"`
	}{ComparisonID: comparisonID}

	var status ComparisonStatus
	if err := c.postJSON(ctx, "/api/compare/status", req, &status); err != nil {
		return nil, err
	}
	if status.Status == "" {
		return nil, fmt.Errorf("%w: comparison status returned no status", ErrUnexpectedShape)
	}
	return &status, nil
}

// ComparisonResults fetches the result of a completed comparison.
func (c *Client) ComparisonResults(ctx context.Context, comparisonID string) (*model.ComparisonResult, error) {
	req := struct {
		ComparisonID string `json:"comparison_id"`
	}{ComparisonID: comparisonID}

	var result model.ComparisonResult
	if err := c.postJSON(ctx, "/api/compare/results", req, &result); err != nil {
		return nil, err
	}
	if result.UserSite == "" {
		return nil, fmt.Errorf("%w: comparison results carried no user_site", ErrUnexpectedShape)
	}
	return &result, nil
}
