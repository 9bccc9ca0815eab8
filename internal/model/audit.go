package model

import (
	"sort"
	"time"
)

// AuditResult is the complete result of a technical SEO audit.
// It is produced by the backend, immutable once fetched, and held in-memory
// only for the duration of a command invocation (plus optional persistence
// in the local history database).
type AuditResult struct {
	// URL is the audited site.
	URL string `json:"url"`

	// Timestamp is when the backend completed the audit.
	Timestamp time.Time `json:"timestamp"`

	// TaskID identifies the backend task that produced this result.
	TaskID string `json:"task_id"`

	// Score is the aggregated score breakdown.
	Score ScoreBreakdown `json:"score"`

	// Issues holds the four issue buckets.
	Issues IssueSet `json:"issues"`
}

// ScoreBreakdown aggregates the per-dimension scores into a total.
//
// The invariant percentage == total_score/max_score*100 is assumed true of
// backend output and is not re-derived or enforced here.
type ScoreBreakdown struct {
	// TotalScore is the sum of all component scores.
	TotalScore float64 `json:"total_score"`

	// MaxScore is the maximum achievable total.
	MaxScore float64 `json:"max_score"`

	// Percentage is TotalScore/MaxScore*100 as computed by the backend.
	Percentage float64 `json:"percentage"`

	// Grade is the backend's letter grade for the total (e.g. "B+").
	Grade string `json:"grade,omitempty"`

	// ComponentScores maps scoring dimensions to their scores. Dimensions
	// are a fixed small set defined by the backend (seo, aeo, geo) and are
	// opaque to this layer.
	ComponentScores map[string]ComponentScore `json:"component_scores,omitempty"`
}

// ComponentScore is the score for one dimension (seo, aeo, geo).
type ComponentScore struct {
	// Score is the achieved score for this dimension.
	Score float64 `json:"score"`

	// Max is the maximum achievable score for this dimension.
	Max float64 `json:"max"`

	// Percentage is Score/Max*100 as computed by the backend.
	Percentage float64 `json:"percentage"`
}

// Dimensions returns the component score dimensions in sorted order.
// Map iteration order is random; reports must be deterministic, so every
// renderer goes through this accessor.
func (s ScoreBreakdown) Dimensions() []string {
	dims := make([]string, 0, len(s.ComponentScores))
	for dim := range s.ComponentScores {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

// NewAuditResult creates an empty audit result for the given URL.
// Used by tests and by the history differ as a zero baseline.
func NewAuditResult(url string) *AuditResult {
	return &AuditResult{
		URL:       url,
		Timestamp: time.Now(),
	}
}
