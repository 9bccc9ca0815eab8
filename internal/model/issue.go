package model

// Issue represents a single audit finding reported by the backend.
//
// Issues are partitioned server-side into four named buckets (critical,
// warnings, info, quick wins). A single issue may appear in the quick-wins
// bucket in addition to its severity bucket; the two views are intentional
// duplicates, not distinct findings.
type Issue struct {
	// ID is the backend's stable identifier for this issue type.
	ID string `json:"id"`

	// Severity is the issue's severity bucket (CRITICAL, WARNING, INFO).
	Severity Severity `json:"severity"`

	// Title is a short human-readable summary.
	Title string `json:"title"`

	// Description explains the issue in detail.
	Description string `json:"description,omitempty"`

	// PagesAffected is the number of pages on the audited site that
	// exhibit this issue.
	PagesAffected int `json:"pages_affected"`

	// Impact is the backend's estimated impact on a 0-10 scale.
	Impact int `json:"impact"`

	// Effort is the estimated remediation effort (low, medium, high).
	Effort Effort `json:"effort"`

	// Category groups related issues (e.g. "technical", "content",
	// "structured_data"). Categories are defined by the backend.
	Category string `json:"category,omitempty"`

	// QuickWin is true when the backend flags this issue as high-impact and
	// low-effort. Quick wins are duplicated into the quick-wins bucket for
	// prioritized display.
	QuickWin bool `json:"quick_win"`

	// Recommendation is the backend's suggested fix.
	Recommendation string `json:"recommendation,omitempty"`

	// Details holds optional extra material (affected URLs, code snippets).
	// When absent, report writers omit the corresponding subsection.
	Details string `json:"details,omitempty"`
}

// IssueSet holds the four named issue buckets produced by the backend.
//
// Design decision: We keep the backend's bucketed shape rather than a flat
// slice because the report contract is defined in terms of buckets, and the
// quick-win duplication is part of the wire format, not something the
// client derives.
type IssueSet struct {
	// Critical contains issues with CRITICAL severity.
	Critical []Issue `json:"critical"`

	// Warnings contains issues with WARNING severity.
	Warnings []Issue `json:"warnings"`

	// Info contains informational issues.
	Info []Issue `json:"info"`

	// QuickWins contains issues flagged quick_win, regardless of severity.
	// Each entry also appears in its severity bucket.
	QuickWins []Issue `json:"quick_wins"`
}

// Total returns the number of distinct issues across the severity buckets.
// Quick wins are excluded from the count because each one is a duplicate of
// an entry in a severity bucket.
func (s IssueSet) Total() int {
	return len(s.Critical) + len(s.Warnings) + len(s.Info)
}

// IsEmpty returns true when all four buckets are empty.
func (s IssueSet) IsEmpty() bool {
	return s.Total() == 0 && len(s.QuickWins) == 0
}

// All returns the contents of the three severity buckets as one slice,
// ordered critical, warnings, info. Quick wins are not repeated.
func (s IssueSet) All() []Issue {
	all := make([]Issue, 0, s.Total())
	all = append(all, s.Critical...)
	all = append(all, s.Warnings...)
	all = append(all, s.Info...)
	return all
}
