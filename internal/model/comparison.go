package model

import "time"

// ComparisonResult is the result of a competitor comparison run.
// It is rendered with the same report machinery as AuditResult but through
// a different template.
type ComparisonResult struct {
	// ComparisonID identifies the backend comparison task.
	ComparisonID string `json:"comparison_id"`

	// UserSite is the site being compared against competitors.
	UserSite string `json:"user_site"`

	// Competitors lists the competitor sites included in the comparison.
	Competitors []string `json:"competitors"`

	// Timestamp is when the backend completed the comparison.
	Timestamp time.Time `json:"timestamp"`

	// Rankings orders all compared sites by score, best first.
	Rankings []SiteRanking `json:"rankings"`

	// Gaps lists keywords competitors rank for that the user site does not.
	Gaps []KeywordGap `json:"gaps"`

	// QuickWins lists issues on the user site that are cheap to fix and
	// would close ranking gaps.
	QuickWins []Issue `json:"quick_wins"`

	// CompetitiveStrategy is the backend's ordered list of recommended
	// actions derived from the comparison.
	CompetitiveStrategy []StrategyAction `json:"competitive_strategy"`
}

// SiteRanking is one row of the comparison ranking table.
type SiteRanking struct {
	// Rank is the 1-based position among the compared sites.
	Rank int `json:"rank"`

	// Site is the ranked site.
	Site string `json:"site"`

	// TotalScore is the site's aggregate audit score.
	TotalScore float64 `json:"total_score"`

	// Percentage is the site's score percentage.
	Percentage float64 `json:"percentage"`

	// Grade is the backend's letter grade for the site.
	Grade string `json:"grade,omitempty"`
}

// KeywordGap is a keyword at least one competitor ranks for while the user
// site does not.
type KeywordGap struct {
	// Keyword is the gap keyword.
	Keyword string `json:"keyword"`

	// Volume is the estimated monthly search volume.
	Volume int `json:"volume"`

	// Difficulty is the ranking difficulty on a 0-100 scale.
	Difficulty int `json:"difficulty"`

	// CPC is the estimated cost-per-click in USD.
	CPC float64 `json:"cpc"`

	// CoveredBy lists the competitors currently ranking for the keyword.
	CoveredBy []string `json:"covered_by,omitempty"`
}

// StrategyAction is one recommended action in the competitive strategy.
type StrategyAction struct {
	// Priority is the 1-based recommended execution order.
	Priority int `json:"priority"`

	// Action is the recommended step.
	Action string `json:"action"`

	// Rationale explains why the backend recommends this step.
	Rationale string `json:"rationale,omitempty"`
}
