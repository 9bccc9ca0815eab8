package model

import "time"

// Keyword is a single keyword row from keyword research or niche discovery.
// The field set matches the CSV export contract:
// Keyword, Score, Volume, Difficulty, CPC, Level.
type Keyword struct {
	// Keyword is the search phrase.
	Keyword string `json:"keyword"`

	// Score is the backend's opportunity score for this keyword.
	Score float64 `json:"score"`

	// Volume is the estimated monthly search volume.
	Volume int `json:"volume"`

	// Difficulty is the ranking difficulty on a 0-100 scale.
	Difficulty int `json:"difficulty"`

	// CPC is the estimated cost-per-click in USD.
	CPC float64 `json:"cpc"`

	// Level is the backend's competition level label
	// (e.g. "easy", "moderate", "hard").
	Level string `json:"level,omitempty"`
}

// NicheAnalysis is the result of a niche discovery query.
type NicheAnalysis struct {
	// Seed is the seed keyword or topic the analysis started from.
	Seed string `json:"seed"`

	// Timestamp is when the backend completed the analysis.
	Timestamp time.Time `json:"timestamp"`

	// NicheScore is the backend's overall attractiveness score (0-100).
	NicheScore float64 `json:"niche_score"`

	// Keywords lists the discovered keyword opportunities.
	Keywords []Keyword `json:"keywords"`

	// Summary is the backend's prose assessment of the niche.
	Summary string `json:"summary,omitempty"`
}

// ContentStrategy is the result of a content strategy request.
// Pillars group keyword clusters into publishable themes.
type ContentStrategy struct {
	// Site is the site the strategy was generated for.
	Site string `json:"site"`

	// Timestamp is when the backend generated the strategy.
	Timestamp time.Time `json:"timestamp"`

	// Pillars are the thematic groupings, in recommended priority order.
	Pillars []Pillar `json:"pillars"`
}

// Pillar is a thematic grouping of keyword clusters used in content
// strategy views.
type Pillar struct {
	// Name is the pillar theme.
	Name string `json:"name"`

	// Description explains the pillar's intent.
	Description string `json:"description,omitempty"`

	// Clusters are the keyword clusters under this pillar.
	Clusters []KeywordCluster `json:"clusters"`
}

// KeywordCluster is a group of closely related keywords targeted by a
// single piece of content.
type KeywordCluster struct {
	// Topic is the cluster's target topic.
	Topic string `json:"topic"`

	// Keywords are the member keywords.
	Keywords []Keyword `json:"keywords"`

	// Intent is the dominant search intent
	// (e.g. "informational", "transactional").
	Intent string `json:"intent,omitempty"`
}
