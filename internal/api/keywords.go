package api

import (
	"context"
	"fmt"

	"github.com/klatt42/serpmaster/internal/model"
)

// ResearchKeywords runs a keyword research query and returns the matching
// keyword rows.
func (c *Client) ResearchKeywords(ctx context.Context, query string, limit int) ([]model.Keyword, error) {
	req := struct {
		Query string `json:"query"`
		Limit int    `json:"limit,omitempty"`
	}{Query: query, Limit: limit}

	var resp struct {
		Keywords []model.Keyword `json:"keywords"`
	}
	if err := c.postJSON(ctx, "/api/keywords/research", req, &resp); err != nil {
		return nil, err
	}
	if resp.Keywords == nil {
		return nil, fmt.Errorf("%w: keyword research returned no keywords field", ErrUnexpectedShape)
	}
	return resp.Keywords, nil
}

// AnalyzeNiche runs a niche discovery analysis for a seed keyword.
func (c *Client) AnalyzeNiche(ctx context.Context, seed string) (*model.NicheAnalysis, error) {
	req := struct {
		Seed string `json:"seed"`
	}{Seed: seed}

	var analysis model.NicheAnalysis
	if err := c.postJSON(ctx, "/api/niche/analyze", req, &analysis); err != nil {
		return nil, err
	}
	if analysis.Seed == "" {
		return nil, fmt.Errorf("%w: niche analysis carried no seed", ErrUnexpectedShape)
	}
	return &analysis, nil
}

// GenerateStrategy requests a content strategy for a site.
func (c *Client) GenerateStrategy(ctx context.Context, site string) (*model.ContentStrategy, error) {
	req := struct {
		Site string `json:"site"`
	}{Site: site}

	var strategy model.ContentStrategy
	if err := c.postJSON(ctx, "/api/strategy/generate", req, &strategy); err != nil {
		return nil, err
	}
	if strategy.Site == "" {
		return nil, fmt.Errorf("%w: strategy carried no site", ErrUnexpectedShape)
	}
	return &strategy, nil
}
