package query

import (
	"testing"

	"github.com/klatt42/serpmaster/internal/model"
)

// testIssues returns a fixed issue list for filter tests.
func testIssues() []model.Issue {
	return []model.Issue{
		{
			ID:            "noindex",
			Severity:      model.SeverityCritical,
			Title:         "Site is noindexed",
			Description:   "The robots meta tag blocks indexing",
			Category:      "technical",
			Impact:        10,
			PagesAffected: 120,
			QuickWin:      true,
		},
		{
			ID:            "meta-desc",
			Severity:      model.SeverityWarning,
			Title:         "Missing meta description",
			Description:   "Pages without a meta description",
			Category:      "content",
			Impact:        6,
			PagesAffected: 12,
		},
		{
			ID:            "alt-text",
			Severity:      model.SeverityInfo,
			Title:         "Images missing alt text",
			Description:   "Decorative images without alt attributes",
			Category:      "content",
			Impact:        3,
			PagesAffected: 45,
			QuickWin:      true,
		},
	}
}

// TestFilterIssues tests the filter predicates.
func TestFilterIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filter  IssueFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns everything",
			filter:  IssueFilter{},
			wantIDs: []string{"noindex", "meta-desc", "alt-text"},
		},
		{
			name:    "ALL sentinel disables severity predicate",
			filter:  IssueFilter{Severity: "ALL"},
			wantIDs: []string{"noindex", "meta-desc", "alt-text"},
		},
		{
			name:    "severity exact match",
			filter:  IssueFilter{Severity: "WARNING"},
			wantIDs: []string{"meta-desc"},
		},
		{
			name:    "severity match is case-insensitive",
			filter:  IssueFilter{Severity: "critical"},
			wantIDs: []string{"noindex"},
		},
		{
			name:    "category exact match",
			filter:  IssueFilter{Category: "content"},
			wantIDs: []string{"meta-desc", "alt-text"},
		},
		{
			name:    "quick wins only",
			filter:  IssueFilter{QuickWinsOnly: true},
			wantIDs: []string{"noindex", "alt-text"},
		},
		{
			name:    "search matches title case-insensitively",
			filter:  IssueFilter{Search: "NOINDEXED"},
			wantIDs: []string{"noindex"},
		},
		{
			name:    "search matches description",
			filter:  IssueFilter{Search: "robots meta"},
			wantIDs: []string{"noindex"},
		},
		{
			name:    "search fields are OR'd",
			filter:  IssueFilter{Search: "missing"},
			wantIDs: []string{"meta-desc", "alt-text"},
		},
		{
			name:    "predicates combine with AND",
			filter:  IssueFilter{Category: "content", QuickWinsOnly: true},
			wantIDs: []string{"alt-text"},
		},
		{
			name:    "no match yields empty result",
			filter:  IssueFilter{Search: "no such issue"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FilterIssues(testIssues(), tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterIssues() returned %d issues, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("FilterIssues()[%d].ID = %q, want %q", i, got[i].ID, want)
				}
			}
		})
	}
}

// TestFilterIssuesDoesNotMutateInput tests that the source slice survives.
func TestFilterIssuesDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := testIssues()
	_ = FilterIssues(input, IssueFilter{Severity: "CRITICAL"})

	if len(input) != 3 {
		t.Errorf("input length changed to %d, want 3", len(input))
	}
	if input[0].ID != "noindex" || input[1].ID != "meta-desc" {
		t.Error("input order changed by filtering")
	}
}

// TestSortIssues tests ordering by each key.
func TestSortIssues(t *testing.T) {
	t.Parallel()

	t.Run("sort by impact ascending", func(t *testing.T) {
		t.Parallel()

		got := SortIssues(testIssues(), IssueSortImpact, false)
		wantOrder := []string{"alt-text", "meta-desc", "noindex"}
		for i, want := range wantOrder {
			if got[i].ID != want {
				t.Errorf("sorted[%d].ID = %q, want %q", i, got[i].ID, want)
			}
		}
	})

	t.Run("reversed comparator yields exact reverse order", func(t *testing.T) {
		t.Parallel()

		// Keys are duplicate-free, so descending must be the exact
		// reverse of ascending.
		asc := SortIssues(testIssues(), IssueSortPages, false)
		desc := SortIssues(testIssues(), IssueSortPages, true)

		if len(asc) != len(desc) {
			t.Fatalf("length mismatch: %d vs %d", len(asc), len(desc))
		}
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Errorf("desc[%d].ID = %q, want %q", len(desc)-1-i, desc[len(desc)-1-i].ID, asc[i].ID)
			}
		}
	})

	t.Run("stable sort preserves input order on ties", func(t *testing.T) {
		t.Parallel()

		issues := []model.Issue{
			{ID: "first", Impact: 5},
			{ID: "second", Impact: 5},
			{ID: "third", Impact: 5},
		}
		got := SortIssues(issues, IssueSortImpact, false)
		wantOrder := []string{"first", "second", "third"}
		for i, want := range wantOrder {
			if got[i].ID != want {
				t.Errorf("sorted[%d].ID = %q, want %q (ties must keep input order)", i, got[i].ID, want)
			}
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		t.Parallel()

		input := testIssues()
		_ = SortIssues(input, IssueSortTitle, false)
		if input[0].ID != "noindex" {
			t.Error("SortIssues mutated its input")
		}
	})
}
