package query

import (
	"sort"
	"strings"

	"github.com/klatt42/serpmaster/internal/model"
)

// FilterAll is the sentinel that disables an enum filter predicate.
// An empty string is equivalent.
const FilterAll = "ALL"

// IssueFilter selects a subset of issues. Zero-value fields disable their
// predicate.
type IssueFilter struct {
	// Severity filters by exact severity name (CRITICAL, WARNING, INFO).
	// Empty or "ALL" disables the predicate.
	Severity string

	// Category filters by exact category. Empty or "ALL" disables it.
	Category string

	// QuickWinsOnly keeps only issues flagged as quick wins.
	QuickWinsOnly bool

	// Search is a case-insensitive substring matched against the issue's
	// title, description, and category; a hit on any field keeps the issue.
	Search string
}

// IssueSortKey names the field issues are ordered by.
type IssueSortKey string

// Sort keys for issues.
const (
	IssueSortImpact   IssueSortKey = "impact"
	IssueSortPages    IssueSortKey = "pages"
	IssueSortSeverity IssueSortKey = "severity"
	IssueSortTitle    IssueSortKey = "title"
)

// enumMatches reports whether value passes an exact-match enum filter.
func enumMatches(filter, value string) bool {
	if filter == "" || strings.EqualFold(filter, FilterAll) {
		return true
	}
	return strings.EqualFold(filter, value)
}

// searchMatches reports whether the needle occurs in any of the fields,
// case-insensitively. An empty needle matches everything.
func searchMatches(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterIssues returns the issues matching the filter, preserving input
// order. The input slice is not modified.
func FilterIssues(issues []model.Issue, f IssueFilter) []model.Issue {
	result := make([]model.Issue, 0, len(issues))
	for _, issue := range issues {
		if !enumMatches(f.Severity, issue.Severity.String()) {
			continue
		}
		if !enumMatches(f.Category, issue.Category) {
			continue
		}
		if f.QuickWinsOnly && !issue.QuickWin {
			continue
		}
		if !searchMatches(f.Search, issue.Title, issue.Description, issue.Category) {
			continue
		}
		result = append(result, issue)
	}
	return result
}

// SortIssues returns a copy of issues ordered by the given key. Descending
// order reverses the comparator. Ties keep their relative input order
// because the underlying sort is stable.
func SortIssues(issues []model.Issue, key IssueSortKey, descending bool) []model.Issue {
	sorted := make([]model.Issue, len(issues))
	copy(sorted, issues)

	less := issueLess(key)
	if descending {
		asc := less
		less = func(a, b model.Issue) bool { return asc(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// issueLess returns the ascending comparator for a sort key.
// Unknown keys fall back to impact.
func issueLess(key IssueSortKey) func(a, b model.Issue) bool {
	switch key {
	case IssueSortPages:
		return func(a, b model.Issue) bool { return a.PagesAffected < b.PagesAffected }
	case IssueSortSeverity:
		return func(a, b model.Issue) bool { return a.Severity < b.Severity }
	case IssueSortTitle:
		return func(a, b model.Issue) bool { return a.Title < b.Title }
	default:
		return func(a, b model.Issue) bool { return a.Impact < b.Impact }
	}
}
