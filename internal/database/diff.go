package database

import "github.com/klatt42/serpmaster/internal/model"

// AuditDiff describes how a site changed between two stored audits.
type AuditDiff struct {
	// Site is the audited site.
	Site string

	// Before and After are the two compared audits, oldest first.
	Before *model.AuditResult
	After  *model.AuditResult

	// ScoreDelta is After's total score minus Before's.
	ScoreDelta float64

	// PercentageDelta is After's percentage minus Before's.
	PercentageDelta float64

	// Resolved lists issues present in Before but absent from After.
	Resolved []model.Issue

	// Introduced lists issues present in After but absent from Before.
	Introduced []model.Issue
}

// Improved reports whether the site's score went up.
func (d AuditDiff) Improved() bool {
	return d.ScoreDelta > 0
}

// DiffAudits compares two audits of the same site, oldest first.
// Issues are matched by ID; an issue whose ID appears in both audits is
// considered unchanged even if its page counts differ.
func DiffAudits(before, after *model.AuditResult) AuditDiff {
	beforeIDs := issueIDSet(before.Issues)
	afterIDs := issueIDSet(after.Issues)

	var resolved, introduced []model.Issue
	for _, issue := range before.Issues.All() {
		if _, ok := afterIDs[issue.ID]; !ok {
			resolved = append(resolved, issue)
		}
	}
	for _, issue := range after.Issues.All() {
		if _, ok := beforeIDs[issue.ID]; !ok {
			introduced = append(introduced, issue)
		}
	}

	return AuditDiff{
		Site:            after.URL,
		Before:          before,
		After:           after,
		ScoreDelta:      after.Score.TotalScore - before.Score.TotalScore,
		PercentageDelta: after.Score.Percentage - before.Score.Percentage,
		Resolved:        resolved,
		Introduced:      introduced,
	}
}

// issueIDSet collects the IDs of all issues in the severity buckets.
func issueIDSet(issues model.IssueSet) map[string]struct{} {
	ids := make(map[string]struct{}, issues.Total())
	for _, issue := range issues.All() {
		ids[issue.ID] = struct{}{}
	}
	return ids
}
