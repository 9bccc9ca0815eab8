package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klatt42/serpmaster/internal/model"
)

// Sentinel lines rendered for empty issue buckets. An empty bucket always
// renders its sentinel rather than an empty section, so a report is never
// ambiguous about whether data is missing or absent.
const (
	noCriticalIssues = "_No critical issues found._"
	noWarningIssues  = "_No warning issues found._"
	noInfoIssues     = "_No info issues found._"
	noQuickWinIssues = "_No quick win issues found._"
)

// titleCaser turns multi-word score dimensions into section labels.
var titleCaser = cases.Title(language.English)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for download, sharing, and feeding to AI agents.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteAudit outputs the audit result in Markdown format.
func (w *MarkdownWriter) WriteAudit(result *model.AuditResult) (int, error) {
	return io.WriteString(w.output, RenderAudit(result))
}

// WriteComparison outputs the comparison result in Markdown format.
func (w *MarkdownWriter) WriteComparison(result *model.ComparisonResult) (int, error) {
	return io.WriteString(w.output, RenderComparison(result))
}

// RenderAudit serializes an audit result into a Markdown string.
// It is a pure function: same result, same bytes. Sections appear in fixed
// order: header, score summary, issues (critical, warnings, info, quick
// wins), AI agent instructions, footer.
func RenderAudit(result *model.AuditResult) string {
	md := markdown.NewMarkdown(io.Discard)

	writeAuditHeader(md, result)
	writeScoreSummary(md, result.Score)
	writeIssueSections(md, result.Issues)
	writeAgentInstructions(md)
	writeFooter(md)

	return md.String()
}

// writeAuditHeader writes the report header with audit information.
func writeAuditHeader(md *markdown.Markdown, result *model.AuditResult) {
	md.H1("SEO Audit Report")
	md.PlainText("")

	rows := [][]string{
		{"Site", "`" + result.URL + "`"},
		{"Audit Date", result.Timestamp.Format("2006-01-02 15:04:05 MST")},
	}
	if result.TaskID != "" {
		rows = append(rows, []string{"Task ID", "`" + result.TaskID + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeScoreSummary writes the score summary table and grade.
func writeScoreSummary(md *markdown.Markdown, score model.ScoreBreakdown) {
	md.H2("Score Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(score.ComponentScores)+1)
	for _, dim := range score.Dimensions() {
		cs := score.ComponentScores[dim]
		rows = append(rows, []string{
			dimensionLabel(dim),
			formatScore(cs.Score, cs.Max),
			formatPercent(cs.Percentage),
		})
	}
	rows = append(rows, []string{
		"**Total**",
		"**" + formatScore(score.TotalScore, score.MaxScore) + "**",
		"**" + formatPercent(score.Percentage) + "**",
	})

	md.Table(markdown.TableSet{
		Header: []string{"Dimension", "Score", "Percentage"},
		Rows:   rows,
	})
	md.PlainText("")

	if score.Grade != "" {
		md.PlainTextf("**Grade:** %s", score.Grade)
		md.PlainText("")
	}
}

// writeIssueSections writes the four issue sections in fixed order.
// A quick-win issue appears both in its severity section and in the Quick
// Wins section; the duplication is part of the report contract.
func writeIssueSections(md *markdown.Markdown, issues model.IssueSet) {
	md.H2("Issues")
	md.PlainText("")

	writeSeveritySummary(md, issues)
	writeAlert(md, issues)

	writeIssueSection(md, "🔴 Critical Issues", issues.Critical, noCriticalIssues)
	writeIssueSection(md, "🟠 Warnings", issues.Warnings, noWarningIssues)
	writeIssueSection(md, "🔵 Info", issues.Info, noInfoIssues)
	writeIssueSection(md, "⚡ Quick Wins", issues.QuickWins, noQuickWinIssues)
}

// writeSeveritySummary writes a mermaid pie chart of the severity
// distribution when there are issues to chart.
func writeSeveritySummary(md *markdown.Markdown, issues model.IssueSet) {
	if issues.Total() == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issue Severity Distribution"),
		piechart.WithShowData(true),
	)

	if n := len(issues.Critical); n > 0 {
		chart.LabelAndIntValue("Critical", uint64(n))
	}
	if n := len(issues.Warnings); n > 0 {
		chart.LabelAndIntValue("Warning", uint64(n))
	}
	if n := len(issues.Info); n > 0 {
		chart.LabelAndIntValue("Info", uint64(n))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on issue counts.
func writeAlert(md *markdown.Markdown, issues model.IssueSet) {
	switch {
	case len(issues.Critical) > 0:
		md.Cautionf(
			"Critical SEO issues detected! %d critical issue(s) require immediate attention.",
			len(issues.Critical),
		)
	case len(issues.Warnings) > 0:
		md.Warningf(
			"%d warning(s) found. Addressing them should improve the site's score.",
			len(issues.Warnings),
		)
	case issues.Total() > 0:
		md.Note("Only informational findings detected.")
	default:
		md.Tip("No issues detected.")
	}
	md.PlainText("")
}

// writeIssueSection writes one issue bucket as a table plus detail blocks.
// Empty buckets render the sentinel line instead.
func writeIssueSection(md *markdown.Markdown, header string, issues []model.Issue, sentinel string) {
	md.PlainText("### " + header)
	md.PlainText("")

	if len(issues) == 0 {
		md.PlainText(sentinel)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(issues))
	for i, issue := range issues {
		category := issue.Category
		if category == "" {
			category = "-"
		}

		rows[i] = []string{
			issue.Title,
			strconv.Itoa(issue.PagesAffected),
			strconv.Itoa(issue.Impact),
			issue.Effort.String(),
			category,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Issue", "Pages", "Impact", "Effort", "Category"},
		Rows:   rows,
	})
	md.PlainText("")

	// Detail blocks for issues that carry more than the table shows.
	// Issues without optional fields simply get no block.
	for _, issue := range issues {
		if body := issueDetailBody(issue); body != "" {
			md.Details(issue.Title, body)
		}
	}
	md.PlainText("")
}

// issueDetailBody assembles the expandable detail text for an issue.
// Returns "" when the issue carries no optional fields.
func issueDetailBody(issue model.Issue) string {
	var parts []string
	if issue.Description != "" {
		parts = append(parts, issue.Description)
	}
	if issue.Recommendation != "" {
		parts = append(parts, "**Recommendation:** "+issue.Recommendation)
	}
	if issue.Details != "" {
		parts = append(parts, issue.Details)
	}
	return strings.Join(parts, "\n\n")
}

// writeAgentInstructions writes the trailing block that tells an AI agent
// how to process the report.
func writeAgentInstructions(md *markdown.Markdown) {
	md.H2("AI Agent Instructions")
	md.PlainText("")
	md.PlainText("Process the issues in this report in the following order:")
	md.PlainText("")
	md.OrderedList(
		"Fix all Critical issues first; they block indexing or ranking.",
		"Apply Quick Wins next for the best impact-to-effort ratio.",
		"Work through Warnings in descending impact order.",
		"Review Info items last; fix only where effort is low.",
	)
	md.PlainText("")
}

// RenderComparison serializes a comparison result into a Markdown string.
// Section order: header, rankings, keyword gaps, quick wins, competitive
// strategy, AI agent instructions, footer.
func RenderComparison(result *model.ComparisonResult) string {
	md := markdown.NewMarkdown(io.Discard)

	writeComparisonHeader(md, result)
	writeRankings(md, result)
	writeKeywordGaps(md, result.Gaps)
	writeComparisonQuickWins(md, result.QuickWins)
	writeStrategy(md, result.CompetitiveStrategy)
	writeAgentInstructions(md)
	writeFooter(md)

	return md.String()
}

// writeComparisonHeader writes the comparison report header.
func writeComparisonHeader(md *markdown.Markdown, result *model.ComparisonResult) {
	md.H1("Competitor Comparison Report")
	md.PlainText("")

	rows := [][]string{
		{"Your Site", "`" + result.UserSite + "`"},
		{"Competitors", strings.Join(result.Competitors, ", ")},
		{"Comparison Date", result.Timestamp.Format("2006-01-02 15:04:05 MST")},
	}
	if result.ComparisonID != "" {
		rows = append(rows, []string{"Comparison ID", "`" + result.ComparisonID + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRankings writes the site ranking table. The user's own site is
// bolded so it stands out among competitors.
func writeRankings(md *markdown.Markdown, result *model.ComparisonResult) {
	md.H2("Rankings")
	md.PlainText("")

	if len(result.Rankings) == 0 {
		md.PlainText("_No rankings available._")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(result.Rankings))
	for i, r := range result.Rankings {
		site := r.Site
		if site == result.UserSite {
			site = "**" + site + "**"
		}
		grade := r.Grade
		if grade == "" {
			grade = "-"
		}

		rows[i] = []string{
			strconv.Itoa(r.Rank),
			site,
			strconv.FormatFloat(r.TotalScore, 'f', 1, 64),
			formatPercent(r.Percentage),
			grade,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Site", "Score", "Percentage", "Grade"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeKeywordGaps writes the keyword gap table.
func writeKeywordGaps(md *markdown.Markdown, gaps []model.KeywordGap) {
	md.H2("Keyword Gaps")
	md.PlainText("")

	if len(gaps) == 0 {
		md.PlainText("_No keyword gaps found._")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(gaps))
	for i, gap := range gaps {
		coveredBy := strings.Join(gap.CoveredBy, ", ")
		if coveredBy == "" {
			coveredBy = "-"
		}

		rows[i] = []string{
			gap.Keyword,
			strconv.Itoa(gap.Volume),
			strconv.Itoa(gap.Difficulty),
			formatCPC(gap.CPC),
			coveredBy,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Keyword", "Volume", "Difficulty", "CPC", "Covered By"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeComparisonQuickWins writes the quick-win issues from a comparison.
func writeComparisonQuickWins(md *markdown.Markdown, quickWins []model.Issue) {
	writeIssueSection(md, "⚡ Quick Wins", quickWins, noQuickWinIssues)
}

// writeStrategy writes the competitive strategy as an ordered list.
func writeStrategy(md *markdown.Markdown, actions []model.StrategyAction) {
	md.H2("Competitive Strategy")
	md.PlainText("")

	if len(actions) == 0 {
		md.PlainText("_No strategy actions generated._")
		md.PlainText("")
		return
	}

	items := make([]string, len(actions))
	for i, action := range actions {
		item := action.Action
		if action.Rationale != "" {
			item += ": " + action.Rationale
		}
		items[i] = item
	}

	md.OrderedList(items...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [SERP-Master](https://github.com/klatt42/serpmaster)*")
}

// formatPercent renders a percentage with exactly one decimal place.
func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// formatCPC renders a cost-per-click with exactly two decimal places.
func formatCPC(cpc float64) string {
	return fmt.Sprintf("$%.2f", cpc)
}

// formatScore renders an achieved/maximum score pair.
func formatScore(score, maxScore float64) string {
	return fmt.Sprintf("%s / %s",
		strconv.FormatFloat(score, 'f', 1, 64),
		strconv.FormatFloat(maxScore, 'f', 1, 64),
	)
}

// dimensionLabel turns a backend score dimension into a section label.
// Short dimensions are initialisms (seo, aeo, geo) and render upper-case;
// longer ones get title casing.
func dimensionLabel(dim string) string {
	if len(dim) <= 3 {
		return strings.ToUpper(dim)
	}
	return titleCaser.String(strings.ReplaceAll(dim, "_", " "))
}
