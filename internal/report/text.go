package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/klatt42/serpmaster/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// verbose enables per-issue detail in the output.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithVerbose enables verbose output with per-issue details.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteAudit outputs the audit result in human-readable format.
func (w *TextWriter) WriteAudit(result *model.AuditResult) (int, error) {
	var sb strings.Builder

	writeRule(&sb)
	fmt.Fprintf(&sb, "SEO Audit: %s\n", result.URL)
	fmt.Fprintf(&sb, "Date:      %s\n", result.Timestamp.Format("2006-01-02 15:04:05 MST"))
	if result.TaskID != "" {
		fmt.Fprintf(&sb, "Task:      %s\n", result.TaskID)
	}
	writeRule(&sb)

	fmt.Fprintf(&sb, "\nScore: %.1f / %.1f (%.1f%%)", result.Score.TotalScore, result.Score.MaxScore, result.Score.Percentage)
	if result.Score.Grade != "" {
		fmt.Fprintf(&sb, "  Grade: %s", result.Score.Grade)
	}
	sb.WriteString("\n")

	for _, dim := range result.Score.Dimensions() {
		cs := result.Score.ComponentScores[dim]
		fmt.Fprintf(&sb, "  %-12s %.1f / %.1f (%.1f%%)\n", dimensionLabel(dim), cs.Score, cs.Max, cs.Percentage)
	}

	fmt.Fprintf(&sb, "\nIssues: %d critical, %d warnings, %d info, %d quick wins\n",
		len(result.Issues.Critical),
		len(result.Issues.Warnings),
		len(result.Issues.Info),
		len(result.Issues.QuickWins),
	)

	w.writeIssueList(&sb, "CRITICAL", result.Issues.Critical)
	w.writeIssueList(&sb, "QUICK WINS", result.Issues.QuickWins)
	if w.verbose {
		w.writeIssueList(&sb, "WARNINGS", result.Issues.Warnings)
		w.writeIssueList(&sb, "INFO", result.Issues.Info)
	}

	writeRule(&sb)
	return io.WriteString(w.output, sb.String())
}

// WriteComparison outputs the comparison result in human-readable format.
func (w *TextWriter) WriteComparison(result *model.ComparisonResult) (int, error) {
	var sb strings.Builder

	writeRule(&sb)
	fmt.Fprintf(&sb, "Comparison: %s vs %s\n", result.UserSite, strings.Join(result.Competitors, ", "))
	fmt.Fprintf(&sb, "Date:       %s\n", result.Timestamp.Format("2006-01-02 15:04:05 MST"))
	writeRule(&sb)

	sb.WriteString("\nRankings:\n")
	for _, r := range result.Rankings {
		marker := "  "
		if r.Site == result.UserSite {
			marker = "* "
		}
		fmt.Fprintf(&sb, "%s%d. %-40s %.1f (%.1f%%)\n", marker, r.Rank, r.Site, r.TotalScore, r.Percentage)
	}

	if len(result.Gaps) > 0 {
		fmt.Fprintf(&sb, "\nKeyword gaps: %d\n", len(result.Gaps))
		for _, gap := range result.Gaps {
			fmt.Fprintf(&sb, "  %-32s vol %-7d diff %-4d $%.2f\n", gap.Keyword, gap.Volume, gap.Difficulty, gap.CPC)
		}
	}

	w.writeIssueList(&sb, "QUICK WINS", result.QuickWins)

	if len(result.CompetitiveStrategy) > 0 {
		sb.WriteString("\nStrategy:\n")
		for _, action := range result.CompetitiveStrategy {
			fmt.Fprintf(&sb, "  %d. %s\n", action.Priority, action.Action)
			if w.verbose && action.Rationale != "" {
				fmt.Fprintf(&sb, "     %s\n", action.Rationale)
			}
		}
	}

	writeRule(&sb)
	return io.WriteString(w.output, sb.String())
}

// writeIssueList writes a labeled issue list, skipping empty buckets.
func (w *TextWriter) writeIssueList(sb *strings.Builder, label string, issues []model.Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n%s:\n", label)
	for _, issue := range issues {
		fmt.Fprintf(sb, "  [impact %2d] %s (%d pages, %s effort)\n",
			issue.Impact, issue.Title, issue.PagesAffected, issue.Effort)
		if w.verbose && issue.Recommendation != "" {
			fmt.Fprintf(sb, "              fix: %s\n", issue.Recommendation)
		}
	}
}

// writeRule writes a horizontal separator line.
func writeRule(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
