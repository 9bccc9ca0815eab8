package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klatt42/serpmaster/internal/model"
)

// keywordCSVHeader is the fixed header row for keyword exports. Consumers
// parse it positionally, so the order never changes.
var keywordCSVHeader = []string{"Keyword", "Score", "Volume", "Difficulty", "CPC", "Level"}

// issueCSVHeader is the header row for issue exports: a full field dump.
var issueCSVHeader = []string{
	"ID", "Severity", "Title", "Description", "PagesAffected",
	"Impact", "Effort", "Category", "QuickWin", "Recommendation",
}

// CSVWriter outputs reports in CSV format for spreadsheet analysis.
// Audit exports dump every issue field; comparison exports dump the
// keyword gap table.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteAudit outputs the audit's issues as CSV, one row per issue in
// bucket order (critical, warnings, info). Quick wins are not repeated;
// the QuickWin column carries the flag instead.
func (w *CSVWriter) WriteAudit(result *model.AuditResult) (int, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(issueCSVHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	for _, issue := range result.Issues.All() {
		row := []string{
			issue.ID,
			issue.Severity.String(),
			issue.Title,
			issue.Description,
			strconv.Itoa(issue.PagesAffected),
			strconv.Itoa(issue.Impact),
			issue.Effort.String(),
			issue.Category,
			strconv.FormatBool(issue.QuickWin),
			issue.Recommendation,
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	return w.output.Write(buf.Bytes())
}

// WriteComparison outputs the comparison's keyword gaps as CSV.
func (w *CSVWriter) WriteComparison(result *model.ComparisonResult) (int, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"Keyword", "Volume", "Difficulty", "CPC", "CoveredBy"}); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	for _, gap := range result.Gaps {
		row := []string{
			gap.Keyword,
			strconv.Itoa(gap.Volume),
			strconv.Itoa(gap.Difficulty),
			fmt.Sprintf("%.2f", gap.CPC),
			strings.Join(gap.CoveredBy, "; "),
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	return w.output.Write(buf.Bytes())
}

// WriteKeywords outputs a keyword list as CSV with the fixed export header
// Keyword,Score,Volume,Difficulty,CPC,Level. Used by the keyword research
// and niche analysis commands.
func WriteKeywords(output io.Writer, keywords []model.Keyword) error {
	cw := csv.NewWriter(output)

	if err := cw.Write(keywordCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, kw := range keywords {
		row := []string{
			kw.Keyword,
			strconv.FormatFloat(kw.Score, 'f', 1, 64),
			strconv.Itoa(kw.Volume),
			strconv.Itoa(kw.Difficulty),
			fmt.Sprintf("%.2f", kw.CPC),
			kw.Level,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
