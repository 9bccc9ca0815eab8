package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/klatt42/serpmaster/internal/model"
)

// TestWriteKeywords tests the keyword CSV export contract.
func TestWriteKeywords(t *testing.T) {
	t.Parallel()

	keywords := []model.Keyword{
		{Keyword: "coffee grinder", Score: 82.5, Volume: 9900, Difficulty: 45, CPC: 1.2, Level: "moderate"},
		{Keyword: "burr vs blade, compared", Score: 61, Volume: 1300, Difficulty: 22, CPC: 0.85, Level: "easy"},
	}

	var buf bytes.Buffer
	if err := WriteKeywords(&buf, keywords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Keyword,Score,Volume,Difficulty,CPC,Level" {
		t.Errorf("header = %q, want exact keyword export header", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}

	// CPC always carries two decimals.
	if !strings.Contains(lines[1], "1.20") {
		t.Errorf("row %q does not render CPC with two decimals", lines[1])
	}

	// A keyword containing a comma must survive a round trip.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if got := records[2][0]; got != "burr vs blade, compared" {
		t.Errorf("comma-bearing keyword round-tripped to %q", got)
	}
}

// TestCSVWriterAudit tests the full issue field dump.
func TestCSVWriterAudit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	if _, err := w.WriteAudit(testAuditResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header plus one row per issue in the three severity buckets.
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[0][0] != "ID" || records[0][1] != "Severity" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][1] != "CRITICAL" {
		t.Errorf("first row severity = %q, want CRITICAL", records[1][1])
	}
	if records[1][8] != "true" {
		t.Errorf("quick win flag = %q, want true", records[1][8])
	}
}

// TestCSVWriterComparison tests the keyword gap dump.
func TestCSVWriterComparison(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	if _, err := w.WriteComparison(testComparisonResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header plus 1 gap", len(records))
	}
	if records[1][3] != "2.50" {
		t.Errorf("CPC = %q, want two decimals", records[1][3])
	}
}
