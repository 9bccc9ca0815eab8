package report

import (
	"bytes"
	"strings"
	"testing"
)

// TestConvertMarkdown tests conversion of the emitted Markdown subset.
func TestConvertMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "headers",
			source: "# Title\n## Section\n### Sub",
			want:   []string{"<h1>Title</h1>", "<h2>Section</h2>", "<h3>Sub</h3>"},
		},
		{
			name:   "bold and italic",
			source: "**strong** and *soft* and _under_",
			want:   []string{"<strong>strong</strong>", "<em>soft</em>", "<em>under</em>"},
		},
		{
			name:   "inline code",
			source: "run `serpmaster audit`",
			want:   []string{"<code>serpmaster audit</code>"},
		},
		{
			name:   "link",
			source: "[docs](https://example.com)",
			want:   []string{`<a href="https://example.com">docs</a>`},
		},
		{
			name:   "horizontal rule",
			source: "above\n\n---\n\nbelow",
			want:   []string{"<hr>", "<p>above</p>", "<p>below</p>"},
		},
		{
			name:   "unordered list",
			source: "- one\n- two",
			want:   []string{"<ul>", "<li>one</li>", "<li>two</li>", "</ul>"},
		},
		{
			name:   "ordered list",
			source: "1. first\n2. second",
			want:   []string{"<ol>", "<li>first</li>", "<li>second</li>", "</ol>"},
		},
		{
			name:   "fenced code block",
			source: "```\nplain <text>\n```",
			want:   []string{"<pre><code>", "plain &lt;text&gt;", "</code></pre>"},
		},
		{
			name:   "pipe table",
			source: "| A | B |\n|---|---|\n| 1 | 2 |",
			want:   []string{"<table>", "<th>A</th>", "<th>B</th>", "<td>1</td>", "<td>2</td>", "</table>"},
		},
		{
			name:   "html escaping",
			source: "score < 50 & grade > C",
			want:   []string{"score &lt; 50 &amp; grade &gt; C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertMarkdown(tt.source, "Test")
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

// TestConvertMarkdownSelfContained tests that the document carries its own
// style and references no external resources.
func TestConvertMarkdownSelfContained(t *testing.T) {
	t.Parallel()

	got := ConvertMarkdown("# Report", "Report")

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Error("output is not a complete HTML document")
	}
	if !strings.Contains(got, "<style>") {
		t.Error("output has no inline stylesheet")
	}
	for _, forbidden := range []string{"<script", "<link", "src="} {
		if strings.Contains(got, forbidden) {
			t.Errorf("output references external resource via %q", forbidden)
		}
	}
}

// TestConvertMarkdownFullReport tests converting a rendered audit report
// end to end.
func TestConvertMarkdownFullReport(t *testing.T) {
	t.Parallel()

	source := RenderAudit(testAuditResult())
	got := ConvertMarkdown(source, "SEO Audit Report")

	for _, want := range []string{
		"<h1>SEO Audit Report</h1>",
		"<h2>Score Summary</h2>",
		"<table>",
		"<td><strong>Total</strong></td>",
		"55.0%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("converted report missing %q", want)
		}
	}
}

// TestHTMLWriter tests the Writer wrapper.
func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewHTMLWriter(&buf)

	n, err := w.WriteAudit(testAuditResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes written, buffer holds %d", n, buf.Len())
	}
	if !strings.HasSuffix(buf.String(), "</html>\n") {
		t.Error("document is not closed")
	}
}
