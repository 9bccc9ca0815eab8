package report

import (
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/klatt42/serpmaster/internal/model"
)

// htmlStyle is the inline stylesheet embedded in every HTML report.
// Reports must render in an offline print dialog, so no external resources
// are referenced.
const htmlStyle = `body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1f2328; line-height: 1.5; }
h1 { border-bottom: 2px solid #d1d9e0; padding-bottom: .3em; }
h2 { border-bottom: 1px solid #d1d9e0; padding-bottom: .3em; margin-top: 1.6em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
th, td { border: 1px solid #d1d9e0; padding: 6px 13px; text-align: left; }
th { background: #f6f8fa; }
code { background: #f6f8fa; padding: .2em .4em; border-radius: 6px; font-size: 85%; }
pre { background: #f6f8fa; padding: 16px; border-radius: 6px; overflow-x: auto; }
pre code { background: none; padding: 0; }
hr { border: none; border-top: 1px solid #d1d9e0; margin: 2em 0; }
a { color: #0969da; }
@media print { body { margin: 0; max-width: none; } }`

// Inline Markdown patterns, applied per line after HTML escaping.
// Inline code is replaced first so its content is not reinterpreted as
// emphasis.
var (
	inlineCodePattern  = regexp.MustCompile("`([^`]+)`")
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicStarPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderPattern = regexp.MustCompile(`(^|[^\w])_([^_]+)_($|[^\w])`)
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	headerPattern      = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	hrPattern          = regexp.MustCompile(`^-{3,}$`)
)

// HTMLWriter outputs reports as self-contained HTML documents suitable for
// a browser print dialog.
//
// Design decision: HTML output is derived from the rendered Markdown rather
// than from the model directly, so the Markdown report stays the single
// source of truth and the two formats cannot disagree on content.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteAudit outputs the audit result as an HTML document.
func (w *HTMLWriter) WriteAudit(result *model.AuditResult) (int, error) {
	return io.WriteString(w.output, ConvertMarkdown(RenderAudit(result), "SEO Audit Report"))
}

// WriteComparison outputs the comparison result as an HTML document.
func (w *HTMLWriter) WriteComparison(result *model.ComparisonResult) (int, error) {
	return io.WriteString(w.output, ConvertMarkdown(RenderComparison(result), "Competitor Comparison Report"))
}

// ConvertMarkdown converts a Markdown string into a complete HTML document
// with inline CSS. It is a pure function.
//
// The converter is line-oriented, single-pass, and regex-based. It supports
// exactly the subset the Markdown writers emit: headers 1-3, bold, italic,
// fenced code blocks, inline code, links, horizontal rules, unordered and
// ordered lists, and pipe tables. Nested structures are not supported and
// may render incorrectly; that is accepted behavior, not a bug.
func ConvertMarkdown(source, title string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("<style>\n" + htmlStyle + "\n</style>\n</head>\n<body>\n")

	c := &converter{out: &b}
	for _, line := range strings.Split(source, "\n") {
		c.line(line)
	}
	c.closeBlocks()

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// converter holds the block state carried between lines.
type converter struct {
	out *strings.Builder

	inCode  bool
	inUL    bool
	inOL    bool
	inTable bool

	// tableSeparatorSeen flips after the |---|---| row so table rows
	// before it render as header cells.
	tableSeparatorSeen bool
}

// line processes a single source line.
func (c *converter) line(line string) {
	trimmed := strings.TrimSpace(line)

	// Fenced code blocks swallow every line until the closing fence.
	if strings.HasPrefix(trimmed, "```") {
		if c.inCode {
			c.out.WriteString("</code></pre>\n")
			c.inCode = false
		} else {
			c.closeBlocks()
			c.out.WriteString("<pre><code>")
			c.inCode = true
		}
		return
	}
	if c.inCode {
		c.out.WriteString(html.EscapeString(line) + "\n")
		return
	}

	// Pipe tables.
	if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
		c.tableRow(trimmed)
		return
	}
	if c.inTable {
		c.out.WriteString("</table>\n")
		c.inTable = false
	}

	switch {
	case trimmed == "":
		c.closeBlocks()

	case hrPattern.MatchString(trimmed):
		c.closeBlocks()
		c.out.WriteString("<hr>\n")

	case headerPattern.MatchString(trimmed):
		c.closeBlocks()
		m := headerPattern.FindStringSubmatch(trimmed)
		level := strconv.Itoa(len(m[1]))
		c.out.WriteString("<h" + level + ">" + inline(m[2]) + "</h" + level + ">\n")

	case strings.HasPrefix(trimmed, "- "):
		if !c.inUL {
			c.closeBlocks()
			c.out.WriteString("<ul>\n")
			c.inUL = true
		}
		c.out.WriteString("<li>" + inline(trimmed[2:]) + "</li>\n")

	case orderedItemPattern.MatchString(trimmed):
		if !c.inOL {
			c.closeBlocks()
			c.out.WriteString("<ol>\n")
			c.inOL = true
		}
		m := orderedItemPattern.FindStringSubmatch(trimmed)
		c.out.WriteString("<li>" + inline(m[1]) + "</li>\n")

	// Raw HTML blocks (details/summary from the Markdown writer) pass
	// through untouched, as Markdown itself treats inline HTML.
	case strings.HasPrefix(trimmed, "<"):
		c.closeBlocks()
		c.out.WriteString(trimmed + "\n")

	default:
		c.closeBlocks()
		c.out.WriteString("<p>" + inline(trimmed) + "</p>\n")
	}
}

// tableRow converts one pipe-table row.
func (c *converter) tableRow(trimmed string) {
	if !c.inTable {
		c.closeBlocks()
		c.out.WriteString("<table>\n")
		c.inTable = true
		c.tableSeparatorSeen = false
	}

	cells := strings.Split(strings.Trim(trimmed, "|"), "|")

	// The |---|---| separator row carries no content.
	if isTableSeparator(cells) {
		c.tableSeparatorSeen = true
		return
	}

	tag := "th"
	if c.tableSeparatorSeen {
		tag = "td"
	}

	c.out.WriteString("<tr>")
	for _, cell := range cells {
		c.out.WriteString("<" + tag + ">" + inline(strings.TrimSpace(cell)) + "</" + tag + ">")
	}
	c.out.WriteString("</tr>\n")
}

// closeBlocks closes any open list or table.
func (c *converter) closeBlocks() {
	if c.inUL {
		c.out.WriteString("</ul>\n")
		c.inUL = false
	}
	if c.inOL {
		c.out.WriteString("</ol>\n")
		c.inOL = false
	}
	if c.inTable {
		c.out.WriteString("</table>\n")
		c.inTable = false
	}
}

// isTableSeparator reports whether all cells consist of dashes and colons.
func isTableSeparator(cells []string) bool {
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" || strings.Trim(cell, "-:") != "" {
			return false
		}
	}
	return true
}

// inline escapes a line and applies the inline Markdown patterns.
func inline(s string) string {
	s = html.EscapeString(s)
	s = inlineCodePattern.ReplaceAllString(s, "<code>$1</code>")
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicStarPattern.ReplaceAllString(s, "<em>$1</em>")
	s = italicUnderPattern.ReplaceAllString(s, "$1<em>$2</em>$3")
	s = linkPattern.ReplaceAllString(s, `<a href="$2">$1</a>`)
	return s
}
