package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MIME types for each artifact extension. The print view intentionally uses
// text/html so the browser renders it instead of downloading.
var mimeTypes = map[string]string{
	".md":   "text/markdown",
	".html": "text/html",
	".csv":  "text/csv",
	".json": "application/json",
}

// MIMEType returns the MIME type for an artifact extension, or
// application/octet-stream for unknown extensions.
func MIMEType(ext string) string {
	if m, ok := mimeTypes[ext]; ok {
		return m
	}
	return "application/octet-stream"
}

// AuditFilename returns the conventional artifact name for an audit report:
// seo-audit-<sanitized-url>-<ISO-date><ext>.
func AuditFilename(url string, date time.Time, ext string) string {
	return fmt.Sprintf("seo-audit-%s-%s%s", SanitizeURL(url), date.Format("2006-01-02"), ext)
}

// ComparisonFilename returns the conventional artifact name for a
// comparison report: comparison-<sanitized-name>-<ISO-date><ext>.
func ComparisonFilename(name string, date time.Time, ext string) string {
	return fmt.Sprintf("comparison-%s-%s%s", SanitizeURL(name), date.Format("2006-01-02"), ext)
}

// KeywordsFilename returns the conventional artifact name for a keyword
// export: keywords-<sanitized-query>-<ISO-date><ext>.
func KeywordsFilename(query string, date time.Time, ext string) string {
	return fmt.Sprintf("keywords-%s-%s%s", SanitizeURL(query), date.Format("2006-01-02"), ext)
}

// WriteFile writes an artifact to path, creating parent directories as
// needed. Reports may contain site internals, so files are written with
// owner-only permissions.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}
