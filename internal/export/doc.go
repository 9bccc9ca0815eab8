// Package export turns reports into downloadable artifacts: it derives
// filesystem-safe filenames from URLs, names artifacts by convention
// (seo-audit-<site>-<date>.md, comparison-<name>-<date>.md), and writes
// them to disk with owner-only permissions.
package export
