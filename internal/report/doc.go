// Package report renders audit and comparison results into shareable
// artifacts: Markdown, a self-contained HTML print view, CSV, JSON, and a
// human-readable terminal format.
//
// Rendering is deterministic: the same result always produces the same
// bytes. Markdown is the primary format; the HTML writer converts the
// rendered Markdown rather than rendering the model a second time, so the
// two formats can never drift apart.
package report
