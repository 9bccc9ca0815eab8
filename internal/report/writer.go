package report

import (
	"io"

	"github.com/klatt42/serpmaster/internal/model"
)

// Writer defines the interface for report output.
// Implementations write results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteAudit outputs an audit result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	WriteAudit(result *model.AuditResult) (int, error)

	// WriteComparison outputs a comparison result to the configured
	// destination.
	WriteComparison(result *model.ComparisonResult) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write results, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteAudit outputs the audit result to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteAudit(result *model.AuditResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteAudit(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteComparison outputs the comparison result to all configured Writers.
func (m *MultiWriter) WriteComparison(result *model.ComparisonResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteComparison(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
