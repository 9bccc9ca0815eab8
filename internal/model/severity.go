package model

import (
	"encoding/json"
	"strings"
)

// Severity represents the severity level of an audit issue.
// The backend partitions issues into severity buckets; this type mirrors
// that classification on the client side.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed, and custom JSON marshaling keeps the
// wire format identical to the backend's string representation.
type Severity int

const (
	// SeverityUnknown indicates a severity value the client does not
	// recognize. Backend responses are duck-typed in the original web UI;
	// here we decode them into an explicit unknown variant instead of
	// silently misclassifying.
	SeverityUnknown Severity = iota

	// SeverityInfo indicates informational findings with no urgent impact.
	SeverityInfo

	// SeverityWarning indicates issues that should be addressed but do not
	// block search visibility on their own.
	SeverityWarning

	// SeverityCritical indicates issues that significantly harm search
	// visibility and require immediate attention.
	SeverityCritical
)

// String returns the backend's string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a backend severity string into a Severity.
// Matching is case-insensitive. Unrecognized values map to SeverityUnknown
// rather than an error so that decoding a report never fails on a single
// unexpected label.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical
	case "WARNING":
		return SeverityWarning
	case "INFO":
		return SeverityInfo
	default:
		return SeverityUnknown
	}
}

// MarshalJSON encodes the severity as the backend's string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a backend severity string.
// Unknown values decode to SeverityUnknown without error.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSeverity(raw)
	return nil
}

// Effort represents the estimated remediation effort for an issue.
// Combined with impact, it drives the quick-win classification: a quick win
// is an issue flagged as high-impact and low-effort.
type Effort int

const (
	// EffortUnknown indicates an effort value the client does not recognize.
	EffortUnknown Effort = iota

	// EffortLow indicates the fix is quick (typically under an hour).
	EffortLow

	// EffortMedium indicates a moderate fix (hours of work).
	EffortMedium

	// EffortHigh indicates a substantial fix (days of work or a redesign).
	EffortHigh
)

// String returns the backend's string representation of the effort level.
func (e Effort) String() string {
	switch e {
	case EffortLow:
		return "low"
	case EffortMedium:
		return "medium"
	case EffortHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseEffort converts a backend effort string into an Effort.
// Matching is case-insensitive; unrecognized values map to EffortUnknown.
func ParseEffort(s string) Effort {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return EffortLow
	case "medium":
		return EffortMedium
	case "high":
		return EffortHigh
	default:
		return EffortUnknown
	}
}

// MarshalJSON encodes the effort as the backend's string form.
func (e Effort) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON decodes a backend effort string.
// Unknown values decode to EffortUnknown without error.
func (e *Effort) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = ParseEffort(raw)
	return nil
}
