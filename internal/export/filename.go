package export

import (
	"regexp"
	"strings"
)

// maxFragmentLen is the maximum length of a sanitized filename fragment.
const maxFragmentLen = 50

// protocolPrefix matches a URL scheme prefix such as "https://".
var protocolPrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// SanitizeURL turns an arbitrary URL string into a filesystem-safe filename
// fragment: the protocol prefix is stripped, every non-alphanumeric
// character becomes '-', runs of '-' collapse to one, leading and trailing
// '-' are trimmed, the result is lower-cased and truncated to 50 characters.
//
// The function is total (any input, never fails) and idempotent: output
// always matches ^[a-z0-9-]{0,50}$ with no leading or trailing hyphen, and
// sanitizing twice equals sanitizing once.
func SanitizeURL(raw string) string {
	s := protocolPrefix.ReplaceAllString(raw, "")
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		// Collapse every run of non-alphanumerics into a single hyphen.
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxFragmentLen {
		out = out[:maxFragmentLen]
		// Truncation can leave a trailing hyphen behind.
		out = strings.TrimRight(out, "-")
	}
	return out
}
