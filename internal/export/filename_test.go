package export

import (
	"regexp"
	"testing"
)

// fragmentPattern is the contract every sanitized fragment must satisfy.
var fragmentPattern = regexp.MustCompile(`^[a-z0-9-]{0,50}$`)

// TestSanitizeURL tests the sanitizer against concrete expected outputs.
func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "blog post URL with query string",
			input: "https://my-site.com/blog-post?x=1",
			want:  "my-site-com-blog-post-x-1",
		},
		{
			name:  "plain domain",
			input: "http://example.com",
			want:  "example-com",
		},
		{
			name:  "no protocol",
			input: "example.com/path",
			want:  "example-com-path",
		},
		{
			name:  "uppercase is lowered",
			input: "HTTPS://EXAMPLE.COM/PATH",
			want:  "example-com-path",
		},
		{
			name:  "consecutive separators collapse",
			input: "https://example.com//a///b",
			want:  "example-com-a-b",
		},
		{
			name:  "leading and trailing separators trimmed",
			input: "...example.com...",
			want:  "example-com",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only separators",
			input: "://???",
			want:  "",
		},
		{
			name:  "unicode maps to hyphens",
			input: "https://exämple.com",
			want:  "ex-mple-com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeURL(tt.input); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSanitizeURLProperties tests the contract properties: output shape,
// idempotency, and truncation without a trailing hyphen.
func TestSanitizeURLProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://my-site.com/blog-post?x=1",
		"ftp://weird_host:21/a b c",
		"https://" + "verylongsegment-" + "verylongsegment-" + "verylongsegment-" + "verylongsegment.example",
		"----",
		"a",
		"https://example.com/?q=hello world&lang=日本語",
		"  spaces  everywhere  ",
	}

	for _, input := range inputs {
		once := SanitizeURL(input)

		if !fragmentPattern.MatchString(once) {
			t.Errorf("SanitizeURL(%q) = %q does not match %s", input, once, fragmentPattern)
		}
		if len(once) > 0 {
			if once[0] == '-' || once[len(once)-1] == '-' {
				t.Errorf("SanitizeURL(%q) = %q has leading/trailing hyphen", input, once)
			}
		}

		twice := SanitizeURL(once)
		if twice != once {
			t.Errorf("SanitizeURL not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

// TestSanitizeURLTruncation tests the 50 character limit.
func TestSanitizeURLTruncation(t *testing.T) {
	t.Parallel()

	long := "https://" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + ".example"
	got := SanitizeURL(long)

	if len(got) > 50 {
		t.Errorf("SanitizeURL output length = %d, want <= 50", len(got))
	}
	if got != "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghij" {
		t.Errorf("SanitizeURL(%q) = %q, want first 50 alphanumerics", long, got)
	}
}
