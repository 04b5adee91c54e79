package sanitize

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text untouched", "hello world", "hello world"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"attribute breakout attempt", `" onerror="alert(1)`, "&quot; onerror=&quot;alert(1)"},
		{"existing entity is escaped again", "&amp;", "&amp;amp;"},
		{"unicode preserved", "héllo ☀", "héllo ☀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.input); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeTextNoRawSpecials(t *testing.T) {
	// Whatever goes in, the output must contain no literal specials
	// outside of entity sequences.
	inputs := []string{
		`<img src=x onerror=alert(1)>`,
		`'';!--"<XSS>=&{()}`,
		strings.Repeat(`&<>"'`, 50),
	}
	for _, input := range inputs {
		got := EscapeText(input)
		stripped := strings.NewReplacer(
			"&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&#39;", "",
		).Replace(got)
		if strings.ContainsAny(stripped, `&<>"'`) {
			t.Errorf("EscapeText(%q) left raw specials: %q", input, got)
		}
	}
}

func TestBodyStripsDangerousMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		excludes string
	}{
		{
			name:     "paragraphs survive",
			input:    "<p>hello <a href=\"https://example.social/tags/go\" class=\"mention hashtag\">#go</a></p>",
			contains: "<p>hello",
			excludes: "",
		},
		{
			name:     "script removed",
			input:    "<p>hi</p><script>alert(1)</script>",
			contains: "<p>hi</p>",
			excludes: "<script>",
		},
		{
			name:     "event handlers removed",
			input:    `<p onmouseover="alert(1)">hi</p>`,
			contains: "hi",
			excludes: "onmouseover",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Body(tt.input)
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("Body(%q) = %q, missing %q", tt.input, got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("Body(%q) = %q, should not contain %q", tt.input, got, tt.excludes)
			}
		})
	}
}
