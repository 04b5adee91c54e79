// Package sanitize keeps untrusted remote text safe to splice into HTML.
//
// Everything the widget renders ultimately comes from a federated server
// the operator does not control, so author names, handles, URLs and
// attachment descriptions are all escaped before they touch markup.
// Rich-text status bodies are the one exception: they arrive as HTML and
// go through a tag-filtering policy instead of entity escaping.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// escaper replaces the five HTML-significant characters with entities.
// Ampersand is listed first and the Replacer works in a single pass without
// rescanning its own output, so entities produced by the later replacements
// are never double-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapes s for embedding into HTML text or attribute content.
// Total over any input, including the empty string.
func EscapeText(s string) string {
	return escaper.Replace(s)
}

// bodyPolicy filters rich-text status bodies. Mastodon emits a small tag
// set (p, br, a, span, plus formatting in some forks); UGCPolicy covers it
// and strips anything a hostile federated peer might smuggle in.
var bodyPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span", "a")
	p.RequireNoFollowOnLinks(true)
	return p
}()

// Body filters a rich-text HTML body, preserving safe markup.
func Body(html string) string {
	return bodyPolicy.Sanitize(html)
}
