package main

import (
	"strings"

	"mastodon-comments/internal/sanitize"
	"mastodon-comments/internal/types"
)

// emojify replaces every :shortcode: occurrence in rich-text content with
// an inline image for the custom emoji. Replacement is global and runs once
// per pair in collection order; a duplicated shortcode is a no-op on the
// second pass because the first already consumed the matches. An empty
// collection returns the content unchanged.
func emojify(content string, emojis []types.CustomEmoji) string {
	if len(emojis) == 0 {
		return content
	}
	for _, emoji := range emojis {
		if emoji.Shortcode == "" {
			continue
		}
		img := `<img src="` + sanitize.EscapeText(emoji.URL) +
			`" alt="` + sanitize.EscapeText(emoji.Shortcode) +
			`" class="custom-emoji" loading="lazy">`
		content = strings.ReplaceAll(content, ":"+emoji.Shortcode+":", img)
	}
	return content
}
