package main

import (
	"html/template"
	"strings"

	"mastodon-comments/internal/datefmt"
	"mastodon-comments/internal/sanitize"
	"mastodon-comments/internal/types"
	"mastodon-comments/internal/util"
	"mastodon-comments/templates"
)

// Fixed user-facing strings. These are part of the rendering contract, so
// they live here rather than behind a string table.
const (
	msgNoComments = "No comments yet. Be the first to reply!"
	msgLoadError  = "Could not load comments. Please try again later."
)

// Fallback MIME types when the attachment payload omits one.
const (
	defaultVideoMime = "video/mp4"
	defaultAudioMime = "audio/mpeg"
)

var (
	embedTmpl *template.Template
	docsTmpl  *template.Template
)

// initTemplates compiles page templates at startup.
func initTemplates() {
	embedTmpl = util.MustCompileTemplate("embed", nil, templates.GetEmbedTemplate())
	docsTmpl = util.MustCompileTemplate("docs", nil, templates.GetDocsTemplate())
}

// EmbedPageData feeds the embed page template. CommentsHTML is the single
// injection point for rendered fragments; when empty the skeleton shows its
// loading placeholder.
type EmbedPageData struct {
	Title         string
	Lang          string
	Host          string
	PostID        string
	PostURL       string
	InstanceTitle string
	CommentsHTML  template.HTML
}

// renderEmbedPage renders the full widget page (skeleton plus whatever
// CommentsHTML carries).
func renderEmbedPage(data EmbedPageData) (string, error) {
	var buf strings.Builder
	if err := embedTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// displayName falls back to the handle when an account has no display name.
func displayName(account types.Account) string {
	if account.DisplayName != "" {
		return account.DisplayName
	}
	return account.Acct
}

// renderComment maps one reply to an HTML fragment. Every plain-text or URL
// field from the reply is escaped individually; the rich-text body skips
// the generic escaper and goes through the body policy and emoji
// substitution instead.
func renderComment(reply types.Status, lang string) string {
	profileURL := sanitize.EscapeText(reply.Account.URL)
	body := emojify(sanitize.Body(reply.Content), reply.Emojis)

	var b strings.Builder
	b.WriteString(`<article class="comment">`)
	b.WriteString(`<a href="` + sanitize.EscapeText(reply.URL) + `" class="comment-date" rel="noopener" target="_blank">`)
	b.WriteString(sanitize.EscapeText(datefmt.Format(reply.CreatedAt, lang)))
	b.WriteString(`</a>`)
	b.WriteString(`<a href="` + profileURL + `" class="comment-author" rel="author noopener" target="_blank">`)
	b.WriteString(`<img src="` + sanitize.EscapeText(reply.Account.Avatar) + `" alt="" class="comment-avatar" loading="lazy">`)
	b.WriteString(`<span class="author-name">` + sanitize.EscapeText(displayName(reply.Account)) + `</span>`)
	b.WriteString(`<span class="author-handle">@` + sanitize.EscapeText(reply.Account.Acct) + `</span>`)
	b.WriteString(`</a>`)
	b.WriteString(`<div class="comment-body">` + body + `</div>`)

	if len(reply.MediaAttachments) > 0 {
		b.WriteString(`<div class="comment-attachments">`)
		for _, att := range reply.MediaAttachments {
			b.WriteString(renderAttachment(att))
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</article>`)
	return b.String()
}

// renderAttachment maps one media attachment to markup. Unknown kinds
// render nothing.
func renderAttachment(att types.MediaAttachment) string {
	switch att.Type {
	case "image":
		preview := att.PreviewURL
		if preview == "" {
			preview = att.URL
		}
		return `<a href="` + sanitize.EscapeText(att.URL) + `" rel="noopener" target="_blank">` +
			`<img src="` + sanitize.EscapeText(preview) + `" alt="` + sanitize.EscapeText(att.Description) + `" loading="lazy">` +
			`</a>`
	case "video", "gifv":
		mime := att.MimeType
		if mime == "" {
			mime = defaultVideoMime
		}
		attrs := ` controls preload="metadata"`
		if att.Type == "gifv" {
			attrs = ` autoplay loop muted playsinline`
		}
		return `<video` + attrs + ` poster="` + sanitize.EscapeText(att.PreviewURL) + `">` +
			`<source src="` + sanitize.EscapeText(att.URL) + `" type="` + sanitize.EscapeText(mime) + `">` +
			`</video>`
	case "audio":
		mime := att.MimeType
		if mime == "" {
			mime = defaultAudioMime
		}
		return `<audio controls preload="metadata">` +
			`<source src="` + sanitize.EscapeText(att.URL) + `" type="` + sanitize.EscapeText(mime) + `">` +
			`</audio>`
	default:
		return ""
	}
}

// renderCommentList concatenates per-reply fragments in the given order, or
// returns the fixed empty-state message.
func renderCommentList(replies []types.Status, lang string) string {
	if len(replies) == 0 {
		return `<p class="comments-empty">` + msgNoComments + `</p>`
	}
	var b strings.Builder
	for _, reply := range replies {
		b.WriteString(renderComment(reply, lang))
	}
	return b.String()
}

// renderLoadError is the single user-visible outcome of every fetch-stage
// failure.
func renderLoadError() string {
	return `<p class="comments-error">` + msgLoadError + `</p>`
}
