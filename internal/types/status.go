package types

// Shapes returned by the Mastodon public API. Only the fields the widget
// renders are decoded; everything else in the payload is ignored.

// Context is the response of /api/v1/statuses/{id}/context.
// Ancestors are decoded but unused: the widget tracks one post and renders
// only the replies below it.
type Context struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`
}

// Status is a single post. CreatedAt stays a string; the date formatter
// owns parsing and the "Invalid Date" fallback.
type Status struct {
	ID               string            `json:"id"`
	InReplyToID      string            `json:"in_reply_to_id,omitempty"`
	CreatedAt        string            `json:"created_at"`
	URL              string            `json:"url"`
	Content          string            `json:"content"`
	Account          Account           `json:"account"`
	Emojis           []CustomEmoji     `json:"emojis"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`
}

// Account is the author of a status.
type Account struct {
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	Avatar      string `json:"avatar"`
}

// CustomEmoji maps a :shortcode: occurring in status content to its image.
type CustomEmoji struct {
	Shortcode string `json:"shortcode"`
	URL       string `json:"url"`
}

// MediaAttachment is one media item on a status.
// Type is one of "image", "video", "gifv", "audio".
type MediaAttachment struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	PreviewURL  string `json:"preview_url"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description"`
}

// Instance is the subset of /api/v1/instance used to label the widget header.
type Instance struct {
	URI     string `json:"uri"`
	Title   string `json:"title"`
	Version string `json:"version"`
}
