package main

import "log/slog"

// Attribute names the widget reads its configuration from. The embed
// endpoint accepts the same keys as query parameters (long or short form).
const (
	attrHost     = "data-mastodon-host"
	attrPostID   = "data-mastodon-post-id"
	attrLanguage = "data-page-language"
	attrPostURL  = "data-mastodon-post-url"
)

// WidgetConfig is the per-widget configuration read from page markup.
type WidgetConfig struct {
	Host     string // domain of the federated server hosting the post
	PostID   string // numeric status ID
	Language string // BCP 47 tag, defaults to "en"
	PostURL  string // optional canonical URL of the tracked post
}

// ParseWidgetConfig reads widget configuration from a container's data
// attributes. Returns false when host or post ID is missing; the widget is
// optional decoration, so the caller logs and skips instead of failing the
// page.
func ParseWidgetConfig(attrs map[string]string) (WidgetConfig, bool) {
	cfg := WidgetConfig{
		Host:     attrs[attrHost],
		PostID:   attrs[attrPostID],
		Language: attrs[attrLanguage],
		PostURL:  attrs[attrPostURL],
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Host == "" || cfg.PostID == "" {
		slog.Info("widget config incomplete, skipping",
			"has_host", cfg.Host != "",
			"has_post_id", cfg.PostID != "")
		return cfg, false
	}
	return cfg, true
}
