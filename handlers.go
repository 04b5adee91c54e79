package main

import (
	"html/template"
	"net/http"
	"net/url"

	"mastodon-comments/internal/util"
)

// widgetConfigFromRequest builds the attribute map the widget reads its
// configuration from. Query parameters use either the full data attribute
// names or the short forms (host, post-id, lang, post-url).
func widgetConfigFromRequest(r *http.Request) (WidgetConfig, bool) {
	q := r.URL.Query()
	pick := func(long, short string) string {
		if v := q.Get(long); v != "" {
			return v
		}
		return q.Get(short)
	}
	attrs := map[string]string{
		attrHost:     pick(attrHost, "host"),
		attrPostID:   pick(attrPostID, "post-id"),
		attrLanguage: pick(attrLanguage, "lang"),
		attrPostURL:  pick(attrPostURL, "post-url"),
	}
	return ParseWidgetConfig(attrs)
}

// commentListHTML runs the fetch-and-render pass for one widget target.
// Every fetch-stage failure (invalid target, transport error, bad status,
// undecodable body) converges to the fixed error markup plus one log line.
func commentListHTML(r *http.Request, cfg WidgetConfig) string {
	log := LoggerFromContext(r.Context())

	if err := validateWidgetTarget(cfg.Host, cfg.PostID); err != nil {
		log.Warn("widget target rejected", "error", err)
		return renderLoadError()
	}

	replies, err := fetchThread(r.Context(), cfg.Host, cfg.PostID)
	if err != nil {
		log.Error("thread fetch failed", "host", cfg.Host, "post_id", cfg.PostID, "error", err)
		return renderLoadError()
	}
	return renderCommentList(replies, cfg.Language)
}

// embedHandler serves the full widget page: skeleton header plus the
// rendered comment list (or the error message) in the inner container.
func embedHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		util.RespondMethodNotAllowed(w, "method not allowed")
		return
	}

	cfg, ok := widgetConfigFromRequest(r)
	if !ok {
		// The widget is optional decoration: a page without configuration
		// gets nothing injected, not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	data := EmbedPageData{
		Title:        "Comments",
		Lang:         cfg.Language,
		Host:         cfg.Host,
		PostID:       cfg.PostID,
		CommentsHTML: template.HTML(commentListHTML(r, cfg)),
	}

	// Header decoration only; failures here leave the header generic.
	if ValidHost(cfg.Host) {
		if inst := fetchInstanceInfo(cfg.Host); inst != nil {
			data.InstanceTitle = inst.Title
		}
	}
	// The post URL is attacker-influenced-in-principle page data; it is
	// escaped by the template, but only a sane https permalink gets the
	// reply link and QR at all.
	if cfg.PostURL != "" && validPostURL(cfg.PostURL) {
		data.PostURL = cfg.PostURL
	}

	page, err := renderEmbedPage(data)
	if err != nil {
		LoggerFromContext(r.Context()).Error("embed render failed", "error", err)
		util.RespondInternalError(w, "render failed")
		return
	}

	util.SetHTMLHeaders(w, "60")
	util.WriteHTML(w, page)
}

// fragmentHandler serves just the comment list markup - the single point
// a hosting page (or test harness) swaps into its own container.
func fragmentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		util.RespondMethodNotAllowed(w, "method not allowed")
		return
	}

	cfg, ok := widgetConfigFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	util.SetHTMLHeaders(w, "60")
	util.WriteHTML(w, commentListHTML(r, cfg))
}

// validPostURL accepts only https permalinks on a plain domain host.
func validPostURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && ValidHost(u.Host)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","cache_backend":"` + cacheBackendType + `"}`))
}
