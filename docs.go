package main

import (
	"html/template"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/yuin/goldmark"

	"mastodon-comments/internal/util"
)

// The root path serves the project README rendered as HTML, so a deployed
// widget documents its own embed interface.

type docsPageData struct {
	Title    string
	BodyHTML template.HTML
}

var (
	docsOnce sync.Once
	docsHTML string
)

// renderDocsPage converts README.md once and caches the result for the
// process lifetime.
func renderDocsPage() string {
	docsOnce.Do(func() {
		source, err := os.ReadFile("README.md")
		if err != nil {
			docsHTML = "<p>Mastodon comments widget. See the repository README for embed instructions.</p>"
		} else {
			var buf strings.Builder
			if err := goldmark.Convert(source, &buf); err != nil {
				docsHTML = "<p>Mastodon comments widget.</p>"
			} else {
				docsHTML = buf.String()
			}
		}
	})

	var page strings.Builder
	err := docsTmpl.Execute(&page, docsPageData{
		Title:    "Mastodon comments widget",
		BodyHTML: template.HTML(docsHTML),
	})
	if err != nil {
		return docsHTML
	}
	return page.String()
}

// docsHandler serves the docs page at the root path; everything else under
// / is a 404.
func docsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		util.RespondNotFound(w, "not found")
		return
	}
	util.SetHTMLHeaders(w, "300")
	util.WriteHTML(w, renderDocsPage())
}
