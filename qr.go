package main

import (
	"net/http"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"

	"mastodon-comments/internal/util"
)

const qrImageSize = 160

// qrHandler serves a PNG QR code for a post permalink, linked from the
// widget header so a reader can open the thread on a phone. Only https
// URLs with a plain domain host are encoded; anything else is rejected
// before it can reach a QR scanner.
func qrHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		util.RespondMethodNotAllowed(w, "method not allowed")
		return
	}

	raw := r.URL.Query().Get("url")
	if raw == "" {
		util.RespondBadRequest(w, "missing url parameter")
		return
	}

	u, err := url.Parse(raw)
	// ValidHost sees the full authority, so a port (or anything else odd
	// in the host part) is rejected along with non-domain hosts.
	if err != nil || u.Scheme != "https" || !ValidHost(u.Host) {
		util.RespondBadRequest(w, "invalid url")
		return
	}

	png, err := qrcode.Encode(u.String(), qrcode.Medium, qrImageSize)
	if err != nil {
		LoggerFromContext(r.Context()).Error("qr encode failed", "error", err)
		util.RespondInternalError(w, "could not generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=86400")
	w.Write(png)
}
