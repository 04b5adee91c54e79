package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"mastodon-comments/internal/util"
)

// securityHeaders wraps an HTTP handler to add security headers
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Content Security Policy - defense in depth against XSS
		// - img-src * data:: avatars, custom emoji, and attachment previews
		//   live on arbitrary federated hosts
		// - media-src *: same for audio/video attachments
		csp := "default-src 'self'; " +
			"img-src * data:; " +
			"media-src *; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'none'"
		w.Header().Set("Content-Security-Policy", csp)

		// The embed page is meant to be iframed by hosting pages, so no
		// X-Frame-Options here; the widget never carries session state.
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next(w, r)
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	InitLogger()
	if err := InitCaches(); err != nil {
		log.Fatal(err)
	}

	// Initialize templates at startup so failures surface immediately
	initTemplates()

	port := util.GetEnvOrDefault("PORT", "8080")

	mux := http.NewServeMux()
	mux.HandleFunc("/embed", securityHeaders(embedHandler))
	mux.HandleFunc("/fragment/comments", securityHeaders(fragmentHandler))
	mux.HandleFunc("/qr", securityHeaders(qrHandler))
	mux.HandleFunc("/", securityHeaders(docsHandler))
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", MetricsHandler())

	// Optional live invalidation for hosts with an open public stream
	StartStreamWatchers(os.Getenv("STREAM_HOSTS"))

	log.Printf("Starting server on :%s", port)
	if err := http.ListenAndServe(":"+port, RequestLoggingMiddleware(mux)); err != nil {
		log.Fatal(err)
	}
}
