package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"mastodon-comments/internal/types"
)

// Validation patterns for values that end up in the request URL. Upstream
// configuration should already be well-formed; the patterns stop host or
// path injection regardless.
var (
	hostPattern   = regexp.MustCompile(`(?i)^[a-z0-9.-]+$`)
	postIDPattern = regexp.MustCompile(`^\d+$`)
)

// Context payloads are small; cap reads so a misbehaving server can't
// balloon memory.
const maxResponseBody = 4 * 1024 * 1024

const userAgent = "mastodon-comments-widget/1.0"

// apiHTTPClient is shared by thread fetches. This path never retries: any
// failure collapses into the widget's single error state.
var apiHTTPClient = &http.Client{
	Timeout: 10 * time.Second,
}

// apiBaseURL builds the scheme+authority part of an API URL for a host.
// Tests override it to point at a local httptest server.
var apiBaseURL = func(host string) string {
	return "https://" + host
}

// ValidHost reports whether host looks like a bare domain name.
func ValidHost(host string) bool {
	return host != "" && hostPattern.MatchString(host)
}

// ValidPostID reports whether id is a pure-digit Mastodon status ID.
func ValidPostID(id string) bool {
	return id != "" && postIDPattern.MatchString(id)
}

// validateWidgetTarget rejects host/post-id pairs that must not reach URL
// construction.
func validateWidgetTarget(host, postID string) error {
	if !ValidHost(host) {
		return fmt.Errorf("invalid mastodon host %q", host)
	}
	if !ValidPostID(postID) {
		return fmt.Errorf("invalid mastodon post id %q", postID)
	}
	return nil
}

// errStatus wraps a non-success HTTP status as an error value for metrics.
func errStatus(code int) error {
	return fmt.Errorf("status %d", code)
}

// buildContextURL builds the thread-context endpoint URL with both path
// elements percent-encoded.
func buildContextURL(host, postID string) string {
	return apiBaseURL(url.PathEscape(host)) + "/api/v1/statuses/" + url.PathEscape(postID) + "/context"
}

// fetchThreadContext issues the single GET to the context endpoint and
// returns the descendant replies. An absent descendants array decodes to a
// nil slice, which renders as the empty state.
func fetchThreadContext(ctx context.Context, host, postID string) ([]types.Status, error) {
	if err := validateWidgetTarget(host, postID); err != nil {
		return nil, err
	}

	reqURL := buildContextURL(host, postID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building context request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := apiHTTPClient.Do(req)
	if err != nil {
		ObserveUpstreamFetch("context", time.Since(start), err)
		return nil, fmt.Errorf("fetching thread context: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("context endpoint returned status %d", resp.StatusCode)
		ObserveUpstreamFetch("context", time.Since(start), err)
		return nil, err
	}
	ObserveUpstreamFetch("context", time.Since(start), nil)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("reading context response: %w", err)
	}

	var threadCtx types.Context
	if err := json.Unmarshal(body, &threadCtx); err != nil {
		return nil, fmt.Errorf("decoding context response: %w", err)
	}

	return threadCtx.Descendants, nil
}
