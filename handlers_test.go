package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// mockServer stands in for a Mastodon instance. contextBody/contextStatus
// drive the thread endpoint; instanceBody drives the instance probe.
func mockServer(t *testing.T, contextStatus int, contextBody, instanceBody string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/context"):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(contextStatus)
			io.WriteString(w, contextBody)
		case r.URL.Path == "/api/v1/instance":
			if instanceBody == "" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, instanceBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupWidgetTest(t *testing.T, contextStatus int, contextBody, instanceBody string) {
	t.Helper()
	setupTestCaches(t)
	initTemplates()
	srv := mockServer(t, contextStatus, contextBody, instanceBody)
	overrideAPIBase(t, srv.URL)
}

func getEmbed(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/embed?"+query, nil)
	rec := httptest.NewRecorder()
	embedHandler(rec, req)
	return rec
}

func TestEmbedEmptyThread(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	rec := getEmbed(t, "host=example.social&post-id=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, msgNoComments) {
		t.Errorf("empty-state message missing:\n%s", body)
	}
	if strings.Contains(body, "Loading comments") {
		t.Errorf("loading placeholder should have been replaced:\n%s", body)
	}
	// Instance probe failed (mock answers 404), header stays generic
	if strings.Contains(body, `<span class="instance-title">`) {
		t.Errorf("header should be generic when the instance probe fails:\n%s", body)
	}
}

func TestEmbedUpstreamFailure(t *testing.T) {
	setupWidgetTest(t, http.StatusInternalServerError, "boom", "")

	rec := getEmbed(t, "host=example.social&post-id=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), msgLoadError) {
		t.Errorf("error message missing:\n%s", rec.Body.String())
	}
}

func TestEmbedRendersReplies(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[
		{"id":"2","created_at":"2022-11-13T14:48:30Z","url":"https://example.social/@bob/2",
		 "content":"<p>first</p>","account":{"acct":"bob","display_name":"Bob","url":"https://example.social/@bob","avatar":"https://example.social/a.png"}},
		{"id":"3","created_at":"2022-11-13T15:00:00Z","url":"https://example.social/@eve/3",
		 "content":"<p>second</p>","account":{"acct":"eve","url":"https://example.social/@eve","avatar":"https://example.social/e.png"}}
	]}`, "")

	rec := getEmbed(t, "host=example.social&post-id=1")
	body := rec.Body.String()
	if n := strings.Count(body, `<article class="comment">`); n != 2 {
		t.Fatalf("comment count = %d, want 2:\n%s", n, body)
	}
	if !strings.Contains(body, "<p>first</p>") || !strings.Contains(body, "<p>second</p>") {
		t.Errorf("reply bodies missing:\n%s", body)
	}
	// eve has no display name, handle takes its place
	if !strings.Contains(body, `<span class="author-name">eve</span>`) {
		t.Errorf("handle fallback missing:\n%s", body)
	}
}

func TestEmbedInvalidTarget(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	for _, query := range []string{
		"host=example.com%2Fevil&post-id=1",
		"host=example.social&post-id=12a",
	} {
		rec := getEmbed(t, query)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d for %q", rec.Code, query)
		}
		if !strings.Contains(rec.Body.String(), msgLoadError) {
			t.Errorf("invalid target %q should render the error state", query)
		}
	}
}

func TestEmbedMissingConfigSkips(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	for _, query := range []string{"", "host=example.social", "post-id=1"} {
		rec := getEmbed(t, query)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d for %q, want 204", rec.Code, query)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body should be empty for %q", query)
		}
	}
}

func TestEmbedHeaderDecoration(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`,
		`{"uri":"example.social","title":"My Server","version":"4.2.0"}`)

	postURL := "https://example.social/@me/1"
	rec := getEmbed(t, "host=example.social&post-id=1&post-url="+postURL)
	body := rec.Body.String()

	if !strings.Contains(body, "via My Server") {
		t.Errorf("instance title missing:\n%s", body)
	}
	if !strings.Contains(body, "Comment on the original post") {
		t.Errorf("reply link missing:\n%s", body)
	}
	if !strings.Contains(body, "/qr?url=") {
		t.Errorf("qr link missing:\n%s", body)
	}
	if !strings.Contains(body, `data-mastodon-host="example.social"`) {
		t.Errorf("config attributes missing from served markup:\n%s", body)
	}
}

func TestEmbedRejectsNonHTTPSPostURL(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	rec := getEmbed(t, "host=example.social&post-id=1&post-url=http://example.social/@me/1")
	if strings.Contains(rec.Body.String(), "Comment on the original post") {
		t.Errorf("insecure post url should not get a reply link:\n%s", rec.Body.String())
	}
}

func TestEmbedAcceptsLongAttributeNames(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	rec := getEmbed(t, "data-mastodon-host=example.social&data-mastodon-post-id=1&data-page-language=de")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), msgNoComments) {
		t.Errorf("long-form parameters not accepted:\n%s", rec.Body.String())
	}
}

func TestFragmentEndpoint(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	req := httptest.NewRequest(http.MethodGet, "/fragment/comments?host=example.social&post-id=1", nil)
	rec := httptest.NewRecorder()
	fragmentHandler(rec, req)

	want := `<p class="comments-empty">` + msgNoComments + `</p>`
	if rec.Body.String() != want {
		t.Errorf("fragment = %q, want exactly %q", rec.Body.String(), want)
	}
}

func TestFragmentMethodNotAllowed(t *testing.T) {
	setupWidgetTest(t, http.StatusOK, `{"descendants":[]}`, "")

	req := httptest.NewRequest(http.MethodPost, "/fragment/comments?host=example.social&post-id=1", nil)
	rec := httptest.NewRecorder()
	fragmentHandler(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
