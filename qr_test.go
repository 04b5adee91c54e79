package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestQRHandler(t *testing.T) {
	t.Run("valid permalink", func(t *testing.T) {
		target := "/qr?url=" + url.QueryEscape("https://example.social/@me/1")
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		qrHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("Content-Type = %q", ct)
		}
		pngMagic := []byte{0x89, 'P', 'N', 'G'}
		if !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
			t.Error("body is not a PNG")
		}
	})

	t.Run("rejected urls", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"http://example.social/@me/1", // not https
			"https://exa mple.com/x",
			"javascript:alert(1)",
			"https://host:8080/x", // port is not a plain domain host
		} {
			target := "/qr"
			if raw != "" {
				target += "?url=" + url.QueryEscape(raw)
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rec := httptest.NewRecorder()
			qrHandler(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("url %q: status = %d, want 400", raw, rec.Code)
			}
		}
	})
}
