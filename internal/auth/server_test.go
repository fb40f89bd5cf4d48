package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *Server {
	return &Server{
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys: make(chan string, 1),
	}
}

func TestCallbackDeliversKey(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?apiKey=tr-from-dashboard", nil)

	s.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Login Succeeded") {
		t.Errorf("body does not announce success: %q", body)
	}

	select {
	case key := <-s.Keys():
		if key != "tr-from-dashboard" {
			t.Errorf("key = %q, want %q", key, "tr-from-dashboard")
		}
	default:
		t.Error("no key delivered")
	}
}

func TestCallbackAcceptsAnyPath(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=xyz&apiKey=tr-key", nil)

	s.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if key := <-s.Keys(); key != "tr-key" {
		t.Errorf("key = %q, want %q", key, "tr-key")
	}
}

func TestCallbackWithoutKey(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)

	s.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	select {
	case key := <-s.Keys():
		t.Errorf("unexpected key %q", key)
	default:
	}
}

func TestRepeatCallbacksDontBlock(t *testing.T) {
	s := newTestServer()
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?apiKey=tr-first", nil)
		s.routes().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
	if key := <-s.Keys(); key != "tr-first" {
		t.Errorf("key = %q, want %q", key, "tr-first")
	}
}
