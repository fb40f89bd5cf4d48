package apikey

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/spf13/viper"
)

func testAPI(t *testing.T, srvURL string) *config.API {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvNoProfile, "true")
	t.Setenv(config.EnvAPIKey, "tr-test-key")
	t.Setenv(config.EnvOrgID, "org-test")
	t.Setenv(config.EnvAPIURL, srvURL)

	a := &config.API{}
	a.Init()
	return a
}

type keyRequest struct {
	Name string `json:"name"`
	Role int32  `json:"role"`
}

func TestGenerateFromFlags(t *testing.T) {
	var gotReq keyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/user/api_key" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		io.WriteString(w, `{"api_key": "tr-fresh-key"}`)
	}))
	defer srv.Close()

	cfg := &config.APIKeyGenerate{
		APIKey: &config.APIKey{API: testAPI(t, srv.URL)},
		Name:   "ci",
		Role:   "readwrite",
	}

	var buf bytes.Buffer
	if err := generate(context.Background(), cfg, strings.NewReader(""), &buf); err != nil {
		t.Fatal(err)
	}

	if gotReq.Name != "ci" {
		t.Errorf("name = %q", gotReq.Name)
	}
	if gotReq.Role != 1 {
		t.Errorf("role = %d, want 1 for readwrite", gotReq.Role)
	}

	out := buf.String()
	if !strings.Contains(out, `Generated API key "ci" with readwrite access.`) {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "tr-fresh-key") {
		t.Errorf("output does not show the new key:\n%s", out)
	}
}

func TestGeneratePromptsForNameAndRole(t *testing.T) {
	var gotReq keyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		io.WriteString(w, `{"api_key": "tr-fresh-key"}`)
	}))
	defer srv.Close()

	cfg := &config.APIKeyGenerate{APIKey: &config.APIKey{API: testAPI(t, srv.URL)}}

	// Name first, then option 1 of the role menu (read).
	var buf bytes.Buffer
	if err := generate(context.Background(), cfg, strings.NewReader("robot\n1\n"), &buf); err != nil {
		t.Fatal(err)
	}

	if gotReq.Name != "robot" {
		t.Errorf("name = %q", gotReq.Name)
	}
	if gotReq.Role != 0 {
		t.Errorf("role = %d, want 0 for read", gotReq.Role)
	}
}

func TestGenerateRejectsUnknownRole(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	cfg := &config.APIKeyGenerate{
		APIKey: &config.APIKey{API: testAPI(t, srv.URL)},
		Name:   "ci",
		Role:   "admin",
	}

	var buf bytes.Buffer
	err := generate(context.Background(), cfg, strings.NewReader(""), &buf)
	if err == nil || !strings.Contains(err.Error(), "unknown role") {
		t.Fatalf("err = %v", err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestGenerateJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"api_key": "tr-fresh-key"}`)
	}))
	defer srv.Close()

	cfg := &config.APIKeyGenerate{
		APIKey: &config.APIKey{API: testAPI(t, srv.URL)},
		Name:   "ci",
		Role:   "read",
	}
	cfg.OutputFormat = config.OutputFormatJSON

	var buf bytes.Buffer
	if err := generate(context.Background(), cfg, strings.NewReader(""), &buf); err != nil {
		t.Fatal(err)
	}

	var key struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(buf.Bytes(), &key); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if key.APIKey != "tr-fresh-key" {
		t.Errorf("api_key = %q", key.APIKey)
	}
}
