package login

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/spf13/viper"
)

func testConfig(t *testing.T, srvURL string) *config.API {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	for _, v := range []string{config.EnvAPIKey, config.EnvOrgID, config.EnvNoProfile, profile.EnvKeyring} {
		t.Setenv(v, "")
	}
	t.Setenv(config.EnvAPIURL, srvURL)

	a := &config.API{}
	a.Init()
	return a
}

// meHandler serves GET /api/auth/me for the given orgs and records the
// key each request authenticated with.
func meHandler(t *testing.T, gotKey *string, orgsJSON string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		*gotKey = r.Header.Get("Authorization")
		io.WriteString(w, `{"id": "u1", "email": "dev@example.com", "orgs": `+orgsJSON+`}`)
	})
}

func TestLoginWithExplicitKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(meHandler(t, &gotKey,
		`[{"id": "11111111-1111-1111-1111-111111111111", "name": "Acme"}]`))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-login-key")

	cfg := &config.Login{API: a, ProfileName: "work"}
	var buf bytes.Buffer
	if err := login(context.Background(), cfg, strings.NewReader(""), &buf); err != nil {
		t.Fatal(err)
	}

	if gotKey != "tr-login-key" {
		t.Errorf("Authorization = %q, want the login key", gotKey)
	}

	st, err := profile.GetStorage().Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.ActiveProfile != "work" {
		t.Errorf("activeProfile = %q, want work", st.ActiveProfile)
	}
	p, ok := st.Lookup("work")
	if !ok {
		t.Fatal("profile work not stored")
	}
	if p.APIKey != "tr-login-key" {
		t.Errorf("stored key = %q", p.APIKey)
	}
	// The only organization is picked without prompting.
	if p.OrgID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("stored org = %q", p.OrgID)
	}
	if p.APIURL != srv.URL {
		t.Errorf("stored apiURL = %q, want %q", p.APIURL, srv.URL)
	}
	if !strings.Contains(buf.String(), "Logged in as dev@example.com") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestLoginPromptsForOrgAndProfileName(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(meHandler(t, &gotKey,
		`[{"id": "11111111-1111-1111-1111-111111111111", "name": "Acme"},
		  {"id": "22222222-2222-2222-2222-222222222222", "name": "Umbrella"}]`))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-login-key")

	cfg := &config.Login{API: a}

	// Option 2 of the org menu, then the profile name.
	var buf bytes.Buffer
	if err := login(context.Background(), cfg, strings.NewReader("2\nstaging\n"), &buf); err != nil {
		t.Fatal(err)
	}

	st, err := profile.GetStorage().Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.ActiveProfile != "staging" {
		t.Errorf("activeProfile = %q, want staging", st.ActiveProfile)
	}
	p, ok := st.Lookup("staging")
	if !ok {
		t.Fatal("profile staging not stored")
	}
	if p.OrgID != "22222222-2222-2222-2222-222222222222" {
		t.Errorf("stored org = %q, want Umbrella's", p.OrgID)
	}
}

func TestLoginDefaultProfileName(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(meHandler(t, &gotKey,
		`[{"id": "11111111-1111-1111-1111-111111111111", "name": "Acme"}]`))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-login-key")

	cfg := &config.Login{API: a}

	// An empty answer accepts the suggested name.
	var buf bytes.Buffer
	if err := login(context.Background(), cfg, strings.NewReader("\n"), &buf); err != nil {
		t.Fatal(err)
	}

	st, err := profile.GetStorage().Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.ActiveProfile != "default" {
		t.Errorf("activeProfile = %q, want default", st.ActiveProfile)
	}
}

func TestLoginOverwritesExistingProfile(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(meHandler(t, &gotKey,
		`[{"id": "11111111-1111-1111-1111-111111111111", "name": "Acme"}]`))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-rotated-key")

	if err := profile.GetStorage().Save(&profile.Store{
		ActiveProfile: "other",
		Profiles: []profile.Profile{
			{Name: "other", APIKey: "tr-other", OrgID: "org-other"},
			{Name: "work", APIKey: "tr-stale-key", OrgID: "org-stale"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Login{API: a, ProfileName: "work"}
	var buf bytes.Buffer
	if err := login(context.Background(), cfg, strings.NewReader(""), &buf); err != nil {
		t.Fatal(err)
	}

	st, err := profile.GetStorage().Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Profiles) != 2 {
		t.Fatalf("store has %d profiles, want 2", len(st.Profiles))
	}
	if st.ActiveProfile != "work" {
		t.Errorf("activeProfile = %q, a fresh login must activate its profile", st.ActiveProfile)
	}
	p, _ := st.Lookup("work")
	if p.APIKey != "tr-rotated-key" {
		t.Errorf("stored key = %q, want the rotated key", p.APIKey)
	}
}

func TestLoginRejectsBadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message": "no user found for the given key"}`)
	}))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-bad-key")

	cfg := &config.Login{API: a, ProfileName: "work"}
	var buf bytes.Buffer
	err := login(context.Background(), cfg, strings.NewReader(""), &buf)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want api.Error", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("statusCode = %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "no user found for the given key") {
		t.Errorf("error %q lost the server message", err)
	}

	// A failed login must not touch the store.
	st, loadErr := profile.GetStorage().Load()
	if loadErr != nil {
		t.Fatal(loadErr)
	}
	if len(st.Profiles) != 0 {
		t.Errorf("store has %d profiles, want 0", len(st.Profiles))
	}
}

func TestLoginNoOrganizations(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(meHandler(t, &gotKey, `[]`))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-login-key")

	cfg := &config.Login{API: a, ProfileName: "work"}
	var buf bytes.Buffer
	err := login(context.Background(), cfg, strings.NewReader(""), &buf)
	if err == nil || !strings.Contains(err.Error(), "no organizations") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoginRespectsNoProfileMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("login must not reach the API in no-profile mode")
	}))
	defer srv.Close()

	a := testConfig(t, srv.URL)
	t.Setenv(config.EnvAPIKey, "tr-login-key")
	t.Setenv(config.EnvNoProfile, "true")

	cfg := &config.Login{API: a, ProfileName: "work"}
	var buf bytes.Buffer
	err := login(context.Background(), cfg, strings.NewReader(""), &buf)

	var pde *config.ProfilesDisabledError
	if !errors.As(err, &pde) {
		t.Fatalf("err = %v, want ProfilesDisabledError", err)
	}
}

func TestChooseOrganization(t *testing.T) {
	user := &api.SlimUser{
		Email: "dev@example.com",
		Orgs: []api.Organization{
			{ID: "org-a", Name: "Acme"},
			{ID: "org-b", Name: "Umbrella"},
		},
	}

	t.Run("menu selection", func(t *testing.T) {
		p := prompt.New(strings.NewReader("2\n"), io.Discard)
		got, err := chooseOrganization(user, p)
		if err != nil {
			t.Fatal(err)
		}
		if got != "org-b" {
			t.Errorf("org = %q, want org-b", got)
		}
	})

	t.Run("single org skips the menu", func(t *testing.T) {
		single := &api.SlimUser{Orgs: []api.Organization{{ID: "org-a", Name: "Acme"}}}
		// An exhausted reader proves no prompt was shown.
		p := prompt.New(strings.NewReader(""), io.Discard)
		got, err := chooseOrganization(single, p)
		if err != nil {
			t.Fatal(err)
		}
		if got != "org-a" {
			t.Errorf("org = %q, want org-a", got)
		}
	})
}
