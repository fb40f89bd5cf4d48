package config

import (
	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Hard-coded fallbacks. Only the API URL has a default; credentials must
// come from flags, the environment, or a profile.
const (
	DefaultAPIURL       = "https://api.trieve.ai"
	DefaultDashboardURL = "https://dashboard.trieve.ai"
)

// Environment variables understood by the resolver. Viper exposes them
// under the matching lower-case keys ("api_key" and so on).
const (
	EnvAPIKey    = "TRIEVE_API_KEY"
	EnvOrgID     = "TRIEVE_ORG_ID"
	EnvAPIURL    = "TRIEVE_API_URL"
	EnvNoProfile = "TRIEVE_NO_PROFILE"
)

type API struct {
	Root

	// Resolved values. The API key is kept masked here; the raw key
	// lives only inside the client.
	Org          string
	MaskedAPIKey string
	APIURL       string

	// ProfileName is the profile that filled unset fields, if any.
	ProfileName string
	NoProfile   bool

	// Runtime values
	Client *api.Client
}

func (a *API) AddFlags(cmd *cobra.Command) {
	a.Root.AddFlags(cmd)

	cmd.PersistentFlags().String("api-key", "", "API key to use instead of the active profile's")
	cmd.PersistentFlags().String("org-id", "", "organization ID to use instead of the active profile's")
	cmd.PersistentFlags().String("api-url", "", "API endpoint, for self-hosted deployments")

	// Binding through viper makes changed flags win over env vars.
	_ = viper.BindPFlag("api_key", cmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("org_id", cmd.PersistentFlags().Lookup("org-id"))
	_ = viper.BindPFlag("api_url", cmd.PersistentFlags().Lookup("api-url"))
}

// InitAPIConfig resolves the effective configuration for this invocation
// and builds the API client from it. Precedence per field: flag, then
// environment variable, then the active profile, then (for the URL only)
// the default endpoint.
func (a *API) InitAPIConfig() error {
	apiKey := viper.GetString("api_key")
	orgID := viper.GetString("org_id")
	apiURL := viper.GetString("api_url")

	a.NoProfile = viper.GetBool("no_profile")
	if a.NoProfile {
		// The store must stay untouched: no read, no write. Flags and
		// environment are all there is.
		if apiKey == "" {
			return &MissingCredentialError{Var: EnvAPIKey, NoProfile: true}
		}
		if orgID == "" {
			return &MissingCredentialError{Var: EnvOrgID, NoProfile: true}
		}
	} else if apiKey == "" || orgID == "" || apiURL == "" {
		st, err := profile.GetStorage().Load()
		if err != nil {
			return err
		}
		if active, ok := st.Active(); ok {
			a.ProfileName = active.Name
			if apiKey == "" {
				apiKey = active.APIKey
			}
			if orgID == "" {
				orgID = active.OrgID
			}
			if apiURL == "" {
				apiURL = active.APIURL
			}
		}
	}

	if apiKey == "" {
		return &MissingCredentialError{Var: EnvAPIKey}
	}
	if orgID == "" {
		return &MissingCredentialError{Var: EnvOrgID}
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	a.Org = orgID
	a.APIURL = apiURL
	a.MaskedAPIKey = MaskAPIKey(apiKey)
	a.Client = api.NewClient(apiURL, apiKey, orgID, a.Logger())

	a.Logger().Debug("resolved configuration",
		"apiUrl", a.APIURL,
		"orgId", a.Org,
		"apiKey", a.MaskedAPIKey,
		"profile", a.ProfileName,
		"noProfile", a.NoProfile,
	)
	return nil
}

// UnauthInitAPIConfig resolves only the API endpoint, for commands that
// run before any credentials exist (login).
func (a *API) UnauthInitAPIConfig() error {
	apiURL := viper.GetString("api_url")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	a.APIURL = apiURL
	a.NoProfile = viper.GetBool("no_profile")
	return nil
}

// EnsureProfilesEnabled rejects profile-store operations when
// TRIEVE_NO_PROFILE is set.
func (a *API) EnsureProfilesEnabled() error {
	if viper.GetBool("no_profile") {
		return &ProfilesDisabledError{}
	}
	return nil
}

// MaskAPIKey keeps enough of a key to recognize it, and no more.
func MaskAPIKey(apiKey string) string {
	if len(apiKey) <= 6 {
		return "..."
	}
	return apiKey[:6] + "..."
}
