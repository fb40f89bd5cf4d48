package config

import "fmt"

// MissingCredentialError reports a credential that is still unset after
// flags, environment variables, and the profile store have all been
// consulted. Var names the environment variable that would satisfy it.
type MissingCredentialError struct {
	Var       string
	NoProfile bool
}

func (e *MissingCredentialError) Error() string {
	var label, flag string
	switch e.Var {
	case EnvAPIKey:
		label, flag = "Trieve API key", "--api-key"
	case EnvOrgID:
		label, flag = "Trieve organization ID", "--org-id"
	case EnvAPIURL:
		label, flag = "Trieve API URL", "--api-url"
	default:
		label, flag = "credential", "the matching flag"
	}
	if e.NoProfile {
		return fmt.Sprintf("%s must be specified through either the %s env var or the %s flag when %s=true",
			label, e.Var, flag, EnvNoProfile)
	}
	return fmt.Sprintf("%s must be specified through either the %s env var, the %s flag, or an active profile (run 'trieve login')",
		label, e.Var, flag)
}

// ProfilesDisabledError rejects commands that would read or write the
// profile store while TRIEVE_NO_PROFILE is set.
type ProfilesDisabledError struct{}

func (e *ProfilesDisabledError) Error() string {
	return fmt.Sprintf("the profile store is disabled while %s=true", EnvNoProfile)
}
