package profile

import (
	"errors"

	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
)

func selectProfile(st *profile.Store, p *prompt.Prompter, label string) (string, error) {
	if len(st.Profiles) == 0 {
		return "", errors.New("the store has no profiles; run 'trieve login' first")
	}
	names := make([]string, len(st.Profiles))
	for i, prof := range st.Profiles {
		names[i] = prof.Name
	}
	return p.Select(label, names)
}
