package profile

import (
	"io"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/devflowinc/trieve-CLI/internal/trtab"
)

type profileRow struct {
	Active string `trtab:"ACTIVE"`
	Name   string `trtab:"NAME"`
	OrgID  string `trtab:"ORG ID"`
	APIURL string `trtab:"API URL"`
	APIKey string `trtab:"API KEY"`
}

func printProfileTable(out io.Writer, st *profile.Store) error {
	t := trtab.New[profileRow](out)
	t.AddHeader()
	for _, p := range st.Profiles {
		active := ""
		if p.Name == st.ActiveProfile {
			active = "*"
		}
		apiURL := p.APIURL
		if apiURL == "" {
			apiURL = config.DefaultAPIURL
		}
		t.AddRow(profileRow{
			Active: active,
			Name:   p.Name,
			OrgID:  p.OrgID,
			APIURL: apiURL,
			APIKey: config.MaskAPIKey(p.APIKey),
		})
	}
	return t.Flush()
}

// maskStore copies the store with every API key masked so structured
// output never leaks full credentials.
func maskStore(st *profile.Store) *profile.Store {
	masked := &profile.Store{
		ActiveProfile: st.ActiveProfile,
		Profiles:      make([]profile.Profile, len(st.Profiles)),
	}
	for i, p := range st.Profiles {
		p.APIKey = config.MaskAPIKey(p.APIKey)
		masked.Profiles[i] = p
	}
	return masked
}
