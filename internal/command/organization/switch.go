package organization

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSwitch(org *config.Organization) *cobra.Command {
	cfg := &config.OrganizationSwitch{Organization: org}

	cmd := &cobra.Command{
		Use:   "switch [ORG_ID]",
		Short: "Point the active profile at another organization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return switchOrg(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	return cmd
}

func switchOrg(ctx context.Context, cfg *config.OrganizationSwitch, in io.Reader, out io.Writer, args []string) error {
	// The switch is persisted into the active profile, so it needs the
	// store even when the organization is given explicitly.
	if err := cfg.EnsureProfilesEnabled(); err != nil {
		return err
	}
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}

	var orgID string
	if len(args) == 1 {
		orgID = args[0]
		if _, err := uuid.Parse(orgID); err != nil {
			return fmt.Errorf("invalid organization ID %q: %v", orgID, err)
		}
	} else {
		user, err := cfg.Client.GetMe(ctx)
		if err != nil {
			return err
		}
		orgID, err = selectOrganization(user, prompt.New(in, out))
		if err != nil {
			return err
		}
	}

	storage := profile.GetStorage()
	st, err := storage.Load()
	if err != nil {
		return err
	}
	active, ok := st.Active()
	if !ok {
		return errors.New("no active profile to update; run 'trieve login' first")
	}
	active.OrgID = orgID
	if err := storage.Save(st); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Profile %q now uses organization %s.\n", green("✓"), active.Name, orgID)
	return nil
}

func selectOrganization(user *api.SlimUser, p *prompt.Prompter) (string, error) {
	if len(user.Orgs) == 0 {
		return "", errors.New("this account belongs to no organizations")
	}
	options := make([]string, len(user.Orgs))
	for i, org := range user.Orgs {
		options[i] = fmt.Sprintf("%s - %s", org.Name, org.ID)
	}
	choice, err := p.Select("Select an organization to use:", options)
	if err != nil {
		return "", err
	}
	for i, option := range options {
		if option == choice {
			return user.Orgs[i].ID, nil
		}
	}
	return "", fmt.Errorf("no organization for selection %q", choice)
}
