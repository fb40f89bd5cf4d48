package organization

import (
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/spf13/cobra"
)

func New(api *config.API) *cobra.Command {
	cfg := &config.Organization{API: api}

	cmd := &cobra.Command{
		Use:     "organization",
		Short:   "Manage the organization the CLI works against",
		Aliases: []string{"org"},
	}

	// Subcommands
	cmd.AddCommand(
		newSwitch(cfg),
	)

	return cmd
}
