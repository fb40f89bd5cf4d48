package profile

import (
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/spf13/cobra"
)

func New(api *config.API) *cobra.Command {
	cfg := &config.Profile{API: api}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored credential profiles",
	}

	// Subcommands
	cmd.AddCommand(
		newList(cfg),
		newSwitch(cfg),
		newDelete(cfg),
	)

	return cmd
}
