package apikey

import (
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/spf13/cobra"
)

func New(api *config.API) *cobra.Command {
	cfg := &config.APIKey{API: api}

	cmd := &cobra.Command{
		Use:     "apikey",
		Short:   "Manage API keys for the logged-in user",
		Aliases: []string{"ak"},
	}

	// Subcommands
	cmd.AddCommand(
		newGenerate(cfg),
	)

	return cmd
}
