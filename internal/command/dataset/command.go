package dataset

import (
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/spf13/cobra"
)

func New(api *config.API) *cobra.Command {
	cfg := &config.Dataset{API: api}

	cmd := &cobra.Command{
		Use:     "dataset",
		Short:   "Inspect and manipulate datasets",
		Aliases: []string{"ds"},
	}

	// Subcommands
	cmd.AddCommand(
		newCreate(cfg),
		newList(cfg),
		newDelete(cfg),
		newExample(cfg),
	)

	return cmd
}
