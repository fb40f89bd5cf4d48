package command

import (
	"fmt"

	"github.com/devflowinc/trieve-CLI/internal/buildinfo"
	"github.com/devflowinc/trieve-CLI/internal/command/apikey"
	"github.com/devflowinc/trieve-CLI/internal/command/dataset"
	"github.com/devflowinc/trieve-CLI/internal/command/login"
	"github.com/devflowinc/trieve-CLI/internal/command/organization"
	"github.com/devflowinc/trieve-CLI/internal/command/profile"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cfg := &config.API{}
	cobra.OnInitialize(cfg.Init)

	cmd := &cobra.Command{
		Use:     "trieve",
		Short:   "Command-line interface for the Trieve search platform",
		Version: fmt.Sprintf("%v (%v) - %v", buildinfo.Version, buildinfo.GitCommit, buildinfo.BuildDate),

		// Don't print usage info automatically when errors occur.
		// Most of the time, the errors are not related to usage.
		SilenceUsage: true,
	}
	cfg.AddFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		login.New(cfg),
		dataset.New(cfg),
		apikey.New(cfg),
		profile.New(cfg),
		organization.New(cfg),
	)

	return cmd
}
