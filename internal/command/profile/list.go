package profile

import (
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/print"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/spf13/cobra"
)

func newList(prof *config.Profile) *cobra.Command {
	cfg := &config.ProfileList{Profile: prof}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List stored profiles",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func list(cfg *config.ProfileList, out io.Writer) error {
	if err := cfg.EnsureProfilesEnabled(); err != nil {
		return err
	}

	st, err := profile.GetStorage().Load()
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case config.OutputFormatDefault:
		return printProfileTable(out, st)
	case config.OutputFormatJSON:
		return print.RawJSON(out, maskStore(st))
	case config.OutputFormatYAML:
		return print.RawYAML(out, maskStore(st))
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
}
