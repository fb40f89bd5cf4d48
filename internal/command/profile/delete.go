package profile

import (
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDelete(prof *config.Profile) *cobra.Command {
	cfg := &config.ProfileDelete{Profile: prof}

	cmd := &cobra.Command{
		Use:   "delete [PROFILE_NAME]",
		Short: "Remove a profile from the store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return delete(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	return cmd
}

func delete(cfg *config.ProfileDelete, in io.Reader, out io.Writer, args []string) error {
	if err := cfg.EnsureProfilesEnabled(); err != nil {
		return err
	}

	storage := profile.GetStorage()
	st, err := storage.Load()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = selectProfile(st, prompt.New(in, out), "Select a profile to delete:")
		if err != nil {
			return err
		}
	}

	wasActive := st.ActiveProfile == name
	if err := st.Delete(name); err != nil {
		return err
	}
	if err := storage.Save(st); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Deleted profile %q.\n", green("✓"), name)
	if wasActive {
		fmt.Fprintln(out, "No profile is active now. Run 'trieve profile switch' or 'trieve login' to pick one.")
	}
	return nil
}
