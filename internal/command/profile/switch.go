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

func newSwitch(prof *config.Profile) *cobra.Command {
	cfg := &config.ProfileSwitch{Profile: prof}

	cmd := &cobra.Command{
		Use:   "switch [PROFILE_NAME]",
		Short: "Make another profile the active one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return switchProfile(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	return cmd
}

func switchProfile(cfg *config.ProfileSwitch, in io.Reader, out io.Writer, args []string) error {
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
		name, err = selectProfile(st, prompt.New(in, out), "Select a profile to switch to:")
		if err != nil {
			return err
		}
	}

	if err := st.SetActive(name); err != nil {
		return err
	}
	if err := storage.Save(st); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Switched to profile %q.\n", green("✓"), name)
	return nil
}
