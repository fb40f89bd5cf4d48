package apikey

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/print"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGenerate(apikey *config.APIKey) *cobra.Command {
	cfg := &config.APIKeyGenerate{APIKey: apikey}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new API key for the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cfg.AddFlags(cmd)

	return cmd
}

var roleNames = []string{api.RoleRead.String(), api.RoleReadWrite.String()}

func generate(ctx context.Context, cfg *config.APIKeyGenerate, in io.Reader, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}

	p := prompt.New(in, out)

	name := cfg.Name
	if name == "" {
		var err error
		name, err = p.Text("What should the API key be named?",
			"This name will help you identify the API Key in the future.", "")
		if err != nil {
			return err
		}
		if name == "" {
			return errors.New("an API key name is required")
		}
	}

	roleName := cfg.Role
	if roleName == "" {
		var err error
		roleName, err = p.Select("What permissions should the API key have?", roleNames)
		if err != nil {
			return err
		}
	}
	role, err := api.ParseRole(roleName)
	if err != nil {
		return err
	}

	key, err := cfg.Client.CreateAPIKey(ctx, name, role)
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case config.OutputFormatDefault:
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s Generated API key %q with %s access.\n", green("✓"), name, role)
		// The API never returns the key again, so this is the user's
		// one chance to copy it.
		fmt.Fprintf(out, "\nStore it somewhere safe, it cannot be retrieved later:\n\n    %s\n", key.APIKey)
		return nil
	case config.OutputFormatJSON:
		return print.RawJSON(out, key)
	case config.OutputFormatYAML:
		return print.RawYAML(out, key)
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
}
