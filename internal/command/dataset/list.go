package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/print"
	"github.com/spf13/cobra"
)

func newList(dataset *config.Dataset) *cobra.Command {
	cfg := &config.DatasetList{Dataset: dataset}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the organization's datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func list(ctx context.Context, cfg *config.DatasetList, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	datasets, err := cfg.Client.ListDatasets(ctx)
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case config.OutputFormatDefault:
		return printDatasetTable(out, datasets)
	case config.OutputFormatJSON:
		return print.RawJSON(out, datasets)
	case config.OutputFormatYAML:
		return print.RawYAML(out, datasets)
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
}
