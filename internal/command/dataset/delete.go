package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newDelete(dataset *config.Dataset) *cobra.Command {
	cfg := &config.DatasetDelete{Dataset: dataset}

	cmd := &cobra.Command{
		Use:   "delete [DATASET_ID]",
		Short: "Delete a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return delete(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	return cmd
}

func delete(ctx context.Context, cfg *config.DatasetDelete, in io.Reader, out io.Writer, args []string) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}

	var datasetID string
	if len(args) > 0 {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid dataset ID %q: %v", args[0], err)
		}
		datasetID = args[0]
	} else {
		p := prompt.New(in, out)
		selected, err := selectDataset(ctx, cfg.Dataset, p, "Select a dataset to delete:")
		if err != nil {
			return err
		}
		sure, err := p.Confirm("Are you sure you want to delete this dataset?", false)
		if err != nil {
			return err
		}
		if !sure {
			fmt.Fprintln(out, "Dataset deletion cancelled.")
			return nil
		}
		datasetID = selected.Dataset.ID
	}

	if err := cfg.Client.DeleteDataset(ctx, datasetID); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Deleted dataset %s\n", green("✓"), datasetID)
	return nil
}
