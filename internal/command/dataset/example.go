package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/devflowinc/trieve-CLI/internal/seed"
	"github.com/devflowinc/trieve-CLI/internal/spinner"
	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newExample(dataset *config.Dataset) *cobra.Command {
	cfg := &config.DatasetExample{Dataset: dataset}

	cmd := &cobra.Command{
		Use:   "example [DATASET_ID]",
		Short: "Load an example corpus into a dataset",
		Long: `Load one of the bundled example corpora into a dataset, creating the
dataset first if asked to. Use it to get searchable data without writing
an ingestion script.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return example(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	cfg.AddFlags(cmd)

	return cmd
}

func example(ctx context.Context, cfg *config.DatasetExample, in io.Reader, out io.Writer, args []string) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	if len(args) > 0 {
		if cfg.DatasetID != "" && cfg.DatasetID != args[0] {
			return errors.New("can't specify both a DATASET_ID argument and --dataset-id")
		}
		cfg.DatasetID = args[0]
	}

	p := prompt.New(in, out)

	datasetID, err := targetDataset(ctx, cfg, p, in, out)
	if err != nil {
		return err
	}
	ex, err := chooseExample(cfg, p)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Adding %s to dataset %s\n", ex.Name, datasetID)
	spin := spinner.Start(out, "Seeding")
	spin.Messagef("downloading %s", ex.Name)

	corpus, err := ex.Fetch(ctx)
	if err != nil {
		spin.StopFail()
		return err
	}
	stats, err := seed.Upload(ctx, cfg.Client, datasetID, corpus, spin.Messagef)
	if err != nil {
		spin.StopFail()
		return err
	}
	spin.StopMessage(fmt.Sprintf("uploaded %d chunks", stats.Chunks))
	spin.Stop()

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Seeded dataset %s with %d chunks (%d groups, %s)\n",
		green("✓"), datasetID, stats.Chunks, stats.Groups,
		units.HumanSize(float64(stats.PayloadSize)))
	return nil
}

// targetDataset resolves which dataset to seed: the explicit ID if one
// was given, otherwise a freshly created or interactively selected one.
func targetDataset(ctx context.Context, cfg *config.DatasetExample, p *prompt.Prompter, in io.Reader, out io.Writer) (string, error) {
	if cfg.DatasetID != "" {
		if _, err := uuid.Parse(cfg.DatasetID); err != nil {
			return "", fmt.Errorf("invalid dataset ID %q: %v", cfg.DatasetID, err)
		}
		return cfg.DatasetID, nil
	}

	createNew, err := p.Confirm("Would you like to create a new dataset?", true)
	if err != nil {
		return "", err
	}
	if createNew {
		createCfg := &config.DatasetCreate{Dataset: cfg.Dataset}
		ds, err := createDataset(ctx, createCfg, in, out)
		if err != nil {
			return "", err
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s Created dataset %q (%s)\n", green("✓"), ds.Name, ds.ID)
		return ds.ID, nil
	}

	selected, err := selectDataset(ctx, cfg.Dataset, p, "Select a dataset to add seed data to:")
	if err != nil {
		return "", err
	}
	return selected.Dataset.ID, nil
}

// chooseExample resolves which corpus to load, from the --example flag
// or a menu.
func chooseExample(cfg *config.DatasetExample, p *prompt.Prompter) (seed.Example, error) {
	if cfg.Example != "" {
		ex, ok := seed.Lookup(cfg.Example)
		if !ok {
			return seed.Example{}, fmt.Errorf("unknown example %q (one of: %s)", cfg.Example, exampleSlugs())
		}
		return ex, nil
	}

	examples := seed.Examples()
	options := make([]string, len(examples))
	for i, e := range examples {
		options[i] = e.Name
	}
	choice, err := p.Select("Select an example dataset to add:", options)
	if err != nil {
		return seed.Example{}, err
	}
	for i, option := range options {
		if option == choice {
			return examples[i], nil
		}
	}
	return seed.Example{}, fmt.Errorf("no example for selection %q", choice)
}

func exampleSlugs() string {
	slugs := ""
	for i, e := range seed.Examples() {
		if i > 0 {
			slugs += ", "
		}
		slugs += e.Slug
	}
	return slugs
}
