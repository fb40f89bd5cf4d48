package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
)

// datasetLabel is the menu form of a dataset: the name first, the ID to
// disambiguate datasets sharing one.
func datasetLabel(d api.DatasetAndUsage) string {
	return fmt.Sprintf("%s - %s", d.Dataset.Name, d.Dataset.ID)
}

// selectDataset lists the organization's datasets and asks the user to
// pick one.
func selectDataset(ctx context.Context, cfg *config.Dataset, p *prompt.Prompter, label string) (*api.DatasetAndUsage, error) {
	datasets, err := cfg.Client.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}
	if len(datasets) == 0 {
		return nil, errors.New("the organization has no datasets")
	}

	options := make([]string, len(datasets))
	for i, d := range datasets {
		options[i] = datasetLabel(d)
	}
	choice, err := p.Select(label, options)
	if err != nil {
		return nil, err
	}
	for i, option := range options {
		if option == choice {
			return &datasets[i], nil
		}
	}
	return nil, fmt.Errorf("no dataset for selection %q", choice)
}
