package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/clio"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/print"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// defaultServerConfiguration mirrors the dashboard's defaults for new
// datasets.
const defaultServerConfiguration = `{
	"LLM_BASE_URL": "",
	"LLM_DEFAULT_MODEL": "",
	"EMBEDDING_BASE_URL": "https://embedding.trieve.ai",
	"RAG_PROMPT": "",
	"EMBEDDING_SIZE": 768,
	"N_RETRIEVALS_TO_INCLUDE": 8,
	"DUPLICATE_DISTANCE_THRESHOLD": 1.1,
	"DOCUMENT_UPLOAD_FEATURE": true,
	"DOCUMENT_DOWNLOAD_FEATURE": true,
	"COLLISIONS_ENABLED": false,
	"FULLTEXT_ENABLED": true
}`

func newCreate(dataset *config.Dataset) *cobra.Command {
	cfg := &config.DatasetCreate{Dataset: dataset}

	cmd := &cobra.Command{
		Use:   "create [--name NAME] [-f SERVER_CONFIG]",
		Short: "Create a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return create(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cfg.AddFlags(cmd)

	return cmd
}

func create(ctx context.Context, cfg *config.DatasetCreate, in io.Reader, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}

	ds, err := createDataset(ctx, cfg, in, out)
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case config.OutputFormatDefault:
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s Created dataset %q\n", green("✓"), ds.Name)
		return printDatasetDetails(out, ds)
	case config.OutputFormatJSON:
		return print.RawJSON(out, ds)
	case config.OutputFormatYAML:
		return print.RawYAML(out, ds)
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
}

// createDataset runs the create operation without printing the result,
// so that other commands (dataset example) can reuse it. The caller
// must have initialized the API config.
func createDataset(ctx context.Context, cfg *config.DatasetCreate, in io.Reader, out io.Writer) (*api.Dataset, error) {
	name := cfg.Name
	if name == "" {
		var err error
		name, err = prompt.New(in, out).Text("Dataset name", "", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, errors.New("a dataset name is required")
		}
	}

	serverConfig := json.RawMessage(defaultServerConfiguration)
	if cfg.Filename != "" {
		loaded, err := clio.LoadYAML[json.RawMessage](cfg.Filename)
		if err != nil {
			return nil, fmt.Errorf("loading server configuration: %w", err)
		}
		serverConfig = *loaded
	}

	ds, err := cfg.Client.CreateDataset(ctx, &api.CreateDatasetRequest{
		DatasetName:         name,
		ServerConfiguration: serverConfig,
		TrackingID:          cfg.TrackingID,
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}
