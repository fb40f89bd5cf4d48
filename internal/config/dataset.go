package config

import "github.com/spf13/cobra"

type Dataset struct {
	*API
}

type DatasetCreate struct {
	*Dataset

	// Flags
	Name       string
	Filename   string
	TrackingID string
}

func (c *DatasetCreate) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Name, "name", "n", "", "name for the new dataset (prompted if empty)")
	cmd.Flags().StringVarP(&c.Filename, "filename", "f", "", "YAML or JSON file overriding the default server configuration")
	cmd.Flags().StringVar(&c.TrackingID, "tracking-id", "", "external tracking ID for the new dataset")
}

type DatasetList struct {
	*Dataset
}

type DatasetDelete struct {
	*Dataset
}

type DatasetExample struct {
	*Dataset

	// Flags
	DatasetID string
	Example   string
}

func (c *DatasetExample) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.DatasetID, "dataset-id", "", "dataset to seed (prompted if empty)")
	cmd.Flags().StringVar(&c.Example, "example", "", "example corpus to load (prompted if empty)")
}
