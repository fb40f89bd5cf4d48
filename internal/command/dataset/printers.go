package dataset

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/trtab"
	"github.com/devflowinc/trieve-CLI/internal/utils"
	"github.com/xeonx/timeago"
)

type datasetRow struct {
	ID      string `trtab:"ID"`
	Name    string `trtab:"NAME,trunc"`
	Created string `trtab:"CREATED"`
	Chunks  int64  `trtab:"CHUNKS"`
}

func printDatasetTable(out io.Writer, datasets []api.DatasetAndUsage) error {
	t := trtab.New[datasetRow](out)
	t.AddHeader()
	for _, d := range datasets {
		t.AddRow(datasetRow{
			ID:      d.Dataset.ID,
			Name:    d.Dataset.Name,
			Created: timeago.NoMax(timeago.English).Format(d.Dataset.CreatedAt.Time),
			Chunks:  d.DatasetUsage.ChunkCount,
		})
	}
	return t.Flush()
}

func printDatasetDetails(out io.Writer, ds *api.Dataset) error {
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintf(tw, "ID:\t%s\n", ds.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", ds.Name)
	fmt.Fprintf(tw, "Organization:\t%s\n", ds.OrganizationID)
	fmt.Fprintf(tw, "Created:\t%s\n", utils.FormatTimestamp(ds.CreatedAt.Time))

	return tw.Flush()
}
