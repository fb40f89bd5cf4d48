package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Time accepts the API's timestamps, which come without a zone suffix.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

type Dataset struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	CreatedAt           Time            `json:"created_at"`
	UpdatedAt           Time            `json:"updated_at"`
	OrganizationID      string          `json:"organization_id"`
	ServerConfiguration json.RawMessage `json:"server_configuration,omitempty"`
}

type DatasetUsage struct {
	ID         string `json:"id"`
	DatasetID  string `json:"dataset_id"`
	ChunkCount int64  `json:"chunk_count"`
}

// DatasetAndUsage pairs a dataset with its usage counters, as returned
// by the organization listing.
type DatasetAndUsage struct {
	Dataset      Dataset      `json:"dataset"`
	DatasetUsage DatasetUsage `json:"dataset_usage"`
}

type CreateDatasetRequest struct {
	DatasetName         string          `json:"dataset_name"`
	OrganizationID      string          `json:"organization_id"`
	ServerConfiguration json.RawMessage `json:"server_configuration,omitempty"`
	TrackingID          string          `json:"tracking_id,omitempty"`
}

// ListDatasets returns all datasets of the client's organization.
func (c *Client) ListDatasets(ctx context.Context) ([]DatasetAndUsage, error) {
	var datasets []DatasetAndUsage
	path := "/api/dataset/organization/" + url.PathEscape(c.orgID)
	if err := c.do(ctx, http.MethodGet, path, orgScope(c.orgID), nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

func (c *Client) CreateDataset(ctx context.Context, req *CreateDatasetRequest) (*Dataset, error) {
	if req.OrganizationID == "" {
		req.OrganizationID = c.orgID
	}
	var dataset Dataset
	if err := c.do(ctx, http.MethodPost, "/api/dataset", orgScope(c.orgID), req, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

func (c *Client) DeleteDataset(ctx context.Context, datasetID string) error {
	path := "/api/dataset/" + url.PathEscape(datasetID)
	return c.do(ctx, http.MethodDelete, path, datasetScope(datasetID), nil, nil)
}
