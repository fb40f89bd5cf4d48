package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// MaxChunksPerRequest is the upper bound the ingestion endpoint accepts
// in one batch.
const MaxChunksPerRequest = 120

// ChunkReqPayload is one searchable chunk for ingestion. Empty fields
// stay off the wire.
type ChunkReqPayload struct {
	ChunkHTML          string          `json:"chunk_html,omitempty"`
	Link               string          `json:"link,omitempty"`
	TagSet             []string        `json:"tag_set,omitempty"`
	TrackingID         string          `json:"tracking_id,omitempty"`
	GroupTrackingIDs   []string        `json:"group_tracking_ids,omitempty"`
	TimeStamp          string          `json:"time_stamp,omitempty"`
	Metadata           json.RawMessage `json:"metadata,omitempty"`
	UpsertByTrackingID bool            `json:"upsert_by_tracking_id,omitempty"`
}

// CreateChunks ingests a batch of at most MaxChunksPerRequest chunks
// into the dataset. The body is a bare JSON array.
func (c *Client) CreateChunks(ctx context.Context, datasetID string, chunks []ChunkReqPayload) error {
	return c.do(ctx, http.MethodPost, "/api/chunk", datasetScope(datasetID), chunks, nil)
}

type CreateChunkGroupRequest struct {
	Name       string `json:"name,omitempty"`
	TrackingID string `json:"tracking_id,omitempty"`
}

// CreateChunkGroup creates a group that chunks can reference through
// their group tracking IDs.
func (c *Client) CreateChunkGroup(ctx context.Context, datasetID string, group *CreateChunkGroupRequest) error {
	return c.do(ctx, http.MethodPost, "/api/chunk_group", datasetScope(datasetID), group, nil)
}
