package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/jsonexact"
)

// docChunk is the record shape of the JSON documentation corpora. The
// strict decode catches drift between the pinned snapshots and this
// struct.
type docChunk struct {
	Link             string          `json:"link"`
	ChunkHTML        string          `json:"chunk_html"`
	Metadata         json.RawMessage `json:"metadata"`
	TrackingID       string          `json:"tracking_id"`
	TagSet           string          `json:"tag_set"`
	GroupTrackingIDs []string        `json:"group_tracking_ids,omitempty"`
}

func fetchDocsJSON(url string) func(ctx context.Context) (*Corpus, error) {
	return func(ctx context.Context) (*Corpus, error) {
		body, err := get(ctx, url)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		return parseDocsJSON(body)
	}
}

// parseDocsJSON reads a documentation corpus: a JSON array of chunks
// whose group tracking IDs double as the groups to create, one per
// distinct ID in order of first appearance.
func parseDocsJSON(r io.Reader) (*Corpus, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var docs []docChunk
	if err := jsonexact.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parsing docs corpus: %w", err)
	}

	corpus := &Corpus{Chunks: make([]api.ChunkReqPayload, 0, len(docs))}
	seen := make(map[string]bool)
	for _, doc := range docs {
		for _, id := range doc.GroupTrackingIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			corpus.Groups = append(corpus.Groups, api.CreateChunkGroupRequest{
				Name:       id,
				TrackingID: id,
			})
		}

		var tags []string
		if doc.TagSet != "" {
			tags = strings.Split(doc.TagSet, ",")
		}
		corpus.Chunks = append(corpus.Chunks, api.ChunkReqPayload{
			Link:               doc.Link,
			ChunkHTML:          doc.ChunkHTML,
			Metadata:           doc.Metadata,
			TrackingID:         doc.TrackingID,
			TagSet:             tags,
			GroupTrackingIDs:   doc.GroupTrackingIDs,
			UpsertByTrackingID: true,
		})
	}
	return corpus, nil
}
