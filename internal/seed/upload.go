package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"golang.org/x/sync/errgroup"
)

// uploadParallelism bounds the concurrent batch uploads so large
// corpora don't flood the ingestion API.
const uploadParallelism = 4

// UploadStats summarizes one completed upload.
type UploadStats struct {
	Groups      int
	Chunks      int
	PayloadSize int64
}

// Upload pushes a corpus into the dataset: chunk groups first, since
// chunks reference them by tracking ID, then the chunks in batches of
// at most api.MaxChunksPerRequest, uploaded concurrently. The progress
// callback, if non-nil, receives printf-style status updates.
func Upload(ctx context.Context, client *api.Client, datasetID string, corpus *Corpus, progress func(format string, args ...any)) (*UploadStats, error) {
	if progress == nil {
		progress = func(string, ...any) {}
	}

	for i, group := range corpus.Groups {
		progress("creating chunk group %d/%d", i+1, len(corpus.Groups))
		if err := client.CreateChunkGroup(ctx, datasetID, &group); err != nil {
			return nil, fmt.Errorf("creating chunk group %q: %w", group.TrackingID, err)
		}
	}

	// Measured once up front; the per-batch requests marshal the same
	// payloads again inside the client.
	raw, err := json.Marshal(corpus.Chunks)
	if err != nil {
		return nil, err
	}
	stats := &UploadStats{
		Groups:      len(corpus.Groups),
		Chunks:      len(corpus.Chunks),
		PayloadSize: int64(len(raw)),
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadParallelism)
	for start := 0; start < len(corpus.Chunks); start += api.MaxChunksPerRequest {
		end := min(start+api.MaxChunksPerRequest, len(corpus.Chunks))
		batch := corpus.Chunks[start:end]
		g.Go(func() error {
			if err := client.CreateChunks(gctx, datasetID, batch); err != nil {
				return fmt.Errorf("uploading chunks: %w", err)
			}
			progress("uploaded %d/%d chunks", done.Add(int64(len(batch))), len(corpus.Chunks))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
