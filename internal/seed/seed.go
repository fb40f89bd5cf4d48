// Package seed provides the bundled example corpora behind `trieve
// dataset example`. Each corpus is fetched from a pinned snapshot URL,
// parsed into chunk-group and chunk payloads, and uploaded through the
// ingestion API.
package seed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devflowinc/trieve-CLI/internal/api"
)

// Snapshot URLs of the example corpora. Pinned to specific revisions so
// repeated runs seed the same data.
const (
	ycCompaniesURL = "https://gist.githubusercontent.com/densumesh/127bd58e026ccadaea58dc1aa3ad9648/raw/1dcf2fe14954047064ef5cfbec43bf74d54365d8/yc-company-data.csv"

	philosophizeGroupsURL = "https://gist.githubusercontent.com/densumesh/241be979beb48b05a01591b7ff40ddca/raw/83ad1c0c75c016832368183fc2cb86cb3d7f9c50/philosiphizethis-epLinks.csv"
	philosophizeChunksURL = "https://gist.githubusercontent.com/densumesh/33f34fa0ca115723b2c25a862a2d2a4b/raw/f282e21f12ccaa2ad10a8fa831d238fa4a8aa1b0/philosiphizethis-chunksToCreate.csv"

	trieveDocsURL   = "https://gist.githubusercontent.com/skeptrunedev/dc34aa54f7810c913794ad045cc767d2/raw/4205cf3ab0dd55fccdc3a336bc26ce6a16b82cf3/trieve-mintlify-docs-chunks.json"
	mintlifyDocsURL = "https://gist.githubusercontent.com/densumesh/0400c4519e55dfcd8d8d2e4a171fc531/raw/df73e08c4173128ba321f506ff763b2bdce4e273/mintlify_chunks.json"
)

// Corpus is one parsed example data set, ready for ingestion. Groups
// must be created before the chunks that reference them by tracking ID.
type Corpus struct {
	Groups []api.CreateChunkGroupRequest
	Chunks []api.ChunkReqPayload
}

// Example is one corpus on the `dataset example` menu.
type Example struct {
	Name string
	Slug string

	fetch func(ctx context.Context) (*Corpus, error)
}

// Fetch downloads and parses the example's snapshot.
func (e Example) Fetch(ctx context.Context) (*Corpus, error) {
	return e.fetch(ctx)
}

// Examples lists the bundled corpora in menu order.
func Examples() []Example {
	return []Example{
		{Name: "YC Companies", Slug: "yc-companies", fetch: fetchYCCompanies},
		{Name: "Philosophize This", Slug: "philosophize-this", fetch: fetchPhilosophizeThis},
		{Name: "Trieve Docs", Slug: "trieve-docs", fetch: fetchDocsJSON(trieveDocsURL)},
		{Name: "Mintlify Docs", Slug: "mintlify-docs", fetch: fetchDocsJSON(mintlifyDocsURL)},
	}
}

// Lookup finds an example by its slug.
func Lookup(slug string) (Example, bool) {
	for _, e := range Examples() {
		if e.Slug == slug {
			return e, true
		}
	}
	return Example{}, false
}

// The gist snapshots are a few MB at most; one minute leaves room for
// slow links.
var corpusClient = &http.Client{Timeout: time.Minute}

func get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := corpusClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching corpus: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching corpus %s: status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}
