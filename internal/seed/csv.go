package seed

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/devflowinc/trieve-CLI/internal/api"
)

// restoreCommas undoes the comma escaping of the CSV snapshots, which
// store literal commas as semicolons.
func restoreCommas(s string) string {
	return strings.ReplaceAll(s, ";", ",")
}

// readRecords reads all CSV records after the header row.
func readRecords(r io.Reader, comma rune) ([][]string, error) {
	rd := csv.NewReader(r)
	rd.Comma = comma
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func fetchYCCompanies(ctx context.Context) (*Corpus, error) {
	body, err := get(ctx, ycCompaniesURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return parseYCCompanies(body)
}

// parseYCCompanies reads the YC company corpus: one chunk per company,
// columns chunk_html, link, tag_set ('|' separated), tracking_id,
// metadata (JSON). No chunk groups.
func parseYCCompanies(r io.Reader) (*Corpus, error) {
	records, err := readRecords(r, ',')
	if err != nil {
		return nil, fmt.Errorf("reading company records: %w", err)
	}

	corpus := &Corpus{Chunks: make([]api.ChunkReqPayload, 0, len(records))}
	for i, rec := range records {
		if len(rec) < 5 {
			return nil, fmt.Errorf("company record %d: %d columns, want 5", i+1, len(rec))
		}
		metadata := json.RawMessage(restoreCommas(rec[4]))
		if !json.Valid(metadata) {
			return nil, fmt.Errorf("company record %d: invalid metadata JSON", i+1)
		}
		corpus.Chunks = append(corpus.Chunks, api.ChunkReqPayload{
			ChunkHTML:          restoreCommas(rec[0]),
			Link:               restoreCommas(rec[1]),
			TagSet:             strings.Split(rec[2], "|"),
			TrackingID:         rec[3],
			Metadata:           metadata,
			UpsertByTrackingID: true,
		})
	}
	return corpus, nil
}

func fetchPhilosophizeThis(ctx context.Context) (*Corpus, error) {
	groupsBody, err := get(ctx, philosophizeGroupsURL)
	if err != nil {
		return nil, err
	}
	defer groupsBody.Close()

	chunksBody, err := get(ctx, philosophizeChunksURL)
	if err != nil {
		return nil, err
	}
	defer chunksBody.Close()

	return parsePhilosophizeThis(groupsBody, chunksBody)
}

// parsePhilosophizeThis reads the podcast corpus: one chunk group per
// episode from the links file, and '|'-separated chunk records carrying
// group tracking ID, tracking ID, HTML, timestamp, link, and the
// episode number and title as metadata.
func parsePhilosophizeThis(groups, chunks io.Reader) (*Corpus, error) {
	groupRecords, err := readRecords(groups, ',')
	if err != nil {
		return nil, fmt.Errorf("reading episode records: %w", err)
	}

	corpus := &Corpus{Groups: make([]api.CreateChunkGroupRequest, 0, len(groupRecords))}
	for i, rec := range groupRecords {
		if len(rec) < 2 {
			return nil, fmt.Errorf("episode record %d: %d columns, want 2", i+1, len(rec))
		}
		corpus.Groups = append(corpus.Groups, api.CreateChunkGroupRequest{
			Name:       rec[1],
			TrackingID: rec[1],
		})
	}

	chunkRecords, err := readRecords(chunks, '|')
	if err != nil {
		return nil, fmt.Errorf("reading transcript records: %w", err)
	}
	corpus.Chunks = make([]api.ChunkReqPayload, 0, len(chunkRecords))
	for i, rec := range chunkRecords {
		if len(rec) < 7 {
			return nil, fmt.Errorf("transcript record %d: %d columns, want 7", i+1, len(rec))
		}
		metadata, err := json.Marshal(struct {
			EpisodeNumber string `json:"episode_number"`
			EpisodeTitle  string `json:"episode_title"`
		}{rec[5], rec[6]})
		if err != nil {
			return nil, err
		}
		corpus.Chunks = append(corpus.Chunks, api.ChunkReqPayload{
			GroupTrackingIDs:   []string{rec[0]},
			TrackingID:         rec[1],
			ChunkHTML:          rec[2],
			TimeStamp:          rec[3],
			Link:               rec[4],
			Metadata:           metadata,
			UpsertByTrackingID: true,
		})
	}
	return corpus, nil
}
