// Package api is a minimal client for the Trieve HTTP API, covering the
// endpoints the CLI drives.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/devflowinc/trieve-CLI/internal/buildinfo"
)

// Routing headers. Most endpoints are scoped to an organization or a
// dataset through these rather than through the URL alone.
const (
	OrganizationHeader = "TR-Organization"
	DatasetHeader      = "TR-Dataset"
)

// Client issues authenticated requests against one API endpoint. Use
// NewClient; the zero value is not usable.
type Client struct {
	baseURL string
	apiKey  string
	orgID   string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, apiKey, orgID string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		orgID:   orgID,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// Error is a non-success response. Message carries the server's own
// message unmodified.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error %d", e.StatusCode)
	}
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	apiErr := &Error{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

func orgScope(orgID string) http.Header {
	h := http.Header{}
	h.Set(OrganizationHeader, orgID)
	return h
}

func datasetScope(datasetID string) http.Header {
	h := http.Header{}
	h.Set(DatasetHeader, datasetID)
	return h
}

// do sends one request and decodes the JSON response into out, which
// may be nil for endpoints whose response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, routing http.Header, in, out any) error {
	var bodyReader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", buildinfo.UserAgent())
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The API expects the bare key, not a Bearer scheme.
	req.Header.Set("Authorization", c.apiKey)
	for k, vs := range routing {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	c.log.Debug("api request", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.log.Debug("api response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return newAPIError(resp)
	}
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
