package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"imagepanel/internal/domain"
)

const generatePath = "/api/generate"

// maxErrorBody bounds how much of an error response body gets echoed back to
// the user.
const maxErrorBody = 4 << 10

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client calls the external generation backend. It has no state beyond its
// HTTP client; one instance is shared by every session.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
	}
}

// Generate issues one POST to the backend and returns the normalized image
// entries. Cancelling ctx aborts the call; callers see context.Canceled.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) ([]ImageResult, error) {
	if c == nil {
		return nil, errors.New("imagegen client not configured")
	}
	if c.baseURL == "" {
		return nil, errors.New("imagegen: base URL is missing")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("server error: %d %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, domain.ErrBadResponse
	}
	entries, err := normalizeImages(out)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// normalizeImages validates the images field and collapses the accepted entry
// shapes into ImageResult values. A response whose images field is not an
// array is surfaced with the backend's own description when it carries one.
func normalizeImages(out generateResponse) ([]ImageResult, error) {
	raw := bytes.TrimSpace(out.Images)
	if len(raw) == 0 || raw[0] != '[' {
		if msg := describeError(out); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, domain.ErrBadResponse
	}
	var entries []imageEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, domain.ErrBadResponse
	}
	results := make([]ImageResult, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.URL) == "" {
			continue
		}
		results = append(results, ImageResult{ID: entry.ID, URL: entry.URL})
	}
	return results, nil
}

func describeError(out generateResponse) string {
	if msg := strings.TrimSpace(out.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(out.Message)
}
