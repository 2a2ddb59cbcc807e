// Package jobsearch provides the HTTP client for the upstream job search
// provider (a JSearch-style RapidAPI endpoint).
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/job-scout/internal/matching"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxErrorBodyBytes caps how much of a failed response body is retained for
// diagnostics.
const maxErrorBodyBytes = 512

// UpstreamError represents a non-success response from the search provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("job search provider returned status %d: %s", e.Status, e.Body)
}

// Options configures the client.
type Options struct {
	BaseURL string // provider endpoint, e.g. https://jsearch.p.rapidapi.com
	APIKey  string
	APIHost string // X-RapidAPI-Host header value
	Timeout time.Duration
}

// Client calls the upstream job search API. It implements matching.Provider.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
}

// NewClient creates a provider client.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("job search base URL is required")
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("job search API key is required")
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		apiHost:    opts.APIHost,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// searchResponse is the provider's response envelope. Items stay untyped so
// the original records survive normalization verbatim.
type searchResponse struct {
	Data []map[string]any `json:"data"`
}

// Search performs one search call and returns the raw job records. A
// non-success status surfaces as an UpstreamError carrying the status and a
// truncated body.
func (c *Client) Search(ctx context.Context, query string) ([]matching.RawJob, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("num_pages", "1")
	requestURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	if c.apiHost != "" {
		req.Header.Set("X-RapidAPI-Host", c.apiHost)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	records := make([]matching.RawJob, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		records = append(records, matching.RawJob(item))
	}
	return records, nil
}
