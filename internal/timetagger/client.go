// Package timetagger is the single chokepoint for all outbound calls
// to a TimeTagger instance. It carries the base URL and auth token
// fixed at process start, parses JSON responses into typed values,
// and surfaces failures as the tagged errors in errors.go.
package timetagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody caps how much of an upstream error body is retained.
const maxErrorBody = 500

// defaultTimeout bounds a single API call when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to one TimeTagger instance. It holds no state beyond
// the immutable base URL and token, so it is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPDoer
}

// New creates a client for the TimeTagger API at baseURL
// (e.g. https://timetagger.example.com/timetagger/api/v2).
// Returns a ConfigError if the URL or token is missing or malformed.
func New(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, NewConfigError("API base URL is not set")
	}
	if token == "" {
		return nil, NewConfigError("API token is not set")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, NewConfigError("API base URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return nil, NewConfigError("API base URL is missing a server/domain")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Server returns the host portion of the base URL.
func (c *Client) Server() string {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// FetchRecords returns every record overlapping [t1, t2].
func (c *Client) FetchRecords(ctx context.Context, t1, t2 int64) ([]Record, error) {
	body, err := c.get(ctx, fmt.Sprintf("/records?timerange=%d-%d", t1, t2))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Records []Record `json:"records"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing records response: %w", err)
	}
	return resp.Records, nil
}

// PutRecords pushes one or more records. A nil error means the HTTP
// exchange succeeded; callers must still check PutResult.Accepted,
// because the server may reject individual records.
func (c *Client) PutRecords(ctx context.Context, records []Record) (PutResult, error) {
	return c.put(ctx, "/records", records)
}

// FetchSettings returns all settings.
func (c *Client) FetchSettings(ctx context.Context) ([]Setting, error) {
	body, err := c.get(ctx, "/settings")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Settings []Setting `json:"settings"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing settings response: %w", err)
	}
	return resp.Settings, nil
}

// PutSettings pushes one or more settings. Same acceptance contract
// as PutRecords.
func (c *Client) PutSettings(ctx context.Context, settings []Setting) (PutResult, error) {
	return c.put(ctx, "/settings", settings)
}

// FetchUpdatesSince returns every record changed after the watermark,
// plus the server's current time. A watermark of 0 is a full-history
// scan and the only way to discover a record's current field values.
func (c *Client) FetchUpdatesSince(ctx context.Context, since int64) (UpdateSet, error) {
	body, err := c.get(ctx, fmt.Sprintf("/updates?since=%d", since))
	if err != nil {
		return UpdateSet{}, err
	}

	var set UpdateSet
	if err := json.Unmarshal(body, &set); err != nil {
		return UpdateSet{}, fmt.Errorf("parsing updates response: %w", err)
	}
	return set, nil
}

// get performs an authenticated GET and returns the raw body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req)
}

// put performs an authenticated PUT with a JSON array body and parses
// the accepted/errors response shared by the records and settings
// endpoints.
func (c *Client) put(ctx context.Context, path string, items any) (PutResult, error) {
	jsonBody, err := json.Marshal(items)
	if err != nil {
		return PutResult{}, fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return PutResult{}, fmt.Errorf("creating request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return PutResult{}, err
	}

	var result PutResult
	if err := json.Unmarshal(body, &result); err != nil {
		return PutResult{}, fmt.Errorf("parsing put response: %w", err)
	}
	return result, nil
}

// do sends the request with auth headers and returns the body, or an
// UpstreamError for any non-200 status.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("authtoken", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errBody := string(body)
		if len(errBody) > maxErrorBody {
			errBody = errBody[:maxErrorBody]
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Body: errBody}
	}

	return body, nil
}
