// Package transport provides the shared HTTP client used by all feed
// adapters, with JSON decoding helpers that map upstream failures to typed
// errors.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/orbitwatch/orbitwatch/pkg/errors"
)

// DefaultTimeout is the default timeout for feed HTTP requests.
const DefaultTimeout = 30 * time.Second

// userAgent identifies orbitwatch to upstream feeds.
const userAgent = "orbitwatch/1.0 (+https://github.com/orbitwatch/orbitwatch)"

// Client wraps http.Client with feed-oriented helpers.
type Client struct {
	http *http.Client
}

// New creates a transport client with the default timeout.
func New() *Client {
	return NewWithTimeout(DefaultTimeout)
}

// NewWithTimeout creates a transport client with a custom timeout. Feeds
// with untrusted latency (Launch Library) use a tighter bound.
func NewWithTimeout(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request against a feed endpoint.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapAPI("transport", url, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return c.http.Do(req)
}

// GetJSON fetches url and decodes the JSON body into target. A non-200
// status or malformed payload is returned as a typed error attributed to
// feed.
func (c *Client) GetJSON(ctx context.Context, feed, url string, target any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return &errors.APIError{
			Feed:     feed,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	return DecodeResponse(feed, resp, target)
}

// DecodeResponse decodes a JSON response into the target structure.
func DecodeResponse(feed string, resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.APIError{
			Feed:       feed,
			StatusCode: resp.StatusCode,
			Message:    "failed to read response body",
			Err:        err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Feed:       feed,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", feed, err)
	}

	return nil
}
