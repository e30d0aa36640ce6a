// Package launchlib fetches launches from the Launch Library 2 API
// (thespacedevs.com). LL2 is a supplementary, best-effort feed: it fills in
// launches the SpaceX API has not cataloged and powers the live launch view.
// Its latency is untrusted, so every request carries a 10-second timeout.
package launchlib

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/orbitwatch/orbitwatch/internal/transport"
)

// DefaultBaseURL is the Launch Library 2 API root.
const DefaultBaseURL = "https://ll.thespacedevs.com/2.2.0"

// RequestTimeout bounds every LL2 request.
const RequestTimeout = 10 * time.Second

const feedName = "launchlib"

// Client fetches Launch Library 2 launches.
type Client struct {
	baseURL string
	http    *transport.Client
}

// New creates a Launch Library client.
func New() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		http:    transport.NewWithTimeout(RequestTimeout),
	}
}

// NewWithBaseURL creates a client against a custom API root, used in tests.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    transport.NewWithTimeout(RequestTimeout),
	}
}

// Search fetches launches matching the query, newest first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Launch, error) {
	u := fmt.Sprintf("%s/launch/?search=%s&limit=%d&ordering=-net&format=json",
		c.baseURL, url.QueryEscape(query), limit)
	return c.fetch(ctx, u)
}

// Upcoming fetches scheduled launches matching the query, soonest first.
func (c *Client) Upcoming(ctx context.Context, query string, limit int) ([]Launch, error) {
	u := fmt.Sprintf("%s/launch/upcoming/?search=%s&limit=%d&format=json",
		c.baseURL, url.QueryEscape(query), limit)
	return c.fetch(ctx, u)
}

// Previous fetches completed launches matching the query, newest first.
func (c *Client) Previous(ctx context.Context, query string, limit int) ([]Launch, error) {
	u := fmt.Sprintf("%s/launch/previous/?search=%s&limit=%d&format=json",
		c.baseURL, url.QueryEscape(query), limit)
	return c.fetch(ctx, u)
}

func (c *Client) fetch(ctx context.Context, u string) ([]Launch, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	var resp launchResponse
	if err := c.http.GetJSON(ctx, feedName, u, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
