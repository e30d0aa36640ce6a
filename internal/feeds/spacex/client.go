// Package spacex fetches the SpaceX v4 API collections: the Starlink
// catalog (versions, launch links, live positions) and the launch-related
// collections joined into missions.
//
// The Starlink fetch is tolerant of total feed failure and returns an empty
// slice so reconciliation can proceed from CelesTrak alone. The launch
// collections propagate errors: mission assembly needs all five and there is
// no partial merge.
package spacex

import (
	"context"

	"github.com/orbitwatch/orbitwatch/internal/transport"
	"github.com/orbitwatch/orbitwatch/pkg/logging"
)

// DefaultBaseURL is the SpaceX v4 API root.
const DefaultBaseURL = "https://api.spacexdata.com/v4"

const feedName = "spacex"

// Client fetches SpaceX API collections.
type Client struct {
	baseURL string
	http    *transport.Client
}

// New creates a SpaceX API client.
func New() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		http:    transport.New(),
	}
}

// NewWithBaseURL creates a client against a custom API root, used in tests.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    transport.New(),
	}
}

// Starlink fetches the Starlink satellite catalog. Any failure yields an
// empty result, not an error: a missing operator feed degrades the merge,
// it does not abort it.
func (c *Client) Starlink(ctx context.Context) []StarlinkEntry {
	ctx = logging.WithFeed(ctx, feedName)

	var entries []StarlinkEntry
	if err := c.http.GetJSON(ctx, feedName, c.baseURL+"/starlink", &entries); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("SpaceX Starlink feed unavailable")
		return nil
	}
	return entries
}

// Launches fetches the full launch collection.
func (c *Client) Launches(ctx context.Context) ([]RawLaunch, error) {
	var launches []RawLaunch
	if err := c.http.GetJSON(ctx, feedName, c.baseURL+"/launches", &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// Cores fetches the booster core collection.
func (c *Client) Cores(ctx context.Context) ([]Core, error) {
	var cores []Core
	if err := c.http.GetJSON(ctx, feedName, c.baseURL+"/cores", &cores); err != nil {
		return nil, err
	}
	return cores, nil
}

// Rockets fetches the rocket collection.
func (c *Client) Rockets(ctx context.Context) ([]Rocket, error) {
	var rockets []Rocket
	if err := c.http.GetJSON(ctx, feedName, c.baseURL+"/rockets", &rockets); err != nil {
		return nil, err
	}
	return rockets, nil
}

// Launchpads fetches the launchpad collection.
func (c *Client) Launchpads(ctx context.Context) ([]Launchpad, error) {
	var pads []Launchpad
	if err := c.http.GetJSON(ctx, feedName, c.baseURL+"/launchpads", &pads); err != nil {
		return nil, err
	}
	return pads, nil
}

// Payloads fetches the payload collection.
func (c *Client) Payloads(ctx context.Context) ([]Payload, error) {
	var payloads []Payload
	if err := c.http.GetJSON(ctx, feedName, c.baseURL+"/payloads", &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}
