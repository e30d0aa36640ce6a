package service

import (
	"context"

	"github.com/orbitwatch/orbitwatch/internal/feeds/celestrak"
	"github.com/orbitwatch/orbitwatch/internal/feeds/launchlib"
	"github.com/orbitwatch/orbitwatch/internal/feeds/spacex"
)

// OperatorFeed is the SpaceX API surface the service consumes. Starlink is
// failure-tolerant and returns an empty slice when the feed is down; the
// launch collections propagate errors because mission assembly needs all of
// them.
type OperatorFeed interface {
	Starlink(ctx context.Context) []spacex.StarlinkEntry
	Launches(ctx context.Context) ([]spacex.RawLaunch, error)
	Cores(ctx context.Context) ([]spacex.Core, error)
	Rockets(ctx context.Context) ([]spacex.Rocket, error)
	Launchpads(ctx context.Context) ([]spacex.Launchpad, error)
	Payloads(ctx context.Context) ([]spacex.Payload, error)
}

// ElementsFeed is the CelesTrak GP surface: orbital element sets for a
// named satellite group, empty on any failure.
type ElementsFeed interface {
	Group(ctx context.Context, group string) []celestrak.GP
}

// ScheduleFeed is the Launch Library 2 surface, used best-effort for the
// mission supplement and as the only source for the live launch view.
type ScheduleFeed interface {
	Search(ctx context.Context, query string, limit int) ([]launchlib.Launch, error)
	Upcoming(ctx context.Context, query string, limit int) ([]launchlib.Launch, error)
	Previous(ctx context.Context, query string, limit int) ([]launchlib.Launch, error)
}
