// Package celestrak fetches CelesTrak GP (general perturbations) orbital
// element sets in their OMM JSON form. CelesTrak is the authoritative source
// for orbital elements during reconciliation; its records win field-level
// precedence over the operator feed.
package celestrak

import (
	"context"
	"fmt"

	"github.com/orbitwatch/orbitwatch/internal/transport"
	"github.com/orbitwatch/orbitwatch/pkg/logging"
)

// DefaultBaseURL is the CelesTrak GP query endpoint.
const DefaultBaseURL = "https://celestrak.org/NORAD/elements/gp.php"

const feedName = "celestrak"

// GP is one GP element set in CelesTrak's OMM JSON format.
type GP struct {
	ObjectName      string  `json:"OBJECT_NAME"`
	ObjectID        string  `json:"OBJECT_ID"`
	Epoch           string  `json:"EPOCH"`
	MeanMotion      float64 `json:"MEAN_MOTION"`
	Eccentricity    float64 `json:"ECCENTRICITY"`
	Inclination     float64 `json:"INCLINATION"`
	RAOfAscNode     float64 `json:"RA_OF_ASC_NODE"`
	ArgOfPericenter float64 `json:"ARG_OF_PERICENTER"`
	MeanAnomaly     float64 `json:"MEAN_ANOMALY"`
	NoradCatID      int     `json:"NORAD_CAT_ID"`
	Bstar           float64 `json:"BSTAR"`
	SemimajorAxis   float64 `json:"SEMIMAJOR_AXIS"`
	Period          float64 `json:"PERIOD"`
	Apoapsis        float64 `json:"APOAPSIS"`
	Periapsis       float64 `json:"PERIAPSIS"`
	ObjectType      string  `json:"OBJECT_TYPE"`
	RcsSize         string  `json:"RCS_SIZE"`
	CountryCode     string  `json:"COUNTRY_CODE"`
	LaunchDate      string  `json:"LAUNCH_DATE"`
	Site            string  `json:"SITE"`
	DecayDate       *string `json:"DECAY_DATE"`
	Decayed         int     `json:"DECAYED"`
}

// Client fetches CelesTrak GP element sets.
type Client struct {
	baseURL string
	http    *transport.Client
}

// New creates a CelesTrak client.
func New() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		http:    transport.New(),
	}
}

// NewWithBaseURL creates a client against a custom endpoint, used in tests.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    transport.New(),
	}
}

// Group fetches the element sets for a named satellite group. Any failure
// yields an empty result, not an error.
func (c *Client) Group(ctx context.Context, group string) []GP {
	ctx = logging.WithFeed(ctx, feedName)
	url := fmt.Sprintf("%s?GROUP=%s&FORMAT=json", c.baseURL, group)

	var sets []GP
	if err := c.http.GetJSON(ctx, feedName, url, &sets); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("group", group).Msg("CelesTrak GP feed unavailable")
		return nil
	}
	return sets
}
