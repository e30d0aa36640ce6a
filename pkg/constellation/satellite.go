// Package constellation defines the public domain types for the orbitwatch
// system: reconciled satellites, Starlink launches, constellation-wide
// statistics, and live launch data. These are the types returned by the
// service's read operations and serialized by the HTTP layer.
package constellation

// Status is the lifecycle status of a tracked satellite.
type Status string

// Satellite lifecycle states.
const (
	StatusActive  Status = "active"
	StatusDecayed Status = "decayed"
	StatusUnknown Status = "unknown"
)

// HealthStatus is the derived health classification of a satellite.
type HealthStatus string

// Health classifications, derived from the health score.
const (
	HealthNominal  HealthStatus = "nominal"
	HealthDegraded HealthStatus = "degraded"
	HealthCritical HealthStatus = "critical"
	HealthDecayed  HealthStatus = "decayed"
)

// Satellite is one reconciled Starlink satellite, merged from the SpaceX API
// and CelesTrak GP feeds and keyed by NORAD catalog number.
//
// Positional fields (Latitude, Longitude, HeightKm, VelocityKms) come only
// from the SpaceX feed and are nil when it has no live snapshot; HeightKm
// falls back to the mean of apoapsis and periapsis when CelesTrak supplied
// orbital elements.
type Satellite struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NoradID int    `json:"noradId"`
	Version string `json:"version"`
	Status  Status `json:"status"`

	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	HeightKm    *float64 `json:"heightKm"`
	VelocityKms *float64 `json:"velocityKms"`

	Inclination  float64 `json:"inclination"`
	Eccentricity float64 `json:"eccentricity"`
	Period       float64 `json:"period"`
	Apoapsis     float64 `json:"apoapsis"`
	Periapsis    float64 `json:"periapsis"`
	MeanMotion   float64 `json:"meanMotion"`
	Bstar        float64 `json:"bstar"`
	Epoch        string  `json:"epoch"`

	LaunchDate *string `json:"launchDate"`
	DecayDate  *string `json:"decayDate"`
	ObjectType string  `json:"objectType"`
	RcsSize    string  `json:"rcsSize"`
	Site       string  `json:"site"`
	ObjectID   string  `json:"objectId"`
	LaunchID   *string `json:"launchId"`

	HealthScore  int          `json:"healthScore"`
	HealthStatus HealthStatus `json:"healthStatus"`
	AgeInDays    int          `json:"ageInDays"`
}

// Satellite version tags. NoVersion marks satellites whose generation could
// not be determined from any source.
const (
	VersionV2Mini    = "v2.0-mini"
	VersionV15       = "v1.5"
	VersionV10       = "v1.0"
	VersionPrototype = "prototype"
	NoVersion        = "unknown"
)
