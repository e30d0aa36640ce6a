package spacex

// SpaceTrack is the space-track.org snapshot embedded in each SpaceX
// Starlink record. Field names follow the upstream OMM-style schema.
type SpaceTrack struct {
	ObjectName    string  `json:"OBJECT_NAME"`
	ObjectID      string  `json:"OBJECT_ID"`
	NoradCatID    int     `json:"NORAD_CAT_ID"`
	LaunchDate    string  `json:"LAUNCH_DATE"`
	DecayDate     *string `json:"DECAY_DATE"`
	Decayed       int     `json:"DECAYED"`
	Epoch         string  `json:"EPOCH"`
	MeanMotion    float64 `json:"MEAN_MOTION"`
	Eccentricity  float64 `json:"ECCENTRICITY"`
	Inclination   float64 `json:"INCLINATION"`
	Bstar         float64 `json:"BSTAR"`
	SemimajorAxis float64 `json:"SEMIMAJOR_AXIS"`
	Period        float64 `json:"PERIOD"`
	Apoapsis      float64 `json:"APOAPSIS"`
	Periapsis     float64 `json:"PERIAPSIS"`
	ObjectType    string  `json:"OBJECT_TYPE"`
	RcsSize       string  `json:"RCS_SIZE"`
	Site          string  `json:"SITE"`
}

// StarlinkEntry is one record from GET /v4/starlink. Position fields are
// null unless SpaceX has a recent telemetry snapshot for the satellite.
type StarlinkEntry struct {
	ID          string      `json:"id"`
	Version     string      `json:"version"`
	Launch      *string     `json:"launch"`
	Longitude   *float64    `json:"longitude"`
	Latitude    *float64    `json:"latitude"`
	HeightKm    *float64    `json:"height_km"`
	VelocityKms *float64    `json:"velocity_kms"`
	SpaceTrack  *SpaceTrack `json:"spaceTrack"`
}

// RawLaunch is one record from GET /v4/launches. Rocket, launchpad, cores,
// and payloads are foreign keys resolved against the sibling collections.
type RawLaunch struct {
	ID           string    `json:"id"`
	FlightNumber int       `json:"flight_number"`
	Name         string    `json:"name"`
	DateUTC      string    `json:"date_utc"`
	DateLocal    string    `json:"date_local"`
	Success      *bool     `json:"success"`
	Details      *string   `json:"details"`
	Rocket       string    `json:"rocket"`
	Launchpad    string    `json:"launchpad"`
	Cores        []RawCore `json:"cores"`
	Payloads     []string  `json:"payloads"`
	Links        RawLinks  `json:"links"`
}

// RawCore is one first-stage entry within a launch record.
type RawCore struct {
	Core           *string `json:"core"`
	Flight         *int    `json:"flight"`
	Reused         *bool   `json:"reused"`
	LandingAttempt *bool   `json:"landing_attempt"`
	LandingSuccess *bool   `json:"landing_success"`
	LandingType    *string `json:"landing_type"`
}

// RawLinks holds media links for a launch.
type RawLinks struct {
	Webcast   *string   `json:"webcast"`
	Article   *string   `json:"article"`
	Wikipedia *string   `json:"wikipedia"`
	Patch     *RawPatch `json:"patch"`
}

// RawPatch holds mission patch image links.
type RawPatch struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// Core is one record from GET /v4/cores.
type Core struct {
	ID         string   `json:"id"`
	Serial     string   `json:"serial"`
	Block      *int     `json:"block"`
	Status     string   `json:"status"`
	ReuseCount int      `json:"reuse_count"`
	Launches   []string `json:"launches"`
}

// Rocket is one record from GET /v4/rockets.
type Rocket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Launchpad is one record from GET /v4/launchpads.
type Launchpad struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	FullName  string  `json:"full_name"`
	Locality  string  `json:"locality"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Payload is one record from GET /v4/payloads.
type Payload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Orbit string `json:"orbit"`
}
