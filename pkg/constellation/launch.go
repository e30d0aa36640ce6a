package constellation

// Launch is one Falcon 9 flight that deployed Starlink payloads, assembled
// from the SpaceX launches/cores/rockets/launchpads/payloads collections and
// supplemented by Launch Library 2 for flights the SpaceX API has not yet
// cataloged.
type Launch struct {
	ID           string `json:"id"`
	FlightNumber int    `json:"flightNumber"`
	Name         string `json:"name"`
	DateUTC      string `json:"dateUtc"`
	DateLocal    string `json:"dateLocal"`

	Success *bool   `json:"success"`
	Details *string `json:"details"`

	RocketID          string `json:"rocketId"`
	RocketName        string `json:"rocketName"`
	LaunchpadID       string `json:"launchpadId"`
	LaunchpadName     string `json:"launchpadName"`
	LaunchpadLocality string `json:"launchpadLocality"`

	Cores         []BoosterUse `json:"cores"`
	StarlinkCount int          `json:"starlinkCount"`
	Links         LaunchLinks  `json:"links"`
}

// UnknownSerial is the sentinel serial for boosters the core catalog could
// not identify. Unknown boosters are excluded from reuse statistics.
const UnknownSerial = "Unknown"

// BoosterUse records one first-stage core's participation in a launch.
type BoosterUse struct {
	Serial         string  `json:"serial"`
	Flight         int     `json:"flight"`
	Reused         bool    `json:"reused"`
	LandingSuccess *bool   `json:"landingSuccess"`
	LandingType    *string `json:"landingType"`
}

// LaunchLinks holds external media links for a launch. Every field is
// nullable; the patch link is the small mission patch image.
type LaunchLinks struct {
	Webcast   *string `json:"webcast"`
	Article   *string `json:"article"`
	Wikipedia *string `json:"wikipedia"`
	Patch     *string `json:"patch"`
}

// DateKey returns the date portion of the UTC timestamp, used to deduplicate
// launches reported by both the SpaceX API and Launch Library 2.
func (l Launch) DateKey() string {
	if len(l.DateUTC) < 10 {
		return l.DateUTC
	}
	return l.DateUTC[:10]
}
