package constellation

// BoosterRecord identifies the booster with the most Starlink missions and
// its flight count.
type BoosterRecord struct {
	Serial  string `json:"serial"`
	Flights int    `json:"flights"`
}

// ConstellationStats is a point-in-time roll-up over the full satellite and
// launch sets. It is recomputed on every cache refresh and never persisted.
type ConstellationStats struct {
	TotalSatellites   int `json:"totalSatellites"`
	ActiveSatellites  int `json:"activeSatellites"`
	DecayedSatellites int `json:"decayedSatellites"`

	AvgAltitudeKm int `json:"avgAltitudeKm"`
	AvgAge        int `json:"avgAge"`

	ByVersion      map[string]int `json:"byVersion"`
	ByHealthStatus map[string]int `json:"byHealthStatus"`

	TotalLaunches         int `json:"totalLaunches"`
	TotalStarlinkLaunches int `json:"totalStarlinkLaunches"`

	UniqueBoosters   int            `json:"uniqueBoosters"`
	MostFlownBooster *BoosterRecord `json:"mostFlownBooster"`

	LaunchesByYear   map[string]int `json:"launchesByYear"`
	SatellitesByYear map[string]int `json:"satellitesByYear"`
}

// FunFactIcon is a presentation hint attached to a fun fact. It is a plain
// tag with no behavior; the dashboard maps it to an icon.
type FunFactIcon string

// Fun fact icon tags.
const (
	IconScale    FunFactIcon = "scale"
	IconClock    FunFactIcon = "clock"
	IconMountain FunFactIcon = "mountain"
	IconRocket   FunFactIcon = "rocket"
	IconRepeat   FunFactIcon = "repeat"
	IconZap      FunFactIcon = "zap"
	IconGlobe    FunFactIcon = "globe"
	IconLayers   FunFactIcon = "layers"
)

// FunFact is one labeled, human-readable derived statistic. Facts with no
// qualifying data report "N/A" and an empty description rather than being
// omitted, so the list always has the same shape.
type FunFact struct {
	Label       string      `json:"label"`
	Value       string      `json:"value"`
	Description string      `json:"description"`
	Icon        FunFactIcon `json:"icon"`
}
