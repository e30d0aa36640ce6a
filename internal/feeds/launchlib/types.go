package launchlib

// launchResponse is the paginated envelope around LL2 launch queries.
type launchResponse struct {
	Count   int      `json:"count"`
	Results []Launch `json:"results"`
}

// Launch is one Launch Library 2 launch record, trimmed to the fields the
// mission supplement and live view consume.
type Launch struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Net         string   `json:"net"`
	Status      Status   `json:"status"`
	Image       *string  `json:"image"`
	WikiURL     *string  `json:"wiki_url"`
	WebcastLive bool     `json:"webcast_live"`
	Mission     *Mission `json:"mission"`
	Rocket      *Rocket  `json:"rocket"`
	Pad         *Pad     `json:"pad"`
	VidURLs     []VidURL `json:"vidURLs"`
}

// LL2 status IDs for completed launches.
const (
	StatusIDSuccess = 3
	StatusIDFailure = 4
)

// Status is the LL2 launch status object.
type Status struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Abbrev      string `json:"abbrev"`
	Description string `json:"description"`
}

// Mission is the LL2 mission description.
type Mission struct {
	Description *string `json:"description"`
}

// Rocket is the LL2 rocket block with its launcher stages.
type Rocket struct {
	Configuration *Configuration `json:"configuration"`
	LauncherStage []Stage        `json:"launcher_stage"`
}

// Configuration names the rocket configuration.
type Configuration struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// Stage is one launcher stage with its booster and landing outcome.
type Stage struct {
	Launcher *Launcher `json:"launcher"`
	Landing  *Landing  `json:"landing"`
}

// Launcher identifies a physical booster.
type Launcher struct {
	SerialNumber string `json:"serial_number"`
	Flights      int    `json:"flights"`
}

// Landing is a stage recovery attempt.
type Landing struct {
	Success *bool        `json:"success"`
	Type    *LandingType `json:"type"`
}

// LandingType names the recovery method.
type LandingType struct {
	Abbrev string `json:"abbrev"`
}

// VidURL is one webcast or replay link.
type VidURL struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Publisher string `json:"publisher"`
}

// Pad is the LL2 launch pad block.
type Pad struct {
	Name     string    `json:"name"`
	Location *Location `json:"location"`
}

// Location names a pad's geographic location.
type Location struct {
	Name string `json:"name"`
}
