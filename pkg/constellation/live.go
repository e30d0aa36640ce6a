package constellation

// WebcastLink is one video stream or replay for a launch.
type WebcastLink struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Source string `json:"source"`
	Live   bool   `json:"live"`
}

// NextLaunch describes the next scheduled Starlink mission.
type NextLaunch struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Net                string         `json:"net"`
	Status             string         `json:"status"`
	StatusDescription  string         `json:"statusDescription"`
	RocketName         string         `json:"rocketName"`
	PadName            string         `json:"padName"`
	PadLocation        string         `json:"padLocation"`
	MissionDescription *string        `json:"missionDescription"`
	Image              *string        `json:"image"`
	Webcasts           []WebcastLink  `json:"webcasts"`
	Booster            *BoosterRecord `json:"booster"`
}

// PastLaunch is a recently flown mission with replay links.
type PastLaunch struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Net      string        `json:"net"`
	Status   string        `json:"status"`
	Webcasts []WebcastLink `json:"webcasts"`
	Image    *string       `json:"image"`
}

// LiveLaunchData is the countdown view: the next scheduled mission, if any,
// and a short list of recent past missions. CountdownSeconds is nil when no
// launch is scheduled or the NET has already passed.
type LiveLaunchData struct {
	NextLaunch         *NextLaunch  `json:"nextLaunch"`
	RecentPastLaunches []PastLaunch `json:"recentPastLaunches"`
	IsLiveNow          bool         `json:"isLiveNow"`
	CountdownSeconds   *int64       `json:"countdownSeconds"`
}
