// Package missions assembles Starlink launch records. The SpaceX API splits
// a launch across five collections (launches, cores, rockets, launchpads,
// payloads); Build joins them and keeps only Starlink flights. Supplement
// then appends Launch Library 2 launches the SpaceX catalog has not picked
// up, deduplicated by launch date.
package missions

import (
	"sort"
	"strings"

	"github.com/orbitwatch/orbitwatch/internal/feeds/launchlib"
	"github.com/orbitwatch/orbitwatch/internal/feeds/spacex"
	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

const defaultRocketName = "Falcon 9"

// Batch holds the five SpaceX collections a mission join needs. All five
// must have been fetched successfully; there is no partial join.
type Batch struct {
	Launches   []spacex.RawLaunch
	Cores      []spacex.Core
	Rockets    []spacex.Rocket
	Launchpads []spacex.Launchpad
	Payloads   []spacex.Payload
}

// Build joins the SpaceX collections into Starlink launch records. A launch
// qualifies when its name or any of its payloads' names or types mention
// Starlink.
func Build(b Batch) []constellation.Launch {
	coreByID := make(map[string]spacex.Core, len(b.Cores))
	for _, c := range b.Cores {
		coreByID[c.ID] = c
	}
	rocketByID := make(map[string]spacex.Rocket, len(b.Rockets))
	for _, r := range b.Rockets {
		rocketByID[r.ID] = r
	}
	padByID := make(map[string]spacex.Launchpad, len(b.Launchpads))
	for _, p := range b.Launchpads {
		padByID[p.ID] = p
	}
	payloadByID := make(map[string]spacex.Payload, len(b.Payloads))
	for _, p := range b.Payloads {
		payloadByID[p.ID] = p
	}

	launches := make([]constellation.Launch, 0, len(b.Launches))
	for _, raw := range b.Launches {
		if !isStarlink(raw, payloadByID) {
			continue
		}
		launches = append(launches, build(raw, coreByID, rocketByID, padByID, payloadByID))
	}
	return launches
}

func isStarlink(raw spacex.RawLaunch, payloadByID map[string]spacex.Payload) bool {
	if strings.Contains(strings.ToLower(raw.Name), "starlink") {
		return true
	}
	for _, pid := range raw.Payloads {
		p, ok := payloadByID[pid]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), "starlink") ||
			strings.Contains(strings.ToLower(p.Type), "starlink") {
			return true
		}
	}
	return false
}

func build(
	raw spacex.RawLaunch,
	coreByID map[string]spacex.Core,
	rocketByID map[string]spacex.Rocket,
	padByID map[string]spacex.Launchpad,
	payloadByID map[string]spacex.Payload,
) constellation.Launch {
	cores := make([]constellation.BoosterUse, 0, len(raw.Cores))
	for _, rc := range raw.Cores {
		if rc.Core == nil {
			continue
		}
		serial := constellation.UnknownSerial
		if core, ok := coreByID[*rc.Core]; ok && core.Serial != "" {
			serial = core.Serial
		}
		flight := 1
		if rc.Flight != nil {
			flight = *rc.Flight
		}
		reused := rc.Reused != nil && *rc.Reused
		cores = append(cores, constellation.BoosterUse{
			Serial:         serial,
			Flight:         flight,
			Reused:         reused,
			LandingSuccess: rc.LandingSuccess,
			LandingType:    rc.LandingType,
		})
	}

	rocketName := defaultRocketName
	if rocket, ok := rocketByID[raw.Rocket]; ok && rocket.Name != "" {
		rocketName = rocket.Name
	}

	padName, padLocality := "Unknown", "Unknown"
	if pad, ok := padByID[raw.Launchpad]; ok {
		if pad.FullName != "" {
			padName = pad.FullName
		} else if pad.Name != "" {
			padName = pad.Name
		}
		if pad.Locality != "" {
			padLocality = pad.Locality
		}
	}

	starlinkCount := 0
	for _, pid := range raw.Payloads {
		if p, ok := payloadByID[pid]; ok && strings.Contains(strings.ToLower(p.Name), "starlink") {
			starlinkCount++
		}
	}
	if starlinkCount == 0 {
		starlinkCount = EstimatePayloadCount(raw.Name)
	}

	var patch *string
	if raw.Links.Patch != nil {
		patch = raw.Links.Patch.Small
	}

	return constellation.Launch{
		ID:                raw.ID,
		FlightNumber:      raw.FlightNumber,
		Name:              raw.Name,
		DateUTC:           raw.DateUTC,
		DateLocal:         raw.DateLocal,
		Success:           raw.Success,
		Details:           raw.Details,
		RocketID:          raw.Rocket,
		RocketName:        rocketName,
		LaunchpadID:       raw.Launchpad,
		LaunchpadName:     padName,
		LaunchpadLocality: padLocality,
		Cores:             cores,
		StarlinkCount:     starlinkCount,
		Links: constellation.LaunchLinks{
			Webcast:   raw.Links.Webcast,
			Article:   raw.Links.Article,
			Wikipedia: raw.Links.Wikipedia,
			Patch:     patch,
		},
	}
}

// EstimatePayloadCount guesses the satellite count for a mission whose
// payload records are missing, from typical per-generation batch sizes.
func EstimatePayloadCount(missionName string) int {
	name := strings.ToLower(missionName)
	if strings.Contains(name, "v2") {
		return 21
	}
	if strings.Contains(name, "group 6") || strings.Contains(name, "group 7") {
		return 23
	}
	return 52
}

// Supplement appends Launch Library launches not already present, matching
// on the date portion of the UTC timestamp. A launch the SpaceX catalog
// already covers is never duplicated. Only Starlink-named launches qualify.
func Supplement(launches []constellation.Launch, extra []launchlib.Launch) []constellation.Launch {
	existing := make(map[string]struct{}, len(launches))
	for _, l := range launches {
		existing[l.DateKey()] = struct{}{}
	}

	for _, ll := range extra {
		if ll.Net == "" {
			continue
		}
		dateKey := ll.Net
		if len(dateKey) > 10 {
			dateKey = dateKey[:10]
		}
		if _, ok := existing[dateKey]; ok {
			continue
		}
		if !strings.Contains(strings.ToLower(ll.Name), "starlink") {
			continue
		}

		launches = append(launches, fromLaunchLibrary(ll, dateKey))
		existing[dateKey] = struct{}{}
	}
	return launches
}

func fromLaunchLibrary(ll launchlib.Launch, dateKey string) constellation.Launch {
	var cores []constellation.BoosterUse
	rocketName := defaultRocketName
	if ll.Rocket != nil {
		if ll.Rocket.Configuration != nil && ll.Rocket.Configuration.Name != "" {
			rocketName = ll.Rocket.Configuration.Name
		}
		for _, stage := range ll.Rocket.LauncherStage {
			if stage.Launcher == nil || stage.Launcher.SerialNumber == "" {
				continue
			}
			flights := stage.Launcher.Flights
			if flights == 0 {
				flights = 1
			}
			use := constellation.BoosterUse{
				Serial: stage.Launcher.SerialNumber,
				Flight: flights,
				Reused: flights > 1,
			}
			if stage.Landing != nil {
				use.LandingSuccess = stage.Landing.Success
				if stage.Landing.Type != nil && stage.Landing.Type.Abbrev != "" {
					abbrev := stage.Landing.Type.Abbrev
					use.LandingType = &abbrev
				}
			}
			cores = append(cores, use)
		}
	}

	var success *bool
	switch ll.Status.ID {
	case launchlib.StatusIDSuccess:
		v := true
		success = &v
	case launchlib.StatusIDFailure:
		v := false
		success = &v
	}

	var details *string
	if ll.Mission != nil {
		details = ll.Mission.Description
	}

	padName, padLocality := "Unknown", "Unknown"
	if ll.Pad != nil {
		if ll.Pad.Name != "" {
			padName = ll.Pad.Name
		}
		if ll.Pad.Location != nil && ll.Pad.Location.Name != "" {
			padLocality = ll.Pad.Location.Name
		}
	}

	var webcast *string
	if len(ll.VidURLs) > 0 {
		webcast = &ll.VidURLs[0].URL
	}

	id := ll.ID
	if id == "" {
		id = "ll2-" + dateKey
	}

	// Launch Library carries no flight number; 0 marks the supplementary
	// origin.
	return constellation.Launch{
		ID:                id,
		FlightNumber:      0,
		Name:              ll.Name,
		DateUTC:           ll.Net,
		DateLocal:         ll.Net,
		Success:           success,
		Details:           details,
		RocketName:        rocketName,
		LaunchpadName:     padName,
		LaunchpadLocality: padLocality,
		Cores:             cores,
		StarlinkCount:     EstimatePayloadCount(ll.Name),
		Links: constellation.LaunchLinks{
			Webcast:   webcast,
			Wikipedia: ll.WikiURL,
			Patch:     ll.Image,
		},
	}
}

// SortByDateDesc orders launches newest first. Timestamps are RFC 3339, so
// a lexicographic comparison preserves chronology.
func SortByDateDesc(launches []constellation.Launch) {
	sort.SliceStable(launches, func(i, j int) bool {
		return launches[i].DateUTC > launches[j].DateUTC
	})
}
