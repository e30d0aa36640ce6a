// Package stats derives constellation-wide statistics and fun-fact
// summaries from the reconciled satellite and launch sets.
package stats

import (
	"math"

	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

// defaultAltitudeKm is reported when no active satellite has a known
// altitude; the operational shell sits near 550 km.
const defaultAltitudeKm = 550

// Compute rolls up the full satellite and launch sets into a
// ConstellationStats snapshot.
func Compute(satellites []constellation.Satellite, launches []constellation.Launch) constellation.ConstellationStats {
	byVersion := make(map[string]int)
	byHealthStatus := make(map[string]int)
	satellitesByYear := make(map[string]int)

	var active, decayed int
	var totalAlt float64
	var altCount int
	var totalAge, ageCount int

	for _, sat := range satellites {
		switch sat.Status {
		case constellation.StatusActive:
			active++
		case constellation.StatusDecayed:
			decayed++
		}

		version := sat.Version
		if version == "" {
			version = constellation.NoVersion
		}
		byVersion[version]++
		byHealthStatus[string(sat.HealthStatus)]++

		if sat.HeightKm != nil && sat.Status == constellation.StatusActive {
			totalAlt += *sat.HeightKm
			altCount++
		}
		if sat.AgeInDays > 0 {
			totalAge += sat.AgeInDays
			ageCount++
		}

		if year := launchYear(sat); year != "" {
			satellitesByYear[year]++
		}
	}

	launchesByYear := make(map[string]int)
	boosters := make(map[string]int)
	var mostFlown *constellation.BoosterRecord

	// Single ordered pass so the most-flown tie-break is deterministic: the
	// serial that reaches the top count first keeps the title.
	for _, l := range launches {
		if year := l.DateKey(); len(year) >= 4 {
			launchesByYear[year[:4]]++
		}
		for _, core := range l.Cores {
			if core.Serial == "" || core.Serial == constellation.UnknownSerial {
				continue
			}
			boosters[core.Serial]++
			if mostFlown == nil || boosters[core.Serial] > mostFlown.Flights {
				mostFlown = &constellation.BoosterRecord{
					Serial:  core.Serial,
					Flights: boosters[core.Serial],
				}
			}
		}
	}

	avgAlt := defaultAltitudeKm
	if altCount > 0 {
		avgAlt = int(math.Round(totalAlt / float64(altCount)))
	}
	avgAge := 0
	if ageCount > 0 {
		avgAge = int(math.Round(float64(totalAge) / float64(ageCount)))
	}

	return constellation.ConstellationStats{
		TotalSatellites:       len(satellites),
		ActiveSatellites:      active,
		DecayedSatellites:     decayed,
		AvgAltitudeKm:         avgAlt,
		AvgAge:                avgAge,
		ByVersion:             byVersion,
		ByHealthStatus:        byHealthStatus,
		TotalLaunches:         len(launches),
		TotalStarlinkLaunches: len(launches),
		UniqueBoosters:        len(boosters),
		MostFlownBooster:      mostFlown,
		LaunchesByYear:        launchesByYear,
		SatellitesByYear:      satellitesByYear,
	}
}

// launchYear resolves the year a satellite was launched, preferring the
// launch date and falling back to the international designator's leading
// year when it parses as a 4-digit value from 2018 on.
func launchYear(sat constellation.Satellite) string {
	if sat.LaunchDate != nil && len(*sat.LaunchDate) >= 4 {
		return (*sat.LaunchDate)[:4]
	}
	if len(sat.ObjectID) >= 4 {
		year := sat.ObjectID[:4]
		if isYear(year) && year >= "2018" {
			return year
		}
	}
	return ""
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
