package stats

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

// naValue is reported for facts with no qualifying data. The list always
// has the same eight entries in the same order.
const naValue = "N/A"

// Estimated per-unit satellite mass in kilograms, by generation.
const (
	massKgV2Mini  = 800
	massKgV15     = 300
	massKgDefault = 260
)

// printer formats fact values with locale-aware digit grouping.
var printer = message.NewPrinter(language.English)

// FunFacts derives the fixed fun-fact list from the satellite and launch
// sets plus a precomputed stats roll-up.
func FunFacts(satellites []constellation.Satellite, launches []constellation.Launch, cs constellation.ConstellationStats) []constellation.FunFact {
	var oldest, highest *constellation.Satellite
	for i := range satellites {
		sat := &satellites[i]
		if sat.Status != constellation.StatusActive {
			continue
		}
		if sat.AgeInDays > 0 && (oldest == nil || sat.AgeInDays > oldest.AgeInDays) {
			oldest = sat
		}
		if sat.HeightKm != nil && *sat.HeightKm > 0 && (highest == nil || *sat.HeightKm > *highest.HeightKm) {
			highest = sat
		}
	}

	var topSite string
	var topSiteCount int
	siteCounts := make(map[string]int)
	for _, l := range launches {
		siteCounts[l.LaunchpadLocality]++
		if siteCounts[l.LaunchpadLocality] > topSiteCount {
			topSite = l.LaunchpadLocality
			topSiteCount = siteCounts[l.LaunchpadLocality]
		}
	}

	totalMassKg := 0
	for _, sat := range satellites {
		totalMassKg += unitMassKg(sat.Version)
	}

	facts := []constellation.FunFact{
		{
			Label:       "Total Mass in Orbit",
			Value:       printer.Sprintf("%d tonnes", totalMassKg/1000),
			Description: "Estimated total mass of all Starlink satellites currently tracked",
			Icon:        constellation.IconScale,
		},
		oldestFact(oldest),
		highestFact(highest),
		siteFact(topSite, topSiteCount),
		boosterFact(cs.MostFlownBooster),
		{
			Label:       "Orbital Speed",
			Value:       "~7.5 km/s",
			Description: printer.Sprintf("Each Starlink satellite travels at approximately %d km/h", 27000),
			Icon:        constellation.IconZap,
		},
		{
			Label:       "Coverage Area",
			Value:       "~60 countries",
			Description: "Starlink provides internet coverage across six continents",
			Icon:        constellation.IconGlobe,
		},
		{
			Label:       "Unique Boosters Used",
			Value:       fmt.Sprintf("%d", cs.UniqueBoosters),
			Description: "Different Falcon 9 first stages used for Starlink missions",
			Icon:        constellation.IconLayers,
		},
	}
	return facts
}

// unitMassKg estimates one satellite's mass from its generation tag.
func unitMassKg(version string) int {
	switch {
	case strings.Contains(version, "2"):
		return massKgV2Mini
	case strings.Contains(version, "1.5"):
		return massKgV15
	default:
		return massKgDefault
	}
}

func oldestFact(oldest *constellation.Satellite) constellation.FunFact {
	fact := constellation.FunFact{
		Label: "Oldest Active Satellite",
		Value: naValue,
		Icon:  constellation.IconClock,
	}
	if oldest != nil {
		fact.Value = fmt.Sprintf("%dy %dd", oldest.AgeInDays/365, oldest.AgeInDays%365)
		launched := ""
		if oldest.LaunchDate != nil {
			launched = *oldest.LaunchDate
		}
		fact.Description = fmt.Sprintf("%s launched %s", oldest.Name, launched)
	}
	return fact
}

func highestFact(highest *constellation.Satellite) constellation.FunFact {
	fact := constellation.FunFact{
		Label: "Highest Altitude",
		Value: naValue,
		Icon:  constellation.IconMountain,
	}
	if highest != nil {
		fact.Value = fmt.Sprintf("%.0f km", *highest.HeightKm)
		fact.Description = fmt.Sprintf("%s orbiting at peak altitude", highest.Name)
	}
	return fact
}

func siteFact(site string, count int) constellation.FunFact {
	fact := constellation.FunFact{
		Label: "Busiest Launch Site",
		Value: naValue,
		Icon:  constellation.IconRocket,
	}
	if site != "" {
		fact.Value = site
		fact.Description = printer.Sprintf("%d Starlink launches from this location", count)
	}
	return fact
}

func boosterFact(booster *constellation.BoosterRecord) constellation.FunFact {
	fact := constellation.FunFact{
		Label: "Most Flown Booster",
		Value: naValue,
		Icon:  constellation.IconRepeat,
	}
	if booster != nil {
		fact.Value = booster.Serial
		fact.Description = printer.Sprintf("%d Starlink missions on this booster", booster.Flights)
	}
	return fact
}
