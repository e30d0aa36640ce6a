// Package reconcile merges the SpaceX and CelesTrak feeds into unified
// satellite records keyed by NORAD catalog number, and derives each record's
// health score and classification.
//
// Field precedence is fixed: a CelesTrak record's orbital elements win over
// the SpaceX snapshot, which wins over per-field defaults. There is no
// recency or confidence tie-break; the merge is deterministic by source
// priority alone.
package reconcile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/orbitwatch/orbitwatch/internal/feeds/celestrak"
	"github.com/orbitwatch/orbitwatch/internal/feeds/spacex"
	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

// brandMarker filters out non-Starlink objects that CelesTrak's group query
// occasionally includes (rideshare payloads, debris).
const brandMarker = "STARLINK"

// zeroDate is the catalog's sentinel for an unknown launch date.
const zeroDate = "0000-00-00"

// Per-field defaults applied when neither source supplies a value.
const (
	defaultPeriapsisKm = 550
	defaultObjectType  = "PAYLOAD"
	defaultRcsSize     = "MEDIUM"
	defaultSite        = "AFETR"
)

// Merge reconciles both feeds' records into the unified satellite set.
// Either input may be empty; the worst case is an empty result, never an
// error. Results are ordered by NORAD catalog number.
func Merge(entries []spacex.StarlinkEntry, sets []celestrak.GP, now time.Time) []constellation.Satellite {
	byNoradSX := make(map[int]spacex.StarlinkEntry, len(entries))
	for _, e := range entries {
		if e.SpaceTrack != nil && e.SpaceTrack.NoradCatID != 0 {
			byNoradSX[e.SpaceTrack.NoradCatID] = e
		}
	}

	byNoradCT := make(map[int]celestrak.GP, len(sets))
	for _, gp := range sets {
		byNoradCT[gp.NoradCatID] = gp
	}

	ids := make([]int, 0, len(byNoradCT)+len(byNoradSX))
	seen := make(map[int]struct{}, len(byNoradCT)+len(byNoradSX))
	for id := range byNoradCT {
		ids = append(ids, id)
		seen[id] = struct{}{}
	}
	for id := range byNoradSX {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	satellites := make([]constellation.Satellite, 0, len(ids))
	for _, noradID := range ids {
		ct, hasCT := byNoradCT[noradID]
		sx, hasSX := byNoradSX[noradID]

		if sat, ok := merge(noradID, ct, hasCT, sx, hasSX, now); ok {
			satellites = append(satellites, sat)
		}
	}
	return satellites
}

func merge(noradID int, ct celestrak.GP, hasCT bool, sx spacex.StarlinkEntry, hasSX bool, now time.Time) (constellation.Satellite, bool) {
	if !hasCT && !hasSX {
		return constellation.Satellite{}, false
	}

	var st *spacex.SpaceTrack
	if hasSX {
		st = sx.SpaceTrack
	}

	name := ct.ObjectName
	if name == "" && st != nil {
		name = st.ObjectName
	}
	if name == "" {
		name = fmt.Sprintf("UNKNOWN-%d", noradID)
	}
	if !strings.Contains(strings.ToUpper(name), brandMarker) {
		return constellation.Satellite{}, false
	}

	rawLaunchDate := ct.LaunchDate
	if rawLaunchDate == "" && st != nil {
		rawLaunchDate = st.LaunchDate
	}
	var launchDate *string
	var launchTime *time.Time
	if rawLaunchDate != "" && rawLaunchDate != zeroDate {
		launchDate = &rawLaunchDate
		if t, err := time.Parse("2006-01-02", rawLaunchDate); err == nil {
			launchTime = &t
		}
	}

	ageInDays := 0
	if launchTime != nil {
		if age := int(now.Sub(*launchTime).Hours() / 24); age > 0 {
			ageInDays = age
		}
	}

	decayDate := ct.DecayDate
	if decayDate == nil && st != nil {
		decayDate = st.DecayDate
	}
	decayed := ct.Decayed == 1 || (st != nil && st.Decayed == 1) || decayDate != nil

	status := constellation.StatusActive
	if decayed {
		status = constellation.StatusDecayed
	}

	bstar := pick(hasCT, ct.Bstar, st, func(s *spacex.SpaceTrack) float64 { return s.Bstar }, 0)
	eccentricity := pick(hasCT, ct.Eccentricity, st, func(s *spacex.SpaceTrack) float64 { return s.Eccentricity }, 0)
	periapsis := pick(hasCT, ct.Periapsis, st, func(s *spacex.SpaceTrack) float64 { return s.Periapsis }, defaultPeriapsisKm)

	score := Score(bstar, eccentricity, periapsis, decayed, ageInDays)

	objectID := pickString(ct.ObjectID, st, func(s *spacex.SpaceTrack) string { return s.ObjectID }, "")

	version := sx.Version
	if version == "" || version == constellation.NoVersion {
		version = inferVersion(launchTime, objectID, noradID)
	}

	heightKm := sx.HeightKm
	if heightKm == nil && hasCT {
		mean := (ct.Apoapsis + ct.Periapsis) / 2
		heightKm = &mean
	}

	id := sx.ID
	if id == "" {
		id = fmt.Sprintf("ct-%d", noradID)
	}

	return constellation.Satellite{
		ID:           id,
		Name:         name,
		NoradID:      noradID,
		Version:      version,
		Status:       status,
		Latitude:     sx.Latitude,
		Longitude:    sx.Longitude,
		HeightKm:     heightKm,
		VelocityKms:  sx.VelocityKms,
		Inclination:  pick(hasCT, ct.Inclination, st, func(s *spacex.SpaceTrack) float64 { return s.Inclination }, 0),
		Eccentricity: eccentricity,
		Period:       pick(hasCT, ct.Period, st, func(s *spacex.SpaceTrack) float64 { return s.Period }, 0),
		Apoapsis:     pick(hasCT, ct.Apoapsis, st, func(s *spacex.SpaceTrack) float64 { return s.Apoapsis }, 0),
		Periapsis:    periapsis,
		MeanMotion:   pick(hasCT, ct.MeanMotion, st, func(s *spacex.SpaceTrack) float64 { return s.MeanMotion }, 0),
		Bstar:        bstar,
		Epoch:        pickString(ct.Epoch, st, func(s *spacex.SpaceTrack) string { return s.Epoch }, ""),
		LaunchDate:   launchDate,
		DecayDate:    decayDate,
		ObjectType:   pickString(ct.ObjectType, st, func(s *spacex.SpaceTrack) string { return s.ObjectType }, defaultObjectType),
		RcsSize:      pickString(ct.RcsSize, st, func(s *spacex.SpaceTrack) string { return s.RcsSize }, defaultRcsSize),
		Site:         pickString(ct.Site, st, func(s *spacex.SpaceTrack) string { return s.Site }, defaultSite),
		ObjectID:     objectID,
		LaunchID:     sx.Launch,
		HealthScore:  score,
		HealthStatus: Classify(score, decayed),
		AgeInDays:    ageInDays,
	}, true
}

// pick applies the numeric field precedence: CelesTrak record present wins,
// else the SpaceX space-track snapshot, else the default.
func pick(hasCT bool, ctVal float64, st *spacex.SpaceTrack, field func(*spacex.SpaceTrack) float64, def float64) float64 {
	if hasCT {
		return ctVal
	}
	if st != nil {
		return field(st)
	}
	return def
}

// pickString applies the same precedence for string fields, where "missing"
// means empty.
func pickString(ctVal string, st *spacex.SpaceTrack, field func(*spacex.SpaceTrack) string, def string) string {
	if ctVal != "" {
		return ctVal
	}
	if st != nil {
		if v := field(st); v != "" {
			return v
		}
	}
	return def
}
