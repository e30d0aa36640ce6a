package reconcile

import (
	"strconv"
	"time"

	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

// NORAD catalog number thresholds for generation inference. Catalog numbers
// are assigned sequentially, so the ranges track deployment eras.
const (
	noradFloorV2Mini = 58000
	noradFloorV15    = 48000
	noradFloorV10    = 44000
)

// inferVersion determines a satellite's generation when the operator feed
// supplies none. The fallback chain: launch date breakpoints, then the
// international designator's launch year, then NORAD catalog number ranges.
// Satellites that defeat all three stay at the explicit unknown sentinel.
func inferVersion(launchDate *time.Time, objectID string, noradID int) string {
	if launchDate != nil {
		year, month := launchDate.Year(), launchDate.Month()
		switch {
		case year >= 2024 || (year == 2023 && month >= time.February):
			return constellation.VersionV2Mini
		case year >= 2022 || (year == 2021 && month >= time.September):
			return constellation.VersionV15
		case year >= 2019:
			return constellation.VersionV10
		default:
			return constellation.VersionPrototype
		}
	}

	if year, ok := designatorYear(objectID); ok {
		switch {
		case year >= 2023:
			return constellation.VersionV2Mini
		case year >= 2021:
			return constellation.VersionV15
		case year >= 2019:
			return constellation.VersionV10
		default:
			return constellation.VersionPrototype
		}
	}

	switch {
	case noradID >= noradFloorV2Mini:
		return constellation.VersionV2Mini
	case noradID >= noradFloorV15:
		return constellation.VersionV15
	case noradID >= noradFloorV10:
		return constellation.VersionV10
	}

	return constellation.NoVersion
}

// designatorYear extracts the launch year from an international designator
// ("2022-045A"). Only 4-digit years from 2018 onward count; anything earlier
// predates the constellation and means the designator is not usable.
func designatorYear(objectID string) (int, bool) {
	if len(objectID) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(objectID[:4])
	if err != nil || year < 2018 {
		return 0, false
	}
	return year, true
}
