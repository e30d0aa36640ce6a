package reconcile

import (
	"math"

	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

// Score computes a 0-100 health score from raw orbital telemetry. Decayed
// satellites score 0. Otherwise the score starts at 100 and each category is
// penalized independently from the raw fields:
//
//   - drag term (bstar) magnitude, a proxy for orbital decay rate
//   - eccentricity, where a circular orbit is ideal
//   - periapsis, where the operational shell sits near 550 km
//   - age, since satellites degrade past the 3- and 5-year marks
//
// The function is pure and defined for all inputs.
func Score(bstar, eccentricity, periapsisKm float64, decayed bool, ageInDays int) int {
	if decayed {
		return 0
	}

	score := 100

	absBstar := math.Abs(bstar)
	switch {
	case absBstar > 0.01:
		score -= 40
	case absBstar > 0.001:
		score -= 20
	case absBstar > 0.0001:
		score -= 10
	}

	switch {
	case eccentricity > 0.01:
		score -= 20
	case eccentricity > 0.005:
		score -= 10
	case eccentricity > 0.001:
		score -= 5
	}

	switch {
	case periapsisKm < 200:
		score -= 40
	case periapsisKm < 350:
		score -= 25
	case periapsisKm < 500:
		score -= 10
	}

	switch {
	case ageInDays > 1825:
		score -= 10
	case ageInDays > 1095:
		score -= 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Classify maps a clamped health score to its classification.
func Classify(score int, decayed bool) constellation.HealthStatus {
	if decayed {
		return constellation.HealthDecayed
	}
	switch {
	case score >= 75:
		return constellation.HealthNominal
	case score >= 50:
		return constellation.HealthDegraded
	default:
		return constellation.HealthCritical
	}
}
