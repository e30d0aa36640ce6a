package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

func TestScoreHealthyBaseline(t *testing.T) {
	score := Score(0.00005, 0.0002, 550, false, 365)
	assert.Equal(t, 100, score)
	assert.Equal(t, constellation.HealthNominal, Classify(score, false))
}

func TestScoreDecayedIsZero(t *testing.T) {
	// Decayed shorts every other category, even otherwise perfect telemetry
	score := Score(0, 0, 550, true, 0)
	assert.Equal(t, 0, score)
	assert.Equal(t, constellation.HealthDecayed, Classify(score, true))
}

func TestScoreDragPenalties(t *testing.T) {
	tests := []struct {
		name  string
		bstar float64
		want  int
	}{
		{"negligible drag", 0.0001, 100},
		{"elevated drag", 0.0005, 90},
		{"high drag", 0.005, 80},
		{"severe drag", 0.02, 60},
		{"negative bstar uses magnitude", -0.02, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.bstar, 0, 550, false, 0))
		})
	}
}

func TestScoreSevereDragIsDegraded(t *testing.T) {
	score := Score(0.02, 0, 550, false, 0)
	assert.Equal(t, 60, score)
	assert.Equal(t, constellation.HealthDegraded, Classify(score, false))
}

func TestScoreEccentricityPenalties(t *testing.T) {
	assert.Equal(t, 95, Score(0, 0.002, 550, false, 0))
	assert.Equal(t, 90, Score(0, 0.007, 550, false, 0))
	assert.Equal(t, 80, Score(0, 0.05, 550, false, 0))
}

func TestScorePeriapsisPenalties(t *testing.T) {
	assert.Equal(t, 60, Score(0, 0, 150, false, 0))
	assert.Equal(t, 75, Score(0, 0, 300, false, 0))
	assert.Equal(t, 90, Score(0, 0, 450, false, 0))
	assert.Equal(t, 100, Score(0, 0, 550, false, 0))
}

func TestScoreAgePenalties(t *testing.T) {
	assert.Equal(t, 100, Score(0, 0, 550, false, 1095))
	assert.Equal(t, 95, Score(0, 0, 550, false, 1096))
	assert.Equal(t, 90, Score(0, 0, 550, false, 1826))
}

func TestScoreClampsAtZero(t *testing.T) {
	// Worst of every category: 100 - 40 - 20 - 40 - 10
	score := Score(0.5, 0.5, 100, false, 4000)
	assert.Equal(t, 0, score)
	assert.Equal(t, constellation.HealthCritical, Classify(score, false))
}

func TestClassifyThresholds(t *testing.T) {
	assert.Equal(t, constellation.HealthNominal, Classify(75, false))
	assert.Equal(t, constellation.HealthDegraded, Classify(74, false))
	assert.Equal(t, constellation.HealthDegraded, Classify(50, false))
	assert.Equal(t, constellation.HealthCritical, Classify(49, false))
	assert.Equal(t, constellation.HealthDecayed, Classify(100, true))
}
