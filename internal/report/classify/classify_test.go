package classify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report/classify"
)

func TestSafetyScore_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		tier  classify.Tier
		label string
	}{
		{"top of range", 100, classify.TierExcellent, "Excellent"},
		{"at excellent boundary", 80, classify.TierExcellent, "Excellent"},
		{"just below excellent", 79.9, classify.TierGood, "Good"},
		{"at good boundary", 60, classify.TierGood, "Good"},
		{"just below good", 59.9, classify.TierModerate, "Moderate"},
		{"at moderate boundary", 40, classify.TierModerate, "Moderate"},
		{"just below moderate", 39.9, classify.TierPoor, "Poor"},
		{"zero", 0, classify.TierPoor, "Poor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classify.SafetyScore(tt.score)
			assert.Equal(t, tt.tier, c.Tier)
			assert.Equal(t, tt.label, c.Label)
			assert.Equal(t, "score-"+string(tt.tier), c.CSSClass)
		})
	}
}

func TestCoverageScore_HigherExcellentBoundary(t *testing.T) {
	// Coverage uses 85/70/40 boundaries, not the 80/60/40 safety ladder.
	assert.Equal(t, classify.TierGood, classify.CoverageScore(84).Tier)
	assert.Equal(t, classify.TierExcellent, classify.CoverageScore(85).Tier)
	assert.Equal(t, classify.TierModerate, classify.CoverageScore(69).Tier)
	assert.Equal(t, classify.TierGood, classify.CoverageScore(70).Tier)
	assert.Equal(t, classify.TierPoor, classify.CoverageScore(39).Tier)
	assert.Equal(t, classify.TierModerate, classify.CoverageScore(40).Tier)
}

func TestTrafficScore_MatchesSafetyLadder(t *testing.T) {
	for _, score := range []float64{0, 39, 40, 59, 60, 79, 80, 100} {
		assert.Equal(t, classify.SafetyScore(score).Tier, classify.TrafficScore(score).Tier,
			"traffic and safety share boundaries at score %v", score)
	}
}

func TestComplianceScore_ThreeTiers(t *testing.T) {
	tests := []struct {
		score float64
		tier  classify.Tier
		label string
	}{
		{95, classify.TierExcellent, "Compliant"},
		{80, classify.TierExcellent, "Compliant"},
		{79, classify.TierModerate, "Needs Attention"},
		{60, classify.TierModerate, "Needs Attention"},
		{59, classify.TierPoor, "Non-Compliant"},
		{0, classify.TierPoor, "Non-Compliant"},
	}

	for _, tt := range tests {
		c := classify.ComplianceScore(tt.score)
		assert.Equal(t, tt.tier, c.Tier, "score %v", tt.score)
		assert.Equal(t, tt.label, c.Label, "score %v", tt.score)
	}
}

func TestEmergencyScore_ThreeTiers(t *testing.T) {
	assert.Equal(t, "Excellent", classify.EmergencyScore(80).Label)
	assert.Equal(t, "Good", classify.EmergencyScore(79).Label)
	assert.Equal(t, "Good", classify.EmergencyScore(60).Label)
	assert.Equal(t, "Needs Improvement", classify.EmergencyScore(59).Label)
}

func TestClassifyScore_DegenerateInputs(t *testing.T) {
	// NaN and negative scores classify like zero instead of panicking or
	// leaking a bogus tier.
	assert.Equal(t, classify.TierPoor, classify.SafetyScore(math.NaN()).Tier)
	assert.Equal(t, classify.TierPoor, classify.SafetyScore(-12).Tier)
	assert.Equal(t, classify.TierPoor, classify.ComplianceScore(math.NaN()).Tier)
}

func TestClassifyScore_Monotonic(t *testing.T) {
	// Increasing scores never classify to a worse tier.
	prev := classify.SafetyScore(0)
	for score := 1.0; score <= 100; score++ {
		cur := classify.SafetyScore(score)
		assert.GreaterOrEqual(t, cur.Tier.Rank(), prev.Tier.Rank(), "score %v", score)
		prev = cur
	}
}

func TestTierRank_Ordering(t *testing.T) {
	assert.Greater(t, classify.TierExcellent.Rank(), classify.TierGood.Rank())
	assert.Greater(t, classify.TierGood.Rank(), classify.TierModerate.Rank())
	assert.Greater(t, classify.TierModerate.Rank(), classify.TierPoor.Rank())
	assert.Equal(t, classify.TierModerate.Rank(), classify.Tier("bogus").Rank())
}
