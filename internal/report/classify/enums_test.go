package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report/classify"
)

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		value      string
		label      string
		tier       classify.Tier
		recognized bool
	}{
		{"low", "Low Risk", classify.TierGood, true},
		{"medium", "Moderate Risk", classify.TierModerate, true},
		{"moderate", "Moderate Risk", classify.TierModerate, true},
		{"high", "High Risk", classify.TierPoor, true},
		{"critical", "Critical Risk", classify.TierPoor, true},
		{"HIGH", "High Risk", classify.TierPoor, true},
		{"  Low  ", "Low Risk", classify.TierGood, true},
		{"catastrophic", "Unknown Risk", classify.TierModerate, false},
		{"", "Unknown Risk", classify.TierModerate, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, ok := classify.RiskLevel(tt.value)
			assert.Equal(t, tt.recognized, ok)
			assert.Equal(t, tt.label, c.Label)
			assert.Equal(t, tt.tier, c.Tier)
		})
	}
}

func TestTerrain(t *testing.T) {
	tests := []struct {
		value      string
		label      string
		tier       classify.Tier
		recognized bool
	}{
		{"plains", "Plains", classify.TierGood, true},
		{"hilly", "Hilly", classify.TierModerate, true},
		{"high_plateau", "High Plateau", classify.TierModerate, true},
		{"mountainous", "Mountainous", classify.TierPoor, true},
		{"Mountainous", "Mountainous", classify.TierPoor, true},
		{"lunar", "Unknown Terrain", classify.TierModerate, false},
	}

	for _, tt := range tests {
		c, ok := classify.Terrain(tt.value)
		assert.Equal(t, tt.recognized, ok, "value %q", tt.value)
		assert.Equal(t, tt.label, c.Label, "value %q", tt.value)
		assert.Equal(t, tt.tier, c.Tier, "value %q", tt.value)
	}
}

func TestWeatherCondition(t *testing.T) {
	tests := []struct {
		value      string
		label      string
		tier       classify.Tier
		recognized bool
	}{
		{"clear", "Clear", classify.TierExcellent, true},
		{"clouds", "Cloudy", classify.TierGood, true},
		{"drizzle", "Reduced Visibility", classify.TierModerate, true},
		{"mist", "Reduced Visibility", classify.TierModerate, true},
		{"haze", "Reduced Visibility", classify.TierModerate, true},
		{"rain", "Rain", classify.TierModerate, true},
		{"thunderstorm", "Thunderstorm", classify.TierPoor, true},
		{"snow", "Snow", classify.TierPoor, true},
		{"fog", "Fog", classify.TierPoor, true},
		{"sandstorm", "Unknown Conditions", classify.TierModerate, false},
	}

	for _, tt := range tests {
		c, ok := classify.WeatherCondition(tt.value)
		assert.Equal(t, tt.recognized, ok, "value %q", tt.value)
		assert.Equal(t, tt.label, c.Label, "value %q", tt.value)
		assert.Equal(t, tt.tier, c.Tier, "value %q", tt.value)
	}
}

func TestCongestion(t *testing.T) {
	tests := []struct {
		value      string
		label      string
		tier       classify.Tier
		recognized bool
	}{
		{"free_flow", "Free Flow", classify.TierExcellent, true},
		{"light", "Light Traffic", classify.TierGood, true},
		{"moderate", "Moderate Traffic", classify.TierModerate, true},
		{"heavy", "Heavy Traffic", classify.TierPoor, true},
		{"gridlock", "Unknown Traffic", classify.TierModerate, false},
	}

	for _, tt := range tests {
		c, ok := classify.Congestion(tt.value)
		assert.Equal(t, tt.recognized, ok, "value %q", tt.value)
		assert.Equal(t, tt.label, c.Label, "value %q", tt.value)
		assert.Equal(t, tt.tier, c.Tier, "value %q", tt.value)
	}
}

// Unrecognized vocabulary still renders: the default classification always
// carries a tier, label, and css class.
func TestEnumDefaults_AlwaysRenderable(t *testing.T) {
	for name, fn := range map[string]func(string) (classify.Classification, bool){
		"risk":       classify.RiskLevel,
		"terrain":    classify.Terrain,
		"weather":    classify.WeatherCondition,
		"congestion": classify.Congestion,
	} {
		c, ok := fn("definitely-not-in-vocabulary")
		assert.False(t, ok, name)
		assert.Equal(t, classify.TierModerate, c.Tier, name)
		assert.NotEmpty(t, c.Label, name)
		assert.NotEmpty(t, c.CSSClass, name)
	}
}
