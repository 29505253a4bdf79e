package advice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report/advice"
)

// mildMetrics produces no weather, elevation, traffic, or terrain signals.
// Service counts are set high enough that no service rule fires either.
func mildMetrics() advice.Metrics {
	return advice.Metrics{
		AvgTemperatureC: 25,
		AvgWindSpeedKmh: 10,
		TerrainType:     "plains",
		Hospitals:       5,
		GasStations:     8,
		Police:          4,
		FireStations:    2,
		EmergencyScore:  90,
	}
}

func TestWeatherPreparation_FallbackOnMildWeather(t *testing.T) {
	got := advice.WeatherPreparation(mildMetrics())

	// 25 degrees, light wind, no precipitation: nothing fires, so the
	// category returns exactly the generic fallback set.
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "vehicle condition")
	assert.Contains(t, got[1], "drinking water")
	assert.Contains(t, got[2], "Share your route")
}

func TestWeatherPreparation_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*advice.Metrics)
		substr string
	}{
		{"extreme heat", func(m *advice.Metrics) { m.AvgTemperatureC = 41 }, "High temperatures"},
		{"cold", func(m *advice.Metrics) { m.AvgTemperatureC = 4 }, "Cold weather"},
		{"rain", func(m *advice.Metrics) { m.Conditions = map[string]int{"Rain": 3} }, "Wet conditions"},
		{"thunderstorm", func(m *advice.Metrics) { m.Conditions = map[string]int{"Thunderstorm": 1} }, "Wet conditions"},
		{"strong wind", func(m *advice.Metrics) { m.AvgWindSpeedKmh = 62 }, "Strong winds"},
		{"fog", func(m *advice.Metrics) { m.Conditions = map[string]int{"Fog": 2} }, "low-beam headlights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mildMetrics()
			tt.mutate(&m)

			got := advice.WeatherPreparation(m)
			require.Len(t, got, 1)
			assert.Contains(t, got[0], tt.substr)
		})
	}
}

func TestWeatherPreparation_RulesAreAdditive(t *testing.T) {
	m := mildMetrics()
	m.AvgTemperatureC = 40
	m.AvgWindSpeedKmh = 60
	m.Conditions = map[string]int{"Rain": 2, "Fog": 1}

	got := advice.WeatherPreparation(m)

	// Every matching rule contributes, in declaration order.
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "High temperatures")
	assert.Contains(t, got[1], "Wet conditions")
	assert.Contains(t, got[2], "Strong winds")
	assert.Contains(t, got[3], "Fog or mist")
}

func TestWeatherPreparation_ZeroTemperatureIsNoSignal(t *testing.T) {
	m := mildMetrics()
	m.AvgTemperatureC = 0

	// A missing weather section leaves the temperature at zero; that must
	// not trigger the cold weather rule.
	for _, item := range advice.WeatherPreparation(m) {
		assert.NotContains(t, item, "Cold weather")
	}
}

func TestElevationPreparation(t *testing.T) {
	m := mildMetrics()
	m.TerrainType = "mountainous"
	m.SignificantChanges = 14
	m.Ascents = 7
	m.ElevationRangeM = 1500

	got := advice.ElevationPreparation(m)
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "engine braking")
	assert.Contains(t, got[1], "14 significant elevation changes")
	assert.Contains(t, got[2], "fuel consumption")
	assert.Contains(t, got[3], "1000m")
}

func TestTrafficAdvisories(t *testing.T) {
	m := mildMetrics()
	m.HeavySegments = 2
	m.AvgDelayPercent = 30
	m.ModerateSegments = 5

	got := advice.TrafficAdvisories(m)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "2 heavily congested segments")
	assert.Contains(t, got[1], "25%")
	assert.Contains(t, got[2], "alternative routes")
}

func TestTerrainChallenges_OnePerTerrainType(t *testing.T) {
	tests := []struct {
		terrain string
		substr  string
	}{
		{"mountainous", "switchbacks"},
		{"Mountainous", "switchbacks"},
		{"hilly", "Rolling hills"},
		{"high_plateau", "altitude"},
	}

	for _, tt := range tests {
		m := mildMetrics()
		m.TerrainType = tt.terrain

		got := advice.TerrainChallenges(m)
		require.Len(t, got, 1, "terrain %q", tt.terrain)
		assert.Contains(t, got[0], tt.substr, "terrain %q", tt.terrain)
	}
}

func TestTerrainChallenges_PlainsFallsBack(t *testing.T) {
	got := advice.TerrainChallenges(mildMetrics())
	assert.Len(t, got, 3)
}

func TestNetworkCoverage(t *testing.T) {
	m := mildMetrics()
	m.DeadZones = 4
	m.PoorCoverageZones = 5

	got := advice.NetworkCoverage(m)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "4 communication dead zones")
	assert.Contains(t, got[1], "offline maps")
}

func TestServiceAvailability_CountRulesFireAtZero(t *testing.T) {
	// A missing POI section leaves every count at zero; all service rules
	// fire, which errs on the side of caution.
	got := advice.ServiceAvailability(advice.Metrics{})
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "No hospitals")
	assert.Contains(t, got[1], "Limited fuel stations")
	assert.Contains(t, got[2], "No police stations")
}

func TestEmergencyPreparedness(t *testing.T) {
	m := mildMetrics()
	m.EmergencyScore = 55
	m.DeadZones = 4
	m.FireStations = 0

	got := advice.EmergencyPreparedness(m)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "Limited emergency services")
	assert.Contains(t, got[1], "check-in points")
	assert.Contains(t, got[2], "fire extinguisher")
}

func TestEmergencyPreparedness_ZeroScoreIsNoSignal(t *testing.T) {
	m := mildMetrics()
	m.EmergencyScore = 0

	for _, item := range advice.EmergencyPreparedness(m) {
		assert.NotContains(t, item, "Limited emergency services")
	}
}

func TestComplianceAdvisories(t *testing.T) {
	m := mildMetrics()
	m.ComplianceIssues = []string{
		"Vehicle lacks ais-140 tracking device",
		"RTSP driving hours exceeded",
		"Missing interstate Permit",
	}

	got := advice.ComplianceAdvisories(m)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "AIS-140")
	assert.Contains(t, got[1], "rest stops")
	assert.Contains(t, got[2], "permits")
}

func TestAdvisories_NeverEmpty(t *testing.T) {
	categories := map[string]func(advice.Metrics) []string{
		"weather":    advice.WeatherPreparation,
		"elevation":  advice.ElevationPreparation,
		"traffic":    advice.TrafficAdvisories,
		"terrain":    advice.TerrainChallenges,
		"network":    advice.NetworkCoverage,
		"services":   advice.ServiceAvailability,
		"emergency":  advice.EmergencyPreparedness,
		"compliance": advice.ComplianceAdvisories,
	}

	for name, fn := range categories {
		assert.NotEmpty(t, fn(advice.Metrics{}), name)
		assert.NotEmpty(t, fn(mildMetrics()), name)
	}
}
