package advice

import (
	"fmt"
	"strings"
)

// WeatherPreparation returns weather-related advisories for the route.
func WeatherPreparation(m Metrics) []string {
	return evaluate(weatherRules, m, genericFallback)
}

var weatherRules = []rule{
	{
		name:   "extreme_heat",
		fires:  func(m Metrics) bool { return m.AvgTemperatureC > 35 },
		advice: static("High temperatures expected - check the cooling system and carry extra water"),
	},
	{
		name:   "cold_weather",
		fires:  func(m Metrics) bool { return m.AvgTemperatureC != 0 && m.AvgTemperatureC < 10 },
		advice: static("Cold weather expected - check the battery and ensure proper engine fluids"),
	},
	{
		name: "wet_conditions",
		fires: func(m Metrics) bool {
			return m.HasCondition("Rain") || m.HasCondition("Thunderstorm") || m.HasCondition("Drizzle")
		},
		advice: static("Wet conditions expected - reduce speed and increase following distance"),
	},
	{
		name:   "strong_winds",
		fires:  func(m Metrics) bool { return m.AvgWindSpeedKmh > 50 },
		advice: static("Strong winds forecast - exercise caution with high-sided vehicles"),
	},
	{
		name:   "low_visibility",
		fires:  func(m Metrics) bool { return m.HasCondition("Fog") || m.HasCondition("Mist") },
		advice: static("Fog or mist likely - use low-beam headlights and allow extra travel time"),
	},
}

// ElevationPreparation returns elevation-related advisories for the route.
func ElevationPreparation(m Metrics) []string {
	return evaluate(elevationRules, m, genericFallback)
}

var elevationRules = []rule{
	{
		name:   "mountainous_terrain",
		fires:  func(m Metrics) bool { return strings.EqualFold(m.TerrainType, "mountainous") },
		advice: static("Mountainous terrain - service brakes and use engine braking on long descents"),
	},
	{
		name:  "frequent_gradients",
		fires: func(m Metrics) bool { return m.SignificantChanges > 10 },
		advice: func(m Metrics) string {
			return fmt.Sprintf("%d significant elevation changes detected - plan additional rest stops", m.SignificantChanges)
		},
	},
	{
		name:   "fuel_consumption",
		fires:  func(m Metrics) bool { return m.Ascents > 5 },
		advice: static("Repeated ascents will increase fuel consumption - refuel before climbing sections"),
	},
	{
		name:   "large_elevation_range",
		fires:  func(m Metrics) bool { return m.ElevationRangeM > 1000 },
		advice: static("Elevation range exceeds 1000m - expect temperature swings between valley and summit"),
	},
}

// TrafficAdvisories returns traffic-related advisories for the route.
func TrafficAdvisories(m Metrics) []string {
	return evaluate(trafficRules, m, genericFallback)
}

var trafficRules = []rule{
	{
		name:  "heavy_congestion",
		fires: func(m Metrics) bool { return m.HeavySegments > 0 },
		advice: func(m Metrics) string {
			return fmt.Sprintf("%d heavily congested segments - consider departing outside peak hours", m.HeavySegments)
		},
	},
	{
		name:   "high_average_delay",
		fires:  func(m Metrics) bool { return m.AvgDelayPercent > 25 },
		advice: static("Average traffic delay exceeds 25% - add schedule buffer for time-critical deliveries"),
	},
	{
		name:   "recurring_slowdowns",
		fires:  func(m Metrics) bool { return m.ModerateSegments > 3 },
		advice: static("Multiple moderate congestion zones - review alternative routes before departure"),
	},
}

// TerrainChallenges returns terrain-related advisories for the route.
func TerrainChallenges(m Metrics) []string {
	return evaluate(terrainRules, m, genericFallback)
}

var terrainRules = []rule{
	{
		name:   "mountainous",
		fires:  func(m Metrics) bool { return strings.EqualFold(m.TerrainType, "mountainous") },
		advice: static("Sharp gradients and switchbacks ahead - keep to low gears and observe speed caps"),
	},
	{
		name:   "hilly",
		fires:  func(m Metrics) bool { return strings.EqualFold(m.TerrainType, "hilly") },
		advice: static("Rolling hills along the route - maintain steady speed to limit fuel use"),
	},
	{
		name:   "high_plateau",
		fires:  func(m Metrics) bool { return strings.EqualFold(m.TerrainType, "high_plateau") },
		advice: static("High plateau route - reduced engine performance possible at altitude"),
	},
}

// NetworkCoverage returns communication coverage advisories for the route.
func NetworkCoverage(m Metrics) []string {
	return evaluate(networkRules, m, genericFallback)
}

var networkRules = []rule{
	{
		name:  "dead_zones",
		fires: func(m Metrics) bool { return m.DeadZones > 0 },
		advice: func(m Metrics) string {
			return fmt.Sprintf("Route has %d communication dead zones - consider a satellite communication device", m.DeadZones)
		},
	},
	{
		name:   "poor_coverage",
		fires:  func(m Metrics) bool { return m.PoorCoverageZones > 3 },
		advice: static("Multiple poor coverage areas - download offline maps before travel"),
	},
}

// ServiceAvailability returns advisories about services along the route.
func ServiceAvailability(m Metrics) []string {
	return evaluate(serviceRules, m, genericFallback)
}

var serviceRules = []rule{
	{
		name:   "no_hospitals",
		fires:  func(m Metrics) bool { return m.Hospitals == 0 },
		advice: static("No hospitals found along the route - identify the nearest medical facilities in advance"),
	},
	{
		name:   "limited_fuel",
		fires:  func(m Metrics) bool { return m.GasStations < 3 },
		advice: static("Limited fuel stations - plan refueling stops in advance"),
	},
	{
		name:   "no_police",
		fires:  func(m Metrics) bool { return m.Police == 0 },
		advice: static("No police stations identified - note emergency contact numbers"),
	},
}

// EmergencyPreparedness returns emergency readiness advisories for the route.
func EmergencyPreparedness(m Metrics) []string {
	return evaluate(emergencyRules, m, genericFallback)
}

var emergencyRules = []rule{
	{
		name:   "low_preparedness",
		fires:  func(m Metrics) bool { return m.EmergencyScore != 0 && m.EmergencyScore < 70 },
		advice: static("Limited emergency services on this route - extra caution advised"),
	},
	{
		name:   "communication_gaps",
		fires:  func(m Metrics) bool { return m.DeadZones > 3 },
		advice: static("Communication gaps along the route - pre-arrange check-in points"),
	},
	{
		name:   "no_fire_cover",
		fires:  func(m Metrics) bool { return m.FireStations == 0 },
		advice: static("No fire stations identified - carry a vehicle fire extinguisher"),
	},
}

// ComplianceAdvisories returns regulatory advisories for the route.
func ComplianceAdvisories(m Metrics) []string {
	return evaluate(complianceRules, m, genericFallback)
}

var complianceRules = []rule{
	{
		name:   "tracking_device",
		fires:  func(m Metrics) bool { return containsFold(m.ComplianceIssues, "AIS-140") },
		advice: static("Install an AIS-140 compliant GPS tracking device before departure"),
	},
	{
		name:   "driving_time",
		fires:  func(m Metrics) bool { return containsFold(m.ComplianceIssues, "RTSP") },
		advice: static("Plan mandatory rest stops to comply with driving time limits"),
	},
	{
		name:   "permits",
		fires:  func(m Metrics) bool { return containsFold(m.ComplianceIssues, "permit") },
		advice: static("Verify route-specific permits and interstate documentation"),
	},
}

// containsFold reports whether any issue contains the substring, ignoring case.
func containsFold(issues []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, issue := range issues {
		if strings.Contains(strings.ToLower(issue), needle) {
			return true
		}
	}
	return false
}
