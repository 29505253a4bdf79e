// Package routedata defines the route-data service contract: the nine
// per-route analysis categories, their typed payloads, and the Source
// interface used to fetch them.
package routedata

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for route-data operations.
var (
	// ErrSourceUnavailable indicates the route-data service is down or the circuit breaker is open.
	ErrSourceUnavailable = errors.New("route data source unavailable")
	// ErrRouteNotFound indicates the route identifier is unknown to the service.
	ErrRouteNotFound = errors.New("route not found")
	// ErrUnknownCategory indicates a category outside the fixed set was requested.
	ErrUnknownCategory = errors.New("unknown analysis category")
)

// Category identifies one analysis sub-resource of a route.
type Category string

// The fixed set of analysis categories. Every report carries exactly one
// section per category.
const (
	CategoryOverview   Category = "overview"
	CategoryTurns      Category = "turns"
	CategoryPOIs       Category = "pois"
	CategoryNetwork    Category = "network"
	CategoryWeather    Category = "weather"
	CategoryCompliance Category = "compliance"
	CategoryElevation  Category = "elevation"
	CategoryEmergency  Category = "emergency"
	CategoryTraffic    Category = "traffic"
)

// Categories returns all analysis categories in canonical order.
func Categories() []Category {
	return []Category{
		CategoryOverview,
		CategoryTurns,
		CategoryPOIs,
		CategoryNetwork,
		CategoryWeather,
		CategoryCompliance,
		CategoryElevation,
		CategoryEmergency,
		CategoryTraffic,
	}
}

// ParseCategory validates an externally supplied category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Section is implemented by every category payload.
type Section interface {
	// SectionCategory returns the category this payload belongs to.
	SectionCategory() Category
}

// Source fetches analysis sections from the route-data service.
type Source interface {
	// FetchSection retrieves one analysis section for a route.
	FetchSection(ctx context.Context, routeID string, cat Category) (Section, error)
	// Name returns the source identifier for logging.
	Name() string
}

// Error provides detailed error information from the route-data service.
type Error struct {
	Category Category // Category being fetched when the error occurred
	Code     string   // Error code from the service
	Message  string   // Human-readable error message
	Err      error    // Underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Coordinate is a geographic point on the route.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteInfo describes the analyzed route itself.
type RouteInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	TotalPoints int    `json:"total_points"`
}

// Overview is the route overview section (safety statistics and score).
type Overview struct {
	RouteInfo  RouteInfo `json:"route_info"`
	Statistics struct {
		TotalPoints       int     `json:"total_points"`
		TotalSharpTurns   int     `json:"total_sharp_turns"`
		ExtremeTurns      int     `json:"extreme_turns"`
		BlindSpots        int     `json:"blind_spots"`
		SharpDanger       int     `json:"sharp_danger"`
		ModerateTurns     int     `json:"moderate_turns"`
		DeadZones         int     `json:"dead_zones"`
		PoorCoverageZones int     `json:"poor_coverage_zones"`
		SafetyScore       float64 `json:"safety_score"`
		SafetyRating      string  `json:"safety_rating"`
	} `json:"statistics"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Turn is a single sharp turn on the route.
type Turn struct {
	Coordinate
	Angle float64 `json:"angle"`
}

// TurnsReport is the sharp-turn analysis section.
type TurnsReport struct {
	TotalTurns  int `json:"total_turns"`
	Categorized struct {
		ExtremeBlindSpots []Turn `json:"extreme_blind_spots"`
		BlindSpots        []Turn `json:"blind_spots"`
		SharpDanger       []Turn `json:"sharp_danger"`
		ModerateTurns     []Turn `json:"moderate_turns"`
	} `json:"categorized_turns"`
	Summary struct {
		MostDangerousAngle float64 `json:"most_dangerous_angle"`
		AverageAngle       float64 `json:"average_angle"`
		CriticalTurnsCount int     `json:"critical_turns_count"`
	} `json:"summary"`
}

// AllTurns returns every categorized turn in severity order.
func (t *TurnsReport) AllTurns() []Turn {
	turns := make([]Turn, 0, t.TotalTurns)
	turns = append(turns, t.Categorized.ExtremeBlindSpots...)
	turns = append(turns, t.Categorized.BlindSpots...)
	turns = append(turns, t.Categorized.SharpDanger...)
	turns = append(turns, t.Categorized.ModerateTurns...)
	return turns
}

// POI is a point of interest near the route.
type POI struct {
	Coordinate
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistanceKM float64 `json:"distance_km"`
}

// POIReport is the points-of-interest section.
type POIReport struct {
	ByType struct {
		Hospitals    []POI `json:"hospitals"`
		GasStations  []POI `json:"gas_stations"`
		Schools      []POI `json:"schools"`
		Restaurants  []POI `json:"restaurants"`
		Police       []POI `json:"police"`
		FireStations []POI `json:"fire_stations"`
	} `json:"pois_by_type"`
	Statistics struct {
		TotalPOIs         int     `json:"total_pois"`
		EmergencyServices int     `json:"emergency_services"`
		EssentialServices int     `json:"essential_services"`
		OtherServices     int     `json:"other_services"`
		CoverageScore     float64 `json:"coverage_score"`
	} `json:"statistics"`
}

// NetworkReport is the mobile network coverage section.
type NetworkReport struct {
	QualityDistribution map[string]int `json:"quality_distribution"`
	Statistics          struct {
		TotalPointsAnalyzed    int     `json:"total_points_analyzed"`
		OverallCoverageScore   float64 `json:"overall_coverage_score"`
		DeadZonesCount         int     `json:"dead_zones_count"`
		PoorCoverageCount      int     `json:"poor_coverage_count"`
		GoodCoveragePercentage float64 `json:"good_coverage_percentage"`
	} `json:"statistics"`
}

// WeatherReport is the weather analysis section.
type WeatherReport struct {
	ConditionsSummary map[string]int `json:"conditions_summary"`
	Statistics        struct {
		PointsAnalyzed     int     `json:"points_analyzed"`
		AverageTemperature float64 `json:"average_temperature"`
		AverageHumidity    float64 `json:"average_humidity"`
		AverageWindSpeed   float64 `json:"average_wind_speed"`
		TemperatureRange   struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temperature_range"`
	} `json:"statistics"`
	Risks []string `json:"weather_risks"`
}

// ComplianceReport is the regulatory compliance section.
type ComplianceReport struct {
	VehicleInfo struct {
		Type           string `json:"type"`
		Category       string `json:"category"`
		WeightKG       int    `json:"weight"`
		AIS140Required bool   `json:"ais_140_required"`
	} `json:"vehicle_info"`
	Assessment struct {
		OverallScore    float64  `json:"overall_score"`
		ComplianceLevel string   `json:"compliance_level"`
		Issues          []string `json:"issues_identified"`
	} `json:"compliance_assessment"`
}

// ElevationChange is a significant elevation change along the route.
type ElevationChange struct {
	Location      Coordinate `json:"location"`
	ChangeMeters  float64    `json:"elevation_change"`
	Type          string     `json:"type"` // "ascent" or "descent"
	FromElevation float64    `json:"from_elevation"`
	ToElevation   float64    `json:"to_elevation"`
}

// ElevationReport is the elevation and terrain analysis section.
type ElevationReport struct {
	Statistics struct {
		MinElevation     float64 `json:"min_elevation"`
		MaxElevation     float64 `json:"max_elevation"`
		AverageElevation float64 `json:"average_elevation"`
		ElevationRange   float64 `json:"elevation_range"`
		TotalPoints      int     `json:"total_points"`
	} `json:"statistics"`
	SignificantChanges []ElevationChange `json:"significant_changes"`
	Terrain            struct {
		TerrainType       string `json:"terrain_type"`
		DrivingDifficulty string `json:"driving_difficulty"`
		FuelImpact        string `json:"fuel_impact"`
	} `json:"terrain_analysis"`
}

// Ascents counts significant ascents along the route.
func (e *ElevationReport) Ascents() int {
	n := 0
	for _, c := range e.SignificantChanges {
		if c.Type == "ascent" {
			n++
		}
	}
	return n
}

// EmergencyReport is the emergency preparedness section.
type EmergencyReport struct {
	Services struct {
		Hospitals    []POI `json:"hospitals"`
		Police       []POI `json:"police_stations"`
		FireStations []POI `json:"fire_stations"`
	} `json:"emergency_services"`
	Communication struct {
		TotalCoveragePoints int    `json:"total_coverage_points"`
		DeadZones           int    `json:"dead_zones"`
		Reliability         string `json:"communication_reliability"`
	} `json:"communication_analysis"`
	Preparedness struct {
		EmergencyScore    float64  `json:"emergency_score"`
		PreparednessLevel string   `json:"preparedness_level"`
		CriticalGaps      []string `json:"critical_gaps"`
	} `json:"preparedness_assessment"`
	Contacts map[string]string `json:"emergency_contacts"`
}

// TrafficSegment is one analyzed traffic segment of the route.
type TrafficSegment struct {
	Coordinate
	CongestionLevel   string  `json:"congestion_level"`
	TravelTimeIndex   float64 `json:"travel_time_index"`
	FreeFlowSpeedKmh  float64 `json:"free_flow_speed"`
	CurrentSpeedKmh   float64 `json:"current_speed"`
	DelayPercent      float64 `json:"traffic_delay_percent"`
	DelaySeconds      float64 `json:"traffic_delay_seconds"`
	DistanceMeters    float64 `json:"distance_meters"`
	IncidentsReported int     `json:"incidents_count"`
}

// TrafficReport is the traffic analysis section.
type TrafficReport struct {
	Segments   []TrafficSegment `json:"segments"`
	Statistics struct {
		TrafficScore     float64 `json:"traffic_score"`
		AverageDelayPct  float64 `json:"average_delay_percent"`
		HeavySegments    int     `json:"heavy_segments"`
		ModerateSegments int     `json:"moderate_segments"`
		LightSegments    int     `json:"light_segments"`
		FreeFlowSegments int     `json:"free_flow_segments"`
	} `json:"statistics"`
}

// SectionCategory implementations keep the payload set closed over the
// category enum.

func (*Overview) SectionCategory() Category         { return CategoryOverview }
func (*TurnsReport) SectionCategory() Category      { return CategoryTurns }
func (*POIReport) SectionCategory() Category        { return CategoryPOIs }
func (*NetworkReport) SectionCategory() Category    { return CategoryNetwork }
func (*WeatherReport) SectionCategory() Category    { return CategoryWeather }
func (*ComplianceReport) SectionCategory() Category { return CategoryCompliance }
func (*ElevationReport) SectionCategory() Category  { return CategoryElevation }
func (*EmergencyReport) SectionCategory() Category  { return CategoryEmergency }
func (*TrafficReport) SectionCategory() Category    { return CategoryTraffic }
