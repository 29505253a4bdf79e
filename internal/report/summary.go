package report

import (
	"fmt"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report/advice"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report/classify"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
)

// Assessment pairs a raw score with its classification.
type Assessment struct {
	Score          float64                 `json:"score"`
	Classification classify.Classification `json:"classification"`
}

// ClassifiedTurn is a sharp turn annotated with its danger band.
type ClassifiedTurn struct {
	routedata.Turn
	Classification classify.TurnClassification `json:"classification"`
}

// Summary is the derived, presentation-ready layer of a report model:
// classified scores, annotated critical turns, and per-category advisories.
type Summary struct {
	RouteID string `json:"route_id"`

	// Score assessments; present only when the backing section succeeded.
	Safety     *Assessment `json:"safety,omitempty"`
	Coverage   *Assessment `json:"coverage,omitempty"`
	Traffic    *Assessment `json:"traffic,omitempty"`
	Compliance *Assessment `json:"compliance,omitempty"`
	Emergency  *Assessment `json:"emergency,omitempty"`

	// Terrain classification from the elevation section.
	Terrain *classify.Classification `json:"terrain,omitempty"`

	// CriticalTurns lists turns at or above the blind-spot boundary,
	// annotated with severity and recommended speed.
	CriticalTurns []ClassifiedTurn `json:"critical_turns,omitempty"`

	// Recommendations keyed by advisory category. Every key maps to a
	// non-empty list.
	Recommendations map[string][]string `json:"recommendations"`

	// FailedSections names the categories whose data could not be fetched.
	FailedSections []routedata.Category `json:"failed_sections,omitempty"`

	// Notes records data-quality observations such as unrecognized
	// upstream vocabulary.
	Notes []string `json:"notes,omitempty"`
}

// Advisory category keys in the Recommendations map.
const (
	AdviceWeather    = "weather"
	AdviceElevation  = "elevation"
	AdviceTraffic    = "traffic"
	AdviceTerrain    = "terrain"
	AdviceNetwork    = "network"
	AdviceServices   = "services"
	AdviceEmergency  = "emergency"
	AdviceCompliance = "compliance"
)

// Summarize derives the presentation layer from a report model. It is pure:
// missing or failed sections simply omit their assessments, and advisory
// metrics fall back to zero values so recommendations are always produced.
func Summarize(m *Model) *Summary {
	s := &Summary{
		RouteID:        m.RouteID,
		FailedSections: m.FailedCategories(),
	}

	if ov, ok := m.Overview(); ok {
		s.Safety = &Assessment{
			Score:          ov.Statistics.SafetyScore,
			Classification: classify.SafetyScore(ov.Statistics.SafetyScore),
		}
	}
	if nw, ok := m.Network(); ok {
		s.Coverage = &Assessment{
			Score:          nw.Statistics.OverallCoverageScore,
			Classification: classify.CoverageScore(nw.Statistics.OverallCoverageScore),
		}
	}
	if tr, ok := m.Traffic(); ok {
		s.Traffic = &Assessment{
			Score:          tr.Statistics.TrafficScore,
			Classification: classify.TrafficScore(tr.Statistics.TrafficScore),
		}
	}
	if cp, ok := m.Compliance(); ok {
		s.Compliance = &Assessment{
			Score:          cp.Assessment.OverallScore,
			Classification: classify.ComplianceScore(cp.Assessment.OverallScore),
		}
	}
	if em, ok := m.Emergency(); ok {
		s.Emergency = &Assessment{
			Score:          em.Preparedness.EmergencyScore,
			Classification: classify.EmergencyScore(em.Preparedness.EmergencyScore),
		}
	}

	if el, ok := m.Elevation(); ok {
		terrain, recognized := classify.Terrain(el.Terrain.TerrainType)
		s.Terrain = &terrain
		if !recognized && el.Terrain.TerrainType != "" {
			s.Notes = append(s.Notes, fmt.Sprintf("unrecognized terrain type %q", el.Terrain.TerrainType))
		}
	}

	if turns, ok := m.Turns(); ok {
		for _, t := range turns.AllTurns() {
			if !classify.IsCriticalTurn(t.Angle) {
				continue
			}
			s.CriticalTurns = append(s.CriticalTurns, ClassifiedTurn{
				Turn:           t,
				Classification: classify.TurnAngle(t.Angle),
			})
		}
	}

	if w, ok := m.Weather(); ok {
		for cond := range w.ConditionsSummary {
			if _, recognized := classify.WeatherCondition(cond); !recognized {
				s.Notes = append(s.Notes, fmt.Sprintf("unrecognized weather condition %q", cond))
			}
		}
	}
	if tr, ok := m.Traffic(); ok {
		for _, seg := range tr.Segments {
			if _, recognized := classify.Congestion(seg.CongestionLevel); !recognized {
				s.Notes = append(s.Notes, fmt.Sprintf("unrecognized congestion level %q", seg.CongestionLevel))
				break
			}
		}
	}

	metrics := metricsFromModel(m)
	s.Recommendations = map[string][]string{
		AdviceWeather:    advice.WeatherPreparation(metrics),
		AdviceElevation:  advice.ElevationPreparation(metrics),
		AdviceTraffic:    advice.TrafficAdvisories(metrics),
		AdviceTerrain:    advice.TerrainChallenges(metrics),
		AdviceNetwork:    advice.NetworkCoverage(metrics),
		AdviceServices:   advice.ServiceAvailability(metrics),
		AdviceEmergency:  advice.EmergencyPreparedness(metrics),
		AdviceCompliance: advice.ComplianceAdvisories(metrics),
	}

	return s
}

// metricsFromModel projects the model onto the advisory rule inputs. Sections
// that failed contribute zero values, which the rules treat as "no signal".
func metricsFromModel(m *Model) advice.Metrics {
	var metrics advice.Metrics

	if w, ok := m.Weather(); ok {
		metrics.AvgTemperatureC = w.Statistics.AverageTemperature
		metrics.AvgWindSpeedKmh = w.Statistics.AverageWindSpeed
		metrics.Conditions = w.ConditionsSummary
		metrics.TemperatureRange = w.Statistics.TemperatureRange.Max - w.Statistics.TemperatureRange.Min
	}

	if el, ok := m.Elevation(); ok {
		metrics.TerrainType = el.Terrain.TerrainType
		metrics.ElevationRangeM = el.Statistics.ElevationRange
		metrics.SignificantChanges = len(el.SignificantChanges)
		metrics.Ascents = el.Ascents()
	}

	if tr, ok := m.Traffic(); ok {
		metrics.HeavySegments = tr.Statistics.HeavySegments
		metrics.ModerateSegments = tr.Statistics.ModerateSegments
		metrics.AvgDelayPercent = tr.Statistics.AverageDelayPct
	}

	if nw, ok := m.Network(); ok {
		metrics.DeadZones = nw.Statistics.DeadZonesCount
		metrics.PoorCoverageZones = nw.Statistics.PoorCoverageCount
	}

	if p, ok := m.POIs(); ok {
		metrics.Hospitals = len(p.ByType.Hospitals)
		metrics.GasStations = len(p.ByType.GasStations)
		metrics.Police = len(p.ByType.Police)
		metrics.FireStations = len(p.ByType.FireStations)
	}

	if em, ok := m.Emergency(); ok {
		metrics.EmergencyScore = em.Preparedness.EmergencyScore
		// Emergency section is the authoritative dead-zone count when present.
		if em.Communication.DeadZones > metrics.DeadZones {
			metrics.DeadZones = em.Communication.DeadZones
		}
	}

	if cp, ok := m.Compliance(); ok {
		metrics.ComplianceIssues = cp.Assessment.Issues
	}

	return metrics
}
