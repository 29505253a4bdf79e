// Package classify maps route metrics to discrete severity tiers.
//
// All functions are pure and total: every input, including missing or
// out-of-vocabulary values, maps to a defined classification. Threshold
// boundaries are tuned per metric and deliberately not unified.
package classify

import "math"

// Tier is a discrete severity bucket.
type Tier string

// Tiers from best to worst.
const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierModerate  Tier = "moderate"
	TierPoor      Tier = "poor"
)

// Rank orders tiers for comparison: higher is better.
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 3
	case TierGood:
		return 2
	case TierModerate:
		return 1
	case TierPoor:
		return 0
	default:
		return 1 // unknown tiers rank as moderate
	}
}

// Classification is the result of classifying one metric value.
type Classification struct {
	Tier     Tier   `json:"tier"`
	Label    string `json:"label"`
	CSSClass string `json:"css_class"`
}

// band is one threshold row: values at or above Min classify as Tier/Label.
type band struct {
	min   float64
	tier  Tier
	label string
}

// Score threshold tables. Bands are ordered from highest boundary down and
// evaluated first-match-wins; the last band has boundary 0 and catches
// everything below the lowest threshold.
var (
	safetyBands = []band{
		{80, TierExcellent, "Excellent"},
		{60, TierGood, "Good"},
		{40, TierModerate, "Moderate"},
		{0, TierPoor, "Poor"},
	}

	coverageBands = []band{
		{85, TierExcellent, "Excellent"},
		{70, TierGood, "Good"},
		{40, TierModerate, "Moderate"},
		{0, TierPoor, "Poor"},
	}

	trafficBands = []band{
		{80, TierExcellent, "Excellent"},
		{60, TierGood, "Good"},
		{40, TierModerate, "Moderate"},
		{0, TierPoor, "Poor"},
	}

	complianceBands = []band{
		{80, TierExcellent, "Compliant"},
		{60, TierModerate, "Needs Attention"},
		{0, TierPoor, "Non-Compliant"},
	}

	emergencyBands = []band{
		{80, TierExcellent, "Excellent"},
		{60, TierGood, "Good"},
		{0, TierPoor, "Needs Improvement"},
	}
)

// SafetyScore classifies an overall route safety score (0-100).
func SafetyScore(score float64) Classification {
	return classifyScore(safetyBands, score)
}

// CoverageScore classifies a network or service coverage score (0-100).
func CoverageScore(score float64) Classification {
	return classifyScore(coverageBands, score)
}

// TrafficScore classifies a traffic flow score (0-100).
func TrafficScore(score float64) Classification {
	return classifyScore(trafficBands, score)
}

// ComplianceScore classifies a regulatory compliance score (0-100).
func ComplianceScore(score float64) Classification {
	return classifyScore(complianceBands, score)
}

// EmergencyScore classifies an emergency preparedness score (0-100).
func EmergencyScore(score float64) Classification {
	return classifyScore(emergencyBands, score)
}

func classifyScore(bands []band, score float64) Classification {
	if math.IsNaN(score) || score < 0 {
		score = 0
	}

	for _, b := range bands {
		if score >= b.min {
			return Classification{
				Tier:     b.tier,
				Label:    b.label,
				CSSClass: cssClass(b.tier),
			}
		}
	}

	// Unreachable: the last band always has boundary 0.
	last := bands[len(bands)-1]
	return Classification{Tier: last.tier, Label: last.label, CSSClass: cssClass(last.tier)}
}

func cssClass(t Tier) string {
	return "score-" + string(t)
}
