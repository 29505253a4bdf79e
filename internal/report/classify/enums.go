package classify

import "strings"

// Enum classifiers match case-insensitively against a fixed vocabulary. The
// boolean return reports whether the value was recognized; unrecognized
// values classify to a defined moderate default so rendering never fails on
// unexpected upstream vocabulary.

// RiskLevel classifies a risk-level label (low/medium/high/critical).
func RiskLevel(value string) (Classification, bool) {
	switch normalize(value) {
	case "low":
		return Classification{Tier: TierGood, Label: "Low Risk", CSSClass: cssClass(TierGood)}, true
	case "medium", "moderate":
		return Classification{Tier: TierModerate, Label: "Moderate Risk", CSSClass: cssClass(TierModerate)}, true
	case "high":
		return Classification{Tier: TierPoor, Label: "High Risk", CSSClass: cssClass(TierPoor)}, true
	case "critical":
		return Classification{Tier: TierPoor, Label: "Critical Risk", CSSClass: cssClass(TierPoor)}, true
	default:
		return Classification{Tier: TierModerate, Label: "Unknown Risk", CSSClass: cssClass(TierModerate)}, false
	}
}

// Terrain classifies a terrain type label (plains/hilly/mountainous/high_plateau).
func Terrain(value string) (Classification, bool) {
	switch normalize(value) {
	case "plains":
		return Classification{Tier: TierGood, Label: "Plains", CSSClass: cssClass(TierGood)}, true
	case "hilly":
		return Classification{Tier: TierModerate, Label: "Hilly", CSSClass: cssClass(TierModerate)}, true
	case "high_plateau":
		return Classification{Tier: TierModerate, Label: "High Plateau", CSSClass: cssClass(TierModerate)}, true
	case "mountainous":
		return Classification{Tier: TierPoor, Label: "Mountainous", CSSClass: cssClass(TierPoor)}, true
	default:
		return Classification{Tier: TierModerate, Label: "Unknown Terrain", CSSClass: cssClass(TierModerate)}, false
	}
}

// WeatherCondition classifies a weather condition label.
func WeatherCondition(value string) (Classification, bool) {
	switch normalize(value) {
	case "clear":
		return Classification{Tier: TierExcellent, Label: "Clear", CSSClass: cssClass(TierExcellent)}, true
	case "clouds":
		return Classification{Tier: TierGood, Label: "Cloudy", CSSClass: cssClass(TierGood)}, true
	case "drizzle", "mist", "haze":
		return Classification{Tier: TierModerate, Label: "Reduced Visibility", CSSClass: cssClass(TierModerate)}, true
	case "rain":
		return Classification{Tier: TierModerate, Label: "Rain", CSSClass: cssClass(TierModerate)}, true
	case "thunderstorm":
		return Classification{Tier: TierPoor, Label: "Thunderstorm", CSSClass: cssClass(TierPoor)}, true
	case "snow":
		return Classification{Tier: TierPoor, Label: "Snow", CSSClass: cssClass(TierPoor)}, true
	case "fog":
		return Classification{Tier: TierPoor, Label: "Fog", CSSClass: cssClass(TierPoor)}, true
	default:
		return Classification{Tier: TierModerate, Label: "Unknown Conditions", CSSClass: cssClass(TierModerate)}, false
	}
}

// Congestion classifies a traffic congestion level (free_flow/light/moderate/heavy).
func Congestion(value string) (Classification, bool) {
	switch normalize(value) {
	case "free_flow":
		return Classification{Tier: TierExcellent, Label: "Free Flow", CSSClass: cssClass(TierExcellent)}, true
	case "light":
		return Classification{Tier: TierGood, Label: "Light Traffic", CSSClass: cssClass(TierGood)}, true
	case "moderate":
		return Classification{Tier: TierModerate, Label: "Moderate Traffic", CSSClass: cssClass(TierModerate)}, true
	case "heavy":
		return Classification{Tier: TierPoor, Label: "Heavy Traffic", CSSClass: cssClass(TierPoor)}, true
	default:
		return Classification{Tier: TierModerate, Label: "Unknown Traffic", CSSClass: cssClass(TierModerate)}, false
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
