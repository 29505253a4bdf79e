package classify

// TurnSeverity grades how dangerous a sharp turn is.
type TurnSeverity string

// Turn severities from worst to mildest.
const (
	SeverityCritical TurnSeverity = "critical"
	SeverityExtreme  TurnSeverity = "extreme"
	SeverityHigh     TurnSeverity = "high"
	SeverityMedium   TurnSeverity = "medium"
	SeverityLow      TurnSeverity = "low"
)

// TurnClassification describes one turn-angle band.
type TurnClassification struct {
	Label       string       `json:"label"`
	Severity    TurnSeverity `json:"severity"`
	SpeedCapKmh int          `json:"recommended_speed_kmh"`
	CSSClass    string       `json:"css_class"`
}

// turnBand rows are ordered from highest angle boundary down. Bands are
// half-open on the lower bound: a turn belongs to the first band whose
// boundary it meets, so bands cannot overlap.
var turnBands = []struct {
	minAngle float64
	class    TurnClassification
}{
	{90, TurnClassification{Label: "EXTREME BLIND SPOT", Severity: SeverityCritical, SpeedCapKmh: 15, CSSClass: "turn-critical"}},
	{80, TurnClassification{Label: "HIGH-RISK BLIND SPOT", Severity: SeverityExtreme, SpeedCapKmh: 20, CSSClass: "turn-extreme"}},
	{70, TurnClassification{Label: "BLIND SPOT", Severity: SeverityHigh, SpeedCapKmh: 25, CSSClass: "turn-high"}},
	{60, TurnClassification{Label: "HIGH-ANGLE TURN", Severity: SeverityMedium, SpeedCapKmh: 30, CSSClass: "turn-medium"}},
}

// moderateTurn covers angles below the lowest sharp-turn boundary.
var moderateTurn = TurnClassification{
	Label:       "MODERATE TURN",
	Severity:    SeverityLow,
	SpeedCapKmh: 40,
	CSSClass:    "turn-low",
}

// TurnAngle classifies a turn by its angle in degrees.
func TurnAngle(angleDegrees float64) TurnClassification {
	for _, b := range turnBands {
		if angleDegrees >= b.minAngle {
			return b.class
		}
	}
	return moderateTurn
}

// IsCriticalTurn reports whether the angle falls in a band that requires a
// dedicated callout in the report (blind spot or worse).
func IsCriticalTurn(angleDegrees float64) bool {
	return angleDegrees >= 70
}
