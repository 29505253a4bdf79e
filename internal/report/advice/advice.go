// Package advice derives driver advisories from classified route metrics.
//
// Each advisory category is an ordered list of independent condition rules.
// Rules are additive: every matching rule contributes its advice, in
// declaration order. When no rule matches, the category's fixed fallback set
// is returned, so the output is never empty.
package advice

// Metrics is the bundle of route metrics the advisory rules evaluate.
// Values default to their zero value when the underlying report section is
// missing or failed. Rules on continuous metrics treat zero as "no signal";
// rules on service counts fire at zero, which errs on the side of caution
// when the data is absent.
type Metrics struct {
	// Weather
	AvgTemperatureC  float64
	AvgWindSpeedKmh  float64
	Conditions       map[string]int // condition name -> observation count
	TemperatureRange float64

	// Elevation / terrain
	TerrainType        string
	ElevationRangeM    float64
	SignificantChanges int
	Ascents            int

	// Traffic
	HeavySegments    int
	ModerateSegments int
	AvgDelayPercent  float64

	// Network
	DeadZones         int
	PoorCoverageZones int

	// Services along the route
	Hospitals    int
	GasStations  int
	Police       int
	FireStations int

	// Emergency and compliance
	EmergencyScore   float64
	ComplianceIssues []string
}

// HasCondition reports whether a weather condition was observed.
func (m Metrics) HasCondition(name string) bool {
	_, ok := m.Conditions[name]
	return ok
}

// rule is one condition -> advice mapping.
type rule struct {
	name   string
	fires  func(Metrics) bool
	advice func(Metrics) string
}

// static wraps constant advice text as a rule advice function.
func static(text string) func(Metrics) string {
	return func(Metrics) string { return text }
}

// evaluate runs rules in declaration order and collects advice from every
// rule that fires, falling back to the category's generic set when none do.
func evaluate(rules []rule, m Metrics, fallback []string) []string {
	var out []string
	for _, r := range rules {
		if r.fires(m) {
			out = append(out, r.advice(m))
		}
	}
	if len(out) == 0 {
		out = append(out, fallback...)
	}
	return out
}

// genericFallback is returned by every advisory category when no specific
// rule matches. Fixed set; tests rely on its size.
var genericFallback = []string{
	"Check vehicle condition and tire pressure before departure",
	"Carry drinking water and a basic emergency kit",
	"Share your route and expected arrival time with someone",
}
