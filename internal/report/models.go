// Package report builds the per-route safety report model by aggregating the
// nine analysis categories and deriving classifications and advisories from
// the merged result.
package report

import (
	"errors"
	"time"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
)

// Sentinel errors for report building.
var (
	// ErrInvalidRouteID indicates the route identifier is empty or malformed.
	ErrInvalidRouteID = errors.New("invalid route identifier")
)

// SectionError marks one category fetch that failed. The failure is contained
// at section granularity and never aborts the overall report build.
type SectionError struct {
	Category routedata.Category `json:"category"`
	Message  string             `json:"message"`
	Err      error              `json:"-"`
}

func (e *SectionError) Error() string {
	return string(e.Category) + ": " + e.Message
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// SectionResult holds the outcome of fetching one category. Exactly one of
// Payload and Err is set. Results are immutable once the model is built.
type SectionResult struct {
	Category routedata.Category
	Payload  routedata.Section
	Err      *SectionError
	Elapsed  time.Duration
}

// OK reports whether the section carries a payload.
func (r SectionResult) OK() bool {
	return r.Err == nil
}

// Model is the merged, per-category result set for one route. It always
// contains exactly one entry per known category, even when every fetch
// failed. The model is owned by the caller and read-only after Build.
type Model struct {
	RouteID     string
	Sections    map[routedata.Category]SectionResult
	Source      string
	GeneratedAt time.Time
}

// Section returns the result for one category.
func (m *Model) Section(cat routedata.Category) SectionResult {
	return m.Sections[cat]
}

// FailedCategories returns the categories whose fetch failed, in canonical order.
func (m *Model) FailedCategories() []routedata.Category {
	var failed []routedata.Category
	for _, cat := range routedata.Categories() {
		if !m.Sections[cat].OK() {
			failed = append(failed, cat)
		}
	}
	return failed
}

// Complete reports whether every section fetched successfully.
func (m *Model) Complete() bool {
	return len(m.FailedCategories()) == 0
}

// Typed accessors return the payload and true when the section succeeded.

// Overview returns the overview section payload.
func (m *Model) Overview() (*routedata.Overview, bool) {
	p, ok := m.Sections[routedata.CategoryOverview].Payload.(*routedata.Overview)
	return p, ok && p != nil
}

// Turns returns the sharp-turns section payload.
func (m *Model) Turns() (*routedata.TurnsReport, bool) {
	p, ok := m.Sections[routedata.CategoryTurns].Payload.(*routedata.TurnsReport)
	return p, ok && p != nil
}

// POIs returns the points-of-interest section payload.
func (m *Model) POIs() (*routedata.POIReport, bool) {
	p, ok := m.Sections[routedata.CategoryPOIs].Payload.(*routedata.POIReport)
	return p, ok && p != nil
}

// Network returns the network coverage section payload.
func (m *Model) Network() (*routedata.NetworkReport, bool) {
	p, ok := m.Sections[routedata.CategoryNetwork].Payload.(*routedata.NetworkReport)
	return p, ok && p != nil
}

// Weather returns the weather section payload.
func (m *Model) Weather() (*routedata.WeatherReport, bool) {
	p, ok := m.Sections[routedata.CategoryWeather].Payload.(*routedata.WeatherReport)
	return p, ok && p != nil
}

// Compliance returns the compliance section payload.
func (m *Model) Compliance() (*routedata.ComplianceReport, bool) {
	p, ok := m.Sections[routedata.CategoryCompliance].Payload.(*routedata.ComplianceReport)
	return p, ok && p != nil
}

// Elevation returns the elevation section payload.
func (m *Model) Elevation() (*routedata.ElevationReport, bool) {
	p, ok := m.Sections[routedata.CategoryElevation].Payload.(*routedata.ElevationReport)
	return p, ok && p != nil
}

// Emergency returns the emergency preparedness section payload.
func (m *Model) Emergency() (*routedata.EmergencyReport, bool) {
	p, ok := m.Sections[routedata.CategoryEmergency].Payload.(*routedata.EmergencyReport)
	return p, ok && p != nil
}

// Traffic returns the traffic section payload.
func (m *Model) Traffic() (*routedata.TrafficReport, bool) {
	p, ok := m.Sections[routedata.CategoryTraffic].Payload.(*routedata.TrafficReport)
	return p, ok && p != nil
}
