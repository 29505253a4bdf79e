package models

import (
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
)

// ReportSection is one category's data or error marker in a report response.
type ReportSection struct {
	Category string      `json:"category"`
	Data     interface{} `json:"data,omitempty"`
	Error    *string     `json:"error,omitempty"`
}

// Report is the full safety report response: every analysis category plus
// the derived summary.
type Report struct {
	RouteID     string                   `json:"routeId"`
	GeneratedAt Timestamp                `json:"generatedAt"`
	Source      string                   `json:"source"`
	Complete    bool                     `json:"complete"`
	Sections    map[string]ReportSection `json:"sections"`
	Summary     *report.Summary          `json:"summary"`
}

// NewReport converts a report model to its API representation.
func NewReport(m *report.Model) *Report {
	sections := make(map[string]ReportSection, len(m.Sections))
	for _, cat := range routedata.Categories() {
		res := m.Section(cat)
		section := ReportSection{Category: string(cat)}
		if res.OK() {
			section.Data = res.Payload
		} else {
			msg := res.Err.Message
			section.Error = &msg
		}
		sections[string(cat)] = section
	}

	return &Report{
		RouteID:     m.RouteID,
		GeneratedAt: Timestamp(m.GeneratedAt),
		Source:      m.Source,
		Complete:    m.Complete(),
		Sections:    sections,
		Summary:     report.Summarize(m),
	}
}

// NewReportSection converts a single section result to its API representation.
func NewReportSection(res report.SectionResult) ReportSection {
	section := ReportSection{Category: string(res.Category)}
	if res.OK() {
		section.Data = res.Payload
	} else {
		msg := res.Err.Message
		section.Error = &msg
	}
	return section
}
