package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/models"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/response"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/pdfservice"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
)

// ReportHandler handles safety report endpoints.
type ReportHandler struct {
	builder *report.Builder
	pdf     *pdfservice.Client
}

// NewReportHandler creates a new ReportHandler. pdf may be nil when PDF
// generation is not configured.
func NewReportHandler(builder *report.Builder, pdf *pdfservice.Client) *ReportHandler {
	return &ReportHandler{builder: builder, pdf: pdf}
}

// GetReport handles GET /v1/routes/{routeId}/report - the full safety report.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeId")

	model, err := h.builder.Build(r.Context(), routeID)
	if err != nil {
		if errors.Is(err, report.ErrInvalidRouteID) {
			response.BadRequest(w, r, "routeId is required", nil)
			return
		}
		response.InternalError(w, r, "failed to build report")
		return
	}

	if routeUnknown(model) {
		response.NotFound(w, r, "route not found")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewReport(model))
}

// GetReportSection handles GET /v1/routes/{routeId}/report/{category} - a
// single analysis section.
func (h *ReportHandler) GetReportSection(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeId")

	cat, err := routedata.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		response.BadRequest(w, r, "unknown analysis category", nil)
		return
	}

	res, err := h.builder.BuildSection(r.Context(), routeID, cat)
	if err != nil {
		if errors.Is(err, report.ErrInvalidRouteID) {
			response.BadRequest(w, r, "routeId is required", nil)
			return
		}
		response.InternalError(w, r, "failed to fetch section")
		return
	}

	if res.Err != nil && errors.Is(res.Err, routedata.ErrRouteNotFound) {
		response.NotFound(w, r, "route not found")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewReportSection(res))
}

// GetReportPDF handles GET /v1/routes/{routeId}/report/pdf - the rendered
// report document.
func (h *ReportHandler) GetReportPDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		response.ServiceUnavailable(w, r, "pdf generation is not configured")
		return
	}

	routeID := chi.URLParam(r, "routeId")
	if routeID == "" {
		response.BadRequest(w, r, "routeId is required", nil)
		return
	}

	var pages []string
	if raw := r.URL.Query()["page"]; len(raw) > 0 {
		pages = raw
	}

	doc, err := h.pdf.Generate(r.Context(), routeID, pages)
	if err != nil {
		if errors.Is(err, pdfservice.ErrUnavailable) {
			response.ServiceUnavailable(w, r, "pdf service unavailable")
			return
		}
		response.InternalError(w, r, "failed to generate pdf")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="route-report-`+routeID+`.pdf"`)
	response.Binary(w, r, "application/pdf", doc)
}

// routeUnknown reports whether every section failed with a not-found error,
// meaning the route itself does not exist upstream.
func routeUnknown(m *report.Model) bool {
	failed := m.FailedCategories()
	if len(failed) != len(routedata.Categories()) {
		return false
	}
	for _, cat := range failed {
		if !errors.Is(m.Section(cat).Err, routedata.ErrRouteNotFound) {
			return false
		}
	}
	return true
}
