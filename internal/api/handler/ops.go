// Package handler provides HTTP handlers for the route analytics API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/models"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/response"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	upstreams *resilience.Registry
	pingStore func(ctx context.Context) error
}

// NewOpsHandler creates a new OpsHandler. pingStore verifies the route store
// connection for readiness; nil means no store check (in-memory mode).
func NewOpsHandler(version, buildTime string, upstreams *resilience.Registry, pingStore func(ctx context.Context) error) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		upstreams: upstreams,
		pingStore: pingStore,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.pingStore != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.pingStore(ctx); err != nil {
			health.Status = models.HealthStatusFail
			health.Details = map[string]interface{}{"routestore": err.Error()}
			response.JSON(w, r, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - upstream dependency status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	status := models.SystemStatus{
		Status: models.HealthStatusOK,
		Time:   now,
	}

	if h.upstreams != nil {
		for _, u := range h.upstreams.AllHealth() {
			us := models.UpstreamStatus{
				Name:   u.Name,
				Status: models.HealthStatusOK,
			}
			switch {
			case u.IsDegraded():
				us.Status = models.HealthStatusDegraded
			case !u.IsHealthy():
				us.Status = models.HealthStatusFail
			}
			if us.Status != models.HealthStatusOK && status.Status == models.HealthStatusOK {
				status.Status = models.HealthStatusDegraded
			}
			if u.LastSuccessAt != nil {
				ts := models.Timestamp(*u.LastSuccessAt)
				us.LastSuccessAt = &ts
			}
			if u.LastFailureAt != nil {
				ts := models.Timestamp(*u.LastFailureAt)
				us.LastFailureAt = &ts
			}
			if u.LastError != "" {
				msg := u.LastError
				us.Message = &msg
			}
			status.Upstreams = append(status.Upstreams, us)
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}
