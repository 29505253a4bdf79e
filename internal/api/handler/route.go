package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/models"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/response"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routestore"
)

// RouteHandler handles route registry endpoints.
type RouteHandler struct {
	routes *routestore.Service
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routes *routestore.Service) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// ListRoutes handles GET /v1/routes - list registered routes.
func (h *RouteHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			response.BadRequest(w, r, "limit must be an integer between 1 and 200", nil)
			return
		}
		limit = parsed
	}
	cursor := r.URL.Query().Get("cursor")

	routes, err := h.routes.List(r.Context(), limit, cursor)
	if err != nil {
		response.InternalError(w, r, "failed to list routes")
		return
	}

	response.JSON(w, r, http.StatusOK, routes)
}

// CreateRoute handles POST /v1/routes - register a route.
func (h *RouteHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var input models.RouteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	route, err := h.routes.Create(r.Context(), &input)
	if err != nil {
		var verr *routestore.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, r, "validation failed", verr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create route")
		return
	}

	location := fmt.Sprintf("/v1/routes/%s", route.ID)
	response.Created(w, r, location, route)
}

// GetRoute handles GET /v1/routes/{routeId} - get a registered route.
func (h *RouteHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeId")
	if routeID == "" {
		response.BadRequest(w, r, "routeId is required", nil)
		return
	}

	route, err := h.routes.Get(r.Context(), routeID)
	if err != nil {
		if errors.Is(err, routestore.ErrRouteNotFound) {
			response.NotFound(w, r, "route not found")
			return
		}
		response.InternalError(w, r, "failed to get route")
		return
	}

	response.JSON(w, r, http.StatusOK, route)
}

// UpdateRoute handles PUT /v1/routes/{routeId} - update a registered route.
func (h *RouteHandler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeId")
	if routeID == "" {
		response.BadRequest(w, r, "routeId is required", nil)
		return
	}

	var input models.RouteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	route, err := h.routes.Update(r.Context(), routeID, &input)
	if err != nil {
		var verr *routestore.ValidationError
		switch {
		case errors.Is(err, routestore.ErrRouteNotFound):
			response.NotFound(w, r, "route not found")
		case errors.As(err, &verr):
			response.BadRequest(w, r, "validation failed", verr.Errors)
		default:
			response.InternalError(w, r, "failed to update route")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, route)
}

// DeleteRoute handles DELETE /v1/routes/{routeId} - remove a registered route.
func (h *RouteHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeId")
	if routeID == "" {
		response.BadRequest(w, r, "routeId is required", nil)
		return
	}

	if err := h.routes.Delete(r.Context(), routeID); err != nil {
		if errors.Is(err, routestore.ErrRouteNotFound) {
			response.NotFound(w, r, "route not found")
			return
		}
		response.InternalError(w, r, "failed to delete route")
		return
	}

	response.NoContent(w, r)
}
