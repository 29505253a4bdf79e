// Package routestore manages the registry of routes known to the service.
// Registered routes are listable over the API and eligible for report
// prewarming by the worker.
package routestore

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrRouteNotFound = errors.New("route not found")
)

// Route is a registered route.
type Route struct {
	ID          string
	Name        string
	FromAddress string
	ToAddress   string
	DistanceKM  float64
	DurationMin float64
	TotalPoints int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
