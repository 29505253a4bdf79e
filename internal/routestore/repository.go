package routestore

import "context"

// ListOptions contains options for listing routes.
type ListOptions struct {
	Limit  int
	Cursor string
}

// ListResult contains the results of listing routes.
type ListResult struct {
	Items      []*Route
	NextCursor string
}

// Repository defines the interface for route registry persistence.
type Repository interface {
	// Get retrieves a route by ID.
	Get(ctx context.Context, id string) (*Route, error)

	// List retrieves registered routes with pagination.
	List(ctx context.Context, opts ListOptions) (*ListResult, error)

	// ListIDs retrieves every registered route ID. Used by the prewarm worker.
	ListIDs(ctx context.Context) ([]string, error)

	// Create creates a new route.
	Create(ctx context.Context, route *Route) error

	// Update updates an existing route.
	Update(ctx context.Context, route *Route) error

	// Delete deletes a route by ID.
	Delete(ctx context.Context, id string) error
}
