package models

// Route is a registered route as exposed by the API.
type Route struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FromAddress string    `json:"fromAddress"`
	ToAddress   string    `json:"toAddress"`
	DistanceKM  float64   `json:"distanceKm"`
	DurationMin float64   `json:"durationMin"`
	TotalPoints int       `json:"totalPoints"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// PagedRoutes is a paginated list of routes.
type PagedRoutes struct {
	Items []Route           `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}

// RouteCreateRequest is the request body for registering a route.
type RouteCreateRequest struct {
	Name        string  `json:"name"`
	FromAddress string  `json:"fromAddress"`
	ToAddress   string  `json:"toAddress"`
	DistanceKM  float64 `json:"distanceKm"`
	DurationMin float64 `json:"durationMin"`
	TotalPoints int     `json:"totalPoints"`
}

// RouteUpdateRequest is the request body for updating a registered route.
// All fields are optional; absent fields are left unchanged.
type RouteUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	FromAddress *string  `json:"fromAddress,omitempty"`
	ToAddress   *string  `json:"toAddress,omitempty"`
	DistanceKM  *float64 `json:"distanceKm,omitempty"`
	DurationMin *float64 `json:"durationMin,omitempty"`
	TotalPoints *int     `json:"totalPoints,omitempty"`
}
