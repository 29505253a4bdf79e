package routestore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/models"
)

// Validation constants.
const (
	MaxNameLength    = 120
	MaxAddressLength = 200
)

// Service provides route registry operations.
type Service struct {
	repo Repository
}

// NewService creates a new route registry service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves registered routes.
func (s *Service) List(ctx context.Context, limit int, cursor string) (*models.PagedRoutes, error) {
	result, err := s.repo.List(ctx, ListOptions{Limit: limit, Cursor: cursor})
	if err != nil {
		return nil, err
	}

	items := make([]models.Route, 0, len(result.Items))
	for _, route := range result.Items {
		items = append(items, s.toAPIRoute(route))
	}

	var nextCursor *string
	if result.NextCursor != "" {
		nextCursor = &result.NextCursor
	}

	return &models.PagedRoutes{
		Items: items,
		Meta: models.PagedResponseMeta{
			Limit:      limit,
			NextCursor: nextCursor,
		},
	}, nil
}

// Get retrieves a route by ID.
func (s *Service) Get(ctx context.Context, routeID string) (*models.Route, error) {
	route, err := s.repo.Get(ctx, routeID)
	if err != nil {
		return nil, err
	}

	result := s.toAPIRoute(route)
	return &result, nil
}

// RouteIDs retrieves every registered route ID.
func (s *Service) RouteIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListIDs(ctx)
}

// Create registers a new route.
func (s *Service) Create(ctx context.Context, input *models.RouteCreateRequest) (*models.Route, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	now := time.Now()
	route := &Route{
		ID:          "rt_" + uuid.New().String()[:22],
		Name:        input.Name,
		FromAddress: input.FromAddress,
		ToAddress:   input.ToAddress,
		DistanceKM:  input.DistanceKM,
		DurationMin: input.DurationMin,
		TotalPoints: input.TotalPoints,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}

	result := s.toAPIRoute(route)
	return &result, nil
}

// Update updates a registered route.
func (s *Service) Update(ctx context.Context, routeID string, input *models.RouteUpdateRequest) (*models.Route, error) {
	route, err := s.repo.Get(ctx, routeID)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	if fieldErrors := s.validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	if input.Name != nil {
		route.Name = *input.Name
	}
	if input.FromAddress != nil {
		route.FromAddress = *input.FromAddress
	}
	if input.ToAddress != nil {
		route.ToAddress = *input.ToAddress
	}
	if input.DistanceKM != nil {
		route.DistanceKM = *input.DistanceKM
	}
	if input.DurationMin != nil {
		route.DurationMin = *input.DurationMin
	}
	if input.TotalPoints != nil {
		route.TotalPoints = *input.TotalPoints
	}
	route.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}

	result := s.toAPIRoute(route)
	return &result, nil
}

// Delete removes a route from the registry.
func (s *Service) Delete(ctx context.Context, routeID string) error {
	if _, err := s.repo.Get(ctx, routeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, routeID)
}

func (s *Service) validateCreateInput(input *models.RouteCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "is required"})
	} else if len(input.Name) > MaxNameLength {
		errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 120 characters"})
	}

	errs = append(errs, validateAddress(input.FromAddress, "fromAddress", true)...)
	errs = append(errs, validateAddress(input.ToAddress, "toAddress", true)...)

	if input.DistanceKM < 0 {
		errs = append(errs, models.FieldError{Field: "distanceKm", Message: "must not be negative"})
	}
	if input.DurationMin < 0 {
		errs = append(errs, models.FieldError{Field: "durationMin", Message: "must not be negative"})
	}
	if input.TotalPoints < 0 {
		errs = append(errs, models.FieldError{Field: "totalPoints", Message: "must not be negative"})
	}

	return errs
}

func (s *Service) validateUpdateInput(input *models.RouteUpdateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name != nil {
		if *input.Name == "" {
			errs = append(errs, models.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*input.Name) > MaxNameLength {
			errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 120 characters"})
		}
	}
	if input.FromAddress != nil {
		errs = append(errs, validateAddress(*input.FromAddress, "fromAddress", false)...)
	}
	if input.ToAddress != nil {
		errs = append(errs, validateAddress(*input.ToAddress, "toAddress", false)...)
	}
	if input.DistanceKM != nil && *input.DistanceKM < 0 {
		errs = append(errs, models.FieldError{Field: "distanceKm", Message: "must not be negative"})
	}
	if input.DurationMin != nil && *input.DurationMin < 0 {
		errs = append(errs, models.FieldError{Field: "durationMin", Message: "must not be negative"})
	}
	if input.TotalPoints != nil && *input.TotalPoints < 0 {
		errs = append(errs, models.FieldError{Field: "totalPoints", Message: "must not be negative"})
	}

	return errs
}

func validateAddress(addr, field string, required bool) []models.FieldError {
	if addr == "" {
		if required {
			return []models.FieldError{{Field: field, Message: "is required"}}
		}
		return []models.FieldError{{Field: field, Message: "cannot be empty"}}
	}
	if len(addr) > MaxAddressLength {
		return []models.FieldError{{Field: field, Message: "must be at most 200 characters"}}
	}
	return nil
}

func (s *Service) toAPIRoute(route *Route) models.Route {
	return models.Route{
		ID:          route.ID,
		Name:        route.Name,
		FromAddress: route.FromAddress,
		ToAddress:   route.ToAddress,
		DistanceKM:  route.DistanceKM,
		DurationMin: route.DurationMin,
		TotalPoints: route.TotalPoints,
		CreatedAt:   models.Timestamp(route.CreatedAt),
		UpdatedAt:   models.Timestamp(route.UpdatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
