// Package routeapi is the HTTP client for the route analysis service.
package routeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
)

const (
	// SourceName identifies this route-data source.
	SourceName = "routeapi"

	// DefaultBaseURL is the route analysis service base URL.
	DefaultBaseURL = "http://localhost:5000"
)

// ClientConfig holds configuration for the route analysis service client.
type ClientConfig struct {
	// BaseURL is the service base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a route analysis service client. It implements routedata.Source.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new route analysis service client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(SourceName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the source name.
func (c *Client) Name() string {
	return SourceName
}

// FetchSection retrieves one analysis section for a route. The switch is
// exhaustive over the category set; new categories must be wired here.
func (c *Client) FetchSection(ctx context.Context, routeID string, cat routedata.Category) (routedata.Section, error) {
	switch cat {
	case routedata.CategoryOverview:
		return c.Overview(ctx, routeID)
	case routedata.CategoryTurns:
		return c.Turns(ctx, routeID)
	case routedata.CategoryPOIs:
		return c.POIs(ctx, routeID)
	case routedata.CategoryNetwork:
		return c.Network(ctx, routeID)
	case routedata.CategoryWeather:
		return c.Weather(ctx, routeID)
	case routedata.CategoryCompliance:
		return c.Compliance(ctx, routeID)
	case routedata.CategoryElevation:
		return c.Elevation(ctx, routeID)
	case routedata.CategoryEmergency:
		return c.Emergency(ctx, routeID)
	case routedata.CategoryTraffic:
		return c.Traffic(ctx, routeID)
	default:
		return nil, fmt.Errorf("%w: %q", routedata.ErrUnknownCategory, cat)
	}
}

// Overview fetches the route overview section.
func (c *Client) Overview(ctx context.Context, routeID string) (*routedata.Overview, error) {
	var out routedata.Overview
	if err := c.getSection(ctx, routeID, routedata.CategoryOverview, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Turns fetches the sharp-turn analysis section.
func (c *Client) Turns(ctx context.Context, routeID string) (*routedata.TurnsReport, error) {
	var out routedata.TurnsReport
	if err := c.getSection(ctx, routeID, routedata.CategoryTurns, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POIs fetches the points-of-interest section.
func (c *Client) POIs(ctx context.Context, routeID string) (*routedata.POIReport, error) {
	var out routedata.POIReport
	if err := c.getSection(ctx, routeID, routedata.CategoryPOIs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Network fetches the network coverage section.
func (c *Client) Network(ctx context.Context, routeID string) (*routedata.NetworkReport, error) {
	var out routedata.NetworkReport
	if err := c.getSection(ctx, routeID, routedata.CategoryNetwork, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Weather fetches the weather analysis section.
func (c *Client) Weather(ctx context.Context, routeID string) (*routedata.WeatherReport, error) {
	var out routedata.WeatherReport
	if err := c.getSection(ctx, routeID, routedata.CategoryWeather, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Compliance fetches the regulatory compliance section.
func (c *Client) Compliance(ctx context.Context, routeID string) (*routedata.ComplianceReport, error) {
	var out routedata.ComplianceReport
	if err := c.getSection(ctx, routeID, routedata.CategoryCompliance, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Elevation fetches the elevation and terrain section.
func (c *Client) Elevation(ctx context.Context, routeID string) (*routedata.ElevationReport, error) {
	var out routedata.ElevationReport
	if err := c.getSection(ctx, routeID, routedata.CategoryElevation, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Emergency fetches the emergency preparedness section.
func (c *Client) Emergency(ctx context.Context, routeID string) (*routedata.EmergencyReport, error) {
	var out routedata.EmergencyReport
	if err := c.getSection(ctx, routeID, routedata.CategoryEmergency, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Traffic fetches the traffic analysis section.
func (c *Client) Traffic(ctx context.Context, routeID string) (*routedata.TrafficReport, error) {
	var out routedata.TrafficReport
	if err := c.getSection(ctx, routeID, routedata.CategoryTraffic, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errorEnvelope is the service's in-band error shape. The upstream service
// reports some failures with status 200 and an error body, so every response
// is probed for it before decoding the payload.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) getSection(ctx context.Context, routeID string, cat routedata.Category, v any) error {
	url := fmt.Sprintf("%s/api/routes/%s/%s", c.baseURL, routeID, cat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return &routedata.Error{
				Category: cat,
				Code:     "CIRCUIT_OPEN",
				Message:  "route data source circuit open",
				Err:      routedata.ErrSourceUnavailable,
			}
		}
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &routedata.Error{
			Category: cat,
			Code:     "ROUTE_NOT_FOUND",
			Message:  fmt.Sprintf("route %s not found", routeID),
			Err:      routedata.ErrRouteNotFound,
		}
	case resp.StatusCode >= 500:
		return &routedata.Error{
			Category: cat,
			Code:     "UPSTREAM_ERROR",
			Message:  fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			Err:      routedata.ErrSourceUnavailable,
		}
	case resp.StatusCode != http.StatusOK:
		return &routedata.Error{
			Category: cat,
			Code:     "UPSTREAM_ERROR",
			Message:  fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		c.logger.Warn().
			Str("route_id", routeID).
			Str("category", string(cat)).
			Str("upstream_error", envelope.Error).
			Msg("route data service returned in-band error")

		return &routedata.Error{
			Category: cat,
			Code:     "UPSTREAM_ERROR",
			Message:  envelope.Error,
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
