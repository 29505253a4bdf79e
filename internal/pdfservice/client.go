// Package pdfservice is the HTTP client for the report PDF rendering service.
package pdfservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
)

const (
	// UpstreamName identifies the PDF service for health tracking.
	UpstreamName = "pdfservice"

	// DefaultBaseURL is the PDF rendering service base URL.
	DefaultBaseURL = "http://localhost:5001"
)

// Sentinel errors for PDF generation.
var (
	// ErrUnavailable indicates the PDF service is down or its circuit is open.
	ErrUnavailable = errors.New("pdf service unavailable")
	// ErrGeneration indicates the PDF service rejected or failed the request.
	ErrGeneration = errors.New("pdf generation failed")
)

// ClientConfig holds configuration for the PDF service client.
type ClientConfig struct {
	// BaseURL is the service base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client renders route safety reports to PDF via the rendering service.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new PDF service client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(UpstreamName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// generateRequest is the rendering service request body.
type generateRequest struct {
	RouteID string   `json:"route_id"`
	Pages   []string `json:"pages,omitempty"`
}

// Generate renders the report for a route and returns the PDF bytes. Pages
// optionally restricts the document to the named report pages; an empty list
// renders the full report.
func (c *Client) Generate(ctx context.Context, routeID string, pages []string) ([]byte, error) {
	body, err := json.Marshal(generateRequest{RouteID: routeID, Pages: pages})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := c.baseURL + "/api/pdf/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn().
			Str("route_id", routeID).
			Int("status", resp.StatusCode).
			Msg("pdf service rejected request")
		return nil, fmt.Errorf("%w: status %d", ErrGeneration, resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrGeneration)
	}

	return pdf, nil
}
