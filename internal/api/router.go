// Package api provides the HTTP API for the route analytics service.
package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/handler"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/middleware"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/pdfservice"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routestore"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version       string
	BuildTime     string
	Logger        zerolog.Logger
	ServiceName   string
	Metrics       *middleware.Metrics
	ReportBuilder *report.Builder
	RouteService  *routestore.Service
	PDFClient     *pdfservice.Client
	Upstreams     *resilience.Registry
	PingStore     func(ctx context.Context) error
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "route-analytics-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Upstreams, cfg.PingStore)
	routeHandler := handler.NewRouteHandler(cfg.RouteService)
	reportHandler := handler.NewReportHandler(cfg.ReportBuilder, cfg.PDFClient)

	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min
	reportRateLimit := middleware.RateLimitByIP(middleware.ReportRateLimit)     // 30 req/min
	pdfRateLimit := middleware.RateLimitByIP(middleware.PDFRateLimit)           // 10 req/min

	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (no rate limit: probed by orchestration)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		r.Route("/routes", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", routeHandler.ListRoutes)
			r.With(standardRateLimit).Post("/", routeHandler.CreateRoute)

			r.Route("/{routeId}", func(r chi.Router) {
				r.With(standardRateLimit).Get("/", routeHandler.GetRoute)
				r.With(standardRateLimit).Put("/", routeHandler.UpdateRoute)
				r.With(standardRateLimit).Delete("/", routeHandler.DeleteRoute)

				// Report endpoints fan out to the route data service
				r.Route("/report", func(r chi.Router) {
					r.With(reportRateLimit).Get("/", reportHandler.GetReport)
					r.With(pdfRateLimit).Get("/pdf", reportHandler.GetReportPDF)
					r.With(reportRateLimit).Get("/{category}", reportHandler.GetReportSection)
				})
			})
		})
	})

	return r
}
