// Package main provides the entrypoint for the route analytics API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/api/middleware"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/database"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/pdfservice"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata/routeapi"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routestore"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "route-analytics-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting route analytics API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Initialize the route store. With no DB_HOST the store runs in memory,
	// which keeps local development free of a Postgres dependency.
	var (
		routeRepo routestore.Repository
		pingStore func(ctx context.Context) error
	)
	if os.Getenv("DB_HOST") == "" {
		routeRepo = routestore.NewInMemoryRepository()
		pingStore = func(context.Context) error { return nil }
		log.Warn().Msg("DB_HOST not set - using in-memory route store")
	} else {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")

		routeRepo = routestore.NewPostgresRepository(pool)
		pingStore = pool.Ping
	}

	routeService := routestore.NewService(routeRepo)
	log.Info().Msg("route store initialized")

	// Upstream registry backs the readiness and status endpoints.
	upstreams := resilience.NewRegistry()

	// Route data service client
	routeDataHTTP := resilience.NewClient(resilience.DefaultClientConfig(routeapi.SourceName))
	upstreams.Register(routeapi.SourceName, routeDataHTTP)

	source := routeapi.NewClient(routeapi.ClientConfig{
		BaseURL:    os.Getenv("ROUTE_API_URL"),
		HTTPClient: routeDataHTTP,
		Logger:     log,
	})
	log.Info().Str("source", source.Name()).Msg("route data client initialized")

	// Report builder with its TTL cache
	reportCacheTTL := 5 * time.Minute
	if raw := os.Getenv("REPORT_CACHE_TTL"); raw != "" {
		if parsed, parseErr := time.ParseDuration(raw); parseErr == nil {
			reportCacheTTL = parsed
		} else {
			log.Warn().Str("value", raw).Msg("invalid REPORT_CACHE_TTL, using default")
		}
	}

	builder := report.NewBuilder(report.BuilderConfig{
		Source:   source,
		Logger:   log,
		CacheTTL: reportCacheTTL,
	})
	log.Info().Dur("cache_ttl", reportCacheTTL).Msg("report builder initialized")

	// PDF rendering client (may be nil if not configured)
	var pdfClient *pdfservice.Client
	pdfBaseURL := os.Getenv("PDF_SERVICE_URL")
	if pdfBaseURL != "" {
		pdfHTTP := resilience.NewClient(resilience.DefaultClientConfig(pdfservice.UpstreamName))
		upstreams.Register(pdfservice.UpstreamName, pdfHTTP)

		pdfClient = pdfservice.NewClient(pdfservice.ClientConfig{
			BaseURL:    pdfBaseURL,
			HTTPClient: pdfHTTP,
			Logger:     log,
		})
		log.Info().Str("base_url", pdfBaseURL).Msg("pdf service client initialized")
	} else {
		log.Warn().Msg("PDF_SERVICE_URL not set - pdf endpoint will return 503")
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:       Version,
		BuildTime:     BuildTime,
		Logger:        log,
		ServiceName:   serviceName,
		Metrics:       metrics,
		ReportBuilder: builder,
		RouteService:  routeService,
		PDFClient:     pdfClient,
		Upstreams:     upstreams,
		PingStore:     pingStore,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
