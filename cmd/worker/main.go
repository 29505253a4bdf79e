// Package main provides the entrypoint for the report prewarm worker.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/database"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata/routeapi"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routestore"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "route-analytics-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting report prewarm worker")

	// Worker also exposes a health endpoint for Cloud Run.
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	if projectID == "" {
		log.Fatal().Msg("PUBSUB_PROJECT_ID is required")
	}

	subscription := os.Getenv("PUBSUB_SUBSCRIPTION")
	if subscription == "" {
		subscription = "report-prewarm"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Route store for resolving "prewarm everything" jobs.
	var routeRepo routestore.Repository
	if os.Getenv("DB_HOST") == "" {
		routeRepo = routestore.NewInMemoryRepository()
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
			Str("database", dbConfig.Database).
			Msg("database connected")

		routeRepo = routestore.NewPostgresRepository(pool)
	}
	routeService := routestore.NewService(routeRepo)

	// Report builder backed by the route data service.
	source := routeapi.NewClient(routeapi.ClientConfig{
		BaseURL:    os.Getenv("ROUTE_API_URL"),
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig(routeapi.SourceName)),
		Logger:     log,
	})

	builder := report.NewBuilder(report.BuilderConfig{
		Source: source,
		Logger: log,
	})

	prewarmJob := worker.NewPrewarmJob(worker.PrewarmJobConfig{
		Config:  worker.DefaultPrewarmConfig(),
		Builder: builder,
		Logger:  log,
	})

	pubsubHandler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
		ProjectID:        projectID,
		SubscriptionName: subscription,
		PrewarmJob:       prewarmJob,
		Routes:           routeService,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create pubsub handler")
	}
	defer pubsubHandler.Close()

	// Health check server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":"%s"}`, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health check server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Receive blocks until the context is cancelled.
	go func() {
		if err := pubsubHandler.Start(ctx); err != nil {
			log.Error().Err(err).Msg("pubsub receive stopped")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
