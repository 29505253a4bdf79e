package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
)

// PrewarmJob builds safety reports ahead of demand so API requests hit the
// report cache instead of fanning out to the route data service.
type PrewarmJob struct {
	config  PrewarmConfig
	builder *report.Builder
	logger  zerolog.Logger

	metrics *PrewarmMetrics
}

// PrewarmMetrics tracks prewarm job statistics.
type PrewarmMetrics struct {
	mu sync.RWMutex

	TotalRuns        int64
	RoutesWarmed     int64
	RoutesFailed     int64
	PartialReports   int64
	LastRunAt        time.Time
	LastRunDuration  time.Duration
	TotalRunDuration time.Duration
}

// PrewarmJobConfig holds configuration for creating a PrewarmJob.
type PrewarmJobConfig struct {
	Config  PrewarmConfig
	Builder *report.Builder
	Logger  zerolog.Logger
}

// NewPrewarmJob creates a new prewarm job processor.
func NewPrewarmJob(cfg PrewarmJobConfig) *PrewarmJob {
	return &PrewarmJob{
		config:  cfg.Config.withDefaults(),
		builder: cfg.Builder,
		logger:  cfg.Logger,
		metrics: &PrewarmMetrics{},
	}
}

// PrewarmResult contains the result of one prewarm run.
type PrewarmResult struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalRoutes int
	Warmed      int
	Partial     int
	Failed      int
	Errors      []PrewarmError
}

// PrewarmError records one failed route build.
type PrewarmError struct {
	RouteID string
	Error   string
}

// FailureRate returns the fraction of routes that failed to build.
func (r *PrewarmResult) FailureRate() float64 {
	if r.TotalRoutes == 0 {
		return 0
	}
	return float64(r.Failed) / float64(r.TotalRoutes)
}

// Run builds reports for the given routes with bounded concurrency.
func (j *PrewarmJob) Run(ctx context.Context, routeIDs []string) *PrewarmResult {
	startTime := time.Now()
	result := &PrewarmResult{
		StartTime:   startTime,
		TotalRoutes: len(routeIDs),
	}

	j.logger.Info().
		Int("total_routes", len(routeIDs)).
		Int("concurrency", j.config.Concurrency).
		Msg("starting report prewarm job")

	routesChan := make(chan string, len(routeIDs))
	resultsChan := make(chan routeResult, len(routeIDs))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.prewarmWorker(ctx, routesChan, resultsChan)
		}()
	}

	for _, id := range routeIDs {
		routesChan <- id
	}
	close(routesChan)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for rr := range resultsChan {
		switch {
		case rr.err != "":
			result.Failed++
			result.Errors = append(result.Errors, PrewarmError{RouteID: rr.routeID, Error: rr.err})
		case rr.partial:
			result.Partial++
			result.Warmed++
		default:
			result.Warmed++
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("warmed", result.Warmed).
		Int("partial", result.Partial).
		Int("failed", result.Failed).
		Msg("report prewarm job completed")

	return result
}

type routeResult struct {
	routeID string
	partial bool
	err     string
}

func (j *PrewarmJob) prewarmWorker(ctx context.Context, routes <-chan string, results chan<- routeResult) {
	for routeID := range routes {
		select {
		case <-ctx.Done():
			return
		default:
			results <- j.prewarmRoute(ctx, routeID)
		}
	}
}

func (j *PrewarmJob) prewarmRoute(ctx context.Context, routeID string) routeResult {
	buildCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	model, err := j.builder.Build(buildCtx, routeID)
	if err != nil {
		j.logger.Error().Err(err).
			Str("route_id", routeID).
			Msg("report prewarm failed")
		return routeResult{routeID: routeID, err: err.Error()}
	}

	return routeResult{
		routeID: routeID,
		partial: !model.Complete(),
	}
}

func (j *PrewarmJob) updateMetrics(result *PrewarmResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.RoutesWarmed += int64(result.Warmed)
	j.metrics.RoutesFailed += int64(result.Failed)
	j.metrics.PartialReports += int64(result.Partial)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalRunDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *PrewarmJob) GetMetrics() PrewarmMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return PrewarmMetrics{
		TotalRuns:        j.metrics.TotalRuns,
		RoutesWarmed:     j.metrics.RoutesWarmed,
		RoutesFailed:     j.metrics.RoutesFailed,
		PartialReports:   j.metrics.PartialReports,
		LastRunAt:        j.metrics.LastRunAt,
		LastRunDuration:  j.metrics.LastRunDuration,
		TotalRunDuration: j.metrics.TotalRunDuration,
	}
}
