package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/report"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/worker"
)

// prewarmSource serves empty payloads, failing every category for route IDs
// listed in partialRoutes.
type prewarmSource struct {
	mu            sync.Mutex
	fetches       int
	partialRoutes map[string]bool
}

func (s *prewarmSource) Name() string { return "fake" }

func (s *prewarmSource) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

func (s *prewarmSource) FetchSection(_ context.Context, routeID string, cat routedata.Category) (routedata.Section, error) {
	s.mu.Lock()
	s.fetches++
	s.mu.Unlock()

	if s.partialRoutes[routeID] {
		return nil, errors.New("section unavailable")
	}
	switch cat {
	case routedata.CategoryOverview:
		return &routedata.Overview{}, nil
	case routedata.CategoryTurns:
		return &routedata.TurnsReport{}, nil
	case routedata.CategoryPOIs:
		return &routedata.POIReport{}, nil
	case routedata.CategoryNetwork:
		return &routedata.NetworkReport{}, nil
	case routedata.CategoryWeather:
		return &routedata.WeatherReport{}, nil
	case routedata.CategoryCompliance:
		return &routedata.ComplianceReport{}, nil
	case routedata.CategoryElevation:
		return &routedata.ElevationReport{}, nil
	case routedata.CategoryEmergency:
		return &routedata.EmergencyReport{}, nil
	case routedata.CategoryTraffic:
		return &routedata.TrafficReport{}, nil
	}
	return nil, routedata.ErrUnknownCategory
}

func newPrewarmJob(source routedata.Source) (*worker.PrewarmJob, *report.Builder) {
	builder := report.NewBuilder(report.BuilderConfig{
		Source:   source,
		Logger:   zerolog.Nop(),
		CacheTTL: time.Minute,
	})
	job := worker.NewPrewarmJob(worker.PrewarmJobConfig{
		Config:  worker.PrewarmConfig{Concurrency: 2, Timeout: 5 * time.Second},
		Builder: builder,
		Logger:  zerolog.Nop(),
	})
	return job, builder
}

func TestPrewarmJob_WarmsAllRoutes(t *testing.T) {
	source := &prewarmSource{}
	job, builder := newPrewarmJob(source)

	result := job.Run(context.Background(), []string{"rt_a", "rt_b", "rt_c"})

	assert.Equal(t, 3, result.TotalRoutes)
	assert.Equal(t, 3, result.Warmed)
	assert.Zero(t, result.Partial)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Zero(t, result.FailureRate())

	// The point of prewarming: subsequent builds hit the cache.
	before := source.fetchCount()
	_, err := builder.Build(context.Background(), "rt_a")
	require.NoError(t, err)
	assert.Equal(t, before, source.fetchCount())
}

func TestPrewarmJob_CountsPartialReports(t *testing.T) {
	source := &prewarmSource{partialRoutes: map[string]bool{"rt_flaky": true}}
	job, _ := newPrewarmJob(source)

	result := job.Run(context.Background(), []string{"rt_ok", "rt_flaky"})

	// A route whose sections failed still produced a partial report;
	// only invalid routes count as failures.
	assert.Equal(t, 2, result.Warmed)
	assert.Equal(t, 1, result.Partial)
	assert.Zero(t, result.Failed)
}

func TestPrewarmJob_CountsFailures(t *testing.T) {
	job, _ := newPrewarmJob(&prewarmSource{})

	result := job.Run(context.Background(), []string{"rt_ok", "", "   "})

	assert.Equal(t, 3, result.TotalRoutes)
	assert.Equal(t, 1, result.Warmed)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.InDelta(t, 2.0/3.0, result.FailureRate(), 1e-9)
}

func TestPrewarmJob_MetricsAccumulate(t *testing.T) {
	job, _ := newPrewarmJob(&prewarmSource{})

	job.Run(context.Background(), []string{"rt_a"})
	job.Run(context.Background(), []string{"rt_b", "rt_c"})

	metrics := job.GetMetrics()
	assert.Equal(t, int64(2), metrics.TotalRuns)
	assert.Equal(t, int64(3), metrics.RoutesWarmed)
	assert.Zero(t, metrics.RoutesFailed)
	assert.False(t, metrics.LastRunAt.IsZero())
}

func TestPrewarmResult_FailureRateEmptyRun(t *testing.T) {
	result := &worker.PrewarmResult{}
	assert.Zero(t, result.FailureRate())
}
