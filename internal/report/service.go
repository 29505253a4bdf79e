package report

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
)

// BuilderConfig holds configuration for the report builder.
type BuilderConfig struct {
	// Source fetches per-category route data.
	Source routedata.Source

	// Logger for build operations.
	Logger zerolog.Logger

	// SectionTimeout bounds each category fetch independently (default: 10 seconds).
	SectionTimeout time.Duration

	// CacheTTL is how long built models are cached (default: 5 minutes).
	// Set to a negative value to disable caching.
	CacheTTL time.Duration
}

// Builder aggregates the nine analysis categories into a report model.
type Builder struct {
	source         routedata.Source
	logger         zerolog.Logger
	sectionTimeout time.Duration
	cacheTTL       time.Duration

	mu    sync.RWMutex
	cache map[string]*cachedModel
}

type cachedModel struct {
	model     *Model
	expiresAt time.Time
}

// NewBuilder creates a new report builder.
func NewBuilder(cfg BuilderConfig) *Builder {
	sectionTimeout := cfg.SectionTimeout
	if sectionTimeout == 0 {
		sectionTimeout = 10 * time.Second
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &Builder{
		source:         cfg.Source,
		logger:         cfg.Logger,
		sectionTimeout: sectionTimeout,
		cacheTTL:       cacheTTL,
		cache:          make(map[string]*cachedModel),
	}
}

// Build fetches every analysis category for the route concurrently and merges
// the results. Each category runs under its own timeout; a failed or late
// category yields an error marker for that section only. The returned model
// always carries exactly one entry per category.
func (b *Builder) Build(ctx context.Context, routeID string) (*Model, error) {
	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return nil, ErrInvalidRouteID
	}

	if m := b.cached(routeID); m != nil {
		b.logger.Debug().
			Str("route_id", routeID).
			Msg("report cache hit")
		return m, nil
	}

	cats := routedata.Categories()
	results := make([]SectionResult, len(cats))

	var wg sync.WaitGroup
	for i, cat := range cats {
		wg.Add(1)
		go func(slot int, cat routedata.Category) {
			defer wg.Done()
			results[slot] = b.fetchSection(ctx, routeID, cat)
		}(i, cat)
	}
	wg.Wait()

	model := &Model{
		RouteID:     routeID,
		Sections:    make(map[routedata.Category]SectionResult, len(cats)),
		Source:      b.source.Name(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, res := range results {
		model.Sections[res.Category] = res
	}

	if failed := model.FailedCategories(); len(failed) > 0 {
		b.logger.Warn().
			Str("route_id", routeID).
			Int("failed_sections", len(failed)).
			Msg("report built with partial data")
	}

	// Only fully-built models are cached. A partial build, including one
	// under an already-cancelled caller context, would otherwise serve its
	// error markers to every caller for the whole TTL.
	if model.Complete() {
		b.store(routeID, model)
	}
	return model, nil
}

// BuildSection fetches a single analysis category for the route.
func (b *Builder) BuildSection(ctx context.Context, routeID string, cat routedata.Category) (SectionResult, error) {
	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return SectionResult{}, ErrInvalidRouteID
	}
	if _, err := routedata.ParseCategory(string(cat)); err != nil {
		return SectionResult{}, err
	}
	return b.fetchSection(ctx, routeID, cat), nil
}

func (b *Builder) fetchSection(ctx context.Context, routeID string, cat routedata.Category) SectionResult {
	ctx, cancel := context.WithTimeout(ctx, b.sectionTimeout)
	defer cancel()

	start := time.Now()
	payload, err := b.source.FetchSection(ctx, routeID, cat)
	elapsed := time.Since(start)

	if err != nil {
		b.logger.Error().Err(err).
			Str("route_id", routeID).
			Str("category", string(cat)).
			Dur("elapsed", elapsed).
			Str("source", b.source.Name()).
			Msg("section fetch failed")

		return SectionResult{
			Category: cat,
			Err: &SectionError{
				Category: cat,
				Message:  "failed to fetch section data",
				Err:      err,
			},
			Elapsed: elapsed,
		}
	}

	return SectionResult{
		Category: cat,
		Payload:  payload,
		Elapsed:  elapsed,
	}
}

func (b *Builder) cached(routeID string) *Model {
	if b.cacheTTL < 0 {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if c, ok := b.cache[routeID]; ok && time.Now().Before(c.expiresAt) {
		return c.model
	}
	return nil
}

func (b *Builder) store(routeID string, m *Model) {
	if b.cacheTTL < 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	// Opportunistic cleanup keeps the cache bounded without a sweeper goroutine.
	now := time.Now()
	for key, c := range b.cache {
		if now.After(c.expiresAt) {
			delete(b.cache, key)
		}
	}

	b.cache[routeID] = &cachedModel{
		model:     m,
		expiresAt: now.Add(b.cacheTTL),
	}
}

// InvalidateCache clears all cached report models.
func (b *Builder) InvalidateCache() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache = make(map[string]*cachedModel)
}

// SourceName returns the name of the underlying route-data source.
func (b *Builder) SourceName() string {
	return b.source.Name()
}
