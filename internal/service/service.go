// Package service implements the public read operations of the tracker:
// reconciled satellites, Starlink launches, constellation statistics, fun
// facts, and the live launch view. Every read is fronted by a TTL cache, and
// concurrent misses on the same key are collapsed into one upstream refresh
// with a per-key single-flight guard.
package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/orbitwatch/orbitwatch/internal/feeds/celestrak"
	"github.com/orbitwatch/orbitwatch/internal/feeds/spacex"
	"github.com/orbitwatch/orbitwatch/internal/missions"
	"github.com/orbitwatch/orbitwatch/internal/reconcile"
	"github.com/orbitwatch/orbitwatch/internal/server/cache"
	"github.com/orbitwatch/orbitwatch/internal/stats"
	"github.com/orbitwatch/orbitwatch/pkg/constellation"
	"github.com/orbitwatch/orbitwatch/pkg/errors"
)

// Cache keys, one per derived collection.
const (
	keySatellites = "satellites"
	keyLaunches   = "launches"
	keyStats      = "stats"
	keyFunFacts   = "funfacts"
	keyLive       = "live"
)

// Default TTLs. The live view is fresher than the catalog collections
// because a countdown goes stale in minutes.
const (
	DefaultTTL     = 10 * time.Minute
	DefaultLiveTTL = 2 * time.Minute
)

const (
	celestrakGroup = "starlink"
	scheduleQuery  = "starlink"
	searchLimit    = 100
	pastLimit      = 5
)

// Service is the reconciliation service behind the HTTP handlers.
type Service struct {
	operator OperatorFeed
	elements ElementsFeed
	schedule ScheduleFeed

	cache  *cache.Cache
	group  singleflight.Group
	logger *zerolog.Logger

	ttl     time.Duration
	liveTTL time.Duration
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the catalog collections' cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithLiveTTL overrides the live view's cache TTL.
func WithLiveTTL(ttl time.Duration) Option {
	return func(s *Service) { s.liveTTL = ttl }
}

// WithClock overrides the wall clock, used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service. The cache is injected so its lifecycle belongs to
// the caller; the service never constructs hidden shared state.
func New(operator OperatorFeed, elements ElementsFeed, schedule ScheduleFeed, c *cache.Cache, logger *zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		operator: operator,
		elements: elements,
		schedule: schedule,
		cache:    c,
		logger:   logger,
		ttl:      DefaultTTL,
		liveTTL:  DefaultLiveTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Satellites returns the full reconciled satellite set.
func (s *Service) Satellites(ctx context.Context) ([]constellation.Satellite, error) {
	return cached(ctx, s, keySatellites, s.ttl, s.refreshSatellites)
}

// Satellite returns the satellite with the given NORAD catalog number, or
// an error satisfying errors.IsNotFound.
func (s *Service) Satellite(ctx context.Context, noradID int) (constellation.Satellite, error) {
	satellites, err := s.Satellites(ctx)
	if err != nil {
		return constellation.Satellite{}, err
	}
	for _, sat := range satellites {
		if sat.NoradID == noradID {
			return sat, nil
		}
	}
	return constellation.Satellite{}, errors.NewNotFoundError("satellite", strconv.Itoa(noradID))
}

// Launches returns the deduplicated Starlink launch set, newest first.
func (s *Service) Launches(ctx context.Context) ([]constellation.Launch, error) {
	return cached(ctx, s, keyLaunches, s.ttl, s.refreshLaunches)
}

// Stats returns the constellation-wide roll-up.
func (s *Service) Stats(ctx context.Context) (constellation.ConstellationStats, error) {
	return cached(ctx, s, keyStats, s.ttl, s.refreshStats)
}

// FunFacts returns the fixed fun-fact list.
func (s *Service) FunFacts(ctx context.Context) ([]constellation.FunFact, error) {
	return cached(ctx, s, keyFunFacts, s.ttl, s.refreshFunFacts)
}

// Live returns the live launch view.
func (s *Service) Live(ctx context.Context) (constellation.LiveLaunchData, error) {
	return cached(ctx, s, keyLive, s.liveTTL, s.refreshLive)
}

// cached serves key from the cache or runs refresh under a per-key
// single-flight guard, storing the result before returning it. Errors are
// never cached; the next read retries.
func cached[T any](ctx context.Context, s *Service, key string, ttl time.Duration, refresh func(context.Context) (T, error)) (T, error) {
	if v, ok := s.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			cacheHits.WithLabelValues(key).Inc()
			return typed, nil
		}
	}
	cacheMisses.WithLabelValues(key).Inc()

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Another flight may have filled the cache while we queued.
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}

		start := s.now()
		result, err := refresh(ctx)
		refreshDuration.WithLabelValues(key).Observe(time.Since(start).Seconds())
		if err != nil {
			refreshErrors.WithLabelValues(key).Inc()
			return nil, err
		}

		s.cache.SetWithTTL(key, result, ttl)
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// refreshSatellites fetches both satellite feeds concurrently and merges
// them. An empty feed, whether down or legitimately empty, simply
// contributes nothing; only both feeds coming back empty surfaces an error.
func (s *Service) refreshSatellites(ctx context.Context) ([]constellation.Satellite, error) {
	var (
		entries []spacex.StarlinkEntry
		sets    []celestrak.GP
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		entries = s.operator.Starlink(ctx)
	}()
	go func() {
		defer wg.Done()
		sets = s.elements.Group(ctx, celestrakGroup)
	}()
	wg.Wait()

	if len(entries) == 0 && len(sets) == 0 {
		return nil, fmt.Errorf("satellite catalog refresh: %w", errors.ErrFeedUnavailable)
	}

	satellites := reconcile.Merge(entries, sets, s.now())
	s.logger.Info().
		Int("spacex", len(entries)).
		Int("celestrak", len(sets)).
		Int("merged", len(satellites)).
		Msg("Reconciled satellite catalog")
	return satellites, nil
}

// refreshLaunches fetches the five SpaceX collections concurrently, joins
// them, and supplements the result from Launch Library. The five-way batch
// is all-or-nothing; the supplement is best-effort.
func (s *Service) refreshLaunches(ctx context.Context) ([]constellation.Launch, error) {
	var batch missions.Batch

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		batch.Launches, err = s.operator.Launches(gctx)
		return err
	})
	g.Go(func() (err error) {
		batch.Cores, err = s.operator.Cores(gctx)
		return err
	})
	g.Go(func() (err error) {
		batch.Rockets, err = s.operator.Rockets(gctx)
		return err
	})
	g.Go(func() (err error) {
		batch.Launchpads, err = s.operator.Launchpads(gctx)
		return err
	})
	g.Go(func() (err error) {
		batch.Payloads, err = s.operator.Payloads(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("launch catalog refresh: %w", err)
	}

	launches := missions.Build(batch)

	extra, err := s.schedule.Search(ctx, scheduleQuery, searchLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Launch Library supplement unavailable")
	} else {
		launches = missions.Supplement(launches, extra)
	}

	missions.SortByDateDesc(launches)
	s.logger.Info().Int("launches", len(launches)).Msg("Assembled Starlink launch catalog")
	return launches, nil
}

func (s *Service) refreshStats(ctx context.Context) (constellation.ConstellationStats, error) {
	var (
		satellites []constellation.Satellite
		launches   []constellation.Launch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		satellites, err = s.Satellites(gctx)
		return err
	})
	g.Go(func() (err error) {
		launches, err = s.Launches(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return constellation.ConstellationStats{}, err
	}

	return stats.Compute(satellites, launches), nil
}

func (s *Service) refreshFunFacts(ctx context.Context) ([]constellation.FunFact, error) {
	satellites, err := s.Satellites(ctx)
	if err != nil {
		return nil, err
	}
	launches, err := s.Launches(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FunFacts(satellites, launches, cs), nil
}
