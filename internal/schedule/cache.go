package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/maypok86/otter/v2"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/logging"
	"nhl-watchability-service/internal/metrics"
	"nhl-watchability-service/internal/providers"
)

const defaultCapacity = 64

// Cache stores one parsed schedule per team for the lifetime of the process.
// The first caller for a team triggers the fetch; concurrent callers for the
// same team block on that single in-flight load instead of fetching again.
// A failed fetch is cached as an empty schedule, so a team is fetched at most
// once per run no matter how it went.
type Cache struct {
	provider providers.ScheduleProvider
	cache    *otter.Cache[string, domain.ParsedSchedule]
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewCache constructs a cache over the given provider. Capacity bounds the
// store; anything covering the roster size is effectively unbounded for a
// single run.
func NewCache(provider providers.ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Cache{
		provider: provider,
		cache: otter.Must(&otter.Options[string, domain.ParsedSchedule]{
			MaximumSize: capacity,
		}),
		logger:  logger,
		metrics: recorder,
	}
}

// Get returns the team's parsed schedule, fetching and parsing it at most
// once per process. Every caller observes the same stored value.
func (c *Cache) Get(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	return c.cache.Get(ctx, team, otter.LoaderFunc[string, domain.ParsedSchedule](c.load))
}

func (c *Cache) load(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	if c.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	start := time.Now()
	parsed, err := c.provider.FetchSchedule(ctx, team)
	if c.metrics != nil {
		c.metrics.RecordFetchAttempt(team, time.Since(start), err)
	}
	if err != nil {
		// Store the empty schedule: the team contributes zero games and is
		// not refetched within this run. The warn line is what separates a
		// failed team from one with a genuinely empty schedule.
		logging.Warn(c.logger, "schedule fetch failed, caching empty schedule",
			logging.FieldTeam, team,
			"error", err,
		)
		if c.metrics != nil {
			c.metrics.RecordCacheLoad(metrics.OutcomeFailed)
		}
		return domain.ParsedSchedule{}, nil
	}

	if c.metrics != nil {
		c.metrics.RecordCacheLoad(metrics.OutcomeLoaded)
	}
	logging.Info(c.logger, "schedule fetched",
		logging.FieldTeam, team,
		logging.FieldCount, len(parsed),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return parsed, nil
}
