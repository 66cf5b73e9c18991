package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/logging"
)

const defaultWarmConcurrency = 12

// Warmer pre-fetches every roster team through the cache so the per-offset
// ranking passes run against a fully warmed, immutable snapshot.
type Warmer struct {
	cache       *Cache
	roster      []domain.Team
	concurrency int
	logger      *slog.Logger
}

// NewWarmer constructs a warmer over the cache with a bounded worker pool.
func NewWarmer(cache *Cache, roster []domain.Team, concurrency int, logger *slog.Logger) *Warmer {
	if concurrency <= 0 {
		concurrency = defaultWarmConcurrency
	}
	if concurrency > len(roster) && len(roster) > 0 {
		concurrency = len(roster)
	}
	return &Warmer{
		cache:       cache,
		roster:      roster,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Warm fetches all roster schedules. Individual fetch failures are absorbed
// by the cache as empty schedules; Warm only returns an error when the
// context is cancelled.
func (w *Warmer) Warm(ctx context.Context) error {
	start := time.Now()
	jobs := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for team := range jobs {
				if _, err := w.cache.Get(ctx, team); err != nil {
					logging.Warn(w.logger, "cache warm failed",
						logging.FieldTeam, team,
						"error", err,
					)
				}
			}
		}()
	}

send:
	for _, team := range w.roster {
		select {
		case <-ctx.Done():
			break send
		case jobs <- team.Code:
		}
	}
	close(jobs)
	wg.Wait()

	logging.Info(w.logger, "cache warmed",
		logging.FieldCount, len(w.roster),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return ctx.Err()
}
