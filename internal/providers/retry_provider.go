package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/logging"
)

const (
	defaultRetryAttempts = 2
	defaultRetryBackoff  = 200 * time.Millisecond
)

// retryingProvider wraps a ScheduleProvider with bounded in-flight retries.
// It only retries a single fetch call; callers above the cache never see a
// team refetched once its (possibly empty) schedule has been stored.
type retryingProvider struct {
	inner          ScheduleProvider
	logger         *slog.Logger
	maxAttempts    int
	initialBackoff time.Duration
}

// NewRetryingProvider wraps the given provider with exponential-backoff
// retries. maxAttempts counts the initial call; 1 disables retries entirely.
// Non-positive arguments fall back to defaults.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, maxAttempts int, initialBackoff time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultRetryBackoff
	}
	return &retryingProvider{
		inner:          inner,
		logger:         logger,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	if r.maxAttempts == 1 {
		return r.inner.FetchSchedule(ctx, team)
	}

	var schedule domain.ParsedSchedule
	attempt := 0
	operation := func() error {
		attempt++
		var err error
		schedule, err = r.inner.FetchSchedule(ctx, team)
		if err != nil && attempt < r.maxAttempts {
			logging.Warn(r.logger, "schedule fetch retry",
				logging.FieldTeam, team,
				"attempt", attempt,
				"max_attempts", r.maxAttempts,
				"error", err,
			)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(r.newBackoff(), uint64(r.maxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		logging.Warn(r.logger, "schedule fetch failed",
			logging.FieldTeam, team,
			"attempts", attempt,
			"error", err,
		)
		return nil, err
	}
	return schedule, nil
}

func (r *retryingProvider) newBackoff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.initialBackoff
	return eb
}
