package rank

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/logging"
	"nhl-watchability-service/internal/viewing"
)

const defaultTeamConcurrency = 12

// ScheduleSource provides parsed schedules by team code. Satisfied by
// *schedule.Cache.
type ScheduleSource interface {
	Get(ctx context.Context, team string) (domain.ParsedSchedule, error)
}

// Ranker evaluates the whole roster's watchability at a single UTC offset.
type Ranker struct {
	source      ScheduleSource
	roster      []domain.Team
	windows     viewing.WindowTable
	concurrency int
	logger      *slog.Logger
}

// NewRanker constructs a ranker with a bounded evaluation pool.
func NewRanker(source ScheduleSource, roster []domain.Team, windows viewing.WindowTable, concurrency int, logger *slog.Logger) *Ranker {
	if concurrency <= 0 {
		concurrency = defaultTeamConcurrency
	}
	if concurrency > len(roster) && len(roster) > 0 {
		concurrency = len(roster)
	}
	return &Ranker{
		source:      source,
		roster:      roster,
		windows:     windows,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Rank evaluates all teams concurrently and returns them sorted by viewable
// count, descending. Each worker writes its result into the slot matching the
// team's roster position before the stable sort runs, so tie order is roster
// order and the output is identical regardless of pool size or completion
// order. A failed team is reported and kept with a zero count rather than
// aborting the others.
func (r *Ranker) Rank(ctx context.Context, offset int) domain.TeamRanking {
	results := make([]domain.ViewabilityResult, len(r.roster))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < r.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = r.evaluateTeam(ctx, r.roster[idx], offset)
			}
		}()
	}

send:
	for idx := range r.roster {
		select {
		case <-ctx.Done():
			break send
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	// Unassigned slots (cancelled mid-run) still carry their team code.
	for idx, res := range results {
		if res.Team == "" {
			results[idx] = emptyResult(r.roster[idx].Code)
		}
	}

	ranking := domain.TeamRanking(results)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].ViewableCount > ranking[j].ViewableCount
	})
	return ranking
}

func (r *Ranker) evaluateTeam(ctx context.Context, team domain.Team, offset int) domain.ViewabilityResult {
	parsed, err := r.source.Get(ctx, team.Code)
	if err != nil {
		logging.Warn(r.logger, "team evaluation failed",
			logging.FieldTeam, team.Code,
			logging.FieldOffset, offset,
			"error", err,
		)
		return emptyResult(team.Code)
	}
	return viewing.Evaluate(team.Code, parsed, offset, r.windows)
}

func emptyResult(team string) domain.ViewabilityResult {
	return domain.ViewabilityResult{Team: team, ViewableDates: []string{}}
}
