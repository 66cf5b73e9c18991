package rank

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/logging"
	"nhl-watchability-service/internal/metrics"
)

// Whole-hour UTC offsets covered by a run, inclusive.
const (
	MinOffset = -12
	MaxOffset = 12
)

const (
	defaultTimezoneConcurrency = 8
	defaultTopN                = 5
)

// TeamRanker ranks the roster for one UTC offset. Satisfied by *Ranker.
type TeamRanker interface {
	Rank(ctx context.Context, offset int) domain.TeamRanking
}

// Aggregator fans the ranker out across every whole-hour UTC offset and
// assembles the per-timezone leaderboard.
type Aggregator struct {
	ranker      TeamRanker
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// NewAggregator constructs an aggregator with a bounded per-offset pool.
func NewAggregator(ranker TeamRanker, concurrency int, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	if concurrency <= 0 {
		concurrency = defaultTimezoneConcurrency
	}
	return &Aggregator{
		ranker:      ranker,
		concurrency: concurrency,
		logger:      logger,
		metrics:     recorder,
	}
}

// Aggregate ranks every offset in [MinOffset, MaxOffset] concurrently and
// keeps the top topN teams per timezone. The leaderboard always carries all
// 25 labels; an offset whose teams all failed simply shows zero counts.
func (a *Aggregator) Aggregate(ctx context.Context, topN int) domain.Leaderboard {
	if topN <= 0 {
		topN = defaultTopN
	}

	board := make(domain.Leaderboard, MaxOffset-MinOffset+1)
	var boardMu sync.Mutex

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < a.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for offset := range jobs {
				counts := a.rankOffset(ctx, offset, topN)
				boardMu.Lock()
				board[domain.OffsetLabel(offset)] = counts
				boardMu.Unlock()
			}
		}()
	}

	for offset := MinOffset; offset <= MaxOffset; offset++ {
		jobs <- offset
	}
	close(jobs)
	wg.Wait()

	return board
}

func (a *Aggregator) rankOffset(ctx context.Context, offset, topN int) domain.TeamCounts {
	start := time.Now()
	ranking := a.ranker.Rank(ctx, offset)
	if a.metrics != nil {
		a.metrics.RecordRankCycle(offset, time.Since(start))
	}
	logging.Info(a.logger, "timezone ranked",
		logging.FieldOffset, offset,
		logging.FieldCount, len(ranking),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	limit := topN
	if limit > len(ranking) {
		limit = len(ranking)
	}
	counts := make(domain.TeamCounts, limit)
	for i := 0; i < limit; i++ {
		counts[ranking[i].Team] = ranking[i].ViewableCount
	}
	return counts
}
