package metrics

import (
	"sync"
	"time"
)

type teamStats struct {
	fetches     int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about schedule fetches and
// ranking cycles, mirroring them to OpenTelemetry when configured. It is
// intentionally simple so tests can assert against it directly.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*teamStats
	cacheLoads map[string]int
	rankCycles int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:      make(map[string]*teamStats),
		cacheLoads: make(map[string]int),
		otel:       otel,
	}
}

// RecordFetchAttempt increments counters for a schedule fetch and stores the
// last observed latency for the team.
func (r *Recorder) RecordFetchAttempt(team string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(team)
	r.mu.Lock()
	stats.fetches++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(team, duration, err)
	}
}

// RecordCacheLoad tracks a cache load by outcome (loaded|failed).
func (r *Recorder) RecordCacheLoad(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cacheLoads[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLoad(outcome)
	}
}

// RecordRankCycle tracks one completed per-offset ranking pass.
func (r *Recorder) RecordRankCycle(offset int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rankCycles++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRankCycle(offset, duration)
	}
}

// FetchCalls returns the total fetch attempts recorded for a team.
func (r *Recorder) FetchCalls(team string) int {
	return r.Snapshot(team).Fetches
}

// FetchErrors returns the total failed fetch attempts recorded for a team.
func (r *Recorder) FetchErrors(team string) int {
	return r.Snapshot(team).Errors
}

// CacheLoads returns the number of cache loads recorded for an outcome.
func (r *Recorder) CacheLoads(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheLoads[outcome]
}

// RankCycles returns the number of completed ranking passes.
func (r *Recorder) RankCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rankCycles
}

// Snapshot is a copy of the current per-team stats.
type Snapshot struct {
	Fetches     int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(team string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[team]; ok && stats != nil {
		return Snapshot{
			Fetches:     stats.fetches,
			Errors:      stats.errors,
			LastLatency: stats.lastLatency,
		}
	}
	return Snapshot{}
}

func (r *Recorder) ensureStats(team string) *teamStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[team]
	if !ok {
		stats = &teamStats{}
		r.stats[team] = stats
	}
	return stats
}
