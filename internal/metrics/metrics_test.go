package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecordFetchAttemptTracksCallsAndErrors(t *testing.T) {
	r := NewRecorder()

	r.RecordFetchAttempt("TOR", 10*time.Millisecond, nil)
	r.RecordFetchAttempt("TOR", 20*time.Millisecond, errors.New("boom"))
	r.RecordFetchAttempt("BOS", 5*time.Millisecond, nil)

	if got := r.FetchCalls("TOR"); got != 2 {
		t.Fatalf("TOR calls: got %d, want 2", got)
	}
	if got := r.FetchErrors("TOR"); got != 1 {
		t.Fatalf("TOR errors: got %d, want 1", got)
	}
	if got := r.FetchErrors("BOS"); got != 0 {
		t.Fatalf("BOS errors: got %d, want 0", got)
	}

	snap := r.Snapshot("TOR")
	if snap.LastLatency != 20*time.Millisecond {
		t.Fatalf("last latency: got %v", snap.LastLatency)
	}
}

func TestRecordCacheLoadByOutcome(t *testing.T) {
	r := NewRecorder()

	r.RecordCacheLoad(OutcomeLoaded)
	r.RecordCacheLoad(OutcomeLoaded)
	r.RecordCacheLoad(OutcomeFailed)

	if got := r.CacheLoads(OutcomeLoaded); got != 2 {
		t.Fatalf("loaded: got %d, want 2", got)
	}
	if got := r.CacheLoads(OutcomeFailed); got != 1 {
		t.Fatalf("failed: got %d, want 1", got)
	}
}

func TestRecordRankCycleCounts(t *testing.T) {
	r := NewRecorder()
	for offset := -2; offset <= 2; offset++ {
		r.RecordRankCycle(offset, time.Millisecond)
	}
	if got := r.RankCycles(); got != 5 {
		t.Fatalf("rank cycles: got %d, want 5", got)
	}
}

func TestSnapshotUnknownTeamIsZero(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("NOPE"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFetchAttempt("TOR", time.Millisecond, nil)
	r.RecordCacheLoad(OutcomeLoaded)
	r.RecordRankCycle(0, time.Millisecond)
	if r.FetchCalls("TOR") != 0 || r.CacheLoads(OutcomeLoaded) != 0 || r.RankCycles() != 0 {
		t.Fatal("nil recorder should report zeros")
	}
}

func TestRecorderIsSafeUnderConcurrency(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.RecordFetchAttempt("TOR", time.Millisecond, nil)
				r.RecordCacheLoad(OutcomeLoaded)
			}
		}()
	}
	wg.Wait()

	if got := r.FetchCalls("TOR"); got != 1000 {
		t.Fatalf("calls: got %d, want 1000", got)
	}
	if got := r.CacheLoads(OutcomeLoaded); got != 1000 {
		t.Fatalf("loads: got %d, want 1000", got)
	}
}
