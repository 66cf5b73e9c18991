package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/testutil"
)

type teamTrackingProvider struct {
	mu    sync.Mutex
	seen  map[string]int
	delay time.Duration
}

func (p *teamTrackingProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	_ = ctx
	p.mu.Lock()
	if p.seen == nil {
		p.seen = make(map[string]int)
	}
	p.seen[team]++
	p.mu.Unlock()
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return testutil.Schedule("2025-01-06T23:00:00Z"), nil
}

func (p *teamTrackingProvider) counts() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]int, len(p.seen))
	for k, v := range p.seen {
		out[k] = v
	}
	return out
}

func TestWarmFetchesEveryRosterTeamOnce(t *testing.T) {
	roster := []domain.Team{
		{ID: 1, Code: "NJD"}, {ID: 6, Code: "BOS"}, {ID: 10, Code: "TOR"}, {ID: 55, Code: "SEA"},
	}
	provider := &teamTrackingProvider{delay: 5 * time.Millisecond}
	cache := NewCache(provider, nil, nil, len(roster))
	warmer := NewWarmer(cache, roster, 3, nil)

	if err := warmer.Warm(context.Background()); err != nil {
		t.Fatalf("Warm: %v", err)
	}

	counts := provider.counts()
	if len(counts) != len(roster) {
		t.Fatalf("expected %d teams fetched, got %d", len(roster), len(counts))
	}
	for team, n := range counts {
		if n != 1 {
			t.Fatalf("team %s fetched %d times, want 1", team, n)
		}
	}
}

func TestWarmReturnsErrorWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	roster := []domain.Team{{ID: 10, Code: "TOR"}}
	cache := NewCache(&teamTrackingProvider{}, nil, nil, 1)
	warmer := NewWarmer(cache, roster, 2, nil)

	if err := warmer.Warm(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
