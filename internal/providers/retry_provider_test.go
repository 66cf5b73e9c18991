package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"nhl-watchability-service/internal/domain"
)

type flakyProvider struct {
	failures int
	calls    int
	schedule domain.ParsedSchedule
}

func (p *flakyProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	_ = ctx
	_ = team
	p.calls++
	if p.calls <= p.failures {
		return nil, errors.New("transient upstream error")
	}
	return p.schedule, nil
}

func TestRetryingProviderRecoversAfterTransientFailure(t *testing.T) {
	inner := &flakyProvider{
		failures: 1,
		schedule: domain.ParsedSchedule{{Date: "2025-01-06"}},
	}
	provider := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	schedule, err := provider.FetchSchedule(context.Background(), "TOR")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(schedule) != 1 {
		t.Fatalf("expected 1 game, got %d", len(schedule))
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", inner.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	if _, err := provider.FetchSchedule(context.Background(), "TOR"); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryingProviderSingleAttemptPassesThrough(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, 1, time.Millisecond)

	if _, err := provider.FetchSchedule(context.Background(), "TOR"); err == nil {
		t.Fatal("expected the single attempt's error")
	}
	if inner.calls != 1 {
		t.Fatalf("expected exactly 1 call, got %d", inner.calls)
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	provider := NewRetryingProvider(nil, nil, 2, time.Millisecond)
	if _, err := provider.FetchSchedule(context.Background(), "TOR"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRetryingProviderHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, 5, 50*time.Millisecond)

	if _, err := provider.FetchSchedule(ctx, "TOR"); err == nil {
		t.Fatal("expected error under cancelled context")
	}
	if inner.calls > 1 {
		t.Fatalf("expected at most 1 call under cancelled context, got %d", inner.calls)
	}
}
