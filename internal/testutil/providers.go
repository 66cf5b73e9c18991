package testutil

import (
	"context"
	"sync/atomic"
	"time"

	"nhl-watchability-service/internal/domain"
)

// GoodProvider returns the provided schedule for every team with no error.
type GoodProvider struct {
	Schedule domain.ParsedSchedule
}

func (p GoodProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	_ = ctx
	_ = team
	return p.Schedule, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	return nil, p.Err
}

// MapProvider returns a fixed schedule per team; unknown teams get an empty
// schedule.
type MapProvider struct {
	Schedules map[string]domain.ParsedSchedule
}

func (p MapProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	_ = ctx
	return p.Schedules[team], nil
}

// CountingProvider counts fetches per invocation and can delay each call to
// widen concurrency races in tests.
type CountingProvider struct {
	Schedule domain.ParsedSchedule
	Err      error
	Delay    time.Duration

	calls atomic.Int64
}

func (p *CountingProvider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	_ = team
	p.calls.Add(1)
	if p.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.Delay):
		}
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Schedule, nil
}

// Calls reports how many fetches were issued.
func (p *CountingProvider) Calls() int {
	return int(p.calls.Load())
}
