package fixture

import (
	"context"
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/timeutil"
)

// Provider returns deterministic schedules useful for local runs and tests.
// Every team gets the same shape: one weekday-evening game and one weekend
// matinee, anchored relative to the provider's clock.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a real time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchSchedule returns two future games for any team.
func (p *Provider) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	_ = ctx
	_ = team

	monday := nextWeekday(p.now().UTC(), time.Monday)
	saturday := nextWeekday(p.now().UTC(), time.Saturday)

	evening := time.Date(monday.Year(), monday.Month(), monday.Day(), 23, 0, 0, 0, time.UTC)
	matinee := time.Date(saturday.Year(), saturday.Month(), saturday.Day(), 18, 0, 0, 0, time.UTC)

	return domain.ParsedSchedule{
		{StartUTC: evening, Date: timeutil.FormatDate(evening)},
		{StartUTC: matinee, Date: timeutil.FormatDate(matinee)},
	}, nil
}

// nextWeekday returns the first occurrence of day strictly after t's date.
func nextWeekday(t time.Time, day time.Weekday) time.Time {
	days := (int(day) - int(t.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, days)
}
