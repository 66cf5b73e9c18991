package providers

import (
	"context"

	"nhl-watchability-service/internal/domain"
)

// ScheduleProvider fetches and normalizes one team's upcoming schedule.
// The team parameter is the short code used in upstream API paths (e.g.
// "TOR"). Implementations return only future regular-season games, in
// upstream order.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error)
}
