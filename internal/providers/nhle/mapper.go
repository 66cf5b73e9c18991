package nhle

import (
	"strings"
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/timeutil"
)

// mapSchedule keeps regular-season games whose calendar date falls strictly
// after today, preserving upstream order. Entries with missing or malformed
// start times are skipped rather than failing the whole schedule.
func mapSchedule(payload scheduleResponse, today time.Time) domain.ParsedSchedule {
	cutoff := timeutil.DateOnly(today)
	parsed := make(domain.ParsedSchedule, 0, len(payload.Games))

	for _, game := range payload.Games {
		if game.GameType != regularSeasonGameType {
			continue
		}
		if game.StartTimeUTC == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, game.StartTimeUTC)
		if err != nil {
			continue
		}
		if !timeutil.DateOnly(start).After(cutoff) {
			continue
		}
		parsed = append(parsed, domain.GameRecord{
			StartUTC: start.UTC(),
			Date:     dateOf(game.StartTimeUTC),
		})
	}
	return parsed
}

// dateOf returns the calendar-date portion of an upstream UTC timestamp.
func dateOf(startTimeUTC string) string {
	if i := strings.IndexByte(startTimeUTC, 'T'); i > 0 {
		return startTimeUTC[:i]
	}
	return startTimeUTC
}
