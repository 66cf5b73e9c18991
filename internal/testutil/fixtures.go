package testutil

import (
	"strings"

	"nhl-watchability-service/internal/domain"
)

// Game builds a GameRecord from an RFC3339 UTC start time, deriving the date
// from the timestamp's calendar-date portion.
func Game(startUTC string) domain.GameRecord {
	date := startUTC
	if i := strings.IndexByte(startUTC, 'T'); i > 0 {
		date = startUTC[:i]
	}
	return domain.GameRecord{
		StartUTC: MustParseRFC3339(startUTC),
		Date:     date,
	}
}

// Schedule builds a ParsedSchedule from RFC3339 UTC start times.
func Schedule(startTimes ...string) domain.ParsedSchedule {
	parsed := make(domain.ParsedSchedule, 0, len(startTimes))
	for _, s := range startTimes {
		parsed = append(parsed, Game(s))
	}
	return parsed
}
