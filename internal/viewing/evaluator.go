package viewing

import (
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/timeutil"
)

// Evaluate counts the games in schedule that land inside the viewer's window
// after shifting each start time by offset whole hours. The weekday bucket is
// taken from the shifted instant, so a game can roll to the previous or next
// calendar day relative to UTC. Pure function: identical inputs always yield
// an identical result.
func Evaluate(team string, schedule domain.ParsedSchedule, offset int, windows WindowTable) domain.ViewabilityResult {
	result := domain.ViewabilityResult{
		Team:          team,
		ViewableDates: []string{},
	}

	shift := time.Duration(offset) * time.Hour
	for _, game := range schedule {
		local := game.StartUTC.Add(shift)
		window, ok := windows[local.Weekday().String()]
		if !ok {
			continue
		}
		if window.Contains(timeutil.DayTimeOf(local)) {
			result.ViewableCount++
			result.ViewableDates = append(result.ViewableDates, game.Date)
		}
	}
	return result
}
