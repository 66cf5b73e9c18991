package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Team is one roster entry: the league's numeric identifier plus the short
// code used in upstream API paths (e.g. "TOR").
type Team struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
}

// GameRecord is a single upcoming regular-season game retained after parsing.
// Date is the calendar date portion of the upstream UTC start time.
type GameRecord struct {
	StartUTC time.Time `json:"startUtc"`
	Date     string    `json:"date"`
}

// ParsedSchedule holds a team's upcoming regular-season games in upstream
// order. It is computed at most once per team and read-shared afterwards.
type ParsedSchedule []GameRecord

// ViewabilityResult counts the watchable games for one team at one UTC offset.
type ViewabilityResult struct {
	Team          string   `json:"team"`
	ViewableCount int      `json:"viewableCount"`
	ViewableDates []string `json:"viewableDates"`
}

// TeamRanking is ViewabilityResults sorted by viewable count, descending.
// Ties keep roster order so repeated runs produce identical rankings.
type TeamRanking []ViewabilityResult

// TeamCounts maps a team code to its viewable-game count.
type TeamCounts map[string]int

// Leaderboard maps a canonical timezone label (e.g. "UTC-5") to the top
// teams for that timezone.
type Leaderboard map[string]TeamCounts

// OffsetLabel formats a whole-hour UTC offset with the sign always shown
// and no zero padding: "UTC-12", "UTC+0", "UTC+9".
func OffsetLabel(offset int) string {
	return fmt.Sprintf("UTC%+d", offset)
}

// ParseOffsetLabel extracts the numeric offset from a label produced by
// OffsetLabel.
func ParseOffsetLabel(label string) (int, error) {
	if len(label) < 4 || label[:3] != "UTC" {
		return 0, fmt.Errorf("malformed timezone label %q", label)
	}
	return strconv.Atoi(label[3:])
}

// SortedLabels returns the leaderboard's labels ordered by numeric offset so
// presentation layers can print UTC-12 through UTC+12 in order. Labels that
// fail to parse sort after valid ones, alphabetically.
func (l Leaderboard) SortedLabels() []string {
	labels := make([]string, 0, len(l))
	for label := range l {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		oi, errI := ParseOffsetLabel(labels[i])
		oj, errJ := ParseOffsetLabel(labels[j])
		switch {
		case errI == nil && errJ == nil:
			return oi < oj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
	return labels
}
