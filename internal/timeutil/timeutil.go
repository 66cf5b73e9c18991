package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout defines the canonical time-of-day format (HH:MM:SS).
const ClockLayout = "15:04:05"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayTime is a time of day expressed as seconds since midnight, which keeps
// window comparisons to plain integer ordering.
type DayTime int

// ParseDayTime parses an HH:MM:SS string into a DayTime.
func ParseDayTime(value string) (DayTime, error) {
	parsed, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("parsing time of day %q: %w", value, err)
	}
	return DayTime(parsed.Hour()*3600 + parsed.Minute()*60 + parsed.Second()), nil
}

// DayTimeOf extracts the time of day from t in its current location.
func DayTimeOf(t time.Time) DayTime {
	return DayTime(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// String renders the DayTime back as HH:MM:SS.
func (d DayTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(d)/3600, int(d)%3600/60, int(d)%60)
}

// DateOnly truncates t to midnight UTC, for strict calendar-date comparisons.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
