package viewing

import (
	"fmt"

	"nhl-watchability-service/internal/timeutil"
)

// Window is one weekday's watchable interval. Both bounds are inclusive.
type Window struct {
	Start timeutil.DayTime
	End   timeutil.DayTime
}

// WindowTable maps weekday names ("Monday" .. "Sunday") to watchable
// intervals. A weekday without an entry has no watchable games. The table is
// computed once and read-shared; it must not be mutated after construction.
type WindowTable map[string]Window

// DefaultWindows returns the stock viewing windows: weekday evenings, with
// longer windows on Friday and across the weekend.
func DefaultWindows() WindowTable {
	table, err := ParseWindows(map[string][2]string{
		"Monday":    {"15:00:00", "22:30:00"},
		"Tuesday":   {"15:00:00", "22:30:00"},
		"Wednesday": {"15:00:00", "22:30:00"},
		"Thursday":  {"15:00:00", "22:30:00"},
		"Friday":    {"15:00:00", "23:30:00"},
		"Saturday":  {"09:00:00", "23:30:00"},
		"Sunday":    {"09:00:00", "22:00:00"},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// ParseWindows converts day -> [start, end] HH:MM:SS pairs into a WindowTable.
func ParseWindows(raw map[string][2]string) (WindowTable, error) {
	table := make(WindowTable, len(raw))
	for day, bounds := range raw {
		if !validWeekday(day) {
			return nil, fmt.Errorf("unknown weekday %q", day)
		}
		start, err := timeutil.ParseDayTime(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("window start for %s: %w", day, err)
		}
		end, err := timeutil.ParseDayTime(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("window end for %s: %w", day, err)
		}
		if end < start {
			return nil, fmt.Errorf("window for %s ends before it starts", day)
		}
		table[day] = Window{Start: start, End: end}
	}
	return table, nil
}

// Contains reports whether the time of day falls inside the window.
func (w Window) Contains(tod timeutil.DayTime) bool {
	return tod >= w.Start && tod <= w.End
}

func validWeekday(day string) bool {
	switch day {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday":
		return true
	}
	return false
}
