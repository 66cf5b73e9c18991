package config

import (
	"encoding/json"
	"os"

	"nhl-watchability-service/internal/viewing"
)

// loadWindows reads an optional viewing-window override from the environment
// as a JSON object of day -> [start, end] HH:MM:SS pairs, e.g.
// {"Monday":["15:00:00","22:30:00"]}. The override replaces the whole table;
// any parse problem falls back to the defaults.
func loadWindows() viewing.WindowTable {
	raw := os.Getenv(envWindows)
	if raw == "" {
		return viewing.DefaultWindows()
	}

	var bounds map[string][2]string
	if err := json.Unmarshal([]byte(raw), &bounds); err != nil || len(bounds) == 0 {
		return viewing.DefaultWindows()
	}

	table, err := viewing.ParseWindows(bounds)
	if err != nil {
		return viewing.DefaultWindows()
	}
	return table
}
