package config

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"

	"nhl-watchability-service/internal/domain"
)

// DefaultRoster returns the stock NHL roster keyed by the league's numeric
// team IDs. The set is static for a process lifetime; it is configuration,
// never fetched.
func DefaultRoster() []domain.Team {
	return []domain.Team{
		{ID: 1, Code: "NJD"}, {ID: 2, Code: "NYI"}, {ID: 3, Code: "NYR"},
		{ID: 4, Code: "PHI"}, {ID: 5, Code: "PIT"}, {ID: 6, Code: "BOS"},
		{ID: 7, Code: "BUF"}, {ID: 8, Code: "MTL"}, {ID: 9, Code: "OTT"},
		{ID: 10, Code: "TOR"}, {ID: 12, Code: "CAR"}, {ID: 13, Code: "FLA"},
		{ID: 14, Code: "TBL"}, {ID: 15, Code: "WSH"}, {ID: 16, Code: "CHI"},
		{ID: 17, Code: "DET"}, {ID: 18, Code: "NSH"}, {ID: 19, Code: "STL"},
		{ID: 20, Code: "CGY"}, {ID: 21, Code: "COL"}, {ID: 22, Code: "EDM"},
		{ID: 23, Code: "VAN"}, {ID: 24, Code: "ANA"}, {ID: 25, Code: "DAL"},
		{ID: 26, Code: "LAK"}, {ID: 28, Code: "SJS"}, {ID: 29, Code: "CBJ"},
		{ID: 30, Code: "MIN"}, {ID: 52, Code: "WPG"}, {ID: 54, Code: "VGK"},
		{ID: 55, Code: "SEA"}, {ID: 59, Code: "UTA"},
	}
}

// loadRoster reads an optional roster override from the environment as a
// JSON object of id -> code (e.g. {"1":"NJD","10":"TOR"}). Entries are
// ordered by ID so evaluation order, and therefore ranking tie order, is
// deterministic. Any parse problem falls back to the default roster.
func loadRoster() []domain.Team {
	raw := os.Getenv(envRoster)
	if raw == "" {
		return DefaultRoster()
	}

	var byID map[string]string
	if err := json.Unmarshal([]byte(raw), &byID); err != nil || len(byID) == 0 {
		return DefaultRoster()
	}

	roster := make([]domain.Team, 0, len(byID))
	for id, code := range byID {
		numeric, err := strconv.Atoi(id)
		if err != nil || code == "" {
			return DefaultRoster()
		}
		roster = append(roster, domain.Team{ID: numeric, Code: code})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })
	return roster
}
