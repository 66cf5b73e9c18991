package config

import (
	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/viewing"
)

// Config holds runtime configuration for a single analysis run.
type Config struct {
	Provider            string
	NHLE                NHLEConfig
	FetchRetryAttempts  int
	FetchRetryBackoff   Duration
	TeamConcurrency     int
	TimezoneConcurrency int
	TopN                int
	ResultsPath         string
	Roster              []domain.Team
	Windows             viewing.WindowTable
	Metrics             MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:            envOrDefault(envProvider, defaultProvider),
		NHLE:                loadNHLE(),
		FetchRetryAttempts:  intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		FetchRetryBackoff:   durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		TeamConcurrency:     intEnvOrDefault(envTeamPool, defaultTeamPool),
		TimezoneConcurrency: intEnvOrDefault(envTimezonePool, defaultTimezonePool),
		TopN:                intEnvOrDefault(envTopN, defaultTopN),
		ResultsPath:         envOrDefault(envResultsPath, ""),
		Roster:              loadRoster(),
		Windows:             loadWindows(),
		Metrics:             loadMetrics(),
	}
}
