package config

import "time"

const (
	envProvider      = "PROVIDER"
	envRetryAttempts = "FETCH_RETRY_ATTEMPTS"
	envRetryBackoff  = "FETCH_RETRY_BACKOFF"
	envTeamPool      = "TEAM_FETCH_CONCURRENCY"
	envTimezonePool  = "TIMEZONE_CONCURRENCY"
	envTopN          = "TOP_N_TEAMS"
	envResultsPath   = "RESULTS_PATH"
	envRoster        = "TEAM_ROSTER"
	envWindows       = "VIEWING_WINDOWS"
	envMetricsOn     = "METRICS_ENABLED"
	envMetricsPort   = "METRICS_PORT"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	// Providers recognized by the runner.
	ProviderNHLE    = "nhle"
	ProviderFixture = "fixture"

	defaultProvider = ProviderNHLE
	// In-flight retries only; the schedule cache never refetches a team
	// within a run. 1 disables retries.
	defaultRetryAttempts = 2
	defaultRetryBackoff  = 200 * time.Millisecond
	// Pool sizes sized to stay friendly to the upstream API and the local CPU.
	defaultTeamPool     = 12
	defaultTimezonePool = 8
	defaultTopN         = 5
	defaultMetricsPort  = "9090"
)
