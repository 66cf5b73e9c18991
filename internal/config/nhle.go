package config

import "time"

const (
	envNHLEBaseURL = "NHLE_BASE_URL"
	envHTTPTimeout = "NHLE_HTTP_TIMEOUT"

	defaultNHLEBaseURL = "https://api-web.nhle.com"
	defaultHTTPTimeout = 10 * time.Second
)

// NHLEConfig controls how we talk to the NHL web API.
type NHLEConfig struct {
	BaseURL     string
	HTTPTimeout Duration
}

func loadNHLE() NHLEConfig {
	return NHLEConfig{
		BaseURL:     envOrDefault(envNHLEBaseURL, defaultNHLEBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
