package nhle

import "time"

const (
	providerName       = "nhle"
	defaultBaseURL     = "https://api-web.nhle.com"
	defaultHTTPTimeout = 10 * time.Second

	// Upstream gameType code for regular-season games. Preseason is 1,
	// playoffs are 3.
	regularSeasonGameType = 2
)
