package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrTeam    = "team"
	AttrOffset  = "offset"
	AttrOutcome = "outcome"
)

// Cache load outcomes.
const (
	OutcomeLoaded = "loaded"
	OutcomeFailed = "failed"
)
