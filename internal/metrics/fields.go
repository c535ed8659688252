package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrTable    = "table"
	AttrOutcome  = "outcome"
)
