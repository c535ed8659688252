package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldTable      = "table"
	FieldWeek       = "week"
	FieldSeason     = "season"
	FieldRows       = "rows"
	FieldPath       = "path"
	FieldDurationMS = "duration_ms"
)
