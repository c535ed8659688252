package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD) used by CSV
// artifacts and the schedule feed.
const DateLayout = "2006-01-02"

// USDateLayout is the MM/DD/YYYY format the stats endpoint expects for its
// DateFrom/DateTo parameters.
const USDateLayout = "01/02/2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatUSDate formats a time as MM/DD/YYYY in its current location.
func FormatUSDate(t time.Time) string {
	return t.Format(USDateLayout)
}
