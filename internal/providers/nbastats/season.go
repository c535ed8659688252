package nbastats

import (
	"fmt"
	"strconv"
)

// SeasonString expands a season start year into the API's season label:
// "2020" becomes "2020-21".
func SeasonString(startYear string) (string, error) {
	year, err := strconv.Atoi(startYear)
	if err != nil {
		return "", fmt.Errorf("season start year %q is not a year", startYear)
	}
	if year < 1946 || year > 2100 {
		return "", fmt.Errorf("season start year %d out of range", year)
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100), nil
}
