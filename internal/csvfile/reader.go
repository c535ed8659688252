package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadTable reads a table extract back: it validates the header against the
// expected column names and returns the data rows.
func ReadTable(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, column := range columns {
		if header[i] != column {
			return nil, fmt.Errorf("%s: header column %d is %q, want %q", path, i, header[i], column)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv rows: %w", err)
	}
	return rows, nil
}
