package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"nba-fantasy-etl/internal/csvfile"
	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/logging"
	"nba-fantasy-etl/internal/timeutil"
)

// LoadCSV bulk-loads a table extract with COPY and returns the row count.
// The load fails if the database accepts fewer rows than the file holds.
func (s *Store) LoadCSV(ctx context.Context, schema domain.TableSchema, path string) (int64, error) {
	rows, err := csvfile.ReadTable(path, schema.ColumnNames())
	if err != nil {
		return 0, err
	}

	source := &csvRowSource{schema: schema, rows: rows}
	copied, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{schema.Name}, schema.ColumnNames(), source)
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", schema.Name, err)
	}
	if copied != int64(len(rows)) {
		return copied, fmt.Errorf("copy into %s: loaded %d of %d rows", schema.Name, copied, len(rows))
	}

	logging.Info(s.logger, "loaded table",
		logging.FieldTable, schema.Name, logging.FieldRows, copied)
	return copied, nil
}

// csvRowSource feeds CSV rows to COPY, converting each field to the typed
// value its column expects. The NULL sentinel becomes a SQL NULL.
type csvRowSource struct {
	schema domain.TableSchema
	rows   [][]string
	next   int
	err    error
}

func (src *csvRowSource) Next() bool {
	return src.err == nil && src.next < len(src.rows)
}

func (src *csvRowSource) Values() ([]any, error) {
	row := src.rows[src.next]
	src.next++

	values := make([]any, len(row))
	for i, field := range row {
		value, err := convertField(src.schema.Columns[i], field)
		if err != nil {
			src.err = fmt.Errorf("%s row %d: %w", src.schema.Name, src.next-1, err)
			return nil, src.err
		}
		values[i] = value
	}
	return values, nil
}

func (src *csvRowSource) Err() error {
	return src.err
}

func convertField(column domain.Column, field string) (any, error) {
	if field == domain.NullLiteral {
		return nil, nil
	}

	switch column.Type {
	case domain.TypeBoolean:
		v, err := strconv.ParseBool(field)
		if err != nil {
			return nil, fmt.Errorf("column %s: parse bool %q: %w", column.Name, field, err)
		}
		return v, nil
	case domain.TypeDate:
		v, err := timeutil.ParseDate(field)
		if err != nil {
			return nil, fmt.Errorf("column %s: parse date %q: %w", column.Name, field, err)
		}
		return v, nil
	case domain.TypeInteger:
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: parse int %q: %w", column.Name, field, err)
		}
		return v, nil
	case domain.TypeDecimal:
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: parse decimal %q: %w", column.Name, field, err)
		}
		return v, nil
	case domain.TypeText:
		return field, nil
	default:
		return nil, fmt.Errorf("column %s: unknown type %q", column.Name, column.Type)
	}
}
