package postgres

import (
	"context"
	"fmt"
	"strings"

	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/logging"
)

// CreateTableSQL renders the drop-and-create statement pair for a table.
// Type names line up under the longest column name, so the statement reads
// well in logs and psql history.
func CreateTableSQL(schema domain.TableSchema) string {
	maxLen := 0
	for _, column := range schema.Columns {
		if len(column.Name) > maxLen {
			maxLen = len(column.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DROP TABLE IF EXISTS %s;\n", schema.Name)
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", schema.Name)
	for i, column := range schema.Columns {
		comma := ","
		if i == len(schema.Columns)-1 {
			comma = ""
		}
		padding := strings.Repeat(" ", 1+maxLen-len(column.Name))
		fmt.Fprintf(&b, "    %s%s%s%s\n", column.Name, padding, column.Type, comma)
	}
	b.WriteString(");")
	return b.String()
}

// RecreateTable drops and recreates a table so the following load replaces
// its contents wholesale.
func (s *Store) RecreateTable(ctx context.Context, schema domain.TableSchema) error {
	if _, err := s.pool.Exec(ctx, CreateTableSQL(schema)); err != nil {
		return fmt.Errorf("recreate table %s: %w", schema.Name, err)
	}
	logging.Info(s.logger, "recreated table", logging.FieldTable, schema.Name)
	return nil
}
