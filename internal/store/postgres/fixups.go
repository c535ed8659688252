package postgres

import (
	"context"
	"fmt"

	"nba-fantasy-etl/internal/logging"
)

// The two vendors spell a handful of names differently. Joins across their
// tables only hold once the spellings agree, so these run after every load.
// Tables a partial refresh never created are skipped.
var fixupStatements = []struct {
	table string
	stmt  string
}{
	{
		table: "yahoo_rosters",
		stmt: `UPDATE yahoo_rosters
		       SET player_name = REPLACE(player_name, 'PJ Washington', 'P.J. Washington')`,
	},
	{
		table: "nba_players",
		stmt: `UPDATE nba_players
		       SET team_name = REPLACE(team_name, 'LA Clippers', 'Los Angeles Clippers')`,
	},
	{
		table: "temp_nba_players",
		stmt: `UPDATE temp_nba_players
		       SET team_name = REPLACE(team_name, 'LA Clippers', 'Los Angeles Clippers')`,
	},
}

// HarmonizeNames rewrites vendor-specific spellings so player and team names
// match across the Yahoo and NBA tables.
func (s *Store) HarmonizeNames(ctx context.Context) error {
	for _, fixup := range fixupStatements {
		ok, err := s.tableExists(ctx, fixup.table)
		if err != nil {
			return fmt.Errorf("harmonize names: %w", err)
		}
		if !ok {
			continue
		}
		if _, err := s.pool.Exec(ctx, fixup.stmt); err != nil {
			return fmt.Errorf("harmonize names in %s: %w", fixup.table, err)
		}
	}
	logging.Info(s.logger, "harmonized vendor name spellings")
	return nil
}

func (s *Store) tableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	return exists, nil
}
