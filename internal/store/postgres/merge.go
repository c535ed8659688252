package postgres

import (
	"context"
	"fmt"

	"nba-fantasy-etl/internal/logging"
)

// MergeDailyLogs folds the single-date staging table into the season table:
// any game date present in temp_nba_players is deleted from nba_players and
// replaced by the staged rows. Running the same refresh twice is a no-op.
func (s *Store) MergeDailyLogs(ctx context.Context) (int64, error) {
	for _, table := range []string{"nba_players", "temp_nba_players"} {
		ok, err := s.tableExists(ctx, table)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("merge daily logs: table %s does not exist", table)
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin daily merge: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM nba_players
		WHERE game_date IN (SELECT DISTINCT game_date FROM temp_nba_players)`); err != nil {
		return 0, fmt.Errorf("delete refreshed dates: %w", err)
	}

	tag, err := tx.Exec(ctx, `INSERT INTO nba_players SELECT * FROM temp_nba_players`)
	if err != nil {
		return 0, fmt.Errorf("insert staged rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit daily merge: %w", err)
	}

	merged := tag.RowsAffected()
	logging.Info(s.logger, "merged staged player logs",
		logging.FieldTable, "nba_players", logging.FieldRows, merged)
	return merged, nil
}
