package postgres

import (
	"context"
	"fmt"

	"nba-fantasy-etl/internal/logging"
)

// createProjectionsSQL builds the projections table: for every rostered
// player, their per-game season averages multiplied by the games their NBA
// team still has this fantasy week. Injured players project to zero games.
const createProjectionsSQL = `
CREATE TABLE projections AS (
    WITH week_window AS (
        SELECT week_start, week_end
        FROM yahoo_matchups
        WHERE stat_type = 'Actual'
        LIMIT 1
    ),
    games_left_by_team AS (
        SELECT team_name, count(*) AS games_left FROM (
            SELECT home_team_long AS team_name
            FROM nba_schedule, week_window
            WHERE gdte BETWEEN week_window.week_start AND week_window.week_end
              AND stt != 'Final'
            UNION ALL
            SELECT away_team_long AS team_name
            FROM nba_schedule, week_window
            WHERE gdte BETWEEN week_window.week_start AND week_window.week_end
              AND stt != 'Final'
        ) AS remaining
        GROUP BY team_name
    ),
    games_left_by_player AS (
        SELECT r.owning_team, r.player_name, r.team_name, r.injury_status,
            CASE
                WHEN r.injury_status != 'NONE' THEN 0
                ELSE t.games_left
            END AS games_left
        FROM yahoo_rosters AS r
        INNER JOIN games_left_by_team AS t ON r.team_name = t.team_name
    )
    SELECT r.owning_team, p.season_year, p.player_name, r.team_name,
        r.injury_status, g.games_left,
        round(AVG(p.fgm), 2) * g.games_left AS fgm,
        round(AVG(p.fga), 2) * g.games_left AS fga,
        round(AVG(p.ftm), 2) * g.games_left AS ftm,
        round(AVG(p.fta), 2) * g.games_left AS fta,
        round(AVG(p.fg3m), 2) * g.games_left AS fg3m,
        round(AVG(p.pts), 2) * g.games_left AS pts,
        round(AVG(p.reb), 2) * g.games_left AS reb,
        round(AVG(p.ast), 2) * g.games_left AS ast,
        round(AVG(p.stl), 2) * g.games_left AS stl,
        round(AVG(p.blk), 2) * g.games_left AS blk,
        round(AVG(p.tov), 2) * g.games_left AS tov,
        'Projected' AS stat_type
    FROM nba_players AS p
    INNER JOIN yahoo_rosters AS r ON p.player_name = r.player_name
    INNER JOIN games_left_by_player AS g ON r.player_name = g.player_name
    GROUP BY r.owning_team, p.season_year, p.player_name, r.team_name,
        r.injury_status, g.games_left
    ORDER BY r.owning_team
)`

// insertProjectedLinesSQL mirrors every Actual matchup line into a Projected
// one with zeroed stats, ready to receive the roster projection totals.
const insertProjectedLinesSQL = `
INSERT INTO yahoo_matchups
SELECT season, week, week_start, week_end, matchup_number,
    status, is_playoffs, is_consolation, team_name, team_key,
    0, 0, NULL, 0, 0, NULL, 0, 0, 0, 0, 0, 0, 0, 'Projected'
FROM yahoo_matchups
WHERE stat_type = 'Actual'`

// applyProjectionTotalsSQL rolls the per-player projections up per fantasy
// team and writes them onto the Projected matchup lines. NULLIF keeps teams
// with no projected attempts at a NULL percentage instead of failing.
const applyProjectionTotalsSQL = `
WITH projection_totals AS (
    SELECT owning_team,
        sum(fgm) AS fgm, sum(fga) AS fga,
        sum(ftm) AS ftm, sum(fta) AS fta,
        sum(fg3m) AS fg3m, sum(pts) AS pts,
        sum(reb) AS reb, sum(ast) AS ast,
        sum(stl) AS stl, sum(blk) AS blk,
        sum(tov) AS tov
    FROM projections
    GROUP BY owning_team
)
UPDATE yahoo_matchups
SET fgm = projection_totals.fgm,
    fga = projection_totals.fga,
    fg_pct = projection_totals.fgm / NULLIF(projection_totals.fga, 0),
    ftm = projection_totals.ftm,
    fta = projection_totals.fta,
    ft_pct = projection_totals.ftm / NULLIF(projection_totals.fta, 0),
    fg3m = projection_totals.fg3m,
    pts = projection_totals.pts,
    reb = projection_totals.reb,
    ast = projection_totals.ast,
    stl = projection_totals.stl,
    blk = projection_totals.blk,
    tov = projection_totals.tov
FROM projection_totals
WHERE projection_totals.owning_team = yahoo_matchups.team_name
AND yahoo_matchups.stat_type = 'Projected'`

// RebuildProjections recomputes rest-of-week projections from the loaded
// tables and refreshes the Projected matchup lines. The whole rebuild runs
// in one transaction so readers never see a half-projected scoreboard.
func (s *Store) RebuildProjections(ctx context.Context) error {
	for _, table := range []string{"yahoo_matchups", "yahoo_rosters", "nba_schedule", "nba_players"} {
		ok, err := s.tableExists(ctx, table)
		if err != nil {
			return err
		}
		if !ok {
			logging.Warn(s.logger, "skipping projections rebuild",
				logging.FieldTable, table, "reason", "table not loaded")
			return nil
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin projections rebuild: %w", err)
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DROP TABLE IF EXISTS projections`,
		createProjectionsSQL,
		`DELETE FROM yahoo_matchups WHERE stat_type = 'Projected'`,
		insertProjectedLinesSQL,
		applyProjectionTotalsSQL,
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step); err != nil {
			return fmt.Errorf("rebuild projections: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit projections rebuild: %w", err)
	}
	logging.Info(s.logger, "rebuilt projections")
	return nil
}
