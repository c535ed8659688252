package nbastats

import (
	"fmt"
	"strconv"
	"time"

	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/timeutil"
)

// rowReader reads one result-set row by header name. Columns the header row
// does not declare read as nil, and numeric values arrive as float64.
type rowReader struct {
	index map[string]int
	row   []any
}

func newRowIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		index[header] = i
	}
	return index
}

func (r rowReader) value(column string) any {
	i, ok := r.index[column]
	if !ok || i >= len(r.row) {
		return nil
	}
	return r.row[i]
}

func (r rowReader) str(column string) string {
	if s, ok := r.value(column).(string); ok {
		return s
	}
	return ""
}

func (r rowReader) count(column string) int {
	switch v := r.value(column).(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

func (r rowReader) float(column string) float64 {
	switch v := r.value(column).(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

// mapGameLogs maps a PlayerGameLogs result set to domain records.
func mapGameLogs(set resultSet) ([]domain.PlayerGameLog, error) {
	index := newRowIndex(set.Headers)
	for _, required := range []string{colPlayerID, colPlayerName, colGameID, colGameDate} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("game logs result set missing %s column", required)
		}
	}

	logs := make([]domain.PlayerGameLog, 0, len(set.RowSet))
	for i, row := range set.RowSet {
		reader := rowReader{index: index, row: row}

		gameDate, err := parseGameDate(reader.str(colGameDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		logs = append(logs, domain.PlayerGameLog{
			SeasonYear: reader.str(colSeasonYear),
			PlayerID:   reader.count(colPlayerID),
			PlayerName: reader.str(colPlayerName),
			TeamName:   reader.str(colTeamName),
			GameID:     reader.str(colGameID),
			GameDate:   gameDate,
			Matchup:    reader.str(colMatchup),
			WinLoss:    reader.str(colWinLoss),
			Minutes:    reader.float(colMinutes),
			FGM:        reader.count(colFGM),
			FGA:        reader.count(colFGA),
			FTM:        reader.count(colFTM),
			FTA:        reader.count(colFTA),
			FG3M:       reader.count(colFG3M),
			PTS:        reader.count(colPTS),
			REB:        reader.count(colREB),
			AST:        reader.count(colAST),
			STL:        reader.count(colSTL),
			BLK:        reader.count(colBLK),
			TOV:        reader.count(colTOV),
		})
	}
	return logs, nil
}

// parseGameDate accepts both date renderings the stats endpoints use:
// bare dates and dates with a zero time suffix.
func parseGameDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("game log row has no game date")
	}
	if t, err := timeutil.ParseDate(raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse game date %q: %w", raw, err)
	}
	return t, nil
}

// mapSchedule flattens the per-month schedule into one game list. Team names
// come back split into city and nickname; the full name is their join, with
// the Clippers rewritten to the spelling the fantasy rosters use.
func mapSchedule(resp scheduleResponse) ([]domain.ScheduleGame, error) {
	var games []domain.ScheduleGame
	for _, month := range resp.LeagueSchedule {
		for _, game := range month.Month.Games {
			gameDate, err := timeutil.ParseDate(game.GameDate)
			if err != nil {
				return nil, fmt.Errorf("game %s: parse date %q: %w", game.GameID, game.GameDate, err)
			}
			games = append(games, domain.ScheduleGame{
				GameID:       game.GameID,
				GameDate:     gameDate,
				Status:       game.Status,
				HomeTricode:  game.Home.Tricode,
				HomeTeamName: fullTeamName(game.Home),
				AwayTricode:  game.Visitor.Tricode,
				AwayTeamName: fullTeamName(game.Visitor),
			})
		}
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("schedule payload has no games")
	}
	return games, nil
}

func fullTeamName(team teamRef) string {
	name := team.City + " " + team.Name
	if name == "LA Clippers" {
		return "Los Angeles Clippers"
	}
	return name
}
