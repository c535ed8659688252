package nbastats

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "nbastats"

const (
	defaultStatsBaseURL    = "https://stats.nba.com/stats"
	defaultScheduleBaseURL = "https://data.nba.com/data/10s/v2015/json/mobile_teams/nba"

	gameLogsEndpoint = "/playergamelogs"
	schedulePath     = "/league/00_full_schedule.json"
)

// stats.nba.com rejects requests that do not look like a browser.
const (
	headerAccept    = "application/json"
	headerReferer   = "https://www.nba.com/"
	headerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// playergamelogs result set columns the pipeline consumes, addressed by
// header name rather than position.
const (
	colSeasonYear = "SEASON_YEAR"
	colPlayerID   = "PLAYER_ID"
	colPlayerName = "PLAYER_NAME"
	colTeamName   = "TEAM_NAME"
	colGameID     = "GAME_ID"
	colGameDate   = "GAME_DATE"
	colMatchup    = "MATCHUP"
	colWinLoss    = "WL"
	colMinutes    = "MIN"
	colFGM        = "FGM"
	colFGA        = "FGA"
	colFTM        = "FTM"
	colFTA        = "FTA"
	colFG3M       = "FG3M"
	colPTS        = "PTS"
	colREB        = "REB"
	colAST        = "AST"
	colSTL        = "STL"
	colBLK        = "BLK"
	colTOV        = "TOV"
)
