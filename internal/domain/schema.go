package domain

// ColumnType is the SQL type a dataset column maps to.
type ColumnType string

const (
	TypeBoolean ColumnType = "boolean"
	TypeDate    ColumnType = "date"
	TypeInteger ColumnType = "integer"
	TypeDecimal ColumnType = "decimal (6, 3)"
	TypeText    ColumnType = "text"
)

// Column describes one column of a dataset table.
type Column struct {
	Name string
	Type ColumnType
}

// TableSchema is the ordered column layout shared by a dataset's CSV
// artifact and its database table.
type TableSchema struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the column names in table order.
func (s TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// MatchupsSchema is the layout of the yahoo_matchups table.
var MatchupsSchema = TableSchema{
	Name: "yahoo_matchups",
	Columns: []Column{
		{Name: "season", Type: TypeText},
		{Name: "week", Type: TypeInteger},
		{Name: "week_start", Type: TypeDate},
		{Name: "week_end", Type: TypeDate},
		{Name: "matchup_number", Type: TypeInteger},
		{Name: "status", Type: TypeText},
		{Name: "is_playoffs", Type: TypeBoolean},
		{Name: "is_consolation", Type: TypeBoolean},
		{Name: "team_name", Type: TypeText},
		{Name: "team_key", Type: TypeText},
		{Name: "fgm", Type: TypeInteger},
		{Name: "fga", Type: TypeInteger},
		{Name: "fg_pct", Type: TypeDecimal},
		{Name: "ftm", Type: TypeInteger},
		{Name: "fta", Type: TypeInteger},
		{Name: "ft_pct", Type: TypeDecimal},
		{Name: "fg3m", Type: TypeInteger},
		{Name: "pts", Type: TypeInteger},
		{Name: "reb", Type: TypeInteger},
		{Name: "ast", Type: TypeInteger},
		{Name: "stl", Type: TypeInteger},
		{Name: "blk", Type: TypeInteger},
		{Name: "tov", Type: TypeInteger},
		{Name: "stat_type", Type: TypeText},
	},
}

// RostersSchema is the layout of the yahoo_rosters table. One boolean column
// per eligible position; Yahoo's "IL+" becomes il_plus.
var RostersSchema = TableSchema{
	Name: "yahoo_rosters",
	Columns: []Column{
		{Name: "owning_team", Type: TypeText},
		{Name: "player_name", Type: TypeText},
		{Name: "team_name", Type: TypeText},
		{Name: "injury_status", Type: TypeText},
		{Name: "pg", Type: TypeBoolean},
		{Name: "sg", Type: TypeBoolean},
		{Name: "g", Type: TypeBoolean},
		{Name: "sf", Type: TypeBoolean},
		{Name: "pf", Type: TypeBoolean},
		{Name: "f", Type: TypeBoolean},
		{Name: "c", Type: TypeBoolean},
		{Name: "util", Type: TypeBoolean},
		{Name: "bn", Type: TypeBoolean},
		{Name: "il", Type: TypeBoolean},
		{Name: "il_plus", Type: TypeBoolean},
	},
}

// ScheduleSchema is the layout of the nba_schedule table.
var ScheduleSchema = TableSchema{
	Name: "nba_schedule",
	Columns: []Column{
		{Name: "gid", Type: TypeText},
		{Name: "gdte", Type: TypeDate},
		{Name: "stt", Type: TypeText},
		{Name: "home_team", Type: TypeText},
		{Name: "home_team_long", Type: TypeText},
		{Name: "away_team", Type: TypeText},
		{Name: "away_team_long", Type: TypeText},
	},
}

// PlayerLogsSchema is the layout of the nba_players table.
var PlayerLogsSchema = TableSchema{
	Name:    "nba_players",
	Columns: playerLogColumns,
}

// PlayerLogUpdatesSchema is the single-date staging table used for
// incremental player refreshes. Shape matches nba_players exactly so rows
// can be merged across.
var PlayerLogUpdatesSchema = TableSchema{
	Name:    "temp_nba_players",
	Columns: playerLogColumns,
}

var playerLogColumns = []Column{
	{Name: "season_year", Type: TypeText},
	{Name: "player_id", Type: TypeInteger},
	{Name: "player_name", Type: TypeText},
	{Name: "team_name", Type: TypeText},
	{Name: "game_id", Type: TypeText},
	{Name: "game_date", Type: TypeDate},
	{Name: "matchup", Type: TypeText},
	{Name: "wl", Type: TypeText},
	{Name: "min", Type: TypeDecimal},
	{Name: "fgm", Type: TypeInteger},
	{Name: "fga", Type: TypeInteger},
	{Name: "ftm", Type: TypeInteger},
	{Name: "fta", Type: TypeInteger},
	{Name: "fg3m", Type: TypeInteger},
	{Name: "pts", Type: TypeInteger},
	{Name: "reb", Type: TypeInteger},
	{Name: "ast", Type: TypeInteger},
	{Name: "stl", Type: TypeInteger},
	{Name: "blk", Type: TypeInteger},
	{Name: "tov", Type: TypeInteger},
}
