package nbastats

// statsResponse is the envelope shared by stats.nba.com endpoints: named
// result sets with a header row and untyped row values.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// scheduleResponse is data.nba.com's season schedule: one entry per month
// ("lscd"), each holding that month's schedule ("mscd") and its games ("g").
type scheduleResponse struct {
	LeagueSchedule []monthSchedule `json:"lscd"`
}

type monthSchedule struct {
	Month struct {
		Name  string         `json:"mon"`
		Games []scheduleGame `json:"g"`
	} `json:"mscd"`
}

type scheduleGame struct {
	GameID   string  `json:"gid"`
	GameDate string  `json:"gdte"`
	Status   string  `json:"stt"`
	Home     teamRef `json:"h"`
	Visitor  teamRef `json:"v"`
}

type teamRef struct {
	Tricode string `json:"ta"`
	City    string `json:"tc"`
	Name    string `json:"tn"`
}
