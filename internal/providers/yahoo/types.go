package yahoo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The Yahoo fantasy API nests everything under fantasy_content and renders
// collections as objects keyed by stringified indexes plus a "count" field.
// Entity attributes arrive as arrays of single-key objects. The types below
// decode that shape once so mapping code can stay typed.

type apiResponse struct {
	FantasyContent fantasyContent `json:"fantasy_content"`
}

type fantasyContent struct {
	Game   json.RawMessage `json:"game"`
	League json.RawMessage `json:"league"`
	Team   json.RawMessage `json:"team"`
}

type gameMeta struct {
	GameKey string `json:"game_key"`
}

type leagueMeta struct {
	LeagueKey   string     `json:"league_key"`
	Season      flexString `json:"season"`
	CurrentWeek flexInt    `json:"current_week"`
	StartWeek   flexInt    `json:"start_week"`
	EndWeek     flexInt    `json:"end_week"`
	NumTeams    flexInt    `json:"num_teams"`
}

type scoreboardWrapper struct {
	Scoreboard *scoreboardPayload `json:"scoreboard"`
}

type scoreboardPayload struct {
	Zero struct {
		Matchups json.RawMessage `json:"matchups"`
	} `json:"0"`
	Week flexInt `json:"week"`
}

type matchupWrapper struct {
	Matchup matchupPayload `json:"matchup"`
}

type matchupPayload struct {
	Week          flexInt  `json:"week"`
	WeekStart     string   `json:"week_start"`
	WeekEnd       string   `json:"week_end"`
	Status        string   `json:"status"`
	IsPlayoffs    flexBool `json:"is_playoffs"`
	IsConsolation flexBool `json:"is_consolation"`
	Zero          struct {
		Teams json.RawMessage `json:"teams"`
	} `json:"0"`
}

// teamWrapper holds the two-element team array: attributes first, then the
// requested sub-resource (team_stats or roster).
type teamWrapper struct {
	Team []json.RawMessage `json:"team"`
}

type teamStatsWrapper struct {
	TeamStats struct {
		Stats []statWrapper `json:"stats"`
	} `json:"team_stats"`
}

type statWrapper struct {
	Stat struct {
		StatID string `json:"stat_id"`
		Value  string `json:"value"`
	} `json:"stat"`
}

type rosterWrapper struct {
	Roster struct {
		Zero struct {
			Players json.RawMessage `json:"players"`
		} `json:"0"`
	} `json:"roster"`
}

type playerWrapper struct {
	Player []json.RawMessage `json:"player"`
}

type playerName struct {
	Full string `json:"full"`
}

type eligiblePosition struct {
	Position string `json:"position"`
}

// indexedItems flattens a {"count": n, "0": ..., "1": ...} collection into
// an ordered slice.
func indexedItems(raw json.RawMessage) ([]json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty indexed collection")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode indexed collection: %w", err)
	}

	countRaw, ok := fields["count"]
	if !ok {
		return nil, fmt.Errorf("indexed collection missing count")
	}
	var count flexInt
	if err := json.Unmarshal(countRaw, &count); err != nil {
		return nil, fmt.Errorf("decode collection count: %w", err)
	}

	items := make([]json.RawMessage, 0, int(count))
	for i := 0; i < int(count); i++ {
		item, ok := fields[strconv.Itoa(i)]
		if !ok {
			return nil, fmt.Errorf("indexed collection missing entry %d of %d", i, int(count))
		}
		items = append(items, item)
	}
	return items, nil
}

// attributeList decodes the array-of-single-key-objects shape Yahoo uses for
// entity attributes into one key→value map. Entries that are not objects
// (Yahoo pads with empty arrays) are skipped.
func attributeList(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode attribute list: %w", err)
	}

	attrs := make(map[string]json.RawMessage)
	for _, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}
		for key, value := range fields {
			attrs[key] = value
		}
	}
	return attrs, nil
}

// flexInt decodes JSON values Yahoo renders sometimes as numbers and
// sometimes as numeric strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse int from %q: %w", string(data), err)
	}
	*f = flexInt(v)
	return nil
}

// flexBool decodes Yahoo's "0"/"1" flags whether quoted or not.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	switch s {
	case "1", "true":
		*f = true
	case "", "0", "false", "null":
		*f = false
	default:
		return fmt.Errorf("parse bool from %q", string(data))
	}
	return nil
}

// flexString decodes values Yahoo renders sometimes as strings and sometimes
// as bare numbers (season years, ids).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(strings.TrimSpace(string(data)))
	return nil
}
