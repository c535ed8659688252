package yahoo

import "time"

const (
	// ProviderName labels yahoo in logs and metrics.
	ProviderName = "yahoo"

	defaultBaseURL     = "https://fantasysports.yahooapis.com/fantasy/v2"
	defaultHTTPTimeout = 30 * time.Second

	// gameCode is the Yahoo game code for NBA fantasy basketball.
	gameCode = "nba"
)

// Team stat positions inside a scoreboard team_stats block. Yahoo returns
// the stats as an ordered list; these are the standard 9-cat head-to-head
// category slots.
const (
	statIdxFG    = 0 // "made/attempted"
	statIdxFGPct = 1
	statIdxFT    = 2 // "made/attempted"
	statIdxFTPct = 3
	statIdxFG3M  = 4
	statIdxPTS   = 5
	statIdxREB   = 6
	statIdxAST   = 7
	statIdxSTL   = 8
	statIdxBLK   = 9
	statIdxTOV   = 10

	statCount = 11
)
