package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fantasy-etl",
	Short: "Pull NBA and Yahoo fantasy league data into PostgreSQL",
	Long: `fantasy-etl refreshes a fantasy basketball analytics database: it pulls
matchups and rosters from the Yahoo Fantasy Sports API and the schedule and
player game logs from the NBA's public endpoints, writes each dataset to a
CSV extract, and bulk-loads the extracts into PostgreSQL.

Examples:
	# Refresh everything for the league's current week
	fantasy-etl refresh --all

	# Refresh only the Yahoo scoreboard for week 7
	fantasy-etl refresh --matchups --week 7

	# Top up today's player game logs without re-downloading the season
	fantasy-etl refresh --update-players

Configuration comes from environment variables (YAHOO_LEAGUE_ID, DATA_DIR,
SQL_LOGIN_FILE, ...) plus two JSON files: the Yahoo credentials file and the
database login file.`,
}

// SetBuildInfo installs the version string baked in at build time.
func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// BuildInfo reports the version, commit and build date.
func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
