package postgres

type seasonStatsRow struct {
	HomeMatches      int `db:"home_matches"`
	HomeGoalsFor     int `db:"home_goals_for"`
	HomeGoalsAgainst int `db:"home_goals_against"`
	AwayMatches      int `db:"away_matches"`
	AwayGoalsFor     int `db:"away_goals_for"`
	AwayGoalsAgainst int `db:"away_goals_against"`
}

type formSampleRow struct {
	FixtureID    string `db:"fixture_public_id"`
	WasHome      bool   `db:"was_home"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
}
