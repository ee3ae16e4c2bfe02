package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID           int64         `db:"id"`
	PublicID     string        `db:"public_id"`
	LeagueID     string        `db:"league_public_id"`
	Gameweek     int           `db:"gameweek"`
	HomeTeamID   string        `db:"home_team_public_id"`
	AwayTeamID   string        `db:"away_team_public_id"`
	HomeTeam     string        `db:"home_team"`
	AwayTeam     string        `db:"away_team"`
	FixtureRefID sql.NullInt64 `db:"external_fixture_id"`
	KickoffAt    time.Time     `db:"kickoff_at"`
	Status       string        `db:"status"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

func mapFixtureRow(row fixtureTableModel) fixture.Fixture {
	return fixture.Fixture{
		ID:           row.PublicID,
		LeagueID:     row.LeagueID,
		Gameweek:     row.Gameweek,
		HomeTeamID:   row.HomeTeamID,
		AwayTeamID:   row.AwayTeamID,
		HomeTeam:     row.HomeTeam,
		AwayTeam:     row.AwayTeam,
		FixtureRefID: nullInt64ToInt64(row.FixtureRefID),
		KickoffAt:    row.KickoffAt,
		Status:       fixture.NormalizeStatus(row.Status),
	}
}
