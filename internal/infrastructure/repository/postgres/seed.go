package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/match-predictor/internal/platform/querybuilder"
)

// BootstrapSeed loads the development dataset into an empty database.
// A database that already has leagues is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	leagueInsert := qb.InsertInto("leagues").
		Columns("public_id", "name", "country_code", "season", "is_default", "external_league_id")
	for _, l := range memory.SeedLeagues() {
		leagueInsert.Values(l.ID, l.Name, l.CountryCode, l.Season, l.IsDefault, l.LeagueRefID)
	}
	query, args, err := leagueInsert.Suffix("ON CONFLICT (public_id) DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build seed leagues query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed leagues: %w", err)
	}

	fixtureInsert := qb.InsertInto("fixtures").
		Columns("public_id", "league_public_id", "gameweek", "home_team_public_id", "away_team_public_id", "home_team", "away_team", "kickoff_at", "status")
	for _, fx := range memory.SeedFixtures() {
		fixtureInsert.Values(fx.ID, fx.LeagueID, fx.Gameweek, fx.HomeTeamID, fx.AwayTeamID, fx.HomeTeam, fx.AwayTeam, fx.KickoffAt, fx.Status)
	}
	query, args, err = fixtureInsert.Suffix("ON CONFLICT (public_id) DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build seed fixtures query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed fixtures: %w", err)
	}

	// Seed finished matches backwards from a fixed anchor so recent-form
	// ordering stays deterministic.
	anchor := time.Date(2025, 11, 1, 15, 0, 0, 0, time.UTC)
	resultInsert := qb.InsertInto("match_results").
		Columns("league_public_id", "season", "team_public_id", "fixture_public_id", "was_home", "goals_for", "goals_against", "kickoff_at")
	rows := 0
	for teamID, samples := range memory.SeedFormSamples() {
		for i, sample := range samples {
			resultInsert.Values(
				memory.LeagueIDPremierLeague,
				2025,
				teamID,
				sample.FixtureID,
				sample.WasHome,
				sample.GoalsFor,
				sample.GoalsAgainst,
				anchor.AddDate(0, 0, -7*i),
			)
			rows++
		}
	}
	if rows > 0 {
		query, args, err = resultInsert.ToSQL()
		if err != nil {
			return fmt.Errorf("build seed match results query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed match results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
