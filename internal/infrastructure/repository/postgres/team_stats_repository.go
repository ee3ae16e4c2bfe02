package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
	qb "github.com/riskibarqy/match-predictor/internal/platform/querybuilder"
)

// TeamStatsRepository derives season statistics and recent form from
// the match_results table, one row per team per finished match.
type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetSeasonStats(ctx context.Context, leagueID string, season int, teamID string) (teamstats.SeasonStats, bool, error) {
	query, args, err := qb.Select(
		"COALESCE(COUNT(1) FILTER (WHERE was_home), 0) AS home_matches",
		"COALESCE(SUM(goals_for) FILTER (WHERE was_home), 0) AS home_goals_for",
		"COALESCE(SUM(goals_against) FILTER (WHERE was_home), 0) AS home_goals_against",
		"COALESCE(COUNT(1) FILTER (WHERE NOT was_home), 0) AS away_matches",
		"COALESCE(SUM(goals_for) FILTER (WHERE NOT was_home), 0) AS away_goals_for",
		"COALESCE(SUM(goals_against) FILTER (WHERE NOT was_home), 0) AS away_goals_against",
	).From("match_results").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("season", season),
			qb.Eq("team_public_id", teamID),
		).
		ToSQL()
	if err != nil {
		return teamstats.SeasonStats{}, false, fmt.Errorf("build get season stats query: %w", err)
	}

	var row seasonStatsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return teamstats.SeasonStats{}, false, fmt.Errorf("get season stats: %w", err)
	}

	stats := teamstats.SeasonStats{
		LeagueID:         leagueID,
		Season:           season,
		TeamID:           teamID,
		HomeMatches:      row.HomeMatches,
		HomeGoalsFor:     row.HomeGoalsFor,
		HomeGoalsAgainst: row.HomeGoalsAgainst,
		AwayMatches:      row.AwayMatches,
		AwayGoalsFor:     row.AwayGoalsFor,
		AwayGoalsAgainst: row.AwayGoalsAgainst,
	}

	// Zero recorded matches means the team is unknown for this season,
	// not a team that happens to average zero goals.
	if stats.TotalMatches() == 0 {
		return teamstats.SeasonStats{}, false, nil
	}

	return stats, true, nil
}

func (r *TeamStatsRepository) ListRecentForm(ctx context.Context, leagueID string, season int, teamID string, limit int) ([]teamstats.FormSample, bool, error) {
	if limit <= 0 {
		limit = 5
	}

	query, args, err := qb.Select(
		"fixture_public_id",
		"was_home",
		"goals_for",
		"goals_against",
	).From("match_results").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("season", season),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("kickoff_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, false, fmt.Errorf("build list recent form query: %w", err)
	}

	var rows []formSampleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, false, fmt.Errorf("list recent form: %w", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	out := make([]teamstats.FormSample, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.FormSample{
			FixtureID:    row.FixtureID,
			WasHome:      row.WasHome,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
		})
	}

	return out, true, nil
}
