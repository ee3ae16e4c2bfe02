package teamstats

import "context"

// Source provides the statistical inputs predictions are computed from.
// The bool result distinguishes "no data for this team" from a lookup
// failure; callers degrade on false rather than erroring out.
type Source interface {
	GetSeasonStats(ctx context.Context, leagueID string, season int, teamID string) (SeasonStats, bool, error)
	ListRecentForm(ctx context.Context, leagueID string, season int, teamID string, limit int) ([]FormSample, bool, error)
}
