package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
)

// TeamStatsSource serves seeded statistics for local development and
// tests. Absent teams read as unknown, never as an error.
type TeamStatsSource struct {
	mu    sync.RWMutex
	stats map[string]teamstats.SeasonStats
	form  map[string][]teamstats.FormSample
}

func NewTeamStatsSource(stats []teamstats.SeasonStats, form map[string][]teamstats.FormSample) *TeamStatsSource {
	byKey := make(map[string]teamstats.SeasonStats, len(stats))
	for _, item := range stats {
		byKey[statsKey(item.LeagueID, item.Season, item.TeamID)] = item
	}

	formCopy := make(map[string][]teamstats.FormSample, len(form))
	for teamID, samples := range form {
		formCopy[teamID] = append([]teamstats.FormSample(nil), samples...)
	}

	return &TeamStatsSource{stats: byKey, form: formCopy}
}

func (s *TeamStatsSource) GetSeasonStats(_ context.Context, leagueID string, season int, teamID string) (teamstats.SeasonStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.stats[statsKey(leagueID, season, teamID)]
	return item, ok, nil
}

func (s *TeamStatsSource) ListRecentForm(_ context.Context, _ string, _ int, teamID string, limit int) ([]teamstats.FormSample, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	samples, ok := s.form[teamID]
	if !ok {
		return nil, false, nil
	}
	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}

	out := make([]teamstats.FormSample, 0, len(samples))
	out = append(out, samples...)
	return out, true, nil
}

func statsKey(leagueID string, season int, teamID string) string {
	return fmt.Sprintf("%s:%d:%s", leagueID, season, teamID)
}
