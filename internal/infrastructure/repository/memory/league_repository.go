package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-predictor/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues []league.League
	byID    map[string]league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	byID := make(map[string]league.League, len(leagues))
	for _, item := range leagues {
		byID[item.ID] = item
	}

	return &LeagueRepository{
		leagues: append([]league.League(nil), leagues...),
		byID:    byID,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.leagues))
	out = append(out, r.leagues...)
	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[leagueID]
	return item, ok, nil
}
