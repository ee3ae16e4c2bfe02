package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/match-predictor/internal/domain/league"
	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
	basecache "github.com/riskibarqy/match-predictor/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

// TeamStatsSource memoizes provider lookups per (league, season, team)
// so the four fan-out calls of repeated predictions stay cheap.
type TeamStatsSource struct {
	next  teamstats.Source
	cache *basecache.Store
}

func NewTeamStatsSource(next teamstats.Source, cache *basecache.Store) *TeamStatsSource {
	return &TeamStatsSource{next: next, cache: cache}
}

func (s *TeamStatsSource) GetSeasonStats(ctx context.Context, leagueID string, season int, teamID string) (teamstats.SeasonStats, bool, error) {
	key := "teamstats:season:" + leagueID + ":" + strconv.Itoa(season) + ":" + teamID
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, found, err := s.next.GetSeasonStats(ctx, leagueID, season, teamID)
		if err != nil {
			return nil, err
		}
		return cachedSeasonStats{value: item, found: found}, nil
	})
	if err != nil {
		return teamstats.SeasonStats{}, false, err
	}

	cached, _ := v.(cachedSeasonStats)
	return cached.value, cached.found, nil
}

func (s *TeamStatsSource) ListRecentForm(ctx context.Context, leagueID string, season int, teamID string, limit int) ([]teamstats.FormSample, bool, error) {
	key := "teamstats:form:" + leagueID + ":" + strconv.Itoa(season) + ":" + teamID + ":" + strconv.Itoa(limit)
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		samples, found, err := s.next.ListRecentForm(ctx, leagueID, season, teamID, limit)
		if err != nil {
			return nil, err
		}
		return cachedFormSamples{value: append([]teamstats.FormSample(nil), samples...), found: found}, nil
	})
	if err != nil {
		return nil, false, err
	}

	cached, _ := v.(cachedFormSamples)
	return append([]teamstats.FormSample(nil), cached.value...), cached.found, nil
}

type cachedSeasonStats struct {
	value teamstats.SeasonStats
	found bool
}

type cachedFormSamples struct {
	value []teamstats.FormSample
	found bool
}
