package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/match-predictor/internal/domain/fixture"
	"github.com/riskibarqy/match-predictor/internal/domain/league"
	"github.com/riskibarqy/match-predictor/internal/domain/prediction"
	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
)

// recentFormLimit bounds the recent-form lookups feeding the form factors.
const recentFormLimit = 5

const (
	defaultGameweekWorkers = 4
	maxGameweekWorkers     = 16
)

type PredictionService struct {
	leagueRepo  league.Repository
	fixtureRepo fixture.Repository
	stats       teamstats.Source
	logger      *logging.Logger
}

func NewPredictionService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	stats teamstats.Source,
	logger *logging.Logger,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PredictionService{
		leagueRepo:  leagueRepo,
		fixtureRepo: fixtureRepo,
		stats:       stats,
		logger:      logger,
	}
}

// MatchupInput describes an ad-hoc prediction request not tied to a
// stored fixture. Season zero means "use the league's current season".
type MatchupInput struct {
	LeagueID   string
	Season     int
	HomeTeamID string
	AwayTeamID string
}

// PredictFixture produces the forecast for one stored fixture.
func (s *PredictionService) PredictFixture(ctx context.Context, leagueID, fixtureID string) (prediction.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.PredictFixture")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	fixtureID = strings.TrimSpace(fixtureID)
	if leagueID == "" {
		return prediction.Result{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if fixtureID == "" {
		return prediction.Result{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return prediction.Result{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return prediction.Result{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	fx, exists, err := s.fixtureRepo.GetByID(ctx, leagueID, fixtureID)
	if err != nil {
		return prediction.Result{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return prediction.Result{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}
	if !fixture.IsPredictable(fx.Status) {
		return prediction.Result{}, fmt.Errorf("%w: fixture %s is %s", ErrInvalidInput, fixtureID, fixture.NormalizeStatus(fx.Status))
	}

	result := s.predict(ctx, item.ID, item.Season, fx.HomeTeamID, fx.AwayTeamID)
	result.FixtureID = fx.ID
	return result, nil
}

// PredictMatchup produces a forecast for an arbitrary home/away pairing.
func (s *PredictionService) PredictMatchup(ctx context.Context, input MatchupInput) (prediction.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.PredictMatchup")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	if input.LeagueID == "" {
		return prediction.Result{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.HomeTeamID == "" || input.AwayTeamID == "" {
		return prediction.Result{}, fmt.Errorf("%w: home and away team ids are required", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return prediction.Result{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return prediction.Result{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return prediction.Result{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}

	season := input.Season
	if season <= 0 {
		season = item.Season
	}

	return s.predict(ctx, item.ID, season, input.HomeTeamID, input.AwayTeamID), nil
}

// matchInputs is the outcome of the four statistics lookups. Nil stats
// or form mean "unknown", either from genuine absence or a failed
// lookup; both degrade the prediction instead of failing it.
type matchInputs struct {
	homeStats *teamstats.SeasonStats
	awayStats *teamstats.SeasonStats
	homeForm  []teamstats.FormSample
	awayForm  []teamstats.FormSample
}

func (s *PredictionService) predict(ctx context.Context, leagueID string, season int, homeTeamID, awayTeamID string) prediction.Result {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.predict")
	defer span.End()

	inputs := s.gatherInputs(ctx, leagueID, season, homeTeamID, awayTeamID)

	homeForm := prediction.ComputeFormFactor(inputs.homeForm)
	awayForm := prediction.ComputeFormFactor(inputs.awayForm)

	lambdaHome, lambdaAway, matchCtx := prediction.EstimateRates(inputs.homeStats, inputs.awayStats, homeForm, awayForm)
	scoreline := prediction.PredictScoreline(lambdaHome, lambdaAway)
	confidence := prediction.ScoreConfidence(scoreline.ProbHome, scoreline.ProbDraw, scoreline.ProbAway, matchCtx)

	result := prediction.Result{
		LeagueID:   leagueID,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		LambdaHome: lambdaHome,
		LambdaAway: lambdaAway,
		Scoreline:  scoreline,
		MainPick:   prediction.MainPick(scoreline),
		Confidence: confidence,
		Profile:    prediction.ClassifyMatch(scoreline),
		DataFlag:   prediction.ClassifyDataQuality(matchCtx.DataQuality, matchCtx.SampleSize, matchCtx.RecentFactor),
		Mode:       matchCtx.Mode,
	}

	if result.Mode == prediction.ModeDegradedDefault {
		s.logger.WarnContext(ctx, "prediction degraded to neutral priors",
			"league_id", leagueID,
			"home_team_id", homeTeamID,
			"away_team_id", awayTeamID,
		)
	}

	return result
}

// gatherInputs runs the four statistics lookups concurrently. A lookup
// error is logged and treated as unknown data; it never aborts the
// prediction.
func (s *PredictionService) gatherInputs(ctx context.Context, leagueID string, season int, homeTeamID, awayTeamID string) matchInputs {
	var inputs matchInputs

	var wg conc.WaitGroup
	wg.Go(func() {
		inputs.homeStats = s.lookupStats(ctx, leagueID, season, homeTeamID)
	})
	wg.Go(func() {
		inputs.awayStats = s.lookupStats(ctx, leagueID, season, awayTeamID)
	})
	wg.Go(func() {
		inputs.homeForm = s.lookupForm(ctx, leagueID, season, homeTeamID)
	})
	wg.Go(func() {
		inputs.awayForm = s.lookupForm(ctx, leagueID, season, awayTeamID)
	})
	wg.Wait()

	return inputs
}

func (s *PredictionService) lookupStats(ctx context.Context, leagueID string, season int, teamID string) *teamstats.SeasonStats {
	stats, found, err := s.stats.GetSeasonStats(ctx, leagueID, season, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "season stats lookup failed",
			"league_id", leagueID,
			"season", season,
			"team_id", teamID,
			"error", err,
		)
		return nil
	}
	if !found {
		return nil
	}
	return &stats
}

func (s *PredictionService) lookupForm(ctx context.Context, leagueID string, season int, teamID string) []teamstats.FormSample {
	samples, found, err := s.stats.ListRecentForm(ctx, leagueID, season, teamID, recentFormLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "recent form lookup failed",
			"league_id", leagueID,
			"season", season,
			"team_id", teamID,
			"error", err,
		)
		return nil
	}
	if !found {
		return nil
	}
	return samples
}

// GameweekInput selects one round of fixtures for batch prediction.
type GameweekInput struct {
	LeagueID   string
	Gameweek   int
	MaxWorkers int
}

type GameweekResult struct {
	LeagueID     string
	Gameweek     int
	FixtureCount int
	SkippedCount int
	WorkerCount  int
	Predictions  []prediction.Result
	DurationMs   int64
}

// PredictGameweek forecasts every predictable fixture of one gameweek,
// fanning the per-fixture work out over a bounded pool.
func (s *PredictionService) PredictGameweek(ctx context.Context, input GameweekInput) (GameweekResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.PredictGameweek")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.LeagueID == "" {
		return GameweekResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.Gameweek <= 0 {
		return GameweekResult{}, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return GameweekResult{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return GameweekResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}

	fixtures, err := s.fixtureRepo.ListByGameweek(ctx, item.ID, input.Gameweek)
	if err != nil {
		return GameweekResult{}, fmt.Errorf("list fixtures by gameweek: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultGameweekWorkers
	}
	if workerCount > maxGameweekWorkers {
		workerCount = maxGameweekWorkers
	}

	result := GameweekResult{
		LeagueID:    item.ID,
		Gameweek:    input.Gameweek,
		WorkerCount: workerCount,
	}
	if len(fixtures) == 0 {
		return result, nil
	}

	start := time.Now()
	results := make(chan prediction.Result, len(fixtures))
	var skipped atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return GameweekResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, fx := range fixtures {
		fx := fx
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if !fixture.IsPredictable(fx.Status) {
				skipped.Add(1)
				return
			}

			row := s.predict(ctx, item.ID, item.Season, fx.HomeTeamID, fx.AwayTeamID)
			row.FixtureID = fx.ID
			results <- row
		}); err != nil {
			workers.Done()
			return GameweekResult{}, fmt.Errorf("submit fixture to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Predictions = append(result.Predictions, row)
	}
	sort.SliceStable(result.Predictions, func(i, j int) bool {
		return result.Predictions[i].FixtureID < result.Predictions[j].FixtureID
	})

	result.FixtureCount = len(result.Predictions)
	result.SkippedCount = int(skipped.Load())
	result.DurationMs = time.Since(start).Milliseconds()

	return result, nil
}
