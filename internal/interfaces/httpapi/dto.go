package httpapi

import (
	"math"
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/fixture"
	"github.com/riskibarqy/match-predictor/internal/domain/league"
	"github.com/riskibarqy/match-predictor/internal/domain/prediction"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Season      int    `json:"season"`
	IsDefault   bool   `json:"isDefault"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:          l.ID,
		Name:        l.Name,
		CountryCode: l.CountryCode,
		Season:      l.Season,
		IsDefault:   l.IsDefault,
	}
}

type fixtureDTO struct {
	ID         string    `json:"id"`
	LeagueID   string    `json:"leagueId"`
	Gameweek   int       `json:"gameweek"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	KickoffAt  time.Time `json:"kickoffAt"`
	Status     string    `json:"status"`
}

func fixtureToDTO(fx fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         fx.ID,
		LeagueID:   fx.LeagueID,
		Gameweek:   fx.Gameweek,
		HomeTeamID: fx.HomeTeamID,
		AwayTeamID: fx.AwayTeamID,
		HomeTeam:   fx.HomeTeam,
		AwayTeam:   fx.AwayTeam,
		KickoffAt:  fx.KickoffAt,
		Status:     fx.Status,
	}
}

type outcomeProbabilitiesDTO struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

type goalMarketsDTO struct {
	Over25  float64 `json:"over25"`
	Under25 float64 `json:"under25"`
	BTTSYes float64 `json:"bttsYes"`
	BTTSNo  float64 `json:"bttsNo"`
}

type confidenceDTO struct {
	Percent      int     `json:"percent"`
	Label        string  `json:"label"`
	DataQuality  float64 `json:"dataQuality"`
	SampleSize   float64 `json:"sampleSize"`
	Clarity      float64 `json:"clarity"`
	RecentFactor float64 `json:"recentFactor"`
}

type predictionDTO struct {
	FixtureID     string                  `json:"fixtureId,omitempty"`
	LeagueID      string                  `json:"leagueId"`
	HomeTeamID    string                  `json:"homeTeamId"`
	AwayTeamID    string                  `json:"awayTeamId"`
	LambdaHome    float64                 `json:"lambdaHome"`
	LambdaAway    float64                 `json:"lambdaAway"`
	Probabilities outcomeProbabilitiesDTO `json:"probabilities"`
	Markets       goalMarketsDTO          `json:"markets"`
	MainPick      string                  `json:"mainPick"`
	Confidence    confidenceDTO           `json:"confidence"`
	MatchProfile  string                  `json:"matchProfile"`
	DataFlag      string                  `json:"dataFlag"`
	Mode          string                  `json:"mode"`
}

func predictionToDTO(p prediction.Result) predictionDTO {
	return predictionDTO{
		FixtureID:  p.FixtureID,
		LeagueID:   p.LeagueID,
		HomeTeamID: p.HomeTeamID,
		AwayTeamID: p.AwayTeamID,
		LambdaHome: round2(p.LambdaHome),
		LambdaAway: round2(p.LambdaAway),
		Probabilities: outcomeProbabilitiesDTO{
			Home: round1(p.Scoreline.ProbHome),
			Draw: round1(p.Scoreline.ProbDraw),
			Away: round1(p.Scoreline.ProbAway),
		},
		Markets: goalMarketsDTO{
			Over25:  round1(p.Scoreline.Over25),
			Under25: round1(p.Scoreline.Under25),
			BTTSYes: round1(p.Scoreline.BTTSYes),
			BTTSNo:  round1(p.Scoreline.BTTSNo),
		},
		MainPick: p.MainPick,
		Confidence: confidenceDTO{
			Percent:      p.Confidence.Percent,
			Label:        p.Confidence.Label,
			DataQuality:  round2(p.Confidence.DataQuality),
			SampleSize:   round2(p.Confidence.SampleSize),
			Clarity:      round2(p.Confidence.Clarity),
			RecentFactor: round2(p.Confidence.RecentFactor),
		},
		MatchProfile: p.Profile,
		DataFlag:     p.DataFlag,
		Mode:         p.Mode,
	}
}

type gameweekPredictionsDTO struct {
	LeagueID     string          `json:"leagueId"`
	Gameweek     int             `json:"gameweek"`
	FixtureCount int             `json:"fixtureCount"`
	SkippedCount int             `json:"skippedCount"`
	WorkerCount  int             `json:"workerCount"`
	DurationMs   int64           `json:"durationMs"`
	Predictions  []predictionDTO `json:"predictions"`
}

func gameweekToDTO(result usecase.GameweekResult) gameweekPredictionsDTO {
	items := make([]predictionDTO, 0, len(result.Predictions))
	for _, p := range result.Predictions {
		items = append(items, predictionToDTO(p))
	}

	return gameweekPredictionsDTO{
		LeagueID:     result.LeagueID,
		Gameweek:     result.Gameweek,
		FixtureCount: result.FixtureCount,
		SkippedCount: result.SkippedCount,
		WorkerCount:  result.WorkerCount,
		DurationMs:   result.DurationMs,
		Predictions:  items,
	}
}

type matchupPredictionDTO struct {
	RequestID string `json:"requestId"`
	predictionDTO
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
