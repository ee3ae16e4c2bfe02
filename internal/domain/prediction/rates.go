package prediction

import "github.com/riskibarqy/match-predictor/internal/domain/teamstats"

const (
	lambdaMin = 0.4
	lambdaMax = 3.2

	homeAdvantageBoost   = 1.10
	homeAdvantagePenalty = 0.95

	// Neutral priors used when either side's season stats are missing.
	neutralLambdaHome = 1.35
	neutralLambdaAway = 1.25
	degradedSignal    = 0.3

	// League-average substitutes for a side with no matches recorded
	// in its venue split.
	defaultHomeScored   = 1.4
	defaultHomeConceded = 1.2
	defaultAwayScored   = 1.3
	defaultAwayConceded = 1.2
)

// EstimateRates derives the expected-goal rates for both sides from
// venue-split season averages and recent form. Missing season stats on
// either side switch the estimate to fixed neutral priors instead of
// failing; the returned Context records which path was taken.
func EstimateRates(homeStats, awayStats *teamstats.SeasonStats, homeForm, awayForm FormFactor) (float64, float64, Context) {
	if homeStats == nil || awayStats == nil {
		return neutralLambdaHome, neutralLambdaAway, Context{
			Mode:            ModeDegradedDefault,
			HomeRecentCount: homeForm.SampleCount,
			AwayRecentCount: awayForm.SampleCount,
			DataQuality:     degradedSignal,
			SampleSize:      degradedSignal,
			RecentFactor:    degradedSignal,
		}
	}

	homeScored := homeStats.HomeScoredAvg()
	homeConceded := homeStats.HomeConcededAvg()
	if homeStats.HomeMatches == 0 {
		homeScored = defaultHomeScored
		homeConceded = defaultHomeConceded
	}

	awayScored := awayStats.AwayScoredAvg()
	awayConceded := awayStats.AwayConcededAvg()
	if awayStats.AwayMatches == 0 {
		awayScored = defaultAwayScored
		awayConceded = defaultAwayConceded
	}

	// Each side's attack averaged against the opponent's concession rate.
	lambdaHome := (homeScored + awayConceded) / 2
	lambdaAway := (awayScored + homeConceded) / 2

	lambdaHome = clamp(lambdaHome*homeAdvantageBoost, lambdaMin, lambdaMax)
	lambdaAway = clamp(lambdaAway*homeAdvantagePenalty, lambdaMin, lambdaMax)

	lambdaHome = clamp(lambdaHome*homeForm.Attack*awayForm.Defense, lambdaMin, lambdaMax)
	lambdaAway = clamp(lambdaAway*awayForm.Attack*homeForm.Defense, lambdaMin, lambdaMax)

	ctx := Context{
		Mode:             ModeFullContext,
		HomeTotalMatches: homeStats.TotalMatches(),
		AwayTotalMatches: awayStats.TotalMatches(),
		HomeRecentCount:  homeForm.SampleCount,
		AwayRecentCount:  awayForm.SampleCount,
	}
	ctx.DataQuality = dataQualitySignal(ctx.HomeTotalMatches, ctx.AwayTotalMatches)
	ctx.SampleSize = sampleSizeSignal(ctx.HomeTotalMatches, ctx.AwayTotalMatches)
	ctx.RecentFactor = recentFactorSignal(ctx.HomeRecentCount, ctx.AwayRecentCount)

	return lambdaHome, lambdaAway, ctx
}

func dataQualitySignal(homeTotal, awayTotal int) float64 {
	switch {
	case homeTotal >= 5 && awayTotal >= 5:
		return 1.0
	case homeTotal >= 3 && awayTotal >= 3:
		return 0.7
	default:
		return 0.4
	}
}

func sampleSizeSignal(homeTotal, awayTotal int) float64 {
	size := float64(homeTotal+awayTotal) / 40
	if size > 1 {
		return 1
	}
	return size
}

func recentFactorSignal(homeRecent, awayRecent int) float64 {
	switch {
	case homeRecent >= 5 && awayRecent >= 5:
		return 1.0
	case homeRecent >= 3 && awayRecent >= 3:
		return 0.7
	case homeRecent >= 1 && awayRecent >= 1:
		return 0.5
	default:
		return 0.3
	}
}
