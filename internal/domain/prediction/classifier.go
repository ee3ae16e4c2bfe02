package prediction

import "math"

// ClassifyMatch maps a scoreline reduction onto one profile tag. Rules
// are evaluated in priority order and the first hit wins, so a
// high-scoring favourite reads GOALS_GAME before STRONG_HOME.
func ClassifyMatch(s Scoreline) string {
	switch {
	case s.Over25 >= 60 && s.BTTSYes >= 55:
		return ProfileGoalsGame
	case s.ProbHome >= 50 && s.Under25 >= 55:
		return ProfileHomeAndUnder
	case math.Abs(s.ProbHome-s.ProbAway) <= 10 && s.BTTSYes >= 60:
		return ProfileBalancedBTTS
	case s.ProbHome < 40 && s.ProbAway < 40 && s.ProbDraw > 25:
		return ProfileHighVariance
	case s.ProbHome >= 55:
		return ProfileStrongHome
	case s.ProbAway >= 55:
		return ProfileStrongAway
	default:
		return ProfileNeutral
	}
}

// ClassifyDataQuality maps the evidence signals onto a coarse flag.
func ClassifyDataQuality(dataQuality, sampleSize, recentFactor float64) string {
	switch {
	case dataQuality >= 0.8 && sampleSize >= 0.6 && recentFactor >= 0.7:
		return FlagGoodData
	case dataQuality >= 0.5 && sampleSize >= 0.4:
		return FlagOKData
	default:
		return FlagLowData
	}
}
