package prediction

import "math"

// maxGoals truncates the scoreline support; eight counts per side keeps
// the joint table at 64 cells and the truncation error negligible at
// rates inside the clamped lambda range.
const maxGoals = 7

var factorials = [maxGoals + 1]float64{1, 1, 2, 6, 24, 120, 720, 5040}

// poissonPMF is P(X = k) for X ~ Poisson(lambda). A non-positive lambda
// collapses to a point mass at zero instead of producing NaN.
func poissonPMF(lambda float64, k int) float64 {
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-lambda) * math.Pow(lambda, float64(k)) / factorials[k]
}

// PredictScoreline reduces the joint table of two independent Poisson
// goal counts into outcome and goal-market percentages. The win, draw
// and loss shares are taken from one normalized mass so they always sum
// to 100; the over/under and both-teams-score pairs are exact
// complements.
func PredictScoreline(lambdaHome, lambdaAway float64) Scoreline {
	var homePMF, awayPMF [maxGoals + 1]float64
	for k := 0; k <= maxGoals; k++ {
		homePMF[k] = poissonPMF(lambdaHome, k)
		awayPMF[k] = poissonPMF(lambdaAway, k)
	}

	var total, win, draw, loss, over, btts float64
	for h := 0; h <= maxGoals; h++ {
		for a := 0; a <= maxGoals; a++ {
			mass := homePMF[h] * awayPMF[a]
			total += mass

			switch {
			case h > a:
				win += mass
			case h == a:
				draw += mass
			default:
				loss += mass
			}
			if h+a >= 3 {
				over += mass
			}
			if h > 0 && a > 0 {
				btts += mass
			}
		}
	}

	if total <= 0 {
		// Unreachable with the point-mass PMF, kept as a guard.
		return Scoreline{ProbDraw: 100, Under25: 100, BTTSNo: 100}
	}

	over25 := over / total * 100
	bttsYes := btts / total * 100

	return Scoreline{
		ProbHome: win / total * 100,
		ProbDraw: draw / total * 100,
		ProbAway: loss / total * 100,
		Over25:   over25,
		Under25:  100 - over25,
		BTTSYes:  bttsYes,
		BTTSNo:   100 - bttsYes,
	}
}
