package prediction

import "github.com/riskibarqy/match-predictor/internal/domain/teamstats"

const (
	formBaselineGoals = 1.3
	formConcededFloor = 0.3
	formFactorMin     = 0.6
	formFactorMax     = 1.4
)

// ComputeFormFactor turns recent results into multiplicative attack and
// defense adjustments around 1.0. An empty sample means unknown form
// and yields the neutral factor.
func ComputeFormFactor(samples []teamstats.FormSample) FormFactor {
	if len(samples) == 0 {
		return NeutralForm()
	}

	var goalsFor, goalsAgainst int
	for _, s := range samples {
		goalsFor += s.GoalsFor
		goalsAgainst += s.GoalsAgainst
	}

	n := float64(len(samples))
	meanFor := float64(goalsFor) / n
	meanAgainst := float64(goalsAgainst) / n

	// The conceded floor keeps a tiny clean-sheet streak from blowing
	// the defense factor past the clamp via a near-zero divisor.
	if meanAgainst < formConcededFloor {
		meanAgainst = formConcededFloor
	}

	return FormFactor{
		Attack:      clamp(0.7+0.3*(meanFor/formBaselineGoals), formFactorMin, formFactorMax),
		Defense:     clamp(0.7+0.3*(formBaselineGoals/meanAgainst), formFactorMin, formFactorMax),
		SampleCount: len(samples),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
