package prediction

import (
	"math"
	"sort"
)

const (
	confidenceFloor = 25
	confidenceCeil  = 75

	clarityReferenceGap = 40.0

	weightDataQuality  = 0.35
	weightSampleSize   = 0.25
	weightClarity      = 0.25
	weightRecentFactor = 0.15
)

// ScoreConfidence blends the evidence signals with how decisively the
// outcome probabilities separate. The label comes from the raw percent
// so a starved prediction still reads "low" even though the reported
// number floors at 25.
func ScoreConfidence(probHome, probDraw, probAway float64, ctx Context) Confidence {
	clarity := outcomeClarity(probHome, probDraw, probAway)

	score := weightDataQuality*ctx.DataQuality +
		weightSampleSize*ctx.SampleSize +
		weightClarity*clarity +
		weightRecentFactor*ctx.RecentFactor
	score = clamp(score, 0, 1)

	raw := int(math.Round(score * 100))
	percent := raw
	if percent < confidenceFloor {
		percent = confidenceFloor
	}
	if percent > confidenceCeil {
		percent = confidenceCeil
	}

	return Confidence{
		Percent:      percent,
		Label:        confidenceLabel(raw),
		DataQuality:  ctx.DataQuality,
		SampleSize:   ctx.SampleSize,
		Clarity:      clarity,
		RecentFactor: ctx.RecentFactor,
	}
}

// outcomeClarity is the gap between the two most probable outcomes,
// normalized against a 40-point reference gap.
func outcomeClarity(probHome, probDraw, probAway float64) float64 {
	probs := []float64{probHome, probDraw, probAway}
	sort.Sort(sort.Reverse(sort.Float64Slice(probs)))
	return clamp((probs[0]-probs[1])/clarityReferenceGap, 0, 1)
}

func confidenceLabel(rawPercent int) string {
	switch {
	case rawPercent >= 60:
		return ConfidenceHigh
	case rawPercent >= 40:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
