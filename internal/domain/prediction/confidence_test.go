package prediction

import (
	"math"
	"testing"
)

func TestScoreConfidence_PercentStaysInBand(t *testing.T) {
	t.Parallel()

	contexts := []Context{
		{DataQuality: 0, SampleSize: 0, RecentFactor: 0},
		{DataQuality: 0.3, SampleSize: 0.3, RecentFactor: 0.3},
		{DataQuality: 1, SampleSize: 1, RecentFactor: 1},
	}
	probs := [][3]float64{
		{33.3, 33.3, 33.4},
		{80, 15, 5},
		{10, 20, 70},
	}

	for _, ctx := range contexts {
		for _, p := range probs {
			got := ScoreConfidence(p[0], p[1], p[2], ctx)
			if got.Percent < 25 || got.Percent > 75 {
				t.Fatalf("percent %d escaped [25,75] for ctx %+v probs %v", got.Percent, ctx, p)
			}
		}
	}
}

func TestScoreConfidence_ClarityUsesTopTwoGap(t *testing.T) {
	t.Parallel()

	// Gap 30 between the top two regardless of outcome ordering.
	ctx := Context{DataQuality: 0.5, SampleSize: 0.5, RecentFactor: 0.5}
	a := ScoreConfidence(50, 20, 30, ctx)
	b := ScoreConfidence(20, 30, 50, ctx)

	want := 30.0 / 40.0
	if math.Abs(a.Clarity-want) > 1e-9 || math.Abs(b.Clarity-want) > 1e-9 {
		t.Fatalf("clarity (%v, %v), want %v for a 30-point gap", a.Clarity, b.Clarity, want)
	}

	flat := ScoreConfidence(34, 33, 33, ctx)
	if flat.Clarity >= a.Clarity {
		t.Fatalf("near-flat outcome should score lower clarity: %v vs %v", flat.Clarity, a.Clarity)
	}

	decisive := ScoreConfidence(85, 10, 5, ctx)
	if decisive.Clarity != 1 {
		t.Fatalf("gap beyond 40 points should clamp clarity to 1, got %v", decisive.Clarity)
	}
}

func TestScoreConfidence_LabelFromUnclampedPercent(t *testing.T) {
	t.Parallel()

	// All signals at zero and a flat distribution: raw score is ~0, the
	// reported percent floors at 25, and the label still reads low.
	starved := ScoreConfidence(33.4, 33.3, 33.3, Context{})
	if starved.Percent != 25 {
		t.Fatalf("percent = %d, want floor 25", starved.Percent)
	}
	if starved.Label != ConfidenceLow {
		t.Fatalf("label = %q, want low", starved.Label)
	}

	// Everything maxed: raw score flirts with 100, the percent caps at
	// 75, and the label reads high.
	loaded := ScoreConfidence(90, 7, 3, Context{DataQuality: 1, SampleSize: 1, RecentFactor: 1})
	if loaded.Percent != 75 {
		t.Fatalf("percent = %d, want ceiling 75", loaded.Percent)
	}
	if loaded.Label != ConfidenceHigh {
		t.Fatalf("label = %q, want high", loaded.Label)
	}

	medium := ScoreConfidence(55, 25, 20, Context{DataQuality: 0.4, SampleSize: 0.4, RecentFactor: 0.5})
	if medium.Label != ConfidenceMedium {
		t.Fatalf("label = %q, want medium", medium.Label)
	}
}

func TestScoreConfidence_WeightedSum(t *testing.T) {
	t.Parallel()

	ctx := Context{DataQuality: 0.7, SampleSize: 0.5, RecentFactor: 0.7}
	got := ScoreConfidence(60, 25, 15, ctx)

	clarity := (60.0 - 25.0) / 40.0
	raw := 0.35*0.7 + 0.25*0.5 + 0.25*clarity + 0.15*0.7
	want := int(math.Round(raw * 100))
	if got.Percent != want {
		t.Fatalf("percent = %d, want %d", got.Percent, want)
	}
}
