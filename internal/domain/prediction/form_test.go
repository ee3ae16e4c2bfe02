package prediction

import (
	"math"
	"testing"

	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
)

func TestComputeFormFactor_EmptyIsNeutral(t *testing.T) {
	t.Parallel()

	for name, samples := range map[string][]teamstats.FormSample{
		"nil":   nil,
		"empty": {},
	} {
		got := ComputeFormFactor(samples)
		if got.Attack != 1 || got.Defense != 1 || got.SampleCount != 0 {
			t.Fatalf("%s input: expected neutral factor, got %+v", name, got)
		}
	}
}

func TestComputeFormFactor_AverageScoringTeam(t *testing.T) {
	t.Parallel()

	// Five matches at exactly the 1.3 baseline each way should land on
	// the neutral 1.0 factors.
	samples := []teamstats.FormSample{
		{GoalsFor: 2, GoalsAgainst: 1},
		{GoalsFor: 1, GoalsAgainst: 2},
		{GoalsFor: 1, GoalsAgainst: 1},
		{GoalsFor: 1, GoalsAgainst: 1},
		{GoalsFor: 1, GoalsAgainst: 1, WasHome: true},
	}
	// means: 1.2 GF, 1.2 GA
	got := ComputeFormFactor(samples)

	wantAttack := 0.7 + 0.3*(1.2/1.3)
	wantDefense := 0.7 + 0.3*(1.3/1.2)
	if math.Abs(got.Attack-wantAttack) > 1e-9 {
		t.Fatalf("attack = %v, want %v", got.Attack, wantAttack)
	}
	if math.Abs(got.Defense-wantDefense) > 1e-9 {
		t.Fatalf("defense = %v, want %v", got.Defense, wantDefense)
	}
	if got.SampleCount != 5 {
		t.Fatalf("sampleCount = %d, want 5", got.SampleCount)
	}
}

func TestComputeFormFactor_ClampsExtremes(t *testing.T) {
	t.Parallel()

	hot := ComputeFormFactor([]teamstats.FormSample{
		{GoalsFor: 6}, {GoalsFor: 5}, {GoalsFor: 7},
	})
	if hot.Attack != 1.4 {
		t.Fatalf("attack should clamp at 1.4, got %v", hot.Attack)
	}

	leaky := ComputeFormFactor([]teamstats.FormSample{
		{GoalsAgainst: 6}, {GoalsAgainst: 5}, {GoalsAgainst: 7},
	})
	if leaky.Defense < 0.6 {
		t.Fatalf("defense should clamp at 0.6, got %v", leaky.Defense)
	}
}

func TestComputeFormFactor_CleanSheetFloor(t *testing.T) {
	t.Parallel()

	// All clean sheets: the conceded mean floors at 0.3 instead of
	// dividing by zero, and the 1.3/0.3 ratio then clamps to 1.4.
	got := ComputeFormFactor([]teamstats.FormSample{
		{GoalsFor: 1}, {GoalsFor: 2}, {GoalsFor: 1},
	})
	if got.Defense != 1.4 {
		t.Fatalf("defense = %v, want clamp ceiling 1.4", got.Defense)
	}
}
