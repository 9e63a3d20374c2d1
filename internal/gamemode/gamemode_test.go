package gamemode

import (
	"math"
	"testing"

	"github.com/ldruskis/go-rating-sim/internal/model"
)

func TestInterpolateAnchors(t *testing.T) {
	def, ok := ByMode(model.ModeTDM)
	if !ok {
		t.Fatal("TDM definition missing")
	}

	low := def.Interpolate(AnchorLow)
	if math.Abs(low.Kills.Mean-def.Low.Kills.Mean) > 1e-9 {
		t.Errorf("kills mean at low anchor = %v, want %v", low.Kills.Mean, def.Low.Kills.Mean)
	}

	med := def.Interpolate(AnchorMed)
	if math.Abs(med.Kills.Mean-def.Med.Kills.Mean) > 1e-9 {
		t.Errorf("kills mean at mid anchor = %v, want %v", med.Kills.Mean, def.Med.Kills.Mean)
	}

	high := def.Interpolate(AnchorHigh)
	if math.Abs(high.Kills.Mean-def.High.Kills.Mean) > 1e-9 {
		t.Errorf("kills mean at high anchor = %v, want %v", high.Kills.Mean, def.High.Kills.Mean)
	}
}

func TestInterpolateContinuousAtMidAnchor(t *testing.T) {
	def, ok := ByMode(model.ModeTDM)
	if !ok {
		t.Fatal("TDM definition missing")
	}

	below := def.Interpolate(AnchorMed - 1e-6)
	above := def.Interpolate(AnchorMed + 1e-6)
	if math.Abs(below.Kills.Mean-above.Kills.Mean) > 1e-3 {
		t.Errorf("discontinuity at mid anchor: %v vs %v", below.Kills.Mean, above.Kills.Mean)
	}
}

func TestInterpolateMonotonicBetweenAnchors(t *testing.T) {
	def, ok := ByMode(model.ModeTDM)
	if !ok {
		t.Fatal("TDM definition missing")
	}

	prev := def.Interpolate(AnchorLow).Kills.Mean
	for r := AnchorLow + 50; r <= AnchorHigh; r += 50 {
		cur := def.Interpolate(r).Kills.Mean
		if cur < prev {
			t.Fatalf("kills mean dropped from %v to %v at rating %v", prev, cur, r)
		}
		prev = cur
	}
}

func TestInterpolateNeverNegative(t *testing.T) {
	for _, def := range All {
		for _, r := range []float64{0, 100, 200, 700, 1300, 2000, 3000, 3500} {
			p := def.Interpolate(r)
			if p.Kills.Mean < 0 || p.Deaths.Mean < 0 || p.Accuracy.Mean < 0 || p.GamesPlayed.Mean < 0 {
				t.Errorf("%s at rating %v has a negative mean: %+v", def.Mode, r, p)
			}
		}
	}
}

func TestInterpolateZeroGamesForcesCounts(t *testing.T) {
	def := &Definition{
		Mode: model.ModeTDM,
		Low:  TierParams{Wins: Param{5, 2}, WinStreak: Param{2, 1}},
		Med:  TierParams{Wins: Param{50, 10}, WinStreak: Param{5, 2}},
		High: TierParams{Wins: Param{400, 80}, WinStreak: Param{8, 3}},
	}

	p := def.Interpolate(1300)
	if p.GamesPlayed.Mean != 0 {
		t.Fatalf("GamesPlayed mean = %v, want 0", p.GamesPlayed.Mean)
	}
	if p.Wins != (Param{}) || p.Ties != (Param{}) || p.WinStreak != (Param{}) {
		t.Errorf("count params not forced to zero: wins=%+v ties=%+v streak=%+v", p.Wins, p.Ties, p.WinStreak)
	}
}

func TestPlayerCount(t *testing.T) {
	for _, tc := range []struct {
		mode model.Mode
		want int
	}{
		{model.ModeTDM, 12},
		{model.ModeFFA, 12},
		{model.ModeDomination, 12},
		{model.ModeBR1v99, 100},
		{model.ModeBR4v96, 100},
		{model.ModeSAD, 10},
	} {
		def, ok := ByMode(tc.mode)
		if !ok {
			t.Fatalf("missing definition for %s", tc.mode)
		}
		if got := def.PlayerCount(); got != tc.want {
			t.Errorf("%s player count = %d, want %d", tc.mode, got, tc.want)
		}
	}
}

func TestByModeUnknown(t *testing.T) {
	if _, ok := ByMode(model.Mode("CTF")); ok {
		t.Error("unknown mode resolved")
	}
}
