package synth

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
	"github.com/ldruskis/go-rating-sim/internal/rating"
)

func newSynth(t *testing.T) *Synthesizer {
	t.Helper()
	return New(rand.New(rand.NewSource(1)))
}

func modeDef(t *testing.T, m model.Mode) *gamemode.Definition {
	t.Helper()
	def, ok := gamemode.ByMode(m)
	if !ok {
		t.Fatalf("missing definition for %s", m)
	}
	return def
}

func TestPlaytimeFloor(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeTDM)
	floor := def.TimeLimitMean - 2*def.TimeLimitVariance

	for i := 0; i < 1000; i++ {
		if got := s.Playtime(def); got < floor {
			t.Fatalf("Playtime = %d, want >= %d", got, floor)
		}
	}
}

func TestGameStatsAccuracySplit(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeTDM)
	p := def.Interpolate(1300)

	for i := 0; i < 200; i++ {
		gp := s.GameStats(def, p, 600)

		split := gp.HeadshotAccuracy + gp.TorsoAccuracy + gp.LegAccuracy
		if gp.Accuracy > 0 && math.Abs(split-gp.Accuracy) > 1e-9 {
			t.Fatalf("accuracy split %v != accuracy %v", split, gp.Accuracy)
		}
		if gp.HeadshotAccuracy < 0 || gp.TorsoAccuracy < 0 {
			t.Fatalf("negative accuracy component: hs=%v torso=%v", gp.HeadshotAccuracy, gp.TorsoAccuracy)
		}

		totalDamage := gp.DamageDealt + gp.DamageMissed
		if got := gp.HeadshotDamage + gp.TorsoDamage + gp.LegDamage; got != totalDamage {
			t.Fatalf("damage split %d != dealt+missed %d", got, totalDamage)
		}
	}
}

func TestGameStatsZeroAccuracyGatesOffense(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeTDM)
	p := def.Interpolate(1300)
	p.Accuracy = gamemode.Param{Mean: -1, SD: 0}

	gp := s.GameStats(def, p, 600)
	if gp.Accuracy != 0 {
		t.Fatalf("Accuracy = %v, want 0", gp.Accuracy)
	}
	if gp.Kills != 0 || gp.Assists != 0 || gp.DamageDealt != 0 {
		t.Errorf("offense not gated: kills=%d assists=%d dealt=%d", gp.Kills, gp.Assists, gp.DamageDealt)
	}
}

func TestGameStatsKillstreakBounds(t *testing.T) {
	s := newSynth(t)

	tdm := modeDef(t, model.ModeTDM)
	p := tdm.Interpolate(1300)
	for i := 0; i < 200; i++ {
		gp := s.GameStats(tdm, p, 600)
		if gp.Killstreak > gp.Kills {
			t.Fatalf("killstreak %d > kills %d", gp.Killstreak, gp.Kills)
		}
	}

	br := modeDef(t, model.ModeBR1v99)
	bp := br.Interpolate(1300)
	for i := 0; i < 50; i++ {
		gp := s.GameStats(br, bp, 1200)
		if gp.Killstreak != gp.Kills {
			t.Fatalf("battle royale killstreak %d != kills %d", gp.Killstreak, gp.Kills)
		}
	}
}

func TestGameStatsDominationObjectiveClamp(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeDomination)
	p := def.Interpolate(1300)
	playtime := 1020

	for i := 0; i < 200; i++ {
		gp := s.GameStats(def, p, playtime)
		hi := int(math.Round(0.8 * float64(playtime)))
		if gp.ObjectiveTime < 10 || gp.ObjectiveTime > hi {
			t.Fatalf("objective time %d outside [10, %d]", gp.ObjectiveTime, hi)
		}
	}
}

func TestModeStatsConsistency(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeTDM)

	for i := 0; i < 20; i++ {
		st := s.ModeStats(def, int64(i+1), 1300)

		if st.TotalLosses != st.TotalGamesPlayed-st.TotalWins-st.TotalTies {
			t.Fatalf("losses %d != games %d - wins %d - ties %d",
				st.TotalLosses, st.TotalGamesPlayed, st.TotalWins, st.TotalTies)
		}
		if st.TotalGamesPlayed > 0 {
			want := float64(st.TotalKills) / float64(st.TotalGamesPlayed)
			if math.Abs(st.AvgKills-want) > 1e-9 {
				t.Fatalf("AvgKills = %v, want %v", st.AvgKills, want)
			}
		}
		if st.TrueRating != 1300 || st.EloRating != 1300 || st.GlickoRating != 1300 || st.TSMu != 1300 {
			t.Fatalf("initial ratings diverge from 1300: %+v", st)
		}
	}
}

func TestModeStatsUncertaintyByHistory(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeTDM)

	// An all-zero tier table forces a zero-game history.
	empty := &gamemode.Definition{Mode: model.ModeTDM, TimeLimitMean: 600, TimeLimitVariance: 120}
	fresh := s.ModeStats(empty, 1, 0)
	if fresh.TotalGamesPlayed != 0 {
		t.Fatalf("empty-tier player has %d games", fresh.TotalGamesPlayed)
	}
	if fresh.GlickoRD != rating.GlickoMaxRD || fresh.TSSigma != rating.TSMaxSigma {
		t.Errorf("fresh player uncertainty = (%v, %v), want max", fresh.GlickoRD, fresh.TSSigma)
	}

	veteran := s.ModeStats(def, 2, 1300)
	if veteran.TotalGamesPlayed == 0 {
		t.Fatal("mid-rating player synthesized no history")
	}
	if veteran.GlickoRD != rating.GlickoMinRD || veteran.TSSigma != rating.TSMinSigma {
		t.Errorf("veteran uncertainty = (%v, %v), want min", veteran.GlickoRD, veteran.TSSigma)
	}
}

func TestModeStatsBattleRoyaleKillstreak(t *testing.T) {
	s := newSynth(t)
	def := modeDef(t, model.ModeBR1v99)

	st := s.ModeStats(def, 1, 1300)
	if st.BestKillstreak != st.TotalKills {
		t.Errorf("BestKillstreak = %d, want total kills %d", st.BestKillstreak, st.TotalKills)
	}
}
