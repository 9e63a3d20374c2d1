// Package synth draws per-game and per-history player statistics from
// rating-interpolated Gaussian parameters.
package synth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
)

// Synthesizer draws from an injected random source so a seeded run
// reproduces exactly.
type Synthesizer struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

func (s *Synthesizer) gauss(mean, sd float64) float64 {
	if sd <= 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: sd, Src: s.rng}.Rand()
}

func (s *Synthesizer) gaussFloor(mean, sd, floor float64) float64 {
	return math.Max(s.gauss(mean, sd), floor)
}

func (s *Synthesizer) gaussInt(p gamemode.Param) int {
	v := roundInt(s.gauss(p.Mean, p.SD))
	if v < 0 {
		return 0
	}
	return v
}

// intn returns a uniform integer in [lo, hi]; lo may be negative.
func (s *Synthesizer) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// Playtime samples one match duration in seconds, floored two variances
// below the mean so a game never collapses to nothing.
func (s *Synthesizer) Playtime(def *gamemode.Definition) int {
	mean := float64(def.TimeLimitMean)
	variance := float64(def.TimeLimitVariance)
	return roundInt(math.Max(s.gauss(mean, variance), mean-2*variance))
}

// GameStats draws one player's raw per-game statistics. Accuracy gates the
// offensive stats: a player who landed nothing gets no kills, assists or
// damage dealt. Deaths are independent of accuracy.
func (s *Synthesizer) GameStats(def *gamemode.Definition, p gamemode.TierParams, playtime int) model.GamePlayer {
	gp := model.GamePlayer{}

	gp.Accuracy = s.gaussFloor(p.Accuracy.Mean, p.Accuracy.SD, 0)

	if gp.Accuracy > 0 {
		gp.Kills = s.gaussInt(p.Kills)
		gp.Assists = s.gaussInt(p.Assists)
	}
	gp.Deaths = s.gaussInt(p.Deaths)

	if gp.Accuracy > 0 {
		for i := 0; i < gp.Kills; i++ {
			gp.DamageDealt += roundInt(s.gaussFloor(100, 5, 0))
		}
		for i := 0; i < gp.Assists; i++ {
			gp.DamageDealt += roundInt(s.gaussFloor(35, 34, 0))
		}
	}
	for i := 0; i < gp.Deaths; i++ {
		gp.DamageTaken += roundInt(s.gauss(100, 5))
	}
	if gp.DamageTaken < 0 {
		gp.DamageTaken = 0
	}

	if def.Mode.BattleRoyale() {
		// No respawns: the whole game is one streak.
		gp.Killstreak = gp.Kills
	} else {
		gp.Killstreak = min(gp.Kills, s.gaussInt(p.BestKillstreak))
	}

	gp.HeadshotAccuracy = math.Max(math.Min(s.gauss(p.HeadshotAccuracy.Mean, p.HeadshotAccuracy.SD), gp.Accuracy), 0)
	if gp.Accuracy > 0 {
		gp.TorsoAccuracy = math.Max(math.Min(s.gauss(p.TorsoAccuracy.Mean, p.TorsoAccuracy.SD), gp.Accuracy-gp.HeadshotAccuracy), 0)
		gp.LegAccuracy = gp.Accuracy - gp.HeadshotAccuracy - gp.TorsoAccuracy
	}

	if gp.Accuracy > 0 && gp.DamageDealt > 0 {
		gp.DamageMissed = roundInt(float64(gp.DamageDealt)/gp.Accuracy - float64(gp.DamageDealt))
	} else {
		gp.DamageMissed = s.gaussInt(p.DamageMissed)
	}

	totalDamage := gp.DamageDealt + gp.DamageMissed
	gp.HeadshotDamage = roundInt(float64(totalDamage) * gp.HeadshotAccuracy)
	gp.TorsoDamage = roundInt(float64(totalDamage) * gp.TorsoAccuracy)
	gp.LegDamage = totalDamage - gp.HeadshotDamage - gp.TorsoDamage

	if playtime > 0 {
		gp.KillsPerMinute = float64(gp.Kills) / float64(playtime) * 60
		gp.DeathsPerMinute = float64(gp.Deaths) / float64(playtime) * 60
		gp.AssistsPerMinute = float64(gp.Assists) / float64(playtime) * 60
		gp.DamageDealtPerMinute = float64(gp.DamageDealt) / float64(playtime) * 60
		gp.DamageTakenPerMinute = float64(gp.DamageTaken) / float64(playtime) * 60
	}

	if def.Mode == model.ModeDomination {
		ot := roundInt(s.gauss(p.ObjectiveTime.Mean, p.ObjectiveTime.SD))
		gp.ObjectiveTime = clampInt(ot, 10, roundInt(0.8*float64(playtime)))
	}

	gp.LongestTimeAlive = s.longestTimeAlive(def, p, playtime)

	// Computed by the outcome resolver for objective modes.
	gp.ContestingKills = 0

	return gp
}

func (s *Synthesizer) longestTimeAlive(def *gamemode.Definition, p gamemode.TierParams, playtime int) float64 {
	lo := roundInt(p.LongestTimeAlive.Mean) - roundInt(p.LongestTimeAlive.SD)
	switch {
	case def.Mode.BattleRoyale():
		if lo > playtime {
			return float64(playtime)
		}
		return float64(max(s.intn(lo, playtime), 20))
	case def.Mode == model.ModeSAD:
		// A single life is bounded by one round, not the whole match.
		hi := roundInt(float64(playtime)/30) + 101
		if lo > hi {
			return float64(hi)
		}
		return float64(max(s.intn(lo, hi), 20))
	default:
		return math.Max(s.gauss(p.LongestTimeAlive.Mean, p.LongestTimeAlive.SD), 10)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
