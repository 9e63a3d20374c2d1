package rating

import (
	"math"
	"time"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
)

// MVP and LVP fixed bonuses in the "other" signal group.
const (
	MVPBonus = 1.5
	LVPBonus = -2.0
)

// TSDrawProb is the draw probability fed to the TrueSkill updater. Battle
// royale placements are strict, so those modes use zero instead.
const TSDrawProb = 0.01

// twoWeeks is the half-life of the idle-uncertainty factor, in seconds.
const twoWeeks = 1209600.0

type signedAttr struct {
	attr model.Attr
	sign float64
}

// totalAttrs are the per-game attributes compared against a player's
// lifetime averages and against other participants. Sign is -1 where lower
// is better.
var totalAttrs = [...]signedAttr{
	{model.AttrKills, 1},
	{model.AttrDeaths, -1},
	{model.AttrAssists, 1},
	{model.AttrDamageDealt, 1},
	{model.AttrDamageTaken, -1},
	{model.AttrDamageMissed, -1},
	{model.AttrHeadshotDamage, 1},
	{model.AttrTorsoDamage, 1},
	{model.AttrLegDamage, 1},
	{model.AttrAccuracy, 1},
	{model.AttrHeadshotAccuracy, 1},
	{model.AttrTorsoAccuracy, 1},
	{model.AttrLegAccuracy, 1},
	{model.AttrContestingKills, 1},
	{model.AttrObjectiveTime, 1},
	{model.AttrLongestTimeAlive, 1},
	{model.AttrKillsPerMinute, 1},
	{model.AttrDeathsPerMinute, -1},
	{model.AttrAssistsPerMinute, 1},
	{model.AttrDamageDealtPerMinute, 1},
	{model.AttrDamageTakenPerMinute, -1},
}

// rankAttrs are compared against the tier-interpolated population baseline.
var rankAttrs = [...]signedAttr{
	{model.AttrKills, 1},
	{model.AttrDeaths, -1},
	{model.AttrAssists, 1},
	{model.AttrAccuracy, 1},
	{model.AttrHeadshotAccuracy, 1},
	{model.AttrTorsoAccuracy, 1},
	{model.AttrLongestTimeAlive, 1},
	{model.AttrContestingKills, 1},
	{model.AttrObjectiveTime, 1},
}

// delta is the shared relative-deviation rule: scale the deviation from the
// baseline when a baseline exists, otherwise credit (or nothing) on a bare
// positive value.
func delta(weight, sign, game, base float64) float64 {
	if base > 0 {
		return weight * sign * (game - base) / base
	}
	if game > 0 {
		return weight * sign
	}
	return 0
}

// totalAvgGroup compares the game against the player's lifetime averages:
// the signed attributes plus killstreak vs best killstreak and both derived
// ratios vs their lifetime counterparts.
func totalAvgGroup(def *gamemode.Definition, gp *model.GamePlayer, stats *model.PlayerModeStats) float64 {
	var sum float64
	for _, a := range totalAttrs {
		sum += delta(def.DeltaWeights[a.attr], a.sign, gp.Stat(a.attr), stats.Avg(a.attr))
	}
	sum += delta(def.DeltaWeights[model.AttrKillstreak], 1, float64(gp.Killstreak), float64(stats.BestKillstreak))
	sum += delta(def.DeltaWeights[model.AttrKDRatio], 1, gp.KDRatio(), stats.TotalKDRatio)
	sum += delta(def.DeltaWeights[model.AttrDamageRatio], 1, gp.DamageRatio(), stats.TotalDamageRatio)
	return sum / float64(len(totalAttrs)+3)
}

// rankAvgGroup compares the game against the population tier baseline. A
// player with no history has no earned tier, so the whole group is zero.
func rankAvgGroup(def *gamemode.Definition, gp *model.GamePlayer, stats *model.PlayerModeStats, baseline gamemode.TierParams) float64 {
	n := float64(len(rankAttrs) + 2)
	if stats.TotalGamesPlayed == 0 {
		return 0
	}
	var sum float64
	for _, a := range rankAttrs {
		sum += delta(def.DeltaWeights[a.attr], a.sign, gp.Stat(a.attr), baseline.Baseline(a.attr))
	}
	sum += delta(def.DeltaWeights[model.AttrKillstreak], 1, float64(gp.Killstreak), baseline.Baseline(model.AttrKillstreak))
	sum += delta(def.DeltaWeights[model.AttrWinStreak], 1, float64(stats.WinStreak), baseline.Baseline(model.AttrWinStreak))
	return sum / n
}

// opponentGroup compares the game head-to-head against every other
// participant, averaging the full total-attribute delta set per opponent and
// normalizing by the lobby size.
func opponentGroup(def *gamemode.Definition, gp *model.GamePlayer, participants []*model.GamePlayer) float64 {
	var sum float64
	for _, other := range participants {
		if other.PlayerID == gp.PlayerID {
			continue
		}
		var s float64
		for _, a := range totalAttrs {
			s += delta(def.DeltaWeights[a.attr], a.sign, gp.Stat(a.attr), other.Stat(a.attr))
		}
		s += delta(def.DeltaWeights[model.AttrKillstreak], 1, float64(gp.Killstreak), float64(other.Killstreak))
		s += delta(def.DeltaWeights[model.AttrKDRatio], 1, gp.KDRatio(), other.KDRatio())
		s += delta(def.DeltaWeights[model.AttrDamageRatio], 1, gp.DamageRatio(), other.DamageRatio())
		sum += s / float64(len(totalAttrs)+3)
	}
	divider := def.PlayerCount() - 1
	if divider == 0 {
		return sum
	}
	return sum / float64(divider)
}

// otherGroup blends the win/loss-ratio deviation from an even record with
// the fixed value-player bonuses.
func otherGroup(def *gamemode.Definition, gp *model.GamePlayer, stats *model.PlayerModeStats) float64 {
	var wlr float64
	if stats.TotalGamesPlayed > 0 {
		wlr = def.DeltaWeights[model.AttrWinLossRatio] * (stats.WinLossRatio - 0.5) / 0.5
	}
	var mvp, lvp float64
	if gp.IsMVP {
		mvp = MVPBonus
	}
	if gp.IsLVP {
		lvp = LVPBonus
	}
	return (wlr + mvp + lvp) / 3
}

// winGroup rewards placement above the midpoint of the placement range and
// applies the tie adjustment.
func winGroup(def *gamemode.Definition, gp *model.GamePlayer) float64 {
	mid := float64(def.TeamCount+1) / 2
	rangeFromMid := float64(def.TeamCount-1) / 2

	var placement float64
	if rangeFromMid != 0 {
		placement = (mid - float64(gp.Placement)) / rangeFromMid
	}

	tie := def.DeltaWeights[model.AttrIsTie] * 0.5
	if gp.IsTie {
		tie = -tie
	}
	return (placement + tie) / 2
}

// Signal combines the five weighted delta groups into one bounded composite
// performance value.
func Signal(def *gamemode.Definition, gp *model.GamePlayer, stats *model.PlayerModeStats, baseline gamemode.TierParams, participants []*model.GamePlayer) float64 {
	return 0.13*totalAvgGroup(def, gp, stats) +
		0.10*rankAvgGroup(def, gp, stats, baseline) +
		0.27*otherGroup(def, gp, stats) +
		0.07*winGroup(def, gp) +
		0.43*opponentGroup(def, gp, participants)
}

// LearningRate decays the mode's base rate by idle time, experience and
// current rating. New, idle and low-rated players move fast; veterans bottom
// out at a 0.3 floor.
func LearningRate(baseRate, preRating float64, gamesPlayed int, idle time.Duration) float64 {
	uncertainty := math.Pow(2, -idle.Seconds()/twoWeeks)
	experience := math.Exp(-0.0004 * float64(gamesPlayed))
	level := math.Exp(-0.00025 * preRating)

	f := (1.5 - uncertainty) * (experience + level) / 2
	if f < 0.3 {
		f = 0.3
	}
	return baseRate * f
}

// TrueRating computes the player's post-game rating. The result never drops
// below zero.
func TrueRating(def *gamemode.Definition, gp *model.GamePlayer, stats *model.PlayerModeStats, baseline gamemode.TierParams, participants []*model.GamePlayer) float64 {
	signal := Signal(def, gp, stats, baseline, participants)
	rate := LearningRate(def.BaseRate, gp.TrueRatingBefore, stats.TotalGamesPlayed, gp.CreatedAt.Sub(stats.LastPlayed))
	next := gp.TrueRatingBefore + rate*signal
	if next < 0 {
		return 0
	}
	return next
}

// TeamState summarizes one team's pre-game auxiliary ratings for the
// per-opposing-team updates. Ratings and last-played are team averages.
type TeamState struct {
	Team       int
	Placement  int
	Elo        float64
	Glicko     float64
	GlickoRD   float64
	TSMu       float64
	TSSigma    float64
	LastPlayed time.Time
}

// AuxResult carries one player's updated auxiliary ratings.
type AuxResult struct {
	Elo      float64
	Glicko   float64
	GlickoRD float64
	TSMu     float64
	TSSigma  float64
}

// Auxiliary runs the Elo, Glicko and TrueSkill updates once per opposing
// team, driven by the team placement comparison, and averages the results.
// lastPlayed is the player's own staleness anchor; k is the player's Elo
// K-factor for this game.
func Auxiliary(def *gamemode.Definition, gp *model.GamePlayer, teams []TeamState, k float64, now, lastPlayed time.Time) AuxResult {
	elo := Elo{K: k}
	glicko := Glicko{MinRD: GlickoMinRD, MaxRD: GlickoMaxRD}

	drawProb := TSDrawProb
	if def.Mode.BattleRoyale() {
		drawProb = 0
	}
	ts := TrueSkill{Beta: TSBeta, Tau: TSTau, DrawProb: drawProb}

	ownRating := math.Max(gp.EloBefore, 0)
	ownGlicko := math.Max(gp.GlickoBefore, 0)
	ownRD := glicko.InflateRD(gp.GlickoRDBefore, now.Sub(lastPlayed))
	ownSigma := ts.InflateSigma(gp.TSSigmaBefore, int(now.Sub(lastPlayed).Hours()/24))

	var res AuxResult
	opponents := 0
	for _, team := range teams {
		if team.Team == gp.Team {
			continue
		}
		opponents++
		o := Compare(gp.Placement, team.Placement)

		res.Elo += elo.Update(ownRating, math.Max(team.Elo, 0), o)

		oppRD := glicko.InflateRD(team.GlickoRD, now.Sub(team.LastPlayed))
		r, rd := glicko.Update(ownGlicko, ownRD, math.Max(team.Glicko, 0), oppRD, o)
		res.Glicko += r
		res.GlickoRD += rd

		mu, sigma := ts.Update(gp.TSMuBefore, ownSigma, team.TSMu, team.TSSigma, def.TeamSize, def.TeamSize, o)
		res.TSMu += mu
		res.TSSigma += sigma
	}

	if opponents > 0 {
		n := float64(opponents)
		res.Elo /= n
		res.Glicko /= n
		res.GlickoRD /= n
		res.TSMu /= n
		res.TSSigma /= n
	}
	res.GlickoRD = clamp(res.GlickoRD, GlickoMinRD, GlickoMaxRD)
	res.TSSigma = clamp(res.TSSigma, TSMinSigma, TSMaxSigma)
	return res
}
