package synth

import (
	"math"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
	"github.com/ldruskis/go-rating-sim/internal/rating"
)

// ModeStats fabricates a plausible playing history for one player at the
// given rating, game by game, so the population starts with internally
// consistent totals, averages and ratios instead of blank slates.
//
// All four rating systems start at the true rating; uncertainty starts wide
// for a player with no games and tight otherwise.
func (s *Synthesizer) ModeStats(def *gamemode.Definition, playerID int64, trueRating float64) model.PlayerModeStats {
	p := def.Interpolate(trueRating)

	st := model.PlayerModeStats{
		PlayerID:     playerID,
		Mode:         def.Mode,
		TrueRating:   trueRating,
		EloRating:    trueRating,
		GlickoRating: trueRating,
		TSMu:         trueRating,
	}

	st.TotalGamesPlayed = s.gaussInt(p.GamesPlayed)
	if st.TotalGamesPlayed > 0 {
		st.TotalWins = s.gaussInt(p.Wins)
		st.TotalTies = s.gaussInt(p.Ties)
	}
	st.TotalLosses = st.TotalGamesPlayed - st.TotalWins - st.TotalTies
	if st.TotalWins > 0 {
		st.WinStreak = s.gaussInt(p.WinStreak)
	}

	games := st.TotalGamesPlayed

	// Accuracy "totals" are per-game means here: downstream math divides
	// damage by accuracy, which only works on the mean.
	if games > 0 {
		var acc float64
		for i := 0; i < games; i++ {
			acc += math.Max(s.gauss(p.Accuracy.Mean, p.Accuracy.SD), 0)
		}
		st.TotalAccuracy = acc / float64(games)
	}

	if st.TotalAccuracy > 0 && games > 0 {
		for i := 0; i < games; i++ {
			st.TotalKills += s.gaussInt(p.Kills)
			st.TotalDeaths += s.gaussInt(p.Deaths)
			st.TotalAssists += s.gaussInt(p.Assists)
		}
	}

	if games > 0 {
		st.AvgKills = float64(st.TotalKills) / float64(games)
		st.AvgDeaths = float64(st.TotalDeaths) / float64(games)
		st.AvgAssists = float64(st.TotalAssists) / float64(games)
	}

	if st.TotalAccuracy > 0 {
		kills := roundInt(st.AvgKills)
		assists := roundInt(st.AvgAssists)
		for i := 0; i < games; i++ {
			for j := 0; j < kills; j++ {
				st.TotalDamageDealt += roundInt(s.gaussFloor(100, 5, 0))
			}
			for j := 0; j < assists; j++ {
				st.TotalDamageDealt += roundInt(s.gaussFloor(35, 34, 0))
			}
		}
	}

	deaths := roundInt(st.AvgDeaths)
	for i := 0; i < games; i++ {
		for j := 0; j < deaths; j++ {
			st.TotalDamageTaken += roundInt(s.gaussFloor(100, 5, 0))
		}
	}

	if def.Mode.BattleRoyale() {
		st.BestKillstreak = st.TotalKills
	} else if st.TotalKills > 0 {
		for i := 0; i < games; i++ {
			streak := min(s.gaussInt(p.BestKillstreak), st.TotalKills)
			st.BestKillstreak = max(st.BestKillstreak, streak)
		}
	}

	if games > 0 {
		var hs, torso float64
		for i := 0; i < games; i++ {
			hs += math.Max(s.gauss(p.HeadshotAccuracy.Mean, p.HeadshotAccuracy.SD), 0)
			torso += math.Max(s.gauss(p.TorsoAccuracy.Mean, p.TorsoAccuracy.SD), 0)
		}
		st.TotalHeadshotAccuracy = hs / float64(games)
		st.TotalTorsoAccuracy = torso / float64(games)
	}
	st.TotalLegAccuracy = st.TotalAccuracy - st.TotalHeadshotAccuracy - st.TotalTorsoAccuracy

	if st.TotalAccuracy > 0 && st.TotalDamageDealt > 0 {
		st.TotalDamageMissed = roundInt(float64(st.TotalDamageDealt)/st.TotalAccuracy - float64(st.TotalDamageDealt))
	} else {
		for i := 0; i < games; i++ {
			st.TotalDamageMissed += s.gaussInt(p.DamageMissed)
		}
	}

	totalDamage := st.TotalDamageDealt + st.TotalDamageMissed
	st.TotalHeadshotDamage = roundInt(float64(totalDamage) * st.TotalHeadshotAccuracy)
	st.TotalTorsoDamage = roundInt(float64(totalDamage) * st.TotalTorsoAccuracy)
	st.TotalLegDamage = totalDamage - st.TotalHeadshotDamage - st.TotalTorsoDamage

	for i := 0; i < games; i++ {
		st.TotalContestingKills += s.gaussInt(p.ContestingKills)
		st.TotalObjectiveTime += s.gaussInt(p.ObjectiveTime)
		st.TotalLongestTimeAlive += float64(s.gaussInt(p.LongestTimeAlive))
	}

	var playtime int
	for i := 0; i < games; i++ {
		playtime += s.Playtime(def)
	}
	if playtime > 0 {
		st.TotalKillsPerMinute = float64(st.TotalKills) / float64(playtime) * 60
		st.TotalDeathsPerMinute = float64(st.TotalDeaths) / float64(playtime) * 60
		st.TotalAssistsPerMinute = float64(st.TotalAssists) / float64(playtime) * 60
		st.TotalDamageDealtPerMinute = float64(st.TotalDamageDealt) / float64(playtime) * 60
		st.TotalDamageTakenPerMinute = float64(st.TotalDamageTaken) / float64(playtime) * 60
	}

	st.TotalKDRatio = ratio(st.TotalKills, st.TotalDeaths)
	st.TotalDamageRatio = ratio(st.TotalDamageDealt, st.TotalDamageTaken)
	st.WinLossRatio = ratio(st.TotalWins, st.TotalLosses)

	if games > 0 {
		g := float64(games)
		st.AvgDamageDealt = float64(st.TotalDamageDealt) / g
		st.AvgDamageTaken = float64(st.TotalDamageTaken) / g
		st.AvgDamageMissed = float64(st.TotalDamageMissed) / g
		st.AvgHeadshotDamage = float64(st.TotalHeadshotDamage) / g
		st.AvgTorsoDamage = float64(st.TotalTorsoDamage) / g
		st.AvgLegDamage = float64(st.TotalLegDamage) / g
		st.AvgContestingKills = float64(st.TotalContestingKills) / g
		st.AvgObjectiveTime = float64(st.TotalObjectiveTime) / g
		st.AvgLongestTimeAlive = st.TotalLongestTimeAlive / g
		st.AvgKillsPerMinute = st.TotalKillsPerMinute / g
		st.AvgDeathsPerMinute = st.TotalDeathsPerMinute / g
		st.AvgAssistsPerMinute = st.TotalAssistsPerMinute / g
		st.AvgDamageDealtPerMinute = st.TotalDamageDealtPerMinute / g
		st.AvgDamageTakenPerMinute = st.TotalDamageTakenPerMinute / g
	}
	// Accuracy averages mirror the means stored in the totals.
	st.AvgAccuracy = st.TotalAccuracy
	st.AvgHeadshotAccuracy = st.TotalHeadshotAccuracy
	st.AvgTorsoAccuracy = st.TotalTorsoAccuracy
	st.AvgLegAccuracy = st.TotalLegAccuracy

	if st.TotalGamesPlayed == 0 {
		st.GlickoRD = rating.GlickoMaxRD
		st.TSSigma = rating.TSMaxSigma
	} else {
		st.GlickoRD = rating.GlickoMinRD
		st.TSSigma = rating.TSMinSigma
	}

	return st
}

// ratio guards the derived ratios: with a zero denominator the numerator
// stands alone.
func ratio(num, den int) float64 {
	if den > 0 {
		return float64(num) / float64(den)
	}
	return float64(num)
}
