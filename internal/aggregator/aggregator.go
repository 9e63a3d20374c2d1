// Package aggregator folds completed game results into the per-player,
// per-mode running aggregates.
package aggregator

import (
	"time"

	"github.com/ldruskis/go-rating-sim/internal/model"
)

const (
	oneWeek = 7 * 24 * time.Hour
	oneYear = 365 * 24 * time.Hour
)

// Apply updates a player's mode aggregate with one finished game. Called
// exactly once per participation, after the rating updates ran.
func Apply(stats *model.PlayerModeStats, gp *model.GamePlayer) {
	stats.TotalKills += gp.Kills
	stats.TotalDeaths += gp.Deaths
	stats.TotalAssists += gp.Assists
	stats.TotalDamageMissed += gp.DamageMissed
	stats.TotalDamageTaken += gp.DamageTaken
	stats.TotalDamageDealt += gp.DamageDealt
	stats.TotalGamesPlayed++

	if gp.IsTie {
		stats.TotalTies++
	} else if gp.Placement == 1 {
		stats.TotalWins++
		stats.WinStreak++
	} else {
		stats.TotalLosses++
		stats.WinStreak = 0
	}

	// Staleness decays by one week per game instead of jumping to now, and
	// never trails the game by more than a year.
	floor := gp.CreatedAt.Add(-oneYear)
	advanced := stats.LastPlayed.Add(oneWeek)
	if advanced.Before(floor) {
		advanced = floor
	}
	if advanced.After(gp.CreatedAt) {
		advanced = gp.CreatedAt
	}
	stats.LastPlayed = advanced

	stats.TrueRating = gp.TrueRatingAfter
	stats.EloRating = gp.EloAfter
	stats.GlickoRating = gp.GlickoAfter
	stats.GlickoRD = gp.GlickoRDAfter
	stats.TSMu = gp.TSMuAfter
	stats.TSSigma = gp.TSSigmaAfter

	stats.TotalHeadshotDamage += gp.HeadshotDamage
	stats.TotalTorsoDamage += gp.TorsoDamage
	stats.TotalLegDamage += gp.LegDamage
	stats.TotalContestingKills += gp.ContestingKills
	stats.TotalObjectiveTime += gp.ObjectiveTime
	stats.TotalLongestTimeAlive += gp.LongestTimeAlive
	stats.TotalKillsPerMinute += gp.KillsPerMinute
	stats.TotalDeathsPerMinute += gp.DeathsPerMinute
	stats.TotalAssistsPerMinute += gp.AssistsPerMinute
	stats.TotalDamageDealtPerMinute += gp.DamageDealtPerMinute
	stats.TotalDamageTakenPerMinute += gp.DamageTakenPerMinute

	if stats.TotalDamageDealt+stats.TotalDamageMissed > 0 {
		stats.TotalAccuracy += gp.Accuracy
		stats.TotalHeadshotAccuracy += gp.HeadshotAccuracy
		stats.TotalTorsoAccuracy += gp.TorsoAccuracy
		stats.TotalLegAccuracy += gp.LegAccuracy
	}

	stats.TotalKDRatio = ratio(stats.TotalKills, stats.TotalDeaths)
	stats.TotalDamageRatio = ratio(stats.TotalDamageDealt, stats.TotalDamageTaken)
	stats.WinLossRatio = ratio(stats.TotalWins, stats.TotalLosses)

	games := float64(stats.TotalGamesPlayed)
	stats.AvgKills = float64(stats.TotalKills) / games
	stats.AvgDeaths = float64(stats.TotalDeaths) / games
	stats.AvgAssists = float64(stats.TotalAssists) / games
	stats.AvgDamageDealt = float64(stats.TotalDamageDealt) / games
	stats.AvgDamageTaken = float64(stats.TotalDamageTaken) / games
	stats.AvgDamageMissed = float64(stats.TotalDamageMissed) / games
	stats.AvgHeadshotDamage = float64(stats.TotalHeadshotDamage) / games
	stats.AvgTorsoDamage = float64(stats.TotalTorsoDamage) / games
	stats.AvgLegDamage = float64(stats.TotalLegDamage) / games
	stats.AvgAccuracy = stats.TotalAccuracy / games
	stats.AvgHeadshotAccuracy = stats.TotalHeadshotAccuracy / games
	stats.AvgTorsoAccuracy = stats.TotalTorsoAccuracy / games
	stats.AvgLegAccuracy = stats.TotalLegAccuracy / games
	stats.AvgContestingKills = float64(stats.TotalContestingKills) / games
	stats.AvgObjectiveTime = float64(stats.TotalObjectiveTime) / games
	stats.AvgLongestTimeAlive = stats.TotalLongestTimeAlive / games
	stats.AvgKillsPerMinute = stats.TotalKillsPerMinute / games
	stats.AvgDeathsPerMinute = stats.TotalDeathsPerMinute / games
	stats.AvgAssistsPerMinute = stats.TotalAssistsPerMinute / games
	stats.AvgDamageDealtPerMinute = stats.TotalDamageDealtPerMinute / games
	stats.AvgDamageTakenPerMinute = stats.TotalDamageTakenPerMinute / games

	if gp.Killstreak > stats.BestKillstreak {
		stats.BestKillstreak = gp.Killstreak
	}
}

func ratio(num, den int) float64 {
	if den > 0 {
		return float64(num) / float64(den)
	}
	return float64(num)
}
