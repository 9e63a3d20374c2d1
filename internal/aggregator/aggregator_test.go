package aggregator

import (
	"math"
	"testing"
	"time"

	"github.com/ldruskis/go-rating-sim/internal/model"
)

func TestApplyAccumulatesTotals(t *testing.T) {
	now := time.Now()
	stats := &model.PlayerModeStats{PlayerID: 1, Mode: model.ModeTDM, LastPlayed: now.Add(-48 * time.Hour)}

	gp := &model.GamePlayer{
		PlayerID:  1,
		CreatedAt: now,
		Kills:     12, Deaths: 8, Assists: 3,
		DamageDealt: 1200, DamageTaken: 800, DamageMissed: 1200,
		HeadshotDamage: 240, TorsoDamage: 480, LegDamage: 1680,
		Accuracy: 0.5, HeadshotAccuracy: 0.1, TorsoAccuracy: 0.2, LegAccuracy: 0.2,
		KillsPerMinute: 1.2, DeathsPerMinute: 0.8,
		Killstreak: 5, LongestTimeAlive: 90,
		Placement: 1,
		TrueRatingAfter: 620, EloAfter: 610, GlickoAfter: 615, GlickoRDAfter: 180,
		TSMuAfter: 605, TSSigmaAfter: 190,
	}

	Apply(stats, gp)

	if stats.TotalGamesPlayed != 1 || stats.TotalWins != 1 || stats.WinStreak != 1 {
		t.Errorf("games/wins/streak = %d/%d/%d, want 1/1/1",
			stats.TotalGamesPlayed, stats.TotalWins, stats.WinStreak)
	}
	if stats.TotalKills != 12 || stats.AvgKills != 12 {
		t.Errorf("kills total/avg = %d/%v, want 12/12", stats.TotalKills, stats.AvgKills)
	}
	if stats.TrueRating != 620 || stats.GlickoRD != 180 || stats.TSSigma != 190 {
		t.Errorf("ratings not carried over: %+v", stats)
	}
	if stats.BestKillstreak != 5 {
		t.Errorf("BestKillstreak = %d, want 5", stats.BestKillstreak)
	}
	if math.Abs(stats.TotalKDRatio-1.5) > 1e-9 {
		t.Errorf("TotalKDRatio = %v, want 1.5", stats.TotalKDRatio)
	}
}

func TestApplyWinStreakResets(t *testing.T) {
	now := time.Now()
	stats := &model.PlayerModeStats{LastPlayed: now}

	win := &model.GamePlayer{CreatedAt: now, Placement: 1}
	loss := &model.GamePlayer{CreatedAt: now, Placement: 2}
	tie := &model.GamePlayer{CreatedAt: now, Placement: 1, IsTie: true}

	Apply(stats, win)
	Apply(stats, win)
	if stats.WinStreak != 2 {
		t.Fatalf("WinStreak after two wins = %d, want 2", stats.WinStreak)
	}

	Apply(stats, tie)
	if stats.WinStreak != 2 || stats.TotalTies != 1 {
		t.Errorf("tie changed streak: streak=%d ties=%d", stats.WinStreak, stats.TotalTies)
	}

	Apply(stats, loss)
	if stats.WinStreak != 0 || stats.TotalLosses != 1 {
		t.Errorf("loss did not reset streak: streak=%d losses=%d", stats.WinStreak, stats.TotalLosses)
	}
}

func TestApplyLastPlayedDecay(t *testing.T) {
	now := time.Now()

	// a long-idle player advances by exactly one week per game
	stats := &model.PlayerModeStats{LastPlayed: now.Add(-10 * 24 * time.Hour)}
	Apply(stats, &model.GamePlayer{CreatedAt: now, Placement: 2})
	want := now.Add(-3 * 24 * time.Hour)
	if !stats.LastPlayed.Equal(want) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, want)
	}

	// but never past the game itself
	stats = &model.PlayerModeStats{LastPlayed: now.Add(-time.Hour)}
	Apply(stats, &model.GamePlayer{CreatedAt: now, Placement: 2})
	if !stats.LastPlayed.Equal(now) {
		t.Errorf("LastPlayed = %v, want clamp at %v", stats.LastPlayed, now)
	}

	// and never more than a year behind the game
	stats = &model.PlayerModeStats{LastPlayed: now.Add(-3 * 365 * 24 * time.Hour)}
	Apply(stats, &model.GamePlayer{CreatedAt: now, Placement: 2})
	if stats.LastPlayed.Before(now.Add(-365 * 24 * time.Hour)) {
		t.Errorf("LastPlayed = %v, want no older than one year before the game", stats.LastPlayed)
	}
}

func TestApplyZeroDamageSkipsAccuracy(t *testing.T) {
	now := time.Now()
	stats := &model.PlayerModeStats{LastPlayed: now}

	gp := &model.GamePlayer{CreatedAt: now, Placement: 2, Accuracy: 0.4}
	Apply(stats, gp)

	if stats.TotalAccuracy != 0 {
		t.Errorf("TotalAccuracy = %v, want 0 when no damage was dealt or missed", stats.TotalAccuracy)
	}
}

func TestApplyAllZeroGame(t *testing.T) {
	now := time.Now()
	stats := &model.PlayerModeStats{
		TotalGamesPlayed: 9,
		TotalKills:       90,
		AvgKills:         10,
		LastPlayed:       now.Add(-10 * 24 * time.Hour),
	}

	gp := &model.GamePlayer{CreatedAt: now, Placement: 2}
	Apply(stats, gp)

	if stats.TotalGamesPlayed != 10 {
		t.Fatalf("TotalGamesPlayed = %d, want 10", stats.TotalGamesPlayed)
	}
	// Totals untouched, averages re-derived from the unchanged totals.
	if stats.TotalKills != 90 || stats.AvgKills != 9 {
		t.Errorf("kills total/avg = %d/%v, want 90/9", stats.TotalKills, stats.AvgKills)
	}
	// Staleness still decays by exactly one week.
	want := now.Add(-10 * 24 * time.Hour).Add(7 * 24 * time.Hour)
	if !stats.LastPlayed.Equal(want) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, want)
	}
}
