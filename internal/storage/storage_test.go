package storage

import (
	"testing"
	"time"

	"github.com/ldruskis/go-rating-sim/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedStats(id int64, mode model.Mode, rating float64, lastPlayed time.Time) *model.PlayerModeStats {
	return &model.PlayerModeStats{
		PlayerID:   id,
		Mode:       mode,
		TrueRating: rating,
		EloRating:  rating,
		GlickoRD:   120,
		TSMu:       rating,
		TSSigma:    200,
		LastPlayed: lastPlayed,
	}
}

func TestPlayersRoundTrip(t *testing.T) {
	db := openMemDB(t)

	players := []model.Player{
		{ID: 1, Name: "Player_1", PartyName: "solo"},
		{ID: 2, Name: "Player_2", PartyName: "party_1"},
		{ID: 3, Name: "Player_3", PartyName: "party_1"},
	}
	if err := db.InsertPlayers(players); err != nil {
		t.Fatalf("InsertPlayers: %v", err)
	}

	count, err := db.CountPlayers()
	if err != nil {
		t.Fatalf("CountPlayers: %v", err)
	}
	if count != 3 {
		t.Errorf("CountPlayers = %d, want 3", count)
	}

	// Re-insert must be idempotent.
	if err := db.InsertPlayers(players); err != nil {
		t.Fatalf("second InsertPlayers: %v", err)
	}
	count, _ = db.CountPlayers()
	if count != 3 {
		t.Errorf("CountPlayers after re-insert = %d, want 3", count)
	}

	got, err := db.ListPlayers(2)
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].PartyName != "party_1" {
		t.Errorf("ListPlayers = %+v", got)
	}
}

func TestInsertGameAssignsID(t *testing.T) {
	db := openMemDB(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g1 := &model.Game{Mode: model.ModeTDM, CreatedAt: now, Playtime: 600, TeamCount: 2, TeamSize: 6, KillCap: 50, PlayerCount: 12}
	g2 := &model.Game{Mode: model.ModeTDM, CreatedAt: now.Add(10 * time.Minute), Playtime: 540, TeamCount: 2, TeamSize: 6, KillCap: 50, PlayerCount: 12}

	if err := db.InsertGame(g1); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}
	if err := db.InsertGame(g2); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}
	if g1.ID == 0 || g2.ID <= g1.ID {
		t.Errorf("ids not assigned in order: %d, %d", g1.ID, g2.ID)
	}

	games, err := db.ListGames(model.ModeTDM, 10)
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("ListGames returned %d games, want 2", len(games))
	}
	// Newest first.
	if games[0].ID != g2.ID {
		t.Errorf("ListGames[0].ID = %d, want %d", games[0].ID, g2.ID)
	}
	if !games[0].CreatedAt.Equal(g2.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", games[0].CreatedAt, g2.CreatedAt)
	}

	count, err := db.CountGames(model.ModeTDM)
	if err != nil {
		t.Fatalf("CountGames: %v", err)
	}
	if count != 2 {
		t.Errorf("CountGames = %d, want 2", count)
	}
}

func TestGamePlayersRoundTrip(t *testing.T) {
	db := openMemDB(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := &model.Game{Mode: model.ModeTDM, CreatedAt: now, Playtime: 600, TeamCount: 2, TeamSize: 6, KillCap: 50, PlayerCount: 12}
	if err := db.InsertGame(g); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}

	gp := &model.GamePlayer{
		GameID: g.ID, PlayerID: 7, CreatedAt: now, Team: 1, PartyName: "solo",
		Kills: 12, Deaths: 8, Assists: 3, Killstreak: 5,
		DamageDealt: 1200, DamageTaken: 800, DamageMissed: 1200,
		Accuracy: 0.5, HeadshotAccuracy: 0.2, TorsoAccuracy: 0.5, LegAccuracy: 0.3,
		LongestTimeAlive: 240, Placement: 1, IsMVP: true,
		TrueRatingBefore: 1300, TrueRatingAfter: 1310.5,
		EloBefore: 1300, EloAfter: 1312,
		GlickoBefore: 1300, GlickoAfter: 1315, GlickoRDBefore: 120, GlickoRDAfter: 118,
		TSMuBefore: 1300, TSMuAfter: 1320, TSSigmaBefore: 200, TSSigmaAfter: 195,
	}
	if err := db.InsertGamePlayers([]*model.GamePlayer{gp}); err != nil {
		t.Fatalf("InsertGamePlayers: %v", err)
	}

	points, err := db.Trajectory(7, model.ModeTDM)
	if err != nil {
		t.Fatalf("Trajectory: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("Trajectory returned %d points, want 1", len(points))
	}
	p := points[0]
	if p.GameID != g.ID || p.TrueBefore != 1300 || p.TrueAfter != 1310.5 {
		t.Errorf("trajectory point = %+v", p)
	}
	if !p.IsMVP || p.IsLVP {
		t.Errorf("mvp/lvp flags = %v/%v, want true/false", p.IsMVP, p.IsLVP)
	}
	if p.Placement != 1 {
		t.Errorf("Placement = %d, want 1", p.Placement)
	}
}

func TestModeStatsUpsert(t *testing.T) {
	db := openMemDB(t)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := seedStats(1, model.ModeFFA, 1450, now)
	s.TotalGamesPlayed = 40
	s.TotalWins = 25
	s.AvgKills = 14.5
	s.BestKillstreak = 9
	if err := db.UpsertModeStats([]*model.PlayerModeStats{s}); err != nil {
		t.Fatalf("UpsertModeStats: %v", err)
	}

	got, err := db.ModeStats(1, model.ModeFFA)
	if err != nil {
		t.Fatalf("ModeStats: %v", err)
	}
	if got.TrueRating != 1450 || got.TotalGamesPlayed != 40 || got.AvgKills != 14.5 || got.BestKillstreak != 9 {
		t.Errorf("read back %+v", got)
	}
	if !got.LastPlayed.Equal(now) {
		t.Errorf("LastPlayed = %v, want %v", got.LastPlayed, now)
	}

	// Second write for the same key replaces the row.
	s.TrueRating = 1500
	s.TotalGamesPlayed = 41
	if err := db.UpsertModeStats([]*model.PlayerModeStats{s}); err != nil {
		t.Fatalf("second UpsertModeStats: %v", err)
	}
	got, _ = db.ModeStats(1, model.ModeFFA)
	if got.TrueRating != 1500 || got.TotalGamesPlayed != 41 {
		t.Errorf("after upsert: rating %.0f games %d", got.TrueRating, got.TotalGamesPlayed)
	}

	if _, err := db.ModeStats(1, model.ModeTDM); err == nil {
		t.Error("expected error for missing mode row")
	}
}

func TestModeStatsForPlayers(t *testing.T) {
	db := openMemDB(t)

	now := time.Now().UTC()
	stats := []*model.PlayerModeStats{
		seedStats(1, model.ModeTDM, 1000, now),
		seedStats(2, model.ModeTDM, 1100, now),
		seedStats(3, model.ModeTDM, 1200, now),
	}
	if err := db.UpsertModeStats(stats); err != nil {
		t.Fatalf("UpsertModeStats: %v", err)
	}

	got, err := db.ModeStatsForPlayers(model.ModeTDM, []int64{1, 3})
	if err != nil {
		t.Fatalf("ModeStatsForPlayers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}

	got, err = db.ModeStatsForPlayers(model.ModeTDM, nil)
	if err != nil || got != nil {
		t.Errorf("empty id list: got %v, %v", got, err)
	}
}

func TestCandidatesWindow(t *testing.T) {
	db := openMemDB(t)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stale := now.Add(-time.Hour)
	stats := []*model.PlayerModeStats{
		seedStats(1, model.ModeTDM, 550, stale),  // below window
		seedStats(2, model.ModeTDM, 600, stale),  // match
		seedStats(3, model.ModeTDM, 640, stale),  // match but excluded
		seedStats(4, model.ModeTDM, 650, stale),  // match
		seedStats(5, model.ModeTDM, 700, stale),  // above window
		seedStats(6, model.ModeTDM, 620, now.Add(time.Hour)), // too recent
		seedStats(7, model.ModeFFA, 620, stale),  // wrong mode
	}
	if err := db.UpsertModeStats(stats); err != nil {
		t.Fatalf("UpsertModeStats: %v", err)
	}

	got, err := db.Candidates(model.ModeTDM, 600, 650, now, []int64{3}, 10)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	ids := map[int64]bool{}
	for _, s := range got {
		ids[s.PlayerID] = true
	}
	if len(got) != 2 || !ids[2] || !ids[4] {
		t.Errorf("Candidates returned ids %v, want {2, 4}", ids)
	}

	// Limit is honored.
	got, err = db.Candidates(model.ModeTDM, 0, 3000, now, nil, 2)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limited Candidates returned %d rows, want 2", len(got))
	}
}

func TestResetLastPlayed(t *testing.T) {
	db := openMemDB(t)

	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	reset := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := db.UpsertModeStats([]*model.PlayerModeStats{
		seedStats(1, model.ModeTDM, 1000, old),
		seedStats(1, model.ModeFFA, 1000, old),
	}); err != nil {
		t.Fatalf("UpsertModeStats: %v", err)
	}

	if err := db.ResetLastPlayed(reset); err != nil {
		t.Fatalf("ResetLastPlayed: %v", err)
	}

	for _, mode := range []model.Mode{model.ModeTDM, model.ModeFFA} {
		got, err := db.ModeStats(1, mode)
		if err != nil {
			t.Fatalf("ModeStats(%s): %v", mode, err)
		}
		if !got.LastPlayed.Equal(reset) {
			t.Errorf("%s LastPlayed = %v, want %v", mode, got.LastPlayed, reset)
		}
	}
}

func TestLeaderboardOrder(t *testing.T) {
	db := openMemDB(t)

	now := time.Now().UTC()
	if err := db.UpsertModeStats([]*model.PlayerModeStats{
		seedStats(1, model.ModeTDM, 900, now),
		seedStats(2, model.ModeTDM, 2100, now),
		seedStats(3, model.ModeTDM, 1500, now),
	}); err != nil {
		t.Fatalf("UpsertModeStats: %v", err)
	}

	got, err := db.Leaderboard(model.ModeTDM, 2)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(got) != 2 || got[0].PlayerID != 2 || got[1].PlayerID != 3 {
		t.Errorf("Leaderboard order wrong: %+v", got)
	}
}
