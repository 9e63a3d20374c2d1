package outcome

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
)

func newResolver(t *testing.T) *Resolver {
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

func teamPlayers(t *testing.T, team int, firstID int64, kills []int) []*model.GamePlayer {
	t.Helper()
	out := make([]*model.GamePlayer, len(kills))
	for i, k := range kills {
		out[i] = &model.GamePlayer{
			PlayerID:         firstID + int64(i),
			Team:             team,
			Kills:            k,
			Deaths:           8,
			DamageTaken:      800,
			DamageDealt:      k * 100,
			Accuracy:         0.4,
			LongestTimeAlive: 45,
		}
	}
	return out
}

func TestTeamDeathmatchNormalization(t *testing.T) {
	r := newResolver(t)
	def := modeDef(t, model.ModeTDM)

	teamA := teamPlayers(t, 1, 1, []int{20, 15, 15, 10, 10, 10}) // 80 raw kills
	teamB := teamPlayers(t, 2, 7, []int{10, 10, 5, 5, 5, 5})     // 40 raw kills
	players := append(append([]*model.GamePlayer{}, teamA...), teamB...)

	r.Resolve(def, 600, players)

	// the winning team's total rescales by 50/80
	var aKills int
	for _, p := range teamA {
		aKills += p.Kills
	}
	if aKills < def.KillCap-2 || aKills > def.KillCap+2 {
		t.Errorf("winning team kills = %d, want about %d", aKills, def.KillCap)
	}

	for _, p := range teamA {
		if p.Placement != 1 || p.IsTie {
			t.Errorf("player %d: placement %d tie %v, want 1/false", p.PlayerID, p.Placement, p.IsTie)
		}
	}
	for _, p := range teamB {
		if p.Placement != 2 || p.IsTie {
			t.Errorf("player %d: placement %d tie %v, want 2/false", p.PlayerID, p.Placement, p.IsTie)
		}
	}

	// losing-team deaths absorb the winner's normalized kills
	var bDeaths int
	for _, p := range teamB {
		bDeaths += p.Deaths
	}
	if bDeaths < def.KillCap-6 || bDeaths > def.KillCap+6 {
		t.Errorf("losing team deaths = %d, want near %d", bDeaths, def.KillCap)
	}
}

func TestTeamDeathmatchTie(t *testing.T) {
	r := newResolver(t)
	def := modeDef(t, model.ModeTDM)

	teamA := teamPlayers(t, 1, 1, []int{10, 10, 10, 10, 5, 5})
	teamB := teamPlayers(t, 2, 7, []int{10, 10, 10, 10, 5, 5})
	players := append(append([]*model.GamePlayer{}, teamA...), teamB...)

	r.Resolve(def, 600, players)

	for _, p := range players {
		if p.Placement != 1 || !p.IsTie {
			t.Errorf("player %d: placement %d tie %v, want 1/true", p.PlayerID, p.Placement, p.IsTie)
		}
	}
}

func TestFreeForAllNormalization(t *testing.T) {
	r := newResolver(t)
	def := modeDef(t, model.ModeFFA)

	players := make([]*model.GamePlayer, 12)
	for i := range players {
		kills := 10
		if i == 0 {
			kills = 60
		}
		players[i] = &model.GamePlayer{
			PlayerID:         int64(i + 1),
			Team:             i + 1,
			Kills:            kills,
			Deaths:           10,
			DamageTaken:      1000,
			DamageDealt:      kills * 100,
			Accuracy:         0.4,
			LongestTimeAlive: 50,
		}
	}

	r.Resolve(def, 600, players)

	// lobby cap is 80% of the mode cap; the leader lands exactly on it
	wantCap := int(0.8 * float64(def.KillCap))
	if players[0].Kills != wantCap {
		t.Errorf("leader kills = %d, want %d", players[0].Kills, wantCap)
	}
	if players[0].Placement != 1 || players[0].IsTie {
		t.Errorf("leader placement %d tie %v, want 1/false", players[0].Placement, players[0].IsTie)
	}
	for _, p := range players[1:] {
		if p.Placement == 1 {
			t.Errorf("player %d shares 1st below the cap", p.PlayerID)
		}
	}
}

func TestBattleRoyaleSoloPlacements(t *testing.T) {
	r := newResolver(t)
	def := modeDef(t, model.ModeBR1v99)

	players := make([]*model.GamePlayer, def.PlayerCount())
	for i := range players {
		players[i] = &model.GamePlayer{
			PlayerID:         int64(i + 1),
			Team:             i + 1,
			Kills:            1,
			Deaths:           1,
			DamageDealt:      100,
			DamageTaken:      100,
			Accuracy:         0.3,
			LongestTimeAlive: float64(100 + i*10),
		}
	}

	r.Resolve(def, 1200, players)

	seen := make(map[int]bool, len(players))
	var winner, runnerUp *model.GamePlayer
	for _, p := range players {
		if seen[p.Placement] {
			t.Fatalf("duplicate placement %d", p.Placement)
		}
		seen[p.Placement] = true
		switch p.Placement {
		case 1:
			winner = p
		case 2:
			runnerUp = p
		}
	}

	if winner.Deaths != 0 {
		t.Errorf("winner deaths = %d, want 0", winner.Deaths)
	}
	if runnerUp.Deaths != 1 {
		t.Errorf("runner-up deaths = %d, want 1", runnerUp.Deaths)
	}
	if math.Abs(runnerUp.LongestTimeAlive-0.99*winner.LongestTimeAlive) > 1e-9 {
		t.Errorf("runner-up time alive = %v, want 0.99 of winner's %v", runnerUp.LongestTimeAlive, winner.LongestTimeAlive)
	}
	if winner.LongestTimeAlive != 1200 {
		t.Errorf("winner time alive = %v, want full playtime", winner.LongestTimeAlive)
	}
}

func TestSearchAndDestroyRounds(t *testing.T) {
	r := newResolver(t)
	def := modeDef(t, model.ModeSAD)

	teamA := teamPlayers(t, 1, 1, []int{20, 18, 16, 14, 12})
	teamB := teamPlayers(t, 2, 6, []int{10, 8, 6, 4, 2})
	players := append(append([]*model.GamePlayer{}, teamA...), teamB...)

	r.Resolve(def, 1920, players)

	for _, p := range players {
		if p.RoundsWon+p.RoundsLost != 30 {
			t.Errorf("player %d rounds won+lost = %d, want 30", p.PlayerID, p.RoundsWon+p.RoundsLost)
		}
	}
	if teamA[0].RoundsWon == teamB[0].RoundsWon {
		if !teamA[0].IsTie || teamA[0].Placement != 1 {
			t.Error("equal rounds should flag a tie at placement 1")
		}
	} else {
		var winner, loser *model.GamePlayer
		if teamA[0].RoundsWon > teamB[0].RoundsWon {
			winner, loser = teamA[0], teamB[0]
		} else {
			winner, loser = teamB[0], teamA[0]
		}
		if winner.Placement != 1 || loser.Placement != 2 {
			t.Errorf("placements = %d/%d, want 1/2", winner.Placement, loser.Placement)
		}
	}
}

func TestDominationPoints(t *testing.T) {
	r := newResolver(t)
	def := modeDef(t, model.ModeDomination)

	teamA := teamPlayers(t, 1, 1, []int{20, 18, 16, 14, 12, 10})
	teamB := teamPlayers(t, 2, 7, []int{10, 8, 6, 4, 2, 2})
	for _, p := range append(append([]*model.GamePlayer{}, teamA...), teamB...) {
		p.ObjectiveTime = 60
	}
	players := append(append([]*model.GamePlayer{}, teamA...), teamB...)

	r.Resolve(def, 1020, players)

	for _, p := range players {
		if p.ObjectiveTime < 10 || p.ObjectiveTime > int(math.Round(0.8*1020)) {
			t.Errorf("player %d objective time %d out of bounds", p.PlayerID, p.ObjectiveTime)
		}
		if p.ContestingKills > p.Kills {
			t.Errorf("player %d contesting kills %d > kills %d", p.PlayerID, p.ContestingKills, p.Kills)
		}
		if p.DominationPoints <= 0 {
			t.Errorf("player %d domination points = %v", p.PlayerID, p.DominationPoints)
		}
	}

	if !teamA[0].IsTie {
		winners := 0
		for _, p := range players {
			if p.Placement == 1 {
				winners++
			}
		}
		if winners != def.TeamSize {
			t.Errorf("winning placements = %d, want one full team of %d", winners, def.TeamSize)
		}
	}
}

func TestSelectValuePlayers(t *testing.T) {
	def := modeDef(t, model.ModeTDM)

	star := &model.GamePlayer{
		PlayerID: 1, Team: 1,
		Kills: 30, Deaths: 2, Killstreak: 12, LongestTimeAlive: 300,
		Accuracy: 0.9, DamageDealt: 3000, DamageTaken: 200,
	}
	mid := &model.GamePlayer{
		PlayerID: 2, Team: 1,
		Kills: 10, Deaths: 10, Killstreak: 4, LongestTimeAlive: 100,
		Accuracy: 0.5, DamageDealt: 1000, DamageTaken: 1000,
	}
	weak := &model.GamePlayer{
		PlayerID: 3, Team: 2,
		Kills: 1, Deaths: 25, Killstreak: 1, LongestTimeAlive: 30,
		Accuracy: 0.1, DamageDealt: 100, DamageTaken: 2500,
	}
	players := []*model.GamePlayer{star, mid, weak}

	SelectValuePlayers(def, players)

	if !star.IsMVP {
		t.Error("dominant player not flagged MVP")
	}
	if !weak.IsLVP {
		t.Error("weakest player not flagged LVP")
	}
	if star.IsLVP || weak.IsMVP || mid.IsMVP || mid.IsLVP {
		t.Error("value-player flags leaked to the wrong players")
	}
}

func TestSelectValuePlayersExcludesMVPFromLVP(t *testing.T) {
	def := modeDef(t, model.ModeTDM)

	// a lobby of identical players: someone is still MVP, and the LVP
	// must be a different player
	players := make([]*model.GamePlayer, 4)
	for i := range players {
		players[i] = &model.GamePlayer{
			PlayerID: int64(i + 1), Team: i%2 + 1,
			Kills: 10, Deaths: 10, Killstreak: 3, LongestTimeAlive: 90,
			Accuracy: 0.4, DamageDealt: 1000, DamageTaken: 1000,
		}
	}

	SelectValuePlayers(def, players)

	var mvp, lvp int64
	for _, p := range players {
		if p.IsMVP {
			mvp = p.PlayerID
		}
		if p.IsLVP {
			lvp = p.PlayerID
		}
	}
	if mvp == 0 || lvp == 0 {
		t.Fatalf("mvp=%d lvp=%d, want both assigned", mvp, lvp)
	}
	if mvp == lvp {
		t.Error("MVP and LVP are the same player")
	}
}

func TestFinalizeDerivedStats(t *testing.T) {
	gp := &model.GamePlayer{
		Kills: 10, Deaths: 5, Assists: 2,
		DamageDealt: 1000, DamageTaken: 500,
		Accuracy: 0.5, HeadshotAccuracy: 0.1, TorsoAccuracy: 0.2, LegAccuracy: 0.2,
	}

	Finalize(gp, 600)

	if gp.DamageMissed != 1000 {
		t.Errorf("DamageMissed = %d, want 1000", gp.DamageMissed)
	}
	total := gp.DamageDealt + gp.DamageMissed
	if gp.HeadshotDamage+gp.TorsoDamage+gp.LegDamage != total {
		t.Errorf("damage split sums to %d, want %d",
			gp.HeadshotDamage+gp.TorsoDamage+gp.LegDamage, total)
	}
	if math.Abs(gp.KillsPerMinute-1.0) > 1e-9 {
		t.Errorf("KillsPerMinute = %v, want 1", gp.KillsPerMinute)
	}
	if gp.Placement != 1 {
		t.Errorf("default placement = %d, want 1", gp.Placement)
	}
}
