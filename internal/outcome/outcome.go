// Package outcome turns raw synthesized stats into a mode-consistent game
// result: kill totals capped to the mode, deaths redistributed across the
// losing side, placements and ties assigned, objective points and round
// counts derived.
package outcome

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
)

// Resolver normalizes one game at a time from an injected random source.
type Resolver struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve rewrites the participants' stats in place according to the mode's
// normalization pipeline and assigns placements.
func (r *Resolver) Resolve(def *gamemode.Definition, playtime int, players []*model.GamePlayer) {
	switch def.Mode {
	case model.ModeBR1v99, model.ModeBR4v96:
		r.battleRoyale(def, playtime, players)
	case model.ModeFFA:
		r.freeForAll(def, playtime, players)
	case model.ModeTDM:
		r.teamDeathmatch(def, playtime, players)
	case model.ModeDomination:
		r.domination(def, playtime, players)
	case model.ModeSAD:
		r.searchAndDestroy(def, playtime, players)
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// scale applies the shared rescale rule. Zero values get a half-point bump
// first so a rescale can still move them off zero.
func scale(v int, koef float64) int {
	if v == 0 {
		return roundInt(0.5 * koef)
	}
	return roundInt(float64(v) * koef)
}

func scaleTime(v, koef float64) float64 {
	if v == 0 {
		return float64(roundInt(0.5 * koef))
	}
	return float64(roundInt(v * koef))
}

// scaleOffense rescales the kill-linked stats by one shared ratio.
func scaleOffense(p *model.GamePlayer, koef float64) {
	p.Kills = scale(p.Kills, koef)
	p.DamageDealt = scale(p.DamageDealt, koef)
	p.Assists = scale(p.Assists, koef)
	p.Killstreak = scale(p.Killstreak, koef)
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 1
	}
	return num / den
}

// intRange returns a uniform integer in [lo, hi].
func (r *Resolver) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

func (r *Resolver) gauss(mean, sd float64) float64 {
	if sd <= 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: sd, Src: r.rng}.Rand()
}

func splitTeams(players []*model.GamePlayer) (team1, team2 []*model.GamePlayer) {
	for _, p := range players {
		if p.Team == 1 {
			team1 = append(team1, p)
		} else {
			team2 = append(team2, p)
		}
	}
	return team1, team2
}

func sortedByKillsDesc(players []*model.GamePlayer) []*model.GamePlayer {
	out := make([]*model.GamePlayer, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kills > out[j].Kills })
	return out
}

func teamKills(players []*model.GamePlayer) int {
	var sum int
	for _, p := range players {
		sum += p.Kills
	}
	return sum
}

// catchUpWeights favor the players furthest behind the team's normalized
// kill total; the +1 keeps every weight positive.
func catchUpWeights(sorted []*model.GamePlayer, teamNewKills int) ([]int, int) {
	weights := make([]int, len(sorted))
	var sum int
	for i, p := range sorted {
		weights[i] = teamNewKills - p.Kills + 1
		sum += weights[i]
	}
	return weights, sum
}

// applyDeaths scales a team's deaths so they sum to the opposing team's
// normalized kills, split by the opposing weight list.
func (r *Resolver) applyDeaths(playtime int, team []*model.GamePlayer, oppWeights []int, oppWeightSum, oppNewKills int, killsKoef float64, rederiveTime bool) {
	for i, p := range team {
		koef := 1.0
		if p.Deaths > 0 {
			koef = (float64(oppNewKills) * float64(oppWeights[i]) / float64(oppWeightSum)) / float64(p.Deaths)
		}
		p.Deaths = roundInt(float64(p.Deaths) * koef)
		p.DamageTaken = roundInt(float64(p.DamageTaken) * koef)
		if rederiveTime {
			r.rederiveTimeAlive(playtime, p, killsKoef)
		}
	}
}

// rederiveTimeAlive caps the longest life by the average life implied by the
// new death count.
func (r *Resolver) rederiveTimeAlive(playtime int, p *model.GamePlayer, killsKoef float64) {
	avg := float64(playtime)
	if p.Deaths > 0 {
		avg = float64(playtime) / float64(p.Deaths)
	}
	scaled := p.LongestTimeAlive * killsKoef
	if avg < scaled {
		p.LongestTimeAlive = float64(r.intRange(roundInt(avg), roundInt(scaled)))
	} else {
		p.LongestTimeAlive = float64(roundInt(scaled))
	}
}

// redistributeDeaths runs the cross-team catch-up redistribution in both
// directions.
func (r *Resolver) redistributeDeaths(playtime int, team1, team2 []*model.GamePlayer, killsKoef float64, team1NewKills, team2NewKills int, rederiveTime bool) {
	sorted1 := sortedByKillsDesc(team1)
	sorted2 := sortedByKillsDesc(team2)
	w1, sum1 := catchUpWeights(sorted1, team1NewKills)
	w2, sum2 := catchUpWeights(sorted2, team2NewKills)
	r.applyDeaths(playtime, sorted1, w2, sum2, team2NewKills, killsKoef, rederiveTime)
	r.applyDeaths(playtime, sorted2, w1, sum1, team1NewKills, killsKoef, rederiveTime)
}

func assignTeamPlacements(players []*model.GamePlayer, winner int) {
	for _, p := range players {
		switch {
		case winner == 0:
			p.Placement = 1
			p.IsTie = true
		case p.Team == winner:
			p.Placement = 1
			p.IsTie = false
		default:
			p.Placement = 2
			p.IsTie = false
		}
	}
}

func (r *Resolver) battleRoyale(def *gamemode.Definition, playtime int, players []*model.GamePlayer) {
	var allKills, allDeaths int
	for _, p := range players {
		allKills += p.Kills
		allDeaths += p.Deaths
	}
	killKoef := safeRatio(float64(def.KillCap), float64(allKills))
	deathKoef := safeRatio(float64(def.KillCap), float64(allDeaths))

	leader := players[0]
	for _, p := range players {
		if p.LongestTimeAlive > leader.LongestTimeAlive {
			leader = p
		}
	}
	timeKoef := safeRatio(float64(playtime), leader.LongestTimeAlive)

	for _, p := range players {
		p.LongestTimeAlive = scaleTime(p.LongestTimeAlive, timeKoef)
		p.Kills = scale(p.Kills, killKoef)
		p.DamageDealt = scale(p.DamageDealt, killKoef)
		p.DamageTaken = scale(p.DamageTaken, deathKoef)
		p.Assists = scale(p.Assists, killKoef)
		p.Killstreak = scale(p.Killstreak, killKoef)
	}

	if def.Mode == model.ModeBR1v99 {
		r.br1v99Placements(players, leader)
	} else {
		r.br4v96Placements(def, players, leader)
	}
}

// br1v99Placements ranks solo players by survival. Only the winner finishes
// without a death, and the runner-up's life is pinned just short of the
// winner's.
func (r *Resolver) br1v99Placements(players []*model.GamePlayer, leader *model.GamePlayer) {
	sorted := make([]*model.GamePlayer, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].LongestTimeAlive > sorted[j].LongestTimeAlive })

	for idx, p := range sorted {
		p.Placement = idx + 1
		p.Deaths = min(idx, 1)
		if idx == 1 {
			p.LongestTimeAlive = 0.99 * leader.LongestTimeAlive
		}
	}
}

// br4v96Placements ranks squads by their best survivor. Teammates close to
// their squad's best time share its fate.
func (r *Resolver) br4v96Placements(def *gamemode.Definition, players []*model.GamePlayer, leader *model.GamePlayer) {
	best := make(map[int]float64, def.TeamCount)
	for _, p := range players {
		if p.LongestTimeAlive > best[p.Team] {
			best[p.Team] = p.LongestTimeAlive
		}
	}

	teams := make([]int, 0, def.TeamCount)
	for team := 1; team <= def.TeamCount; team++ {
		teams = append(teams, team)
	}
	sort.SliceStable(teams, func(i, j int) bool { return best[teams[i]] > best[teams[j]] })

	placements := make(map[int]int, def.TeamCount)
	for idx, team := range teams {
		placements[team] = idx + 1
	}

	var secondBest float64
	for _, p := range players {
		if placements[p.Team] == 2 && p.LongestTimeAlive > secondBest {
			secondBest = p.LongestTimeAlive
		}
	}

	for _, p := range players {
		p.Placement = placements[p.Team]
		p.IsTie = false
		switch {
		case p.Placement == 1 && p.LongestTimeAlive/leader.LongestTimeAlive >= 0.85:
			p.LongestTimeAlive = leader.LongestTimeAlive
			p.Deaths = 0
		case p.Placement == 2 && secondBest > 0 && p.LongestTimeAlive/secondBest >= 0.85:
			p.LongestTimeAlive = (p.LongestTimeAlive / secondBest) * 0.99 * leader.LongestTimeAlive
			p.Deaths = 1
		default:
			p.Deaths = 1
		}
	}
}

func (r *Resolver) freeForAll(def *gamemode.Definition, playtime int, players []*model.GamePlayer) {
	most := players[0]
	for _, p := range players {
		if p.Kills > most.Kills {
			most = p
		}
	}

	gameKillCap := float64(def.KillCap)
	if len(players) > 1 {
		gameKillCap *= 0.8
	}
	killsKoef := safeRatio(gameKillCap, float64(most.Kills))

	for _, p := range players {
		scaleOffense(p, killsKoef)
	}

	var allKills int
	for _, p := range players {
		allKills += p.Kills
	}

	// Weights are drawn over a shuffled order and paired back positionally,
	// so the catch-up target lands on a random player.
	shuffled := make([]*model.GamePlayer, len(players))
	copy(shuffled, players)
	r.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	weights := make([]int, len(shuffled))
	var weightSum int
	for i, p := range shuffled {
		weights[i] = allKills - p.Kills + 1
		weightSum += weights[i]
	}

	for i, p := range players {
		koef := 1.0
		if p.Deaths > 0 {
			koef = (float64(allKills) * float64(weights[i]) / float64(weightSum)) / float64(p.Deaths)
		}
		p.Deaths = roundInt(float64(p.Deaths) * koef)
		p.DamageTaken = roundInt(float64(p.DamageTaken) * koef)
		r.rederiveTimeAlive(playtime, p, killsKoef)
	}

	sorted := sortedByKillsDesc(players)
	placement := 2
	firstCount := 0
	for _, p := range sorted {
		if float64(p.Kills) == gameKillCap {
			p.Placement = 1
			firstCount++
		} else {
			p.Placement = placement
			placement++
		}
	}
	for _, p := range sorted {
		p.IsTie = firstCount > 1 && float64(p.Kills) == gameKillCap
	}
}

func (r *Resolver) teamDeathmatch(def *gamemode.Definition, playtime int, players []*model.GamePlayer) {
	team1, team2 := splitTeams(players)
	t1Kills := teamKills(team1)
	t2Kills := teamKills(team2)

	var killsKoef float64
	winner := 0
	switch {
	case t1Kills > t2Kills:
		killsKoef = safeRatio(float64(def.KillCap), float64(t1Kills))
		winner = 1
	case t1Kills == t2Kills:
		killsKoef = safeRatio(float64(roundInt(float64(def.KillCap)*0.8)), float64(t1Kills))
	default:
		killsKoef = safeRatio(float64(def.KillCap), float64(t2Kills))
		winner = 2
	}

	for _, p := range players {
		scaleOffense(p, killsKoef)
	}

	t1New := roundInt(float64(t1Kills) * killsKoef)
	t2New := roundInt(float64(t2Kills) * killsKoef)
	r.redistributeDeaths(playtime, team1, team2, killsKoef, t1New, t2New, true)

	assignTeamPlacements(players, winner)
}

func (r *Resolver) domination(def *gamemode.Definition, playtime int, players []*model.GamePlayer) {
	team1, team2 := splitTeams(players)
	t1Kills := teamKills(team1)
	t2Kills := teamKills(team2)

	// Domination has no fixed kill cap; each game settles on its own.
	killCap := r.intRange(90, 135)
	var killsKoef float64
	if t1Kills >= t2Kills {
		killsKoef = safeRatio(float64(killCap), float64(t1Kills))
	} else {
		killsKoef = safeRatio(float64(killCap), float64(t2Kills))
	}

	for _, p := range players {
		scaleOffense(p, killsKoef)
	}

	t1New := roundInt(float64(t1Kills) * killsKoef)
	t2New := roundInt(float64(t2Kills) * killsKoef)
	r.redistributeDeaths(playtime, team1, team2, killsKoef, t1New, t2New, true)

	var t1Points, t2Points float64
	for _, p := range players {
		old := p.ObjectiveTime
		hi := roundInt(0.8 * float64(playtime))
		p.ObjectiveTime = clampInt(p.ObjectiveTime+15*p.Kills-20*p.Deaths, 10, hi)

		ratio := 1.0
		if old != 0 {
			ratio = float64(p.ObjectiveTime) / float64(old)
		}
		p.ContestingKills = roundInt(float64(p.Kills) * math.Min(0.5*ratio, 0.9))

		points := float64(p.Kills-p.ContestingKills) + 2*float64(p.ContestingKills) + 6*float64(p.ObjectiveTime)/10
		if p.Team == 1 {
			t1Points += points
		} else {
			t2Points += points
		}
	}

	t1Total := roundInt(t1Points / float64(def.TeamSize))
	t2Total := roundInt(t2Points / float64(def.TeamSize))

	var pointKoef float64
	winner := 0
	switch {
	case t1Total > t2Total:
		pointKoef = safeRatio(float64(def.PointLimit), float64(t1Total))
		winner = 1
	case t1Total == t2Total:
		pointKoef = safeRatio(float64(def.PointLimit)*0.8, float64(t1Total))
	default:
		pointKoef = safeRatio(float64(def.PointLimit), float64(t2Total))
		winner = 2
	}

	for _, p := range players {
		points := t1Total
		if p.Team != 1 {
			points = t2Total
		}
		p.DominationPoints = pointKoef * float64(points)
	}
	assignTeamPlacements(players, winner)
}

func (r *Resolver) searchAndDestroy(def *gamemode.Definition, playtime int, players []*model.GamePlayer) {
	team1, team2 := splitTeams(players)
	t1Kills := teamKills(team1)
	t2Kills := teamKills(team2)

	capBase := float64(def.KillCap)
	killCap := math.Max(r.gauss(capBase, 6), capBase-15)
	var killsKoef float64
	if t1Kills >= t2Kills {
		killsKoef = safeRatio(killCap, float64(t1Kills))
	} else {
		killsKoef = safeRatio(killCap, float64(t2Kills))
	}

	for _, p := range players {
		scaleOffense(p, killsKoef)
	}

	t1New := roundInt(float64(t1Kills) * killsKoef)
	t2New := roundInt(float64(t2Kills) * killsKoef)
	r.redistributeDeaths(playtime, team1, team2, killsKoef, t1New, t2New, false)

	var t1Deaths, t2Deaths int
	for _, p := range team1 {
		t1Deaths += p.Deaths
	}
	for _, p := range team2 {
		t2Deaths += p.Deaths
	}
	allDeaths := t1Deaths + t2Deaths

	var t1Rounds, t2Rounds int
	if allDeaths > 0 {
		t1Rounds = roundInt(float64(t1Deaths) / float64(allDeaths) * 30)
		t2Rounds = roundInt(float64(t2Deaths) / float64(allDeaths) * 30)
	}

	winner := 0
	if t1Rounds > t2Rounds {
		winner = 1
	} else if t1Rounds < t2Rounds {
		winner = 2
	}

	for _, p := range players {
		if p.Team == 1 {
			p.RoundsWon = t1Rounds
		} else {
			p.RoundsWon = t2Rounds
		}
		p.RoundsLost = 30 - p.RoundsWon
		r.rederiveTimeAlive(playtime, p, killsKoef)
	}
	assignTeamPlacements(players, winner)
}

// Finalize recomputes the stats derived from the normalized counters. Run
// once per player after placement and value-player selection.
func Finalize(gp *model.GamePlayer, playtime int) {
	if gp.Accuracy > 0 {
		gp.DamageMissed = roundInt(float64(gp.DamageDealt)/gp.Accuracy - float64(gp.DamageDealt))
	} else {
		gp.DamageMissed = 0
	}

	totalDamage := gp.DamageMissed + gp.DamageDealt
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

	if gp.Placement == 0 {
		gp.Placement = 1
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
