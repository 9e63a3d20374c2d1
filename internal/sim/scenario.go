package sim

import (
	"fmt"
	"math"

	"github.com/ldruskis/go-rating-sim/internal/model"
	"github.com/ldruskis/go-rating-sim/internal/rating"
)

// Phase is one leg of a scripted reference scenario: play Games games with
// the reference player's stats scaled by Coef and any party members' stats
// scaled by PartyCoef. GapDays shifts the reference player's last-played
// time back once at the start of the phase, simulating a break.
type Phase struct {
	Coef      float64
	Games     int
	PartyCoef float64
	GapDays   int
	KFactor   float64
}

// ReferencePlayerCount is how many leading player ids run scripted
// scenarios. Every other player only ever appears as a matchmade opponent.
const ReferencePlayerCount = 4

// ReferenceRating is the starting matchmaking rating for scenario players.
const ReferenceRating = 600.0

func phase(coef float64, games int) Phase {
	return Phase{Coef: coef, Games: games, PartyCoef: 1.0, KFactor: rating.EloKFactor}
}

func gapPhase(coef float64, games, gapDays int) Phase {
	p := phase(coef, games)
	p.GapDays = gapDays
	return p
}

// Scenarios returns the scripted phases per reference player id:
//
//	1 — rise then fall
//	2 — rise then gentle decline
//	3 — rise, decline, then long monthly breaks between short bursts
//	4 — rise, collapse, then a dominant comeback
func Scenarios() map[int64][]Phase {
	skillGap := []Phase{phase(1.6, 133), phase(0.91, 133)}
	for i := 0; i < 30; i++ {
		skillGap = append(skillGap, gapPhase(0.91, 4, 30))
	}

	return map[int64][]Phase{
		1: {phase(1.6, 200), phase(0.8, 200)},
		2: {phase(1.6, 200), phase(0.91, 200)},
		3: skillGap,
		4: {phase(1.6, 133), phase(0.2, 133), phase(1.99, 133)},
	}
}

// partyRanges maps consecutive player id ranges [lo, hi) to shared party
// names, pairing each scenario with a half-size and a full-size party.
var partyRanges = []struct {
	lo, hi int64
	name   string
}{
	{5, 8, "linear_increase_decrease_half"},
	{8, 14, "linear_increase_decrease_full"},
	{14, 17, "increase_then_constant_half"},
	{17, 23, "increase_then_constant_full"},
	{23, 26, "skill_gap_half"},
	{26, 32, "skill_gap_full"},
	{32, 35, "huge_fall_then_jump_half"},
	{35, 41, "huge_fall_then_jump_full"},
}

// PartyName returns the party label for a player id. Players outside the
// scripted party ranges get a solo party of their own.
func PartyName(id int64) string {
	for _, r := range partyRanges {
		if id >= r.lo && id < r.hi {
			return r.name
		}
	}
	return fmt.Sprintf("Party_%d", id)
}

// SoloParty reports whether the party label is the player's own solo party.
func SoloParty(id int64, party string) bool {
	return party == fmt.Sprintf("Party_%d", id)
}

// koefs returns the positive and negative stat multipliers for one
// participant of a scenario game. The reference player is pushed by Coef,
// party members by PartyCoef, and everyone else is nudged the opposite way
// so the reference's trend stands out against the lobby.
func (p Phase) koefs(playerID, refID int64, inParty bool) (koef, negative float64) {
	koef, negative = 1.0, 1.0
	if p.Coef != 1.0 {
		if p.Coef > 1.0 {
			koef, negative = 0.95, 1.05
		} else {
			koef, negative = 1.05, 0.95
		}
	}
	switch {
	case playerID == refID:
		koef = p.Coef
		negative = 1.0 + (1.0 - p.Coef)
	case inParty:
		koef = p.PartyCoef
		negative = 1.0 + (1.0 - p.PartyCoef)
	}
	return koef, negative
}

func scaleStat(v int, koef float64) int {
	if v == 0 {
		return int(math.Round(0.5 * koef))
	}
	return int(math.Round(float64(v) * koef))
}

func scaleAccuracy(v, bump, koef float64) float64 {
	if v == 0 {
		return (v + bump) * koef
	}
	return v * koef
}

// applyKoefs skews a participant's raw stats before outcome normalization.
// Zero-valued stats get a small bump first so multipliers have something to
// act on.
func applyKoefs(gp *model.GamePlayer, koef, negative float64) {
	gp.Accuracy = scaleAccuracy(gp.Accuracy, 0.1, koef)
	gp.Kills = scaleStat(gp.Kills, koef)
	gp.Deaths = scaleStat(gp.Deaths, negative)
	gp.Assists = scaleStat(gp.Assists, koef)
	gp.DamageDealt = scaleStat(gp.DamageDealt, koef)
	gp.DamageTaken = scaleStat(gp.DamageTaken, negative)
	gp.Killstreak = scaleStat(gp.Killstreak, koef)
	gp.HeadshotAccuracy = scaleAccuracy(gp.HeadshotAccuracy, 0.033, koef)
	gp.TorsoAccuracy = scaleAccuracy(gp.TorsoAccuracy, 0.034, koef)
	gp.LegAccuracy = scaleAccuracy(gp.LegAccuracy, 0.033, koef)
	gp.ObjectiveTime = scaleStat(gp.ObjectiveTime, koef)
	if gp.LongestTimeAlive == 0 {
		gp.LongestTimeAlive = math.Round(0.5 * koef)
	} else {
		gp.LongestTimeAlive = math.Round(gp.LongestTimeAlive * koef)
	}
}
