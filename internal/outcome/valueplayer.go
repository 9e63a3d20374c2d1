package outcome

import (
	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
)

// vpAttrs are the nine value-player scoring attributes. invert marks the
// ones where the best value is the minimum.
var vpAttrs = [...]struct {
	attr   model.Attr
	invert bool
}{
	{model.AttrKills, false},
	{model.AttrDeaths, true},
	{model.AttrKillstreak, false},
	{model.AttrLongestTimeAlive, false},
	{model.AttrContestingKills, false},
	{model.AttrObjectiveTime, false},
	{model.AttrAccuracy, false},
	{model.AttrDamageDealt, false},
	{model.AttrDamageTaken, true},
}

// SelectValuePlayers flags the game's MVP and LVP. The MVP holds the highest
// total value-player weight across the attributes it leads; weight ties are
// broken by a strict attribute-majority comparison. The LVP mirrors the
// computation over the worst holders and never coincides with the MVP.
func SelectValuePlayers(def *gamemode.Definition, players []*model.GamePlayer) {
	mvpHolders := attributeHolders(players, false)

	var mvp *model.GamePlayer
	var mvpWeight float64
	for _, p := range players {
		w := holderWeight(def, mvpHolders, p.PlayerID)
		switch {
		case mvpWeight < w:
			mvp, mvpWeight = p, w
		case mvpWeight == w:
			if mvp == nil {
				mvp = p
				continue
			}
			if outperforms(p, mvp, false) {
				mvp, mvpWeight = p, w
			}
		}
	}

	lvpHolders := attributeHolders(players, true)

	var lvp *model.GamePlayer
	var lvpWeight float64
	for _, p := range players {
		if mvp != nil && p.PlayerID == mvp.PlayerID {
			continue
		}
		w := holderWeight(def, lvpHolders, p.PlayerID)
		switch {
		case lvpWeight < w:
			lvp, lvpWeight = p, w
		case lvpWeight == w:
			if lvp == nil {
				lvp = p
				continue
			}
			if outperforms(p, lvp, true) {
				lvp, lvpWeight = p, w
			}
		}
	}

	for _, p := range players {
		p.IsMVP = mvp != nil && p.PlayerID == mvp.PlayerID
		p.IsLVP = lvp != nil && p.PlayerID == lvp.PlayerID
	}
}

// attributeHolders picks, per attribute, the first player holding the
// extremal value. worst flips the direction for the LVP computation.
func attributeHolders(players []*model.GamePlayer, worst bool) map[model.Attr]int64 {
	holders := make(map[model.Attr]int64, len(vpAttrs))
	for _, a := range vpAttrs {
		wantMin := a.invert != worst
		best := players[0]
		for _, p := range players[1:] {
			if wantMin {
				if p.Stat(a.attr) < best.Stat(a.attr) {
					best = p
				}
			} else if p.Stat(a.attr) > best.Stat(a.attr) {
				best = p
			}
		}
		holders[a.attr] = best.PlayerID
	}
	return holders
}

func holderWeight(def *gamemode.Definition, holders map[model.Attr]int64, playerID int64) float64 {
	var sum float64
	for _, a := range vpAttrs {
		if holders[a.attr] == playerID {
			sum += def.VPWeights[a.attr]
		}
	}
	return sum
}

// outperforms reports whether the challenger beats the incumbent on a strict
// majority of the scoring attributes. worse compares in the losing direction
// for LVP ties.
func outperforms(challenger, incumbent *model.GamePlayer, worse bool) bool {
	count := 0
	for _, a := range vpAttrs {
		lowerWins := a.invert != worse
		if lowerWins {
			if challenger.Stat(a.attr) < incumbent.Stat(a.attr) {
				count++
			}
		} else if challenger.Stat(a.attr) > incumbent.Stat(a.attr) {
			count++
		}
	}
	return float64(count) > float64(len(vpAttrs))/2
}
