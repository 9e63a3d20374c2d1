package gamemode

import "github.com/ldruskis/go-rating-sim/internal/model"

// Param is a Gaussian sampling parameter for one attribute.
type Param struct {
	Mean float64
	SD   float64
}

// TierParams is one skill-tier baseline: every attribute the synthesizer
// draws, as mean/stddev pairs. Three of these (low/med/high) anchor the
// rating interpolation at 200, 1300 and 3000.
type TierParams struct {
	GamesPlayed Param
	Wins        Param
	Losses      Param
	Ties        Param
	WinStreak   Param

	Kills            Param
	Deaths           Param
	Assists          Param
	Accuracy         Param
	DamageMissed     Param
	HeadshotAccuracy Param
	TorsoAccuracy    Param
	BestKillstreak   Param

	LongestTimeAlive Param
	ContestingKills  Param
	ObjectiveTime    Param
}

// Definition is the static configuration of one game mode.
type Definition struct {
	Mode      model.Mode
	TeamSize  int
	TeamCount int

	TimeLimitMean     int // seconds
	TimeLimitVariance int // seconds

	KillCap       int // 0 when the mode is not kill-capped
	PointLimit    int
	RoundWinLimit int

	BaseRate float64 // base learning rate for the true-rating update

	// GroupSizes are the allowed party sizes (half and full premade).
	GroupSizes []int

	// VPWeights score the nine MVP/LVP attributes.
	VPWeights map[model.Attr]float64

	// DeltaWeights scale each attribute's deviation in the rating update.
	DeltaWeights map[model.Attr]float64

	Low  TierParams
	Med  TierParams
	High TierParams
}

// PlayerCount returns the number of participants in one game.
func (d *Definition) PlayerCount() int {
	return d.TeamSize * d.TeamCount
}

// Interpolation anchors: a rating of 200 plays like the low tier, 1300 like
// the medium tier, 3000 like the high tier. Outside the anchors the adjacent
// slope extrapolates, so the mapping is continuous everywhere.
const (
	AnchorLow  = 200.0
	AnchorMed  = 1300.0
	AnchorHigh = 3000.0
)

func lerp(low, med, high, rating float64) float64 {
	var v float64
	if rating <= AnchorMed {
		v = low + (rating-AnchorLow)*(med-low)/(AnchorMed-AnchorLow)
	} else {
		v = med + (rating-AnchorMed)*(high-med)/(AnchorHigh-AnchorMed)
	}
	if v < 0 {
		return 0
	}
	return v
}

func lerpParam(low, med, high Param, rating float64) Param {
	return Param{
		Mean: lerp(low.Mean, med.Mean, high.Mean, rating),
		SD:   lerp(low.SD, med.SD, high.SD, rating),
	}
}

// Interpolate produces the tier baseline for one continuous rating. When the
// interpolated mean games played is zero, the history-shaped counters (games,
// wins, losses, ties, win streak) are forced to zero as well: a population
// that never played cannot have a win history.
func (d *Definition) Interpolate(rating float64) TierParams {
	p := TierParams{
		GamesPlayed:      lerpParam(d.Low.GamesPlayed, d.Med.GamesPlayed, d.High.GamesPlayed, rating),
		Wins:             lerpParam(d.Low.Wins, d.Med.Wins, d.High.Wins, rating),
		Losses:           lerpParam(d.Low.Losses, d.Med.Losses, d.High.Losses, rating),
		Ties:             lerpParam(d.Low.Ties, d.Med.Ties, d.High.Ties, rating),
		WinStreak:        lerpParam(d.Low.WinStreak, d.Med.WinStreak, d.High.WinStreak, rating),
		Kills:            lerpParam(d.Low.Kills, d.Med.Kills, d.High.Kills, rating),
		Deaths:           lerpParam(d.Low.Deaths, d.Med.Deaths, d.High.Deaths, rating),
		Assists:          lerpParam(d.Low.Assists, d.Med.Assists, d.High.Assists, rating),
		Accuracy:         lerpParam(d.Low.Accuracy, d.Med.Accuracy, d.High.Accuracy, rating),
		DamageMissed:     lerpParam(d.Low.DamageMissed, d.Med.DamageMissed, d.High.DamageMissed, rating),
		HeadshotAccuracy: lerpParam(d.Low.HeadshotAccuracy, d.Med.HeadshotAccuracy, d.High.HeadshotAccuracy, rating),
		TorsoAccuracy:    lerpParam(d.Low.TorsoAccuracy, d.Med.TorsoAccuracy, d.High.TorsoAccuracy, rating),
		BestKillstreak:   lerpParam(d.Low.BestKillstreak, d.Med.BestKillstreak, d.High.BestKillstreak, rating),
		LongestTimeAlive: lerpParam(d.Low.LongestTimeAlive, d.Med.LongestTimeAlive, d.High.LongestTimeAlive, rating),
		ContestingKills:  lerpParam(d.Low.ContestingKills, d.Med.ContestingKills, d.High.ContestingKills, rating),
		ObjectiveTime:    lerpParam(d.Low.ObjectiveTime, d.Med.ObjectiveTime, d.High.ObjectiveTime, rating),
	}
	if p.GamesPlayed.Mean == 0 {
		p.GamesPlayed = Param{}
		p.Wins = Param{}
		p.Losses = Param{}
		p.Ties = Param{}
		p.WinStreak = Param{}
	}
	return p
}

// Baseline returns the interpolated population average for a rank-average
// delta attribute.
func (p TierParams) Baseline(a model.Attr) float64 {
	switch a {
	case model.AttrKills:
		return p.Kills.Mean
	case model.AttrDeaths:
		return p.Deaths.Mean
	case model.AttrAssists:
		return p.Assists.Mean
	case model.AttrAccuracy:
		return p.Accuracy.Mean
	case model.AttrHeadshotAccuracy:
		return p.HeadshotAccuracy.Mean
	case model.AttrTorsoAccuracy:
		return p.TorsoAccuracy.Mean
	case model.AttrLongestTimeAlive:
		return p.LongestTimeAlive.Mean
	case model.AttrContestingKills:
		return p.ContestingKills.Mean
	case model.AttrObjectiveTime:
		return p.ObjectiveTime.Mean
	case model.AttrKillstreak:
		return p.BestKillstreak.Mean
	case model.AttrWinStreak:
		return p.WinStreak.Mean
	default:
		return 0
	}
}

// ByMode looks up a mode definition.
func ByMode(m model.Mode) (*Definition, bool) {
	for _, d := range All {
		if d.Mode == m {
			return d, true
		}
	}
	return nil, false
}
