package model

import "time"

// Mode identifies a simulated game mode.
type Mode string

const (
	ModeTDM        Mode = "TDM"
	ModeFFA        Mode = "FFA"
	ModeDomination Mode = "Domination"
	ModeBR1v99     Mode = "BR_1V99"
	ModeBR4v96     Mode = "BR_4V96"
	ModeSAD        Mode = "SAD"
)

// BattleRoyale reports whether the mode has no respawns and ranks by survival.
func (m Mode) BattleRoyale() bool {
	return m == ModeBR1v99 || m == ModeBR4v96
}

// Attr names a tracked per-game statistic. Weight tables and the rating
// engine's delta loops are indexed by Attr instead of string keys.
type Attr int

const (
	AttrKills Attr = iota
	AttrDeaths
	AttrAssists
	AttrDamageDealt
	AttrDamageTaken
	AttrDamageMissed
	AttrHeadshotDamage
	AttrTorsoDamage
	AttrLegDamage
	AttrAccuracy
	AttrHeadshotAccuracy
	AttrTorsoAccuracy
	AttrLegAccuracy
	AttrContestingKills
	AttrObjectiveTime
	AttrLongestTimeAlive
	AttrKillsPerMinute
	AttrDeathsPerMinute
	AttrAssistsPerMinute
	AttrDamageDealtPerMinute
	AttrDamageTakenPerMinute
	AttrKillstreak
	AttrWinStreak
	AttrWinLossRatio
	AttrKDRatio
	AttrDamageRatio
	AttrIsTie
)

// Player is a simulated account. Players sharing a non-solo party label are
// placed on the same team in every game their party anchor plays.
type Player struct {
	ID        int64
	Name      string
	PartyName string
}

// Game is one simulated match.
type Game struct {
	ID            int64
	Mode          Mode
	CreatedAt     time.Time
	Playtime      int // seconds
	TeamCount     int
	TeamSize      int
	KillCap       int
	PointLimit    int
	RoundWinLimit int
	PlayerCount   int
}

// GamePlayer is one player's participation in one game: synthesized raw
// stats, mode-normalized results, and pre/post ratings. Team is 1-based.
type GamePlayer struct {
	GameID    int64
	PlayerID  int64
	CreatedAt time.Time
	Team      int
	PartyName string

	Kills      int
	Deaths     int
	Assists    int
	Killstreak int

	DamageDealt  int
	DamageTaken  int
	DamageMissed int

	HeadshotDamage int
	TorsoDamage    int
	LegDamage      int

	Accuracy         float64
	HeadshotAccuracy float64
	TorsoAccuracy    float64
	LegAccuracy      float64

	KillsPerMinute       float64
	DeathsPerMinute      float64
	AssistsPerMinute     float64
	DamageDealtPerMinute float64
	DamageTakenPerMinute float64

	ContestingKills  int
	ObjectiveTime    int
	LongestTimeAlive float64

	DominationPoints float64
	RoundsWon        int
	RoundsLost       int

	Placement int
	IsTie     bool
	IsMVP     bool
	IsLVP     bool

	TrueRatingBefore float64
	TrueRatingAfter  float64
	EloBefore        float64
	EloAfter         float64
	GlickoBefore     float64
	GlickoAfter      float64
	GlickoRDBefore   float64
	GlickoRDAfter    float64
	TSMuBefore       float64
	TSMuAfter        float64
	TSSigmaBefore    float64
	TSSigmaAfter     float64
}

// KDRatio returns kills per death, or plain kills when the player never died.
func (g *GamePlayer) KDRatio() float64 {
	if g.Deaths == 0 {
		return 0
	}
	return float64(g.Kills) / float64(g.Deaths)
}

// DamageRatio returns damage dealt per point of damage taken.
func (g *GamePlayer) DamageRatio() float64 {
	if g.DamageTaken == 0 {
		return 0
	}
	return float64(g.DamageDealt) / float64(g.DamageTaken)
}

// Stat returns the game value for a delta-loop attribute.
func (g *GamePlayer) Stat(a Attr) float64 {
	switch a {
	case AttrKills:
		return float64(g.Kills)
	case AttrDeaths:
		return float64(g.Deaths)
	case AttrAssists:
		return float64(g.Assists)
	case AttrDamageDealt:
		return float64(g.DamageDealt)
	case AttrDamageTaken:
		return float64(g.DamageTaken)
	case AttrDamageMissed:
		return float64(g.DamageMissed)
	case AttrHeadshotDamage:
		return float64(g.HeadshotDamage)
	case AttrTorsoDamage:
		return float64(g.TorsoDamage)
	case AttrLegDamage:
		return float64(g.LegDamage)
	case AttrAccuracy:
		return g.Accuracy
	case AttrHeadshotAccuracy:
		return g.HeadshotAccuracy
	case AttrTorsoAccuracy:
		return g.TorsoAccuracy
	case AttrLegAccuracy:
		return g.LegAccuracy
	case AttrContestingKills:
		return float64(g.ContestingKills)
	case AttrObjectiveTime:
		return float64(g.ObjectiveTime)
	case AttrLongestTimeAlive:
		return g.LongestTimeAlive
	case AttrKillsPerMinute:
		return g.KillsPerMinute
	case AttrDeathsPerMinute:
		return g.DeathsPerMinute
	case AttrAssistsPerMinute:
		return g.AssistsPerMinute
	case AttrDamageDealtPerMinute:
		return g.DamageDealtPerMinute
	case AttrDamageTakenPerMinute:
		return g.DamageTakenPerMinute
	case AttrKillstreak:
		return float64(g.Killstreak)
	case AttrKDRatio:
		return g.KDRatio()
	case AttrDamageRatio:
		return g.DamageRatio()
	default:
		return 0
	}
}

// PlayerModeStats is the running per-player aggregate for one mode.
type PlayerModeStats struct {
	PlayerID int64
	Mode     Mode

	TrueRating   float64
	EloRating    float64
	GlickoRating float64
	GlickoRD     float64
	TSMu         float64
	TSSigma      float64

	TotalGamesPlayed int
	TotalWins        int
	TotalLosses      int
	TotalTies        int
	WinStreak        int

	TotalKills        int
	TotalDeaths       int
	TotalAssists      int
	TotalDamageDealt  int
	TotalDamageTaken  int
	TotalDamageMissed int

	TotalHeadshotDamage int
	TotalTorsoDamage    int
	TotalLegDamage      int

	TotalAccuracy         float64
	TotalHeadshotAccuracy float64
	TotalTorsoAccuracy    float64
	TotalLegAccuracy      float64

	TotalContestingKills  int
	TotalObjectiveTime    int
	TotalLongestTimeAlive float64

	TotalKillsPerMinute       float64
	TotalDeathsPerMinute      float64
	TotalAssistsPerMinute     float64
	TotalDamageDealtPerMinute float64
	TotalDamageTakenPerMinute float64

	TotalKDRatio     float64
	TotalDamageRatio float64
	WinLossRatio     float64

	BestKillstreak int

	AvgKills        float64
	AvgDeaths       float64
	AvgAssists      float64
	AvgDamageDealt  float64
	AvgDamageTaken  float64
	AvgDamageMissed float64

	AvgHeadshotDamage float64
	AvgTorsoDamage    float64
	AvgLegDamage      float64

	AvgAccuracy         float64
	AvgHeadshotAccuracy float64
	AvgTorsoAccuracy    float64
	AvgLegAccuracy      float64

	AvgContestingKills  float64
	AvgObjectiveTime    float64
	AvgLongestTimeAlive float64

	AvgKillsPerMinute       float64
	AvgDeathsPerMinute      float64
	AvgAssistsPerMinute     float64
	AvgDamageDealtPerMinute float64
	AvgDamageTakenPerMinute float64

	LastPlayed time.Time
}

// Avg returns the player's historical baseline for a delta-loop attribute.
func (s *PlayerModeStats) Avg(a Attr) float64 {
	switch a {
	case AttrKills:
		return s.AvgKills
	case AttrDeaths:
		return s.AvgDeaths
	case AttrAssists:
		return s.AvgAssists
	case AttrDamageDealt:
		return s.AvgDamageDealt
	case AttrDamageTaken:
		return s.AvgDamageTaken
	case AttrDamageMissed:
		return s.AvgDamageMissed
	case AttrHeadshotDamage:
		return s.AvgHeadshotDamage
	case AttrTorsoDamage:
		return s.AvgTorsoDamage
	case AttrLegDamage:
		return s.AvgLegDamage
	case AttrAccuracy:
		return s.AvgAccuracy
	case AttrHeadshotAccuracy:
		return s.AvgHeadshotAccuracy
	case AttrTorsoAccuracy:
		return s.AvgTorsoAccuracy
	case AttrLegAccuracy:
		return s.AvgLegAccuracy
	case AttrContestingKills:
		return s.AvgContestingKills
	case AttrObjectiveTime:
		return s.AvgObjectiveTime
	case AttrLongestTimeAlive:
		return s.AvgLongestTimeAlive
	case AttrKillsPerMinute:
		return s.AvgKillsPerMinute
	case AttrDeathsPerMinute:
		return s.AvgDeathsPerMinute
	case AttrAssistsPerMinute:
		return s.AvgAssistsPerMinute
	case AttrDamageDealtPerMinute:
		return s.AvgDamageDealtPerMinute
	case AttrDamageTakenPerMinute:
		return s.AvgDamageTakenPerMinute
	default:
		return 0
	}
}
