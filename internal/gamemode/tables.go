package gamemode

import "github.com/ldruskis/go-rating-sim/internal/model"

// All lists every configured mode, in simulation order.
var All = []*Definition{tdm, ffa, domination, br1v99, br4v96, sad}

var tdm = &Definition{
	Mode:              model.ModeTDM,
	TeamSize:          6,
	TeamCount:         2,
	TimeLimitMean:     600,
	TimeLimitVariance: 120,
	KillCap:           50,
	BaseRate:          20.0,
	GroupSizes:        []int{3, 6},
	VPWeights: map[model.Attr]float64{
		model.AttrKills:            1.00,
		model.AttrDeaths:           0.95,
		model.AttrKillstreak:       0.78,
		model.AttrLongestTimeAlive: 0.10,
		model.AttrContestingKills:  0.00,
		model.AttrObjectiveTime:    0.00,
		model.AttrAccuracy:         0.80,
		model.AttrDamageDealt:      0.90,
		model.AttrDamageTaken:      0.84,
	},
	DeltaWeights: map[model.Attr]float64{
		model.AttrKills:                1.00,
		model.AttrDeaths:               1.00,
		model.AttrAssists:              0.10,
		model.AttrDamageDealt:          0.90,
		model.AttrDamageTaken:          0.90,
		model.AttrDamageMissed:         0.10,
		model.AttrHeadshotDamage:       0.50,
		model.AttrTorsoDamage:          0.40,
		model.AttrLegDamage:            0.30,
		model.AttrAccuracy:             0.80,
		model.AttrHeadshotAccuracy:     0.50,
		model.AttrTorsoAccuracy:        0.40,
		model.AttrLegAccuracy:          0.30,
		model.AttrContestingKills:      0.00,
		model.AttrObjectiveTime:        0.00,
		model.AttrLongestTimeAlive:     0.10,
		model.AttrKillsPerMinute:       0.95,
		model.AttrDeathsPerMinute:      0.95,
		model.AttrAssistsPerMinute:     0.10,
		model.AttrDamageDealtPerMinute: 0.85,
		model.AttrDamageTakenPerMinute: 0.85,
		model.AttrKDRatio:              0.95,
		model.AttrDamageRatio:          0.95,
		model.AttrKillstreak:           0.80,
		model.AttrWinStreak:            1.00,
		model.AttrWinLossRatio:         1.00,
		model.AttrIsTie:                1.00,
	},
	Low: TierParams{
		GamesPlayed:      Param{50, 10},
		Wins:             Param{8, 3},
		Losses:           Param{40, 10},
		Ties:             Param{2, 1},
		WinStreak:        Param{2, 1},
		Kills:            Param{8, 3},
		Deaths:           Param{10, 3},
		Assists:          Param{1.0, 0.5},
		Accuracy:         Param{0.18, 0.01},
		DamageMissed:     Param{3400, 300},
		HeadshotAccuracy: Param{0.06, 0.005},
		TorsoAccuracy:    Param{0.08, 0.007},
		BestKillstreak:   Param{3, 1},
		LongestTimeAlive: Param{35, 15},
	},
	Med: TierParams{
		GamesPlayed:      Param{200, 50},
		Wins:             Param{80, 20},
		Losses:           Param{110, 30},
		Ties:             Param{10, 5},
		WinStreak:        Param{5, 2},
		Kills:            Param{15, 5},
		Deaths:           Param{15, 5},
		Assists:          Param{1.5, 0.7},
		Accuracy:         Param{0.25, 0.015},
		DamageMissed:     Param{4000, 500},
		HeadshotAccuracy: Param{0.08, 0.007},
		TorsoAccuracy:    Param{0.11, 0.01},
		BestKillstreak:   Param{5, 2},
		LongestTimeAlive: Param{55, 20},
	},
	High: TierParams{
		GamesPlayed:      Param{1000, 200},
		Wins:             Param{600, 100},
		Losses:           Param{350, 80},
		Ties:             Param{50, 10},
		WinStreak:        Param{8, 3},
		Kills:            Param{25, 7},
		Deaths:           Param{19, 6},
		Assists:          Param{2.0, 1.0},
		Accuracy:         Param{0.36, 0.02},
		DamageMissed:     Param{4200, 400},
		HeadshotAccuracy: Param{0.15, 0.015},
		TorsoAccuracy:    Param{0.16, 0.02},
		BestKillstreak:   Param{10, 3},
		LongestTimeAlive: Param{80, 25},
	},
}

var ffa = &Definition{
	Mode:              model.ModeFFA,
	TeamSize:          1,
	TeamCount:         12,
	TimeLimitMean:     600,
	TimeLimitVariance: 120,
	KillCap:           50,
	BaseRate:          20.0,
	VPWeights:         tdm.VPWeights,
	DeltaWeights:      tdm.DeltaWeights,
	Low: TierParams{
		GamesPlayed:      Param{30, 10},
		Wins:             Param{3, 2},
		Losses:           Param{27, 8},
		WinStreak:        Param{1, 1},
		Kills:            Param{5, 3},
		Deaths:           Param{12, 5},
		Accuracy:         Param{0.18, 0.01},
		DamageMissed:     Param{2200, 500},
		HeadshotAccuracy: Param{0.06, 0.005},
		TorsoAccuracy:    Param{0.08, 0.007},
		BestKillstreak:   Param{2, 1},
		LongestTimeAlive: Param{30, 13},
	},
	Med: TierParams{
		GamesPlayed:      Param{150, 40},
		Wins:             Param{50, 15},
		Losses:           Param{90, 25},
		WinStreak:        Param{5, 2},
		Kills:            Param{13, 4},
		Deaths:           Param{13, 4},
		Accuracy:         Param{0.25, 0.015},
		DamageMissed:     Param{3900, 600},
		HeadshotAccuracy: Param{0.08, 0.007},
		TorsoAccuracy:    Param{0.11, 0.01},
		BestKillstreak:   Param{4, 1.5},
		LongestTimeAlive: Param{48, 17},
	},
	High: TierParams{
		GamesPlayed:      Param{800, 150},
		Wins:             Param{400, 80},
		Losses:           Param{350, 70},
		WinStreak:        Param{8, 3},
		Kills:            Param{25, 8},
		Deaths:           Param{20, 6},
		Accuracy:         Param{0.36, 0.02},
		DamageMissed:     Param{4200, 400},
		HeadshotAccuracy: Param{0.15, 0.015},
		TorsoAccuracy:    Param{0.16, 0.02},
		BestKillstreak:   Param{6, 2},
		LongestTimeAlive: Param{70, 22},
	},
}

var domination = &Definition{
	Mode:              model.ModeDomination,
	TeamSize:          6,
	TeamCount:         2,
	TimeLimitMean:     1020,
	TimeLimitVariance: 180,
	PointLimit:        200,
	BaseRate:          20.0,
	GroupSizes:        []int{3, 6},
	VPWeights: map[model.Attr]float64{
		model.AttrKills:            0.54,
		model.AttrDeaths:           0.48,
		model.AttrKillstreak:       0.45,
		model.AttrLongestTimeAlive: 0.40,
		model.AttrContestingKills:  0.80,
		model.AttrObjectiveTime:    1.00,
		model.AttrAccuracy:         0.50,
		model.AttrDamageDealt:      0.59,
		model.AttrDamageTaken:      0.47,
	},
	DeltaWeights: map[model.Attr]float64{
		model.AttrKills:                0.55,
		model.AttrDeaths:               0.50,
		model.AttrAssists:              0.10,
		model.AttrDamageDealt:          0.60,
		model.AttrDamageTaken:          0.50,
		model.AttrDamageMissed:         0.10,
		model.AttrHeadshotDamage:       0.40,
		model.AttrTorsoDamage:          0.35,
		model.AttrLegDamage:            0.20,
		model.AttrAccuracy:             0.50,
		model.AttrHeadshotAccuracy:     0.40,
		model.AttrTorsoAccuracy:        0.35,
		model.AttrLegAccuracy:          0.20,
		model.AttrContestingKills:      0.80,
		model.AttrObjectiveTime:        1.00,
		model.AttrLongestTimeAlive:     0.40,
		model.AttrKillsPerMinute:       0.50,
		model.AttrDeathsPerMinute:      0.45,
		model.AttrAssistsPerMinute:     0.10,
		model.AttrDamageDealtPerMinute: 0.55,
		model.AttrDamageTakenPerMinute: 0.45,
		model.AttrKDRatio:              0.50,
		model.AttrDamageRatio:          0.50,
		model.AttrKillstreak:           0.45,
		model.AttrWinStreak:            1.00,
		model.AttrWinLossRatio:         1.00,
		model.AttrIsTie:                1.00,
	},
	Low: TierParams{
		GamesPlayed:      Param{60, 15},
		Wins:             Param{20, 8},
		Losses:           Param{40, 15},
		WinStreak:        Param{3, 1},
		Kills:            Param{8, 4},
		Deaths:           Param{15, 5},
		Assists:          Param{2, 1.5},
		Accuracy:         Param{0.15, 0.01},
		DamageMissed:     Param{4200, 500},
		HeadshotAccuracy: Param{0.05, 0.003},
		TorsoAccuracy:    Param{0.07, 0.006},
		BestKillstreak:   Param{3, 1},
		LongestTimeAlive: Param{70, 30},
		ContestingKills:  Param{1, 1},
		ObjectiveTime:    Param{140, 40},
	},
	Med: TierParams{
		GamesPlayed:      Param{250, 60},
		Wins:             Param{120, 30},
		Losses:           Param{130, 35},
		WinStreak:        Param{6, 2},
		Kills:            Param{20, 6},
		Deaths:           Param{15, 5},
		Assists:          Param{3, 2},
		Accuracy:         Param{0.23, 0.015},
		DamageMissed:     Param{6000, 600},
		HeadshotAccuracy: Param{0.07, 0.006},
		TorsoAccuracy:    Param{0.11, 0.008},
		BestKillstreak:   Param{5, 2},
		LongestTimeAlive: Param{90, 35},
		ContestingKills:  Param{3, 1},
		ObjectiveTime:    Param{210, 50},
	},
	High: TierParams{
		GamesPlayed:      Param{1200, 250},
		Wins:             Param{700, 120},
		Losses:           Param{500, 100},
		WinStreak:        Param{8, 3},
		Kills:            Param{35, 10},
		Deaths:           Param{10, 4},
		Assists:          Param{4, 3},
		Accuracy:         Param{0.33, 0.02},
		DamageMissed:     Param{6700, 600},
		HeadshotAccuracy: Param{0.14, 0.009},
		TorsoAccuracy:    Param{0.145, 0.01},
		BestKillstreak:   Param{8, 3},
		LongestTimeAlive: Param{100, 45},
		ContestingKills:  Param{5, 2},
		ObjectiveTime:    Param{320, 60},
	},
}

var br1v99 = &Definition{
	Mode:              model.ModeBR1v99,
	TeamSize:          1,
	TeamCount:         100,
	TimeLimitMean:     1200,
	TimeLimitVariance: 180,
	KillCap:           99,
	BaseRate:          20.0,
	VPWeights: map[model.Attr]float64{
		model.AttrKills:            0.70,
		model.AttrDeaths:           0.10,
		model.AttrKillstreak:       0.70,
		model.AttrLongestTimeAlive: 1.00,
		model.AttrContestingKills:  0.00,
		model.AttrObjectiveTime:    0.00,
		model.AttrAccuracy:         0.60,
		model.AttrDamageDealt:      0.68,
		model.AttrDamageTaken:      0.50,
	},
	DeltaWeights: map[model.Attr]float64{
		model.AttrKills:                0.90,
		model.AttrDeaths:               0.10,
		model.AttrAssists:              0.80,
		model.AttrDamageDealt:          0.90,
		model.AttrDamageTaken:          0.30,
		model.AttrDamageMissed:         0.20,
		model.AttrHeadshotDamage:       0.80,
		model.AttrTorsoDamage:          0.60,
		model.AttrLegDamage:            0.15,
		model.AttrAccuracy:             0.60,
		model.AttrHeadshotAccuracy:     0.80,
		model.AttrTorsoAccuracy:        0.60,
		model.AttrLegAccuracy:          0.15,
		model.AttrContestingKills:      0.00,
		model.AttrObjectiveTime:        0.00,
		model.AttrLongestTimeAlive:     1.00,
		model.AttrKillsPerMinute:       0.50,
		model.AttrDeathsPerMinute:      0.00,
		model.AttrAssistsPerMinute:     0.40,
		model.AttrDamageDealtPerMinute: 0.50,
		model.AttrDamageTakenPerMinute: 0.20,
		model.AttrKDRatio:              0.00,
		model.AttrDamageRatio:          0.35,
		model.AttrKillstreak:           0.90,
		model.AttrWinStreak:            1.00,
		model.AttrWinLossRatio:         1.00,
		model.AttrIsTie:                0.00,
	},
	Low: TierParams{
		GamesPlayed:      Param{20, 5},
		Wins:             Param{1, 1},
		Losses:           Param{19, 5},
		WinStreak:        Param{1, 1},
		Kills:            Param{1, 1},
		Deaths:           Param{1, 1},
		Accuracy:         Param{0.10, 0.008},
		DamageMissed:     Param{600, 400},
		HeadshotAccuracy: Param{0.01, 0.001},
		TorsoAccuracy:    Param{0.05, 0.002},
		BestKillstreak:   Param{1, 0.5},
		LongestTimeAlive: Param{200, 160},
	},
	Med: TierParams{
		GamesPlayed:      Param{100, 20},
		Wins:             Param{8, 3},
		Losses:           Param{92, 20},
		WinStreak:        Param{3, 1},
		Kills:            Param{3, 2},
		Deaths:           Param{1, 1},
		Accuracy:         Param{0.15, 0.01},
		DamageMissed:     Param{1000, 500},
		HeadshotAccuracy: Param{0.04, 0.002},
		TorsoAccuracy:    Param{0.07, 0.006},
		BestKillstreak:   Param{2, 1},
		LongestTimeAlive: Param{600, 250},
	},
	High: TierParams{
		GamesPlayed:      Param{500, 100},
		Wins:             Param{50, 10},
		Losses:           Param{450, 90},
		WinStreak:        Param{8, 3},
		Kills:            Param{8, 3},
		Deaths:           Param{1, 0},
		Accuracy:         Param{0.25, 0.015},
		DamageMissed:     Param{2000, 700},
		HeadshotAccuracy: Param{0.07, 0.006},
		TorsoAccuracy:    Param{0.10, 0.008},
		BestKillstreak:   Param{3, 1},
		LongestTimeAlive: Param{1200, 100},
	},
}

var br4v96 = &Definition{
	Mode:              model.ModeBR4v96,
	TeamSize:          4,
	TeamCount:         25,
	TimeLimitMean:     1380,
	TimeLimitVariance: 240,
	KillCap:           96,
	BaseRate:          20.0,
	GroupSizes:        []int{2, 4},
	VPWeights:         br1v99.VPWeights,
	DeltaWeights: map[model.Attr]float64{
		model.AttrKills:                0.90,
		model.AttrDeaths:               0.10,
		model.AttrAssists:              0.82,
		model.AttrDamageDealt:          0.90,
		model.AttrDamageTaken:          0.80,
		model.AttrDamageMissed:         0.20,
		model.AttrHeadshotDamage:       0.80,
		model.AttrTorsoDamage:          0.60,
		model.AttrLegDamage:            0.15,
		model.AttrAccuracy:             0.60,
		model.AttrHeadshotAccuracy:     0.80,
		model.AttrTorsoAccuracy:        0.60,
		model.AttrLegAccuracy:          0.15,
		model.AttrContestingKills:      0.00,
		model.AttrObjectiveTime:        0.00,
		model.AttrLongestTimeAlive:     1.00,
		model.AttrKillsPerMinute:       0.50,
		model.AttrDeathsPerMinute:      0.00,
		model.AttrAssistsPerMinute:     0.42,
		model.AttrDamageDealtPerMinute: 0.50,
		model.AttrDamageTakenPerMinute: 0.40,
		model.AttrKDRatio:              0.00,
		model.AttrDamageRatio:          0.45,
		model.AttrKillstreak:           0.90,
		model.AttrWinStreak:            1.00,
		model.AttrWinLossRatio:         1.00,
		model.AttrIsTie:                0.00,
	},
	Low: TierParams{
		GamesPlayed:      Param{50, 15},
		Wins:             Param{5, 3},
		Losses:           Param{45, 15},
		WinStreak:        Param{2, 1},
		Kills:            Param{1, 1},
		Deaths:           Param{1, 1},
		Assists:          Param{1, 1},
		Accuracy:         Param{0.10, 0.008},
		DamageMissed:     Param{600, 400},
		HeadshotAccuracy: Param{0.01, 0.001},
		TorsoAccuracy:    Param{0.05, 0.002},
		BestKillstreak:   Param{2, 1},
		LongestTimeAlive: Param{250, 150},
	},
	Med: TierParams{
		GamesPlayed:      Param{200, 50},
		Wins:             Param{50, 10},
		Losses:           Param{150, 40},
		WinStreak:        Param{5, 2},
		Kills:            Param{3, 2},
		Deaths:           Param{1, 1},
		Assists:          Param{2, 1},
		Accuracy:         Param{0.15, 0.001},
		DamageMissed:     Param{1000, 500},
		HeadshotAccuracy: Param{0.04, 0.002},
		TorsoAccuracy:    Param{0.07, 0.006},
		BestKillstreak:   Param{3, 1},
		LongestTimeAlive: Param{650, 250},
	},
	High: TierParams{
		GamesPlayed:      Param{800, 150},
		Wins:             Param{400, 80},
		Losses:           Param{350, 70},
		WinStreak:        Param{8, 3},
		Kills:            Param{6, 3},
		Deaths:           Param{1, 1},
		Assists:          Param{4, 2},
		Accuracy:         Param{0.25, 0.015},
		DamageMissed:     Param{1800, 500},
		HeadshotAccuracy: Param{0.07, 0.006},
		TorsoAccuracy:    Param{0.10, 0.008},
		BestKillstreak:   Param{4, 1},
		LongestTimeAlive: Param{1200, 100},
	},
}

var sad = &Definition{
	Mode:              model.ModeSAD,
	TeamSize:          5,
	TeamCount:         2,
	TimeLimitMean:     1920,
	TimeLimitVariance: 240,
	// Round-based, but kill totals still normalize against a nominal cap
	// of one kill per defender per winnable round.
	KillCap:       80,
	RoundWinLimit: 16,
	BaseRate:          20.0,
	GroupSizes:        []int{2, 5},
	VPWeights: map[model.Attr]float64{
		model.AttrKills:            0.88,
		model.AttrDeaths:           0.90,
		model.AttrKillstreak:       0.85,
		model.AttrLongestTimeAlive: 1.00,
		model.AttrContestingKills:  0.00,
		model.AttrObjectiveTime:    0.00,
		model.AttrAccuracy:         0.89,
		model.AttrDamageDealt:      0.50,
		model.AttrDamageTaken:      0.48,
	},
	DeltaWeights: map[model.Attr]float64{
		model.AttrKills:                0.95,
		model.AttrDeaths:               0.95,
		model.AttrAssists:              0.55,
		model.AttrDamageDealt:          0.50,
		model.AttrDamageTaken:          0.50,
		model.AttrDamageMissed:         0.60,
		model.AttrHeadshotDamage:       0.85,
		model.AttrTorsoDamage:          0.60,
		model.AttrLegDamage:            0.10,
		model.AttrAccuracy:             0.95,
		model.AttrHeadshotAccuracy:     0.85,
		model.AttrTorsoAccuracy:        0.60,
		model.AttrLegAccuracy:          0.10,
		model.AttrContestingKills:      0.00,
		model.AttrObjectiveTime:        0.00,
		model.AttrLongestTimeAlive:     1.00,
		model.AttrKillsPerMinute:       0.75,
		model.AttrDeathsPerMinute:      0.75,
		model.AttrAssistsPerMinute:     0.45,
		model.AttrDamageDealtPerMinute: 0.40,
		model.AttrDamageTakenPerMinute: 0.40,
		model.AttrKDRatio:              0.85,
		model.AttrDamageRatio:          0.50,
		model.AttrKillstreak:           0.90,
		model.AttrWinStreak:            1.00,
		model.AttrWinLossRatio:         1.00,
		model.AttrIsTie:                1.00,
	},
	Low: TierParams{
		GamesPlayed:      Param{80, 20},
		Wins:             Param{20, 8},
		Losses:           Param{60, 15},
		WinStreak:        Param{3, 1},
		Kills:            Param{8, 3},
		Deaths:           Param{16, 4},
		Assists:          Param{3, 2},
		Accuracy:         Param{0.12, 0.009},
		DamageMissed:     Param{5000, 800},
		HeadshotAccuracy: Param{0.03, 0.001},
		TorsoAccuracy:    Param{0.06, 0.003},
		BestKillstreak:   Param{3, 1},
		LongestTimeAlive: Param{40, 30},
		ContestingKills:  Param{1, 1},
	},
	Med: TierParams{
		GamesPlayed:      Param{300, 75},
		Wins:             Param{120, 30},
		Losses:           Param{180, 45},
		WinStreak:        Param{6, 2},
		Kills:            Param{18, 4},
		Deaths:           Param{15, 4},
		Assists:          Param{2, 2},
		Accuracy:         Param{0.30, 0.02},
		DamageMissed:     Param{4000, 500},
		HeadshotAccuracy: Param{0.13, 0.009},
		TorsoAccuracy:    Param{0.11, 0.008},
		BestKillstreak:   Param{4, 1},
		LongestTimeAlive: Param{95, 20},
		ContestingKills:  Param{1, 1},
	},
	High: TierParams{
		GamesPlayed:      Param{800, 150},
		Wins:             Param{500, 100},
		Losses:           Param{300, 75},
		WinStreak:        Param{8, 3},
		Kills:            Param{25, 5},
		Deaths:           Param{10, 3},
		Assists:          Param{1, 1},
		Accuracy:         Param{0.50, 0.025},
		DamageMissed:     Param{2000, 400},
		HeadshotAccuracy: Param{0.30, 0.02},
		TorsoAccuracy:    Param{0.15, 0.01},
		BestKillstreak:   Param{5, 1},
		LongestTimeAlive: Param{115, 5},
		ContestingKills:  Param{1, 1},
	},
}
