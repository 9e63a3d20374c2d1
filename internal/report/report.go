package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
	"github.com/ldruskis/go-rating-sim/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintModeTable lists the configured game modes and their shapes.
func PrintModeTable(w io.Writer, defs []*gamemode.Definition) {
	table := newTable(w)
	table.Header("MODE", "TEAMS", "TEAM_SIZE", "PLAYERS", "KILL_CAP", "POINT_LIMIT", "ROUND_LIMIT", "BASE_RATE")

	for _, def := range defs {
		table.Append(
			string(def.Mode),
			strconv.Itoa(def.TeamCount),
			strconv.Itoa(def.TeamSize),
			strconv.Itoa(def.PlayerCount()),
			orDash(def.KillCap),
			orDash(def.PointLimit),
			orDash(def.RoundWinLimit),
			fmt.Sprintf("%.0f", def.BaseRate),
		)
	}
	table.Render()
}

// PrintLeaderboard prints the top players of a mode by matchmaking rating.
// names maps player ids to display names; ids missing from it print as the
// bare id.
func PrintLeaderboard(w io.Writer, mode model.Mode, stats []*model.PlayerModeStats, names map[int64]string) {
	fmt.Fprintf(w, "\nLeaderboard — %s (%d players)\n\n", mode, len(stats))

	table := newTable(w)
	table.Header("#", "PLAYER", "RATING", "ELO", "GLICKO", "RD", "TS_MU", "TS_SIGMA", "GAMES", "W/L/T", "STREAK", "K/D", "LAST_PLAYED")

	for i, s := range stats {
		name, ok := names[s.PlayerID]
		if !ok {
			name = strconv.FormatInt(s.PlayerID, 10)
		}
		table.Append(
			strconv.Itoa(i+1),
			name,
			fmt.Sprintf("%.1f", s.TrueRating),
			fmt.Sprintf("%.0f", s.EloRating),
			fmt.Sprintf("%.0f", s.GlickoRating),
			fmt.Sprintf("%.0f", s.GlickoRD),
			fmt.Sprintf("%.0f", s.TSMu),
			fmt.Sprintf("%.0f", s.TSSigma),
			strconv.Itoa(s.TotalGamesPlayed),
			fmt.Sprintf("%d/%d/%d", s.TotalWins, s.TotalLosses, s.TotalTies),
			strconv.Itoa(s.WinStreak),
			fmt.Sprintf("%.2f", s.TotalKDRatio),
			s.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	table.Render()
}

// PrintTrajectory prints a player's per-game rating history for one mode.
func PrintTrajectory(w io.Writer, playerID int64, mode model.Mode, points []storage.TrajectoryPoint) {
	fmt.Fprintf(w, "\nRating trajectory — player %d, %s (%d games)\n\n", playerID, mode, len(points))

	table := newTable(w)
	table.Header("GAME", "DATE", "PLACE", "RATING", "DELTA", "ELO", "GLICKO", "TS_MU", "AWARD")

	for _, p := range points {
		award := ""
		if p.IsMVP {
			award = "MVP"
		} else if p.IsLVP {
			award = "LVP"
		}
		table.Append(
			strconv.FormatInt(p.GameID, 10),
			p.CreatedAt.Format("2006-01-02 15:04"),
			strconv.Itoa(p.Placement),
			fmt.Sprintf("%.1f", p.TrueAfter),
			fmt.Sprintf("%+.1f", p.TrueAfter-p.TrueBefore),
			fmt.Sprintf("%.0f", p.Elo),
			fmt.Sprintf("%.0f", p.Glicko),
			fmt.Sprintf("%.0f", p.TSMu),
			award,
		)
	}
	table.Render()
}

// PrintGameTable lists stored games for a mode.
func PrintGameTable(w io.Writer, mode model.Mode, games []model.Game) {
	fmt.Fprintf(w, "\nGames — %s (%d shown)\n\n", mode, len(games))

	table := newTable(w)
	table.Header("ID", "DATE", "PLAYTIME", "TEAMS", "TEAM_SIZE", "PLAYERS")

	for _, g := range games {
		table.Append(
			strconv.FormatInt(g.ID, 10),
			g.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dm%02ds", g.Playtime/60, g.Playtime%60),
			strconv.Itoa(g.TeamCount),
			strconv.Itoa(g.TeamSize),
			strconv.Itoa(g.PlayerCount),
		)
	}
	table.Render()
}

// PrintPlayerStats prints one player's aggregate line for a mode.
func PrintPlayerStats(w io.Writer, name string, s *model.PlayerModeStats) {
	fmt.Fprintf(w, "\n%s — %s\n\n", name, s.Mode)

	table := newTable(w)
	table.Header("RATING", "ELO", "GLICKO", "RD", "TS_MU", "TS_SIGMA", "GAMES", "W/L/T", "WLR", "AVG_K", "AVG_D", "AVG_A", "ACC", "BEST_KS")

	table.Append(
		fmt.Sprintf("%.1f", s.TrueRating),
		fmt.Sprintf("%.0f", s.EloRating),
		fmt.Sprintf("%.0f", s.GlickoRating),
		fmt.Sprintf("%.0f", s.GlickoRD),
		fmt.Sprintf("%.0f", s.TSMu),
		fmt.Sprintf("%.0f", s.TSSigma),
		strconv.Itoa(s.TotalGamesPlayed),
		fmt.Sprintf("%d/%d/%d", s.TotalWins, s.TotalLosses, s.TotalTies),
		fmt.Sprintf("%.2f", s.WinLossRatio),
		fmt.Sprintf("%.1f", s.AvgKills),
		fmt.Sprintf("%.1f", s.AvgDeaths),
		fmt.Sprintf("%.1f", s.AvgAssists),
		fmt.Sprintf("%.0f%%", s.AvgAccuracy*100),
		strconv.Itoa(s.BestKillstreak),
	)
	table.Render()
}

func orDash(n int) string {
	if n == 0 {
		return "—"
	}
	return strconv.Itoa(n)
}
