package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ldruskis/go-rating-sim/internal/model"
)

// Timestamps are stored as RFC 3339 strings so comparisons work lexically.
const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// InsertPlayers bulk-inserts the player roster in a transaction. Uses
// INSERT OR REPLACE so a resumed run is idempotent.
func (db *DB) InsertPlayers(players []model.Player) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO players(id, name, party_name) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, p.PartyName); err != nil {
			return fmt.Errorf("insert player %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// CountPlayers returns the roster size.
func (db *DB) CountPlayers() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM players").Scan(&count)
	return count, err
}

// ListPlayers returns up to limit players in id order.
func (db *DB) ListPlayers(limit int) ([]model.Player, error) {
	rows, err := db.conn.Query("SELECT id, name, party_name FROM players ORDER BY id LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.PartyName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// InsertGame stores one game and fills in its assigned id.
func (db *DB) InsertGame(g *model.Game) error {
	res, err := db.conn.Exec(`
		INSERT INTO games(mode, created_at, playtime, team_count, team_size, kill_cap, point_limit, round_win_limit, player_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(g.Mode), encodeTime(g.CreatedAt), g.Playtime, g.TeamCount, g.TeamSize,
		g.KillCap, g.PointLimit, g.RoundWinLimit, g.PlayerCount,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	g.ID, err = res.LastInsertId()
	return err
}

// ListGames returns up to limit games for a mode, newest first.
func (db *DB) ListGames(mode model.Mode, limit int) ([]model.Game, error) {
	rows, err := db.conn.Query(`
		SELECT id, mode, created_at, playtime, team_count, team_size, kill_cap, point_limit, round_win_limit, player_count
		FROM games WHERE mode = ? ORDER BY created_at DESC LIMIT ?`, string(mode), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Game
	for rows.Next() {
		var g model.Game
		var createdAt string
		if err := rows.Scan(&g.ID, &g.Mode, &createdAt, &g.Playtime, &g.TeamCount, &g.TeamSize,
			&g.KillCap, &g.PointLimit, &g.RoundWinLimit, &g.PlayerCount); err != nil {
			return nil, err
		}
		if g.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// CountGames returns the number of stored games for a mode.
func (db *DB) CountGames(mode model.Mode) (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM games WHERE mode = ?", string(mode)).Scan(&count)
	return count, err
}

// InsertGamePlayers bulk-inserts participation records in a transaction.
func (db *DB) InsertGamePlayers(players []*model.GamePlayer) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO game_players(
			game_id, player_id, created_at, team, party_name,
			kills, deaths, assists, killstreak,
			damage_dealt, damage_taken, damage_missed,
			headshot_damage, torso_damage, leg_damage,
			accuracy, headshot_accuracy, torso_accuracy, leg_accuracy,
			kills_per_minute, deaths_per_minute, assists_per_minute,
			damage_dealt_per_minute, damage_taken_per_minute,
			contesting_kills, objective_time, longest_time_alive,
			domination_points, rounds_won, rounds_lost,
			placement, is_tie, is_mvp, is_lvp,
			true_rating_before, true_rating_after,
			elo_before, elo_after,
			glicko_before, glicko_after,
			glicko_rd_before, glicko_rd_after,
			ts_mu_before, ts_mu_after,
			ts_sigma_before, ts_sigma_after
		) VALUES (` + placeholders(46) + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err = stmt.Exec(
			p.GameID, p.PlayerID, encodeTime(p.CreatedAt), p.Team, p.PartyName,
			p.Kills, p.Deaths, p.Assists, p.Killstreak,
			p.DamageDealt, p.DamageTaken, p.DamageMissed,
			p.HeadshotDamage, p.TorsoDamage, p.LegDamage,
			p.Accuracy, p.HeadshotAccuracy, p.TorsoAccuracy, p.LegAccuracy,
			p.KillsPerMinute, p.DeathsPerMinute, p.AssistsPerMinute,
			p.DamageDealtPerMinute, p.DamageTakenPerMinute,
			p.ContestingKills, p.ObjectiveTime, p.LongestTimeAlive,
			p.DominationPoints, p.RoundsWon, p.RoundsLost,
			p.Placement, boolInt(p.IsTie), boolInt(p.IsMVP), boolInt(p.IsLVP),
			p.TrueRatingBefore, p.TrueRatingAfter,
			p.EloBefore, p.EloAfter,
			p.GlickoBefore, p.GlickoAfter,
			p.GlickoRDBefore, p.GlickoRDAfter,
			p.TSMuBefore, p.TSMuAfter,
			p.TSSigmaBefore, p.TSSigmaAfter,
		)
		if err != nil {
			return fmt.Errorf("insert game_players for %d: %w", p.PlayerID, err)
		}
	}
	return tx.Commit()
}

const modeStatsCols = `
	player_id, mode,
	true_rating, elo_rating, glicko_rating, glicko_rd, ts_mu, ts_sigma,
	total_games_played, total_wins, total_losses, total_ties, win_streak,
	total_kills, total_deaths, total_assists,
	total_damage_dealt, total_damage_taken, total_damage_missed,
	total_headshot_damage, total_torso_damage, total_leg_damage,
	total_accuracy, total_headshot_accuracy, total_torso_accuracy, total_leg_accuracy,
	total_contesting_kills, total_objective_time, total_longest_time_alive,
	total_kills_per_minute, total_deaths_per_minute, total_assists_per_minute,
	total_damage_dealt_per_minute, total_damage_taken_per_minute,
	total_kd_ratio, total_damage_ratio, win_loss_ratio,
	best_killstreak,
	avg_kills, avg_deaths, avg_assists,
	avg_damage_dealt, avg_damage_taken, avg_damage_missed,
	avg_headshot_damage, avg_torso_damage, avg_leg_damage,
	avg_accuracy, avg_headshot_accuracy, avg_torso_accuracy, avg_leg_accuracy,
	avg_contesting_kills, avg_objective_time, avg_longest_time_alive,
	avg_kills_per_minute, avg_deaths_per_minute, avg_assists_per_minute,
	avg_damage_dealt_per_minute, avg_damage_taken_per_minute,
	last_played`

// UpsertModeStats bulk-writes per-player mode aggregates in a transaction.
func (db *DB) UpsertModeStats(stats []*model.PlayerModeStats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO player_mode_stats(` + modeStatsCols + `)
		VALUES (` + placeholders(60) + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stats {
		_, err = stmt.Exec(
			s.PlayerID, string(s.Mode),
			s.TrueRating, s.EloRating, s.GlickoRating, s.GlickoRD, s.TSMu, s.TSSigma,
			s.TotalGamesPlayed, s.TotalWins, s.TotalLosses, s.TotalTies, s.WinStreak,
			s.TotalKills, s.TotalDeaths, s.TotalAssists,
			s.TotalDamageDealt, s.TotalDamageTaken, s.TotalDamageMissed,
			s.TotalHeadshotDamage, s.TotalTorsoDamage, s.TotalLegDamage,
			s.TotalAccuracy, s.TotalHeadshotAccuracy, s.TotalTorsoAccuracy, s.TotalLegAccuracy,
			s.TotalContestingKills, s.TotalObjectiveTime, s.TotalLongestTimeAlive,
			s.TotalKillsPerMinute, s.TotalDeathsPerMinute, s.TotalAssistsPerMinute,
			s.TotalDamageDealtPerMinute, s.TotalDamageTakenPerMinute,
			s.TotalKDRatio, s.TotalDamageRatio, s.WinLossRatio,
			s.BestKillstreak,
			s.AvgKills, s.AvgDeaths, s.AvgAssists,
			s.AvgDamageDealt, s.AvgDamageTaken, s.AvgDamageMissed,
			s.AvgHeadshotDamage, s.AvgTorsoDamage, s.AvgLegDamage,
			s.AvgAccuracy, s.AvgHeadshotAccuracy, s.AvgTorsoAccuracy, s.AvgLegAccuracy,
			s.AvgContestingKills, s.AvgObjectiveTime, s.AvgLongestTimeAlive,
			s.AvgKillsPerMinute, s.AvgDeathsPerMinute, s.AvgAssistsPerMinute,
			s.AvgDamageDealtPerMinute, s.AvgDamageTakenPerMinute,
			encodeTime(s.LastPlayed),
		)
		if err != nil {
			return fmt.Errorf("upsert player_mode_stats for %d/%s: %w", s.PlayerID, s.Mode, err)
		}
	}
	return tx.Commit()
}

func scanModeStats(rows *sql.Rows) (*model.PlayerModeStats, error) {
	var s model.PlayerModeStats
	var lastPlayed string
	err := rows.Scan(
		&s.PlayerID, &s.Mode,
		&s.TrueRating, &s.EloRating, &s.GlickoRating, &s.GlickoRD, &s.TSMu, &s.TSSigma,
		&s.TotalGamesPlayed, &s.TotalWins, &s.TotalLosses, &s.TotalTies, &s.WinStreak,
		&s.TotalKills, &s.TotalDeaths, &s.TotalAssists,
		&s.TotalDamageDealt, &s.TotalDamageTaken, &s.TotalDamageMissed,
		&s.TotalHeadshotDamage, &s.TotalTorsoDamage, &s.TotalLegDamage,
		&s.TotalAccuracy, &s.TotalHeadshotAccuracy, &s.TotalTorsoAccuracy, &s.TotalLegAccuracy,
		&s.TotalContestingKills, &s.TotalObjectiveTime, &s.TotalLongestTimeAlive,
		&s.TotalKillsPerMinute, &s.TotalDeathsPerMinute, &s.TotalAssistsPerMinute,
		&s.TotalDamageDealtPerMinute, &s.TotalDamageTakenPerMinute,
		&s.TotalKDRatio, &s.TotalDamageRatio, &s.WinLossRatio,
		&s.BestKillstreak,
		&s.AvgKills, &s.AvgDeaths, &s.AvgAssists,
		&s.AvgDamageDealt, &s.AvgDamageTaken, &s.AvgDamageMissed,
		&s.AvgHeadshotDamage, &s.AvgTorsoDamage, &s.AvgLegDamage,
		&s.AvgAccuracy, &s.AvgHeadshotAccuracy, &s.AvgTorsoAccuracy, &s.AvgLegAccuracy,
		&s.AvgContestingKills, &s.AvgObjectiveTime, &s.AvgLongestTimeAlive,
		&s.AvgKillsPerMinute, &s.AvgDeathsPerMinute, &s.AvgAssistsPerMinute,
		&s.AvgDamageDealtPerMinute, &s.AvgDamageTakenPerMinute,
		&lastPlayed,
	)
	if err != nil {
		return nil, err
	}
	if s.LastPlayed, err = decodeTime(lastPlayed); err != nil {
		return nil, err
	}
	return &s, nil
}

func (db *DB) queryModeStats(query string, args ...any) ([]*model.PlayerModeStats, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PlayerModeStats
	for rows.Next() {
		s, err := scanModeStats(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ModeStats returns one player's aggregate for a mode.
func (db *DB) ModeStats(playerID int64, mode model.Mode) (*model.PlayerModeStats, error) {
	stats, err := db.queryModeStats(
		`SELECT `+modeStatsCols+` FROM player_mode_stats WHERE player_id = ? AND mode = ?`,
		playerID, string(mode))
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("no %s stats for player %d", mode, playerID)
	}
	return stats[0], nil
}

// ModeStatsForPlayers returns the aggregates for a set of players in one mode.
func (db *DB) ModeStatsForPlayers(mode model.Mode, ids []int64) ([]*model.PlayerModeStats, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, string(mode))
	for _, id := range ids {
		args = append(args, id)
	}
	return db.queryModeStats(
		`SELECT `+modeStatsCols+` FROM player_mode_stats
		 WHERE mode = ? AND player_id IN (`+placeholders(len(ids))+`)`, args...)
}

// Candidates returns up to limit matchmaking candidates for a mode: rating
// inside [lo, hi], last played at or before the cutoff, excluding the given
// player ids.
func (db *DB) Candidates(mode model.Mode, lo, hi float64, cutoff time.Time, exclude []int64, limit int) ([]*model.PlayerModeStats, error) {
	query := `SELECT ` + modeStatsCols + ` FROM player_mode_stats
		WHERE mode = ? AND true_rating BETWEEN ? AND ? AND last_played <= ?`
	args := []any{string(mode), lo, hi, encodeTime(cutoff)}

	if len(exclude) > 0 {
		query += ` AND player_id NOT IN (` + placeholders(len(exclude)) + `)`
		for _, id := range exclude {
			args = append(args, id)
		}
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	return db.queryModeStats(query, args...)
}

// Leaderboard returns the top-rated players for a mode.
func (db *DB) Leaderboard(mode model.Mode, limit int) ([]*model.PlayerModeStats, error) {
	return db.queryModeStats(
		`SELECT `+modeStatsCols+` FROM player_mode_stats
		 WHERE mode = ? ORDER BY true_rating DESC LIMIT ?`, string(mode), limit)
}

// ResetLastPlayed marks the whole population as last seen at t, across all
// modes. Run between reference scenarios so staleness starts fresh.
func (db *DB) ResetLastPlayed(t time.Time) error {
	_, err := db.conn.Exec("UPDATE player_mode_stats SET last_played = ?", encodeTime(t))
	return err
}

// TrajectoryPoint is one game's rating snapshot for a player.
type TrajectoryPoint struct {
	GameID     int64
	CreatedAt  time.Time
	TrueBefore float64
	TrueAfter  float64
	Elo        float64
	Glicko     float64
	TSMu       float64
	Placement  int
	IsMVP      bool
	IsLVP      bool
}

// Trajectory returns a player's per-game rating history for a mode in play
// order.
func (db *DB) Trajectory(playerID int64, mode model.Mode) ([]TrajectoryPoint, error) {
	rows, err := db.conn.Query(`
		SELECT gp.game_id, gp.created_at,
		       gp.true_rating_before, gp.true_rating_after,
		       gp.elo_after, gp.glicko_after, gp.ts_mu_after,
		       gp.placement, gp.is_mvp, gp.is_lvp
		FROM game_players gp
		JOIN games g ON g.id = gp.game_id
		WHERE gp.player_id = ? AND g.mode = ?
		ORDER BY gp.created_at`, playerID, string(mode))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrajectoryPoint
	for rows.Next() {
		var p TrajectoryPoint
		var createdAt string
		var mvp, lvp int
		if err := rows.Scan(&p.GameID, &createdAt, &p.TrueBefore, &p.TrueAfter,
			&p.Elo, &p.Glicko, &p.TSMu, &p.Placement, &mvp, &lvp); err != nil {
			return nil, err
		}
		if p.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, err
		}
		p.IsMVP = mvp != 0
		p.IsLVP = lvp != 0
		out = append(out, p)
	}
	return out, rows.Err()
}
