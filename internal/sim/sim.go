// Package sim drives the end-to-end simulation: bootstrap a rated
// population, then replay every scripted reference scenario across every
// game mode, matchmaking real lobbies from the stored population and
// updating ratings after each game.
package sim

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/ldruskis/go-rating-sim/internal/aggregator"
	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/model"
	"github.com/ldruskis/go-rating-sim/internal/outcome"
	"github.com/ldruskis/go-rating-sim/internal/rating"
	"github.com/ldruskis/go-rating-sim/internal/storage"
	"github.com/ldruskis/go-rating-sim/internal/synth"
)

const (
	matchmakingDelay  = 30 * time.Second
	gameGap           = 2 * time.Minute
	ratingBands       = 30
	searchWindow      = 50.0
	searchWindowWide  = 100.0
	bootstrapIdleYear = 365 * 24 * time.Hour
)

// Orchestrator owns one simulation run against one store.
type Orchestrator struct {
	db      *storage.DB
	rng     *rand.Rand
	synth   *synth.Synthesizer
	outcome *outcome.Resolver
	log     zerolog.Logger

	start   time.Time
	players int
}

// New builds an orchestrator tracking a fixed population size. All
// randomness flows from the given source, so a seed fully determines the
// run.
func New(db *storage.DB, seed uint64, players int, start time.Time, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		db:      db,
		rng:     rand.New(rand.NewSource(seed)),
		synth:   synth.New(rand.New(rand.NewSource(seed + 1))),
		outcome: outcome.New(rand.New(rand.NewSource(seed + 2))),
		log:     log,
		start:   start,
		players: players,
	}
}

func (o *Orchestrator) intRange(lo, hi int) int {
	return lo + o.rng.Intn(hi-lo+1)
}

// Bootstrap creates the population and its fabricated per-mode history. A
// store that already holds the full roster is left untouched, so an
// interrupted run can resume.
func (o *Orchestrator) Bootstrap() error {
	count, err := o.db.CountPlayers()
	if err != nil {
		return err
	}
	if count >= o.players {
		o.log.Info().Int("players", count).Msg("population already created")
		return nil
	}

	players := make([]model.Player, 0, o.players)
	for id := int64(1); id <= int64(o.players); id++ {
		players = append(players, model.Player{
			ID:        id,
			Name:      fmt.Sprintf("Player_%d", id),
			PartyName: PartyName(id),
		})
	}
	if err := o.db.InsertPlayers(players); err != nil {
		return fmt.Errorf("create population: %w", err)
	}
	o.log.Info().Int("players", len(players)).Msg("population created")

	// Spread the population evenly across 100-point rating bands, one
	// band per population slice. Scenario players start at a fixed low
	// rating instead.
	bandSize := o.players / ratingBands
	for _, def := range gamemode.All {
		stats := make([]*model.PlayerModeStats, 0, o.players)
		band := 0
		countdown := bandSize
		for id := int64(1); id <= int64(o.players); id++ {
			if countdown == 0 {
				band++
				countdown = bandSize - 1
			}
			countdown--

			trueRating := ReferenceRating
			if id > ReferencePlayerCount {
				trueRating = float64(o.intRange(band*100, band*100+99))
			}

			st := o.synth.ModeStats(def, id, trueRating)
			st.LastPlayed = o.start
			if st.TotalGamesPlayed == 0 {
				st.LastPlayed = o.start.Add(-bootstrapIdleYear)
			}
			stats = append(stats, &st)
		}
		if err := o.db.UpsertModeStats(stats); err != nil {
			return fmt.Errorf("bootstrap %s stats: %w", def.Mode, err)
		}
		o.log.Info().Str("mode", string(def.Mode)).Msg("mode history bootstrapped")
	}
	return nil
}

// Run plays every reference scenario in every mode.
func (o *Orchestrator) Run() error {
	for _, def := range gamemode.All {
		o.log.Info().Str("mode", string(def.Mode)).Msg("starting mode")
		if err := o.RunMode(def); err != nil {
			return fmt.Errorf("%s: %w", def.Mode, err)
		}
		o.log.Info().Str("mode", string(def.Mode)).Msg("mode complete")
	}
	return nil
}

// RunMode plays each reference player's scripted scenario in one mode.
func (o *Orchestrator) RunMode(def *gamemode.Definition) error {
	scenarios := Scenarios()
	prevParty := ""

	for refID := int64(1); refID <= ReferencePlayerCount; refID++ {
		if refID > 1 {
			// Later scenarios start from a fresh staleness baseline.
			if err := o.db.ResetLastPlayed(o.start); err != nil {
				return err
			}
		}

		party := PartyName(refID)
		if party == prevParty {
			continue
		}
		prevParty = party

		partyIDs := []int64{refID}
		if !SoloParty(refID, party) {
			// Solo-only modes cannot host a party scenario.
			if def.Mode == model.ModeFFA || def.Mode == model.ModeBR1v99 {
				continue
			}
			size := def.GroupSizes[1]
			if len(party) > 5 && party[len(party)-5:] == "_half" {
				size = def.GroupSizes[0]
			}
			for next := refID + 1; len(partyIDs) < size; next++ {
				partyIDs = append(partyIDs, next)
			}
		}

		if err := o.runScenario(def, refID, partyIDs, scenarios[refID]); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) runScenario(def *gamemode.Definition, refID int64, partyIDs []int64, phases []Phase) error {
	current := o.start
	gameNumber := 1

	for _, ph := range phases {
		gapApplied := false
		for i := 0; i < ph.Games; i++ {
			next, err := o.playGame(def, refID, partyIDs, ph, current, gameNumber, !gapApplied)
			if err != nil {
				return err
			}
			gapApplied = true
			current = next
			gameNumber++
		}
	}
	o.log.Info().
		Int64("ref", refID).
		Int("games", gameNumber-1).
		Msg("scenario complete")
	return nil
}

func (o *Orchestrator) playGame(def *gamemode.Definition, refID int64, partyIDs []int64, ph Phase, current time.Time, gameNumber int, applyGap bool) (time.Time, error) {
	filterTime := current.Add(matchmakingDelay)

	partyStats, err := o.db.ModeStatsForPlayers(def.Mode, partyIDs)
	if err != nil {
		return current, err
	}
	if len(partyStats) != len(partyIDs) {
		return current, fmt.Errorf("ref %d: party stats missing, want %d got %d", refID, len(partyIDs), len(partyStats))
	}

	var refStats *model.PlayerModeStats
	searchRating := 0.0
	for _, s := range partyStats {
		searchRating += s.TrueRating
		if s.PlayerID == refID {
			refStats = s
		}
	}
	searchRating /= float64(len(partyStats))

	if applyGap && ph.GapDays > 0 {
		refStats.LastPlayed = refStats.LastPlayed.AddDate(0, 0, -ph.GapDays)
		if err := o.db.UpsertModeStats([]*model.PlayerModeStats{refStats}); err != nil {
			return current, err
		}
	}

	exclude := make([]int64, 0, ReferencePlayerCount+len(partyIDs))
	for id := int64(1); id <= ReferencePlayerCount; id++ {
		exclude = append(exclude, id)
	}
	for _, id := range partyIDs {
		if id > ReferencePlayerCount {
			exclude = append(exclude, id)
		}
	}

	need := def.PlayerCount() - len(partyIDs)
	candidates, err := o.db.Candidates(def.Mode, searchRating-searchWindow, searchRating+searchWindow, filterTime, exclude, need)
	if err != nil {
		return current, err
	}
	if len(candidates) < need {
		candidates, err = o.db.Candidates(def.Mode, searchRating-searchWindowWide, searchRating+searchWindowWide, filterTime, exclude, need)
		if err != nil {
			return current, err
		}
	}
	if len(candidates) < need {
		return current, fmt.Errorf(
			"ref player %d, mode %s, game %d: asked for %d players around rating %.0f, only %d available",
			refID, def.Mode, gameNumber, need, searchRating, len(candidates))
	}
	o.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	playtime := o.synth.Playtime(def)
	current = current.Add(time.Duration(playtime)*time.Second + gameGap)

	game := &model.Game{
		Mode:          def.Mode,
		CreatedAt:     current,
		Playtime:      playtime,
		TeamCount:     def.TeamCount,
		TeamSize:      def.TeamSize,
		KillCap:       def.KillCap,
		PointLimit:    def.PointLimit,
		RoundWinLimit: def.RoundWinLimit,
		PlayerCount:   def.PlayerCount(),
	}
	if err := o.db.InsertGame(game); err != nil {
		return current, err
	}

	// Party fills team 1 first, matchmade players fill the remaining
	// slots team by team.
	allStats := append(append([]*model.PlayerModeStats{}, partyStats...), candidates...)
	statsByID := make(map[int64]*model.PlayerModeStats, len(allStats))
	for _, s := range allStats {
		statsByID[s.PlayerID] = s
	}

	players := make([]*model.GamePlayer, 0, def.PlayerCount())
	for _, s := range partyStats {
		players = append(players, o.newGamePlayer(def, game, s, 1, current, playtime))
	}
	fill := candidates
	for team := 1; team <= def.TeamCount; team++ {
		slots := def.TeamSize
		if team == 1 {
			slots -= len(partyStats)
		}
		for i := 0; i < slots; i++ {
			players = append(players, o.newGamePlayer(def, game, fill[0], team, current, playtime))
			fill = fill[1:]
		}
	}

	inParty := make(map[int64]bool, len(partyIDs))
	for _, id := range partyIDs {
		inParty[id] = true
	}
	for _, gp := range players {
		koef, negative := ph.koefs(gp.PlayerID, refID, inParty[gp.PlayerID])
		applyKoefs(gp, koef, negative)
	}

	o.outcome.Resolve(def, playtime, players)
	outcome.SelectValuePlayers(def, players)
	for _, gp := range players {
		outcome.Finalize(gp, playtime)
	}

	teams := teamStates(def, players, statsByID)

	for _, gp := range players {
		stats := statsByID[gp.PlayerID]
		baseline := def.Interpolate(gp.TrueRatingBefore)
		gp.TrueRatingAfter = rating.TrueRating(def, gp, stats, baseline, players)

		aux := rating.Auxiliary(def, gp, teams, ph.KFactor, current, stats.LastPlayed)
		gp.EloAfter = aux.Elo
		gp.GlickoAfter = aux.Glicko
		gp.GlickoRDAfter = aux.GlickoRD
		gp.TSMuAfter = aux.TSMu
		gp.TSSigmaAfter = aux.TSSigma
	}

	if err := o.db.InsertGamePlayers(players); err != nil {
		return current, err
	}

	for _, gp := range players {
		aggregator.Apply(statsByID[gp.PlayerID], gp)
	}
	if err := o.db.UpsertModeStats(allStats); err != nil {
		return current, err
	}

	if gameNumber%100 == 0 {
		o.log.Info().
			Str("mode", string(def.Mode)).
			Int64("ref", refID).
			Int("game", gameNumber).
			Float64("ref_rating", refStats.TrueRating).
			Msg("scenario progress")
	}
	return current, nil
}

func (o *Orchestrator) newGamePlayer(def *gamemode.Definition, game *model.Game, s *model.PlayerModeStats, team int, now time.Time, playtime int) *model.GamePlayer {
	baseline := def.Interpolate(s.TrueRating)
	gp := o.synth.GameStats(def, baseline, playtime)

	gp.GameID = game.ID
	gp.PlayerID = s.PlayerID
	gp.CreatedAt = now
	gp.Team = team
	gp.PartyName = PartyName(s.PlayerID)

	gp.TrueRatingBefore = s.TrueRating
	gp.EloBefore = s.EloRating
	gp.GlickoBefore = s.GlickoRating
	gp.GlickoRDBefore = s.GlickoRD
	gp.TSMuBefore = s.TSMu
	gp.TSSigmaBefore = s.TSSigma
	return &gp
}

// teamStates builds the pre-game per-team averages the auxiliary rating
// updates compare against.
func teamStates(def *gamemode.Definition, players []*model.GamePlayer, statsByID map[int64]*model.PlayerModeStats) []rating.TeamState {
	states := make([]rating.TeamState, def.TeamCount)
	for i := range states {
		states[i].Team = i + 1
	}

	size := float64(def.TeamSize)
	for _, gp := range players {
		st := &states[gp.Team-1]
		st.Placement = gp.Placement
		st.Elo += gp.EloBefore / size
		st.Glicko += gp.GlickoBefore / size
		st.GlickoRD += gp.GlickoRDBefore / size
		st.TSMu += gp.TSMuBefore / size
		st.TSSigma += gp.TSSigmaBefore / size
	}

	// Last-played is the average over the team's members.
	lastSum := make([]float64, def.TeamCount)
	for _, gp := range players {
		lastSum[gp.Team-1] += float64(statsByID[gp.PlayerID].LastPlayed.Unix())
	}
	for i := range states {
		states[i].LastPlayed = time.Unix(int64(lastSum[i]/size), 0).UTC()
	}
	return states
}
