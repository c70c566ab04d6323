package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/tuxbattle/internal/ai"
	"github.com/udisondev/tuxbattle/internal/config"
	"github.com/udisondev/tuxbattle/internal/db"
	"github.com/udisondev/tuxbattle/internal/game/combat"
	"github.com/udisondev/tuxbattle/internal/game/evolution"
	"github.com/udisondev/tuxbattle/internal/game/skill"
	"github.com/udisondev/tuxbattle/internal/model"
	"github.com/udisondev/tuxbattle/internal/telemetry"
)

var errNoSpecies = errors.New("catalog has no species")

// battleStore persists finished battles. *db.PersistenceService implements it.
type battleStore interface {
	SaveBattle(ctx context.Context, b db.BattleRow, events []db.EventRow, parties ...*model.Party) error
}

// result is the summary of one simulated battle.
type result struct {
	ID      uuid.UUID
	Seed    uint64
	Trainer bool
	Outcome combat.Outcome
	Winner  combat.Side
	Turns   int
	Evolved []string
}

// simulator runs batches of AI-vs-AI battles. Battles share only the
// hydrator and the read-only catalog behind it.
type simulator struct {
	cfg      config.Battlesim
	hydrator *skill.Hydrator
	store    battleStore // nil when persistence is disabled
	species  []string
	tracer   trace.Tracer
}

func newSimulator(cfg config.Battlesim, h *skill.Hydrator, store battleStore) (*simulator, error) {
	species := h.Catalog().SpeciesSlugs()
	if len(species) == 0 {
		return nil, errNoSpecies
	}
	return &simulator{
		cfg:      cfg,
		hydrator: h,
		store:    store,
		species:  species,
		tracer:   telemetry.Tracer("battlesim"),
	}, nil
}

// run plays cfg.Simulation.Battles battles, at most Parallelism at a time.
func (s *simulator) run(ctx context.Context) ([]result, error) {
	results := make([]result, s.cfg.Simulation.Battles)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Simulation.Parallelism)
	for i := range results {
		g.Go(func() error {
			r, err := s.battle(gctx, i)
			if err != nil {
				return fmt.Errorf("battle %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// seed returns the RNG seed of battle i. A zero configured seed draws a
// fresh one.
func (s *simulator) seed(i int) uint64 {
	if s.cfg.Combat.Seed == 0 {
		return rand.Uint64()
	}
	return s.cfg.Combat.Seed + uint64(i)
}

// battle plays one battle. Odd battles are against a single wild monster,
// even ones against a trainer.
func (s *simulator) battle(ctx context.Context, i int) (result, error) {
	seed := s.seed(i)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	wild := i%2 == 1

	left, err := s.party(fmt.Sprintf("player-%d", i), true, false, s.cfg.Simulation.PartySize, rng)
	if err != nil {
		return result{}, err
	}
	var right *model.Party
	if wild {
		right, err = s.party(fmt.Sprintf("wild-%d", i), false, true, 1, rng)
	} else {
		right, err = s.party(fmt.Sprintf("trainer-%d", i), false, false, s.cfg.Simulation.PartySize, rng)
	}
	if err != nil {
		return result{}, err
	}

	b := combat.NewBattle(left, right, s.hydrator, rng, combat.Options{
		MultiplierSpeed: s.cfg.Combat.MultiplierSpeed,
		SpeedOffset:     s.cfg.Combat.SpeedOffset,
		InPlayPerSide:   s.cfg.Combat.InPlayPerSide,
	})

	ctx, span := s.tracer.Start(ctx, "battlesim.battle")
	defer span.End()

	var events []db.EventRow
	b.SetNarrationObserver(func(n model.Narration) {
		events = append(events, db.EventRow{Seq: len(events), Turn: b.Turn(), Token: n.Token, Params: n.Params})
		slog.Debug("narration",
			"battle", i,
			"turn", b.Turn(),
			"token", n.Token,
			"params", n.Params)
	})

	if err := b.Start(ctx); err != nil {
		return result{}, fmt.Errorf("starting: %w", err)
	}

	turns := 0
	for b.Phase() != combat.PhaseEnded {
		if s.cfg.Combat.MaxTurns > 0 && turns >= s.cfg.Combat.MaxTurns {
			slog.Warn("battle hit turn limit",
				"battle", i,
				"turns", turns)
			break
		}
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		if err := s.collect(b, rng); err != nil {
			return result{}, fmt.Errorf("turn %d: %w", b.Turn(), err)
		}
		if _, err := b.ResolveTurn(ctx); err != nil {
			return result{}, err
		}
		turns++
	}

	r := result{
		ID:      b.ID(),
		Seed:    seed,
		Trainer: b.IsTrainerBattle(),
		Outcome: b.Outcome(),
		Winner:  b.Winner(),
		Turns:   turns,
	}
	r.Evolved, err = s.evolve(left)
	if err != nil {
		return result{}, err
	}

	span.SetAttributes(
		attribute.String("battle_id", r.ID.String()),
		attribute.Int("turns", r.Turns),
		attribute.String("outcome", r.Outcome.String()),
		attribute.String("winner", r.Winner.String()),
	)
	slog.Info("battle finished",
		"battle", i,
		"seed", seed,
		"trainer", r.Trainer,
		"outcome", r.Outcome,
		"winner", r.Winner,
		"turns", r.Turns)

	if s.store != nil {
		row := db.BattleRow{
			ID:         r.ID,
			LeftParty:  left.ID,
			RightParty: right.ID,
			Trainer:    r.Trainer,
			Outcome:    r.Outcome.String(),
			Winner:     r.Winner.String(),
			Turns:      r.Turns,
			Seed:       seed,
		}
		if err := s.store.SaveBattle(ctx, row, events, left, right); err != nil {
			return result{}, err
		}
	}
	return r, nil
}

// party builds a party of size random monsters at the configured level.
func (s *simulator) party(id string, player, wild bool, size int, rng model.Source) (*model.Party, error) {
	p := model.NewParty(id, id, player)
	if wild {
		p = model.NewWildParty(id)
	}
	for range size {
		slug := s.species[rng.IntN(len(s.species))]
		m, err := s.hydrator.NewMonster(slug, s.cfg.Simulation.Level, rng)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", slug, err)
		}
		if err := p.AddMonster(m); err != nil {
			return nil, fmt.Errorf("party %s: %w", id, err)
		}
	}
	return p, nil
}

// collect fills empty slots from the bench and submits an AI action for
// every pending monster.
func (s *simulator) collect(b *combat.Battle, rng model.Source) error {
	for _, side := range []combat.Side{combat.SideLeft, combat.SideRight} {
		for range b.Vacancies(side) {
			m := ai.ChooseReplacement(bench(b, side))
			if m == nil {
				break
			}
			if err := b.Replace(side, m); err != nil {
				return err
			}
		}
	}

	for _, m := range b.Pending() {
		a, ok := ai.ChooseAction(b, m, rng)
		if !ok {
			// Nothing to use: try to leave the battle.
			run, err := s.hydrator.NewTechnique("run")
			if err != nil {
				return err
			}
			a = model.EnqueuedAction{User: m, Method: run, Target: m}
		}
		if err := b.Enqueue(a); err != nil {
			return fmt.Errorf("enqueue for %s: %w", m.Name, err)
		}
	}
	return nil
}

// bench returns the healthy monsters of side s that are not in play.
func bench(b *combat.Battle, s combat.Side) []*model.Monster {
	inPlay := b.InPlay(s)
	var out []*model.Monster
	for _, m := range b.Party(s).HealthyMonsters() {
		if !slices.Contains(inPlay, m) {
			out = append(out, m)
		}
	}
	return out
}

// evolve evolves every monster of p that levelled up and meets one of its
// evolution conditions. Returns the new species slugs.
func (s *simulator) evolve(p *model.Party) ([]string, error) {
	var evolved []string
	ctx := evolution.Context{Party: p.SpeciesSlugs()}
	for _, m := range p.Monsters() {
		if !m.LevellingUp {
			continue
		}
		evo, ok, err := evolution.FirstEligible(m, ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := evolution.Evolve(s.hydrator, m, evo); err != nil {
			return nil, err
		}
		evolved = append(evolved, evo.MonsterSlug)
	}
	return evolved, nil
}

// summarize logs the totals of a batch.
func summarize(results []result) {
	var left, right, draws, unfinished, evolved int
	for _, r := range results {
		switch {
		case r.Outcome == combat.OutcomeNone:
			unfinished++
		case r.Outcome == combat.OutcomeDraw:
			draws++
		case r.Winner == combat.SideLeft:
			left++
		case r.Winner == combat.SideRight:
			right++
		}
		evolved += len(r.Evolved)
	}
	slog.Info("simulation finished",
		"battles", len(results),
		"left_wins", left,
		"right_wins", right,
		"draws", draws,
		"unfinished", unfinished,
		"evolutions", evolved)
}
