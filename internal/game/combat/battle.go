// Package combat resolves turn-based battles between two parties.
package combat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/udisondev/tuxbattle/internal/model"
	"github.com/udisondev/tuxbattle/internal/telemetry"
)

var (
	ErrWrongPhase       = errors.New("action not allowed in this phase")
	ErrNotInPlay        = errors.New("monster is not in play")
	ErrAlreadySubmitted = errors.New("monster already submitted an action this turn")
	ErrPendingActions   = errors.New("not every monster in play has submitted an action")
	ErrNoHealthy        = errors.New("party has no healthy monster")
	ErrNoVacancy        = errors.New("no vacant slot on this side")
	ErrNoBench          = errors.New("no healthy monster on the bench")
	ErrInvalidAction    = errors.New("invalid action")
)

// Phase is the battle lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseCollecting
	PhaseResolving
	PhasePostTurn
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseCollecting:
		return "collecting"
	case PhaseResolving:
		return "resolving"
	case PhasePostTurn:
		return "post_turn"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Side identifies one of the two parties.
type Side int

const (
	SideNone Side = iota - 1
	SideLeft
	SideRight
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeEscaped
	OutcomeForfeit
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeForfeit:
		return "forfeit"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// ConditionFactory hydrates conditions by slug. skill.Hydrator implements it.
type ConditionFactory interface {
	NewCondition(slug string) (*model.Condition, error)
}

// Options tune a battle.
type Options struct {
	MultiplierSpeed float64
	SpeedOffset     float64
	InPlayPerSide   int
}

// DefaultOptions returns single battle options with the stock speed tuning.
func DefaultOptions() Options {
	return Options{MultiplierSpeed: 1.5, SpeedOffset: 3, InPlayPerSide: 1}
}

// TurnReport summarises one resolved turn.
type TurnReport struct {
	Turn      int
	Narration []model.Narration
	Fainted   []*model.Monster
	Ended     bool
	Outcome   Outcome
	Winner    Side
}

// Battle runs one fight between two parties. It is not safe for concurrent
// use; every battle owns its RNG.
type Battle struct {
	id      uuid.UUID
	opts    Options
	rng     model.Source
	factory ConditionFactory
	tracer  trace.Tracer

	parties [2]*model.Party
	slots   [2][]*model.Monster

	phase     Phase
	turn      int
	queue     ActionQueue
	submitted map[*model.Monster]bool
	history   []model.HistoryEntry

	// knockedOut holds the monsters already fainted in this battle, even when
	// the faint condition could not be hydrated.
	knockedOut map[*model.Monster]bool

	escapeAttempts [2]int
	// met[m] holds the opponents that were in play together with m.
	met map[*model.Monster]map[*model.Monster]struct{}

	outcome Outcome
	winner  Side

	narration []model.Narration
	fainted   []*model.Monster

	// narrationObserver receives narration as it happens (nil in production).
	narrationObserver func(model.Narration)

	view arena
}

// NewBattle prepares a battle between left and right. Call Start before
// submitting actions.
func NewBattle(left, right *model.Party, factory ConditionFactory, rng model.Source, opts Options) *Battle {
	if opts.InPlayPerSide < 1 {
		opts.InPlayPerSide = 1
	}
	b := &Battle{
		id:         uuid.New(),
		opts:       opts,
		rng:        rng,
		factory:    factory,
		tracer:     telemetry.Tracer("combat"),
		parties:    [2]*model.Party{left, right},
		submitted:  make(map[*model.Monster]bool),
		knockedOut: make(map[*model.Monster]bool),
		met:        make(map[*model.Monster]map[*model.Monster]struct{}),
		winner:     SideNone,
	}
	b.view = arena{b: b}
	return b
}

// SetNarrationObserver sets a callback invoked for every narration line.
func (b *Battle) SetNarrationObserver(fn func(model.Narration)) {
	b.narrationObserver = fn
}

func (b *Battle) ID() uuid.UUID                         { return b.id }
func (b *Battle) Phase() Phase                          { return b.phase }
func (b *Battle) Outcome() Outcome                      { return b.outcome }
func (b *Battle) Winner() Side                          { return b.winner }
func (b *Battle) Party(s Side) *model.Party             { return b.parties[s] }
func (b *Battle) Log() []model.HistoryEntry             { return b.history }
func (b *Battle) EscapeAttempts(s Side) int             { return b.escapeAttempts[s] }
func (b *Battle) QueuedActions() []model.EnqueuedAction { return b.queue.Actions() }

// InPlay returns the monsters currently on the field for side s, skipping
// empty slots.
func (b *Battle) InPlay(s Side) []*model.Monster {
	var out []*model.Monster
	for _, m := range b.slots[s] {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Start sends out the first healthy monsters of each party.
func (b *Battle) Start(ctx context.Context) error {
	if b.phase != PhaseNotStarted {
		return fmt.Errorf("starting battle %s: %w", b.id, ErrWrongPhase)
	}
	_, span := b.tracer.Start(ctx, "combat.start")
	defer span.End()

	for _, s := range []Side{SideLeft, SideRight} {
		healthy := b.parties[s].HealthyMonsters()
		if len(healthy) == 0 {
			return fmt.Errorf("starting battle %s: %s party %s: %w", b.id, s, b.parties[s].Name, ErrNoHealthy)
		}
		b.slots[s] = make([]*model.Monster, b.opts.InPlayPerSide)
		for i := range b.slots[s] {
			if i < len(healthy) {
				b.slots[s][i] = healthy[i]
			}
		}
	}
	b.phase = PhaseCollecting
	b.turn = 1
	b.meet()

	span.SetAttributes(
		attribute.String("battle_id", b.id.String()),
		attribute.Int("in_play_per_side", b.opts.InPlayPerSide),
		attribute.Bool("trainer", b.IsTrainerBattle()),
	)
	slog.Info("battle started",
		"battle_id", b.id,
		"left", b.parties[SideLeft].Name,
		"right", b.parties[SideRight].Name,
		"trainer", b.IsTrainerBattle())
	return nil
}

// Enqueue submits the action of one in-play monster for the current turn.
// A nil target defaults to the first opponent in play. With no opponent in
// play self and meta techniques fall back to the user, enemy techniques keep
// a nil target and are retargeted when they resolve.
func (b *Battle) Enqueue(a model.EnqueuedAction) error {
	if b.phase != PhaseCollecting {
		return fmt.Errorf("enqueue in phase %s: %w", b.phase, ErrWrongPhase)
	}
	if a.User == nil || a.Method == nil {
		return fmt.Errorf("enqueue: missing user or method: %w", ErrInvalidAction)
	}
	if b.sideOf(a.User) == SideNone || a.User.IsFainted() {
		return fmt.Errorf("enqueue %s: %w", a.User.Name, ErrNotInPlay)
	}
	if b.submitted[a.User] {
		return fmt.Errorf("enqueue %s: %w", a.User.Name, ErrAlreadySubmitted)
	}
	if a.Target == nil {
		if opp := b.Opponents(a.User); len(opp) > 0 {
			a.Target = opp[0]
		} else if t, ok := a.Method.(*model.Technique); !ok || t.Target == model.TargetSelf || t.Sort == MetaSort {
			a.Target = a.User
		}
	}
	if a.Target != nil && b.sideOf(a.Target) == SideNone {
		return fmt.Errorf("enqueue %s: target %s: %w", a.User.Name, a.Target.Name, ErrNotInPlay)
	}
	if t, ok := a.Method.(*model.Technique); ok && t.Sort != MetaSort && a.User.FindTechnique(t.Slug) != t {
		return fmt.Errorf("enqueue %s: %s does not know %s: %w", a.User.Name, a.User.Name, t.Slug, ErrInvalidAction)
	}
	b.queue.Enqueue(a)
	b.submitted[a.User] = true
	return nil
}

// Pending lists the in-play monsters that still have to submit an action.
func (b *Battle) Pending() []*model.Monster {
	if b.phase != PhaseCollecting {
		return nil
	}
	var out []*model.Monster
	for _, s := range []Side{SideLeft, SideRight} {
		for _, m := range b.slots[s] {
			if m != nil && !m.IsFainted() && !b.submitted[m] {
				out = append(out, m)
			}
		}
	}
	return out
}

// Vacancies returns the slot indexes of side s that are empty or hold a
// fainted monster.
func (b *Battle) Vacancies(s Side) []int {
	var out []int
	for i, m := range b.slots[s] {
		if m == nil || m.IsFainted() {
			out = append(out, i)
		}
	}
	return out
}

// Replace sends m into the first vacant slot of side s.
func (b *Battle) Replace(s Side, m *model.Monster) error {
	if b.phase != PhaseCollecting {
		return fmt.Errorf("replace in phase %s: %w", b.phase, ErrWrongPhase)
	}
	if !b.parties[s].Contains(m) || m.IsFainted() || b.sideOf(m) != SideNone {
		return fmt.Errorf("replace with %s: %w", m.Name, ErrInvalidAction)
	}
	vac := b.Vacancies(s)
	if len(vac) == 0 {
		return fmt.Errorf("replace on %s: %w", s, ErrNoVacancy)
	}
	b.slots[s][vac[0]] = m
	b.meet()
	b.narrate(model.Narrate("combat_send_out", "monster", m.Name, "side", s.String()))
	return nil
}

// ResolveTurn runs every submitted action in order, then the post-turn
// phase. All in-play monsters must have submitted.
func (b *Battle) ResolveTurn(ctx context.Context) (TurnReport, error) {
	if b.phase != PhaseCollecting {
		return TurnReport{}, fmt.Errorf("resolve turn: phase %s: %w", b.phase, ErrWrongPhase)
	}
	if p := b.Pending(); len(p) > 0 {
		return TurnReport{}, fmt.Errorf("resolve turn %d: %d missing: %w", b.turn, len(p), ErrPendingActions)
	}

	_, span := b.tracer.Start(ctx, "combat.turn")
	defer span.End()

	b.narration = nil
	b.fainted = nil
	b.phase = PhaseResolving
	b.meet()
	b.enqueueStatus()
	b.queue.Sort(b.rng, QueueConfig{MultiplierSpeed: b.opts.MultiplierSpeed, SpeedOffset: b.opts.SpeedOffset})

	actions := 0
	for b.phase == PhaseResolving {
		a, ok := b.queue.Pop()
		if !ok {
			break
		}
		if b.dispatch(a) {
			actions++
		}
		b.checkFaints()
	}

	if b.phase == PhaseResolving {
		b.phase = PhasePostTurn
		b.postTurn()
	}

	report := TurnReport{
		Turn:      b.turn,
		Narration: b.narration,
		Fainted:   b.fainted,
		Ended:     b.phase == PhaseEnded,
		Outcome:   b.outcome,
		Winner:    b.winner,
	}
	span.SetAttributes(
		attribute.String("battle_id", b.id.String()),
		attribute.Int("turn", b.turn),
		attribute.Int("actions", actions),
		attribute.Int("fainted", len(b.fainted)),
		attribute.Bool("ended", report.Ended),
	)

	if b.phase != PhaseEnded {
		clear(b.submitted)
		b.turn++
		b.phase = PhaseCollecting
	}
	return report, nil
}

// enqueueStatus adds one action per non-reactive condition of every monster
// in play. The holder is both user and target.
func (b *Battle) enqueueStatus() {
	for _, s := range []Side{SideLeft, SideRight} {
		for _, m := range b.slots[s] {
			if m == nil || m.IsFainted() {
				continue
			}
			for _, c := range m.Status() {
				if c.Reactive {
					continue
				}
				b.queue.Enqueue(model.EnqueuedAction{User: m, Method: c, Target: m})
			}
		}
	}
}

// dispatch runs one action and reports whether it was executed.
func (b *Battle) dispatch(a model.EnqueuedAction) bool {
	if b.sideOf(a.User) == SideNone || a.User.IsFainted() {
		slog.Debug("skipping action of monster out of play", "battle_id", b.id, "monster", a.User.Name)
		return false
	}
	switch m := a.Method.(type) {
	case *model.Condition:
		return b.useCondition(a.User, m)
	case *model.Technique:
		return b.useTechnique(a, m)
	default:
		slog.Warn("unsupported action method", "battle_id", b.id, "method", a.Method.Name())
		return false
	}
}

func (b *Battle) useCondition(holder *model.Monster, c *model.Condition) bool {
	if !slices.Contains(holder.Status(), c) {
		return false
	}
	if !c.Validate(holder) {
		return false
	}
	res := c.Use(b.view, holder)
	b.record(model.EnqueuedAction{User: holder, Method: c, Target: holder}, res)
	if res.Damage > 0 {
		b.narrate(model.Narrate("combat_status_damage",
			"monster", holder.Name,
			"status", c.Slug,
			"damage", strconv.Itoa(res.Damage)))
	}
	if res.Extra != "" {
		b.narrate(model.Narrate(res.Extra, "monster", holder.Name, "status", c.Slug))
	}
	return true
}

func (b *Battle) useTechnique(a model.EnqueuedAction, t *model.Technique) bool {
	user := a.User
	target := b.retarget(user, a.Target)
	if target == nil {
		b.narrate(model.Narrate("combat_no_target", "user", user.Name, "technique", t.Slug))
		return false
	}
	a.Target = target

	var res model.Result
	switch {
	case !t.Ready():
		res = model.Failed("combat_recharging")
	case !t.Validate(target):
		res = model.Failed("combat_cannot_use")
	default:
		res = t.Use(b.view, user, target)
	}
	b.record(a, res)

	b.narrate(model.Narrate("combat_used_technique",
		"user", user.Name,
		"technique", t.Slug,
		"target", target.Name))
	if res.Damage > 0 {
		b.narrate(model.Narrate("combat_damage",
			"target", target.Name,
			"damage", strconv.Itoa(res.Damage),
			"multiplier", strconv.FormatFloat(res.ElementMultiplier, 'f', -1, 64)))
	}
	if res.Extra != "" {
		b.narrate(model.Narrate(res.Extra, "user", user.Name, "target", target.Name))
	}
	slog.Debug("technique used",
		"battle_id", b.id,
		"turn", b.turn,
		"user", user.Name,
		"technique", t.Slug,
		"target", target.Name,
		"success", res.Success,
		"damage", res.Damage)

	if res.Success && res.ShouldTackle && target != user {
		b.tackled(target)
	}
	return true
}

// retarget keeps the chosen target when it is still fighting. Otherwise an
// opponent target is replaced by the first healthy opponent and an own-side
// target by the user.
func (b *Battle) retarget(user, target *model.Monster) *model.Monster {
	if target != nil && b.sideOf(target) != SideNone && !target.IsFainted() {
		return target
	}
	if target != nil && b.sameSide(user, target) {
		return user
	}
	if opp := b.Opponents(user); len(opp) > 0 {
		return opp[0]
	}
	return nil
}

// tackled runs the reactive conditions of a monster hit by a technique.
func (b *Battle) tackled(holder *model.Monster) {
	for _, c := range slices.Clone(holder.Status()) {
		if !c.Reactive || holder.IsFainted() || !c.Validate(holder) {
			continue
		}
		res := c.Use(b.view, holder)
		if res.Extra != "" {
			b.narrate(model.Narrate(res.Extra, "monster", holder.Name, "status", c.Slug))
		}
	}
}

func (b *Battle) record(a model.EnqueuedAction, res model.Result) {
	b.history = append(b.history, model.HistoryEntry{Turn: b.turn, Action: a, Result: res})
}

// postTurn ages conditions, expires the old ones and recharges moves.
func (b *Battle) postTurn() {
	for _, s := range []Side{SideLeft, SideRight} {
		for _, m := range b.slots[s] {
			if m == nil || m.IsFainted() {
				continue
			}
			for _, c := range slices.Clone(m.Status()) {
				c.NrTurn++
				if c.Expired() {
					m.RemoveStatus(c.Slug)
					b.narrate(model.Narrate("combat_status_expired", "monster", m.Name, "status", c.Slug))
				}
			}
			for _, t := range m.Moves() {
				t.Recharge()
			}
		}
	}
	b.checkFaints()
}

// checkFaints faints every monster in play at 0 HP, awards experience and
// ends the battle when a side has nobody left.
func (b *Battle) checkFaints() {
	if b.phase == PhaseEnded {
		return
	}
	for _, s := range []Side{SideLeft, SideRight} {
		for _, m := range b.slots[s] {
			if m == nil || m.CurrentHP() > 0 || b.knockedOut[m] {
				continue
			}
			b.faint(m)
		}
	}

	leftDown := len(b.parties[SideLeft].HealthyMonsters()) == 0
	rightDown := len(b.parties[SideRight].HealthyMonsters()) == 0
	switch {
	case leftDown && rightDown:
		b.end(OutcomeDraw, SideNone)
	case leftDown:
		b.end(OutcomeVictory, SideRight)
	case rightDown:
		b.end(OutcomeVictory, SideLeft)
	}
}

func (b *Battle) faint(m *model.Monster) {
	cond, err := b.factory.NewCondition(model.FaintSlug)
	if err != nil {
		slog.Error("failed to hydrate faint condition",
			"battle_id", b.id,
			"monster", m.Name,
			"error", err)
	}
	b.knockedOut[m] = true
	if !m.Faint(cond) {
		return
	}
	b.queue.RemoveByUser(m)
	b.fainted = append(b.fainted, m)
	b.narrate(model.Narrate("combat_fainted", "monster", m.Name))
	slog.Debug("monster fainted", "battle_id", b.id, "turn", b.turn, "monster", m.Name)
	b.awardExperience(m)
}

func (b *Battle) end(o Outcome, winner Side) {
	b.phase = PhaseEnded
	b.outcome = o
	b.winner = winner
	b.queue.Clear()
	if o == OutcomeEscaped || o == OutcomeForfeit {
		// Nobody stays on the field after leaving the battle.
		for s := range b.slots {
			clear(b.slots[s])
		}
	}
	for _, p := range b.parties {
		for _, m := range p.Monsters() {
			m.EndCombat()
		}
	}
	b.narrate(model.Narrate("combat_"+o.String(), "winner", winner.String()))
	slog.Info("battle ended",
		"battle_id", b.id,
		"turn", b.turn,
		"outcome", o,
		"winner", winner)
}

// meet records which opponents saw each other in play.
func (b *Battle) meet() {
	for _, m := range b.InPlay(SideLeft) {
		for _, o := range b.InPlay(SideRight) {
			b.addMet(m, o)
			b.addMet(o, m)
		}
	}
}

func (b *Battle) addMet(m, o *model.Monster) {
	set, ok := b.met[m]
	if !ok {
		set = make(map[*model.Monster]struct{})
		b.met[m] = set
	}
	set[o] = struct{}{}
}

func (b *Battle) narrate(n model.Narration) {
	b.narration = append(b.narration, n)
	if b.narrationObserver != nil {
		b.narrationObserver(n)
	}
}

// sideOf returns the side m is in play on, SideNone when benched.
func (b *Battle) sideOf(m *model.Monster) Side {
	for _, s := range []Side{SideLeft, SideRight} {
		if slices.Contains(b.slots[s], m) {
			return s
		}
	}
	return SideNone
}

// sameSide compares party membership so it also works for benched monsters.
func (b *Battle) sameSide(x, y *model.Monster) bool {
	for _, p := range b.parties {
		if p.Contains(x) && p.Contains(y) {
			return true
		}
	}
	return false
}
