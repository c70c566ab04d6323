package combat

import (
	"fmt"
	"slices"

	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// arena is the model.Arena view of a battle handed to effects. It is a
// separate type because effects enqueue follow-ups without the submission
// rules of Battle.Enqueue.
type arena struct {
	b *Battle
}

var _ model.Arena = arena{}

func (a arena) Rand() model.Source                            { return a.b.rng }
func (a arena) Turn() int                                     { return a.b.turn }
func (a arena) History(turn int) []model.HistoryEntry         { return a.b.History(turn) }
func (a arena) Opponents(m *model.Monster) []*model.Monster   { return a.b.Opponents(m) }
func (a arena) Allies(m *model.Monster) []*model.Monster      { return a.b.Allies(m) }
func (a arena) Enqueue(action model.EnqueuedAction)           { a.b.queue.Enqueue(action) }
func (a arena) RemoveActions(user *model.Monster) int         { return a.b.queue.RemoveByUser(user) }
func (a arena) Swap(m *model.Monster) (*model.Monster, error) { return a.b.swap(m) }
func (a arena) Escape(user *model.Monster) bool               { return a.b.escape(user) }
func (a arena) Forfeit(user *model.Monster) bool              { return a.b.forfeit(user) }
func (a arena) IsTrainerBattle() bool                         { return a.b.IsTrainerBattle() }

func (a arena) NewCondition(slug string) (*model.Condition, error) {
	return a.b.factory.NewCondition(slug)
}

// Turn returns the current turn number, starting at 1.
func (b *Battle) Turn() int {
	return b.turn
}

// History returns the entries recorded for turn, oldest first.
func (b *Battle) History(turn int) []model.HistoryEntry {
	var out []model.HistoryEntry
	for _, h := range b.history {
		if h.Turn == turn {
			out = append(out, h)
		}
	}
	return out
}

// Opponents returns the healthy monsters in play facing m.
func (b *Battle) Opponents(m *model.Monster) []*model.Monster {
	s := b.sideOf(m)
	if s == SideNone {
		return nil
	}
	return b.healthyInPlay(s.Opposite())
}

// Allies returns the healthy monsters in play on m's side, m excluded.
func (b *Battle) Allies(m *model.Monster) []*model.Monster {
	s := b.sideOf(m)
	if s == SideNone {
		return nil
	}
	return slices.DeleteFunc(b.healthyInPlay(s), func(x *model.Monster) bool { return x == m })
}

// IsTrainerBattle reports whether neither side is a wild encounter.
func (b *Battle) IsTrainerBattle() bool {
	return !b.parties[SideLeft].IsWild() && !b.parties[SideRight].IsWild()
}

func (b *Battle) healthyInPlay(s Side) []*model.Monster {
	var out []*model.Monster
	for _, m := range b.slots[s] {
		if m != nil && !m.IsFainted() {
			out = append(out, m)
		}
	}
	return out
}

// swap withdraws m and sends in the first healthy benched monster of its
// party. Conditions without Bond stay behind.
func (b *Battle) swap(m *model.Monster) (*model.Monster, error) {
	s := b.sideOf(m)
	if s == SideNone {
		return nil, fmt.Errorf("swapping %s: %w", m.Name, ErrNotInPlay)
	}
	var next *model.Monster
	for _, c := range b.parties[s].Monsters() {
		if !c.IsFainted() && b.sideOf(c) == SideNone {
			next = c
			break
		}
	}
	if next == nil {
		return nil, fmt.Errorf("swapping %s: %w", m.Name, ErrNoBench)
	}

	for _, c := range slices.Clone(m.Status()) {
		if !c.Bond {
			m.RemoveStatus(c.Slug)
		}
	}
	m.OutOfRange = ""
	i := slices.Index(b.slots[s], m)
	b.slots[s][i] = next
	b.meet()

	b.narrate(model.Narrate("combat_swap", "out", m.Name, "in", next.Name, "side", s.String()))
	return next, nil
}

// escape tries to run away on behalf of user. Trainer battles cannot be
// escaped. Every failed try makes the next one easier.
func (b *Battle) escape(user *model.Monster) bool {
	if b.IsTrainerBattle() || b.phase == PhaseEnded {
		return false
	}
	s := b.sideOf(user)
	if s == SideNone {
		return false
	}
	level := user.Level
	if opp := b.healthyInPlay(s.Opposite()); len(opp) > 0 {
		level = opp[0].Level
	}
	p := formula.EscapeChance(b.escapeAttempts[s], user.Level, level)
	if !formula.Chance(p, b.rng) {
		b.escapeAttempts[s]++
		return false
	}
	b.end(OutcomeEscaped, SideNone)
	return true
}

// forfeit concedes a trainer battle. Wild battles cannot be forfeited.
func (b *Battle) forfeit(user *model.Monster) bool {
	if !b.IsTrainerBattle() || b.phase == PhaseEnded {
		return false
	}
	s := b.sideOf(user)
	if s == SideNone {
		return false
	}
	b.end(OutcomeForfeit, s.Opposite())
	return true
}
