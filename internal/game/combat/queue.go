package combat

import (
	"cmp"
	"slices"

	"github.com/udisondev/tuxbattle/internal/model"
)

// SortOrder ranks method sort groups; later entries act first.
var SortOrder = []string{"damage", "utility", "food", "potion", "quest", "meta"}

// MetaSort is the sort group of swap, run, forfeit and status conditions.
const MetaSort = "meta"

// SpeedDodgeWeight is the dodge share added to the speed key as a tiebreaker.
const SpeedDodgeWeight = 0.01

// SortKey orders queued actions. Higher keys act first.
type SortKey struct {
	CategoryRank int
	Speed        float64
}

// Compare orders keys by rank, then speed.
func (k SortKey) Compare(o SortKey) int {
	if c := cmp.Compare(k.CategoryRank, o.CategoryRank); c != 0 {
		return c
	}
	return cmp.Compare(k.Speed, o.Speed)
}

// QueueConfig tunes the speed part of the sort key.
type QueueConfig struct {
	MultiplierSpeed float64
	SpeedOffset     float64
}

// CategoryRank returns 1 + the position of the method's sort group in
// SortOrder, or 0 for unknown groups and nil methods.
func CategoryRank(m model.Method) int {
	if m == nil {
		return 0
	}
	if i := slices.Index(SortOrder, m.SortGroup()); i >= 0 {
		return i + 1
	}
	return 0
}

type queued struct {
	action model.EnqueuedAction
	jitter float64
	rolled bool
}

// ActionQueue holds the actions of one turn.
type ActionQueue struct {
	items []*queued
}

func (q *ActionQueue) Enqueue(a model.EnqueuedAction) { q.items = append(q.items, &queued{action: a}) }
func (q *ActionQueue) Len() int                       { return len(q.items) }

// Sort orders the queue by descending SortKey. Equal keys keep their
// enqueue order. Each action draws its speed jitter once; later sorts reuse it.
func (q *ActionQueue) Sort(rng model.Source, cfg QueueConfig) {
	for _, it := range q.items {
		if !it.rolled {
			it.jitter = (rng.Float64()*2 - 1) * cfg.SpeedOffset
			it.rolled = true
		}
	}
	slices.SortStableFunc(q.items, func(a, b *queued) int {
		return b.key(cfg).Compare(a.key(cfg))
	})
}

// Pop removes and returns the first action.
func (q *ActionQueue) Pop() (model.EnqueuedAction, bool) {
	if len(q.items) == 0 {
		return model.EnqueuedAction{}, false
	}
	it := q.items[0]
	q.items = q.items[1:]
	return it.action, true
}

// RemoveByUser drops every action of user and returns how many were dropped.
func (q *ActionQueue) RemoveByUser(user *model.Monster) int {
	n := len(q.items)
	q.items = slices.DeleteFunc(q.items, func(it *queued) bool {
		return it.action.User == user
	})
	return n - len(q.items)
}

// Actions returns the queued actions in their current order.
func (q *ActionQueue) Actions() []model.EnqueuedAction {
	out := make([]model.EnqueuedAction, 0, len(q.items))
	for _, it := range q.items {
		out = append(out, it.action)
	}
	return out
}

// Clear drops everything.
func (q *ActionQueue) Clear() {
	q.items = nil
}

func (it *queued) key(cfg QueueConfig) SortKey {
	a := it.action
	if a.User == nil || a.Method == nil {
		return SortKey{}
	}
	speed := float64(a.User.Speed)
	if a.Method.Fast() {
		speed *= cfg.MultiplierSpeed
	}
	return SortKey{
		CategoryRank: CategoryRank(a.Method),
		Speed:        max(speed+it.jitter, 1) + float64(a.User.Dodge)*SpeedDodgeWeight,
	}
}

// Key returns the sort key an action would get with the given jitter.
func Key(a model.EnqueuedAction, jitter float64, cfg QueueConfig) SortKey {
	it := queued{action: a, jitter: jitter, rolled: true}
	return it.key(cfg)
}
