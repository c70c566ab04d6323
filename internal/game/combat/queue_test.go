package combat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/model"
)

func queueMonster(name string, speed, dodge int) *model.Monster {
	return &model.Monster{Name: name, Speed: speed, Dodge: dodge}
}

func technique(sort string, fast bool) *model.Technique {
	return &model.Technique{Slug: sort, Sort: sort, IsFast: fast}
}

var testQueueConfig = QueueConfig{MultiplierSpeed: 1.5, SpeedOffset: 3}

func TestCategoryRank(t *testing.T) {
	tests := []struct {
		sort string
		want int
	}{
		{"damage", 1},
		{"utility", 2},
		{"potion", 4},
		{"meta", 6},
		{"nonsense", 0},
	}
	for _, tt := range tests {
		if got := CategoryRank(technique(tt.sort, false)); got != tt.want {
			t.Errorf("CategoryRank(%q) = %d; want %d", tt.sort, got, tt.want)
		}
	}
	if got := CategoryRank(nil); got != 0 {
		t.Errorf("CategoryRank(nil) = %d; want 0", got)
	}
}

func TestKey(t *testing.T) {
	m := queueMonster("a", 10, 50)

	k := Key(model.EnqueuedAction{User: m, Method: technique("damage", false)}, 0, testQueueConfig)
	assert.Equal(t, 1, k.CategoryRank)
	assert.InDelta(t, 10.5, k.Speed, 1e-9)

	k = Key(model.EnqueuedAction{User: m, Method: technique("damage", true)}, -2, testQueueConfig)
	assert.InDelta(t, 13.5, k.Speed, 1e-9, "fast multiplies speed before jitter")

	slow := queueMonster("b", 0, 0)
	k = Key(model.EnqueuedAction{User: slow, Method: technique("damage", false)}, -3, testQueueConfig)
	assert.InDelta(t, 1.0, k.Speed, 1e-9, "speed floor is 1")

	assert.Equal(t, SortKey{}, Key(model.EnqueuedAction{Method: technique("meta", false)}, 1, testQueueConfig))
}

func TestActionQueue_Sort(t *testing.T) {
	fast := queueMonster("fast", 30, 0)
	slow := queueMonster("slow", 10, 0)
	runner := queueMonster("runner", 1, 0)

	var q ActionQueue
	q.Enqueue(model.EnqueuedAction{User: slow, Method: technique("damage", false)})
	q.Enqueue(model.EnqueuedAction{User: fast, Method: technique("damage", false)})
	q.Enqueue(model.EnqueuedAction{User: runner, Method: technique("meta", false)})
	q.Sort(fixedSource{F: 0.5}, testQueueConfig)

	var order []string
	for _, a := range q.Actions() {
		order = append(order, a.User.Name)
	}
	assert.Equal(t, []string{"runner", "fast", "slow"}, order, "meta acts first, then by speed")

	a, ok := q.Pop()
	require.True(t, ok)
	assert.Same(t, runner, a.User)
	assert.Equal(t, 2, q.Len())
}

func TestActionQueue_StableOnTies(t *testing.T) {
	var q ActionQueue
	first := queueMonster("first", 10, 0)
	second := queueMonster("second", 10, 0)
	q.Enqueue(model.EnqueuedAction{User: first, Method: technique("damage", false)})
	q.Enqueue(model.EnqueuedAction{User: second, Method: technique("damage", false)})
	q.Sort(fixedSource{F: 0.5}, testQueueConfig)

	acts := q.Actions()
	assert.Same(t, first, acts[0].User)
	assert.Same(t, second, acts[1].User)
}

func TestActionQueue_DodgeBreaksSpeedTies(t *testing.T) {
	var q ActionQueue
	clumsy := queueMonster("clumsy", 10, 0)
	nimble := queueMonster("nimble", 10, 50)
	q.Enqueue(model.EnqueuedAction{User: clumsy, Method: technique("damage", false)})
	q.Enqueue(model.EnqueuedAction{User: nimble, Method: technique("damage", false)})
	q.Sort(fixedSource{F: 0.5}, testQueueConfig)

	a, ok := q.Pop()
	require.True(t, ok)
	assert.Same(t, nimble, a.User, "higher dodge acts first on equal speed")
	a, ok = q.Pop()
	require.True(t, ok)
	assert.Same(t, clumsy, a.User)
}

func TestActionQueue_DeterministicForSeed(t *testing.T) {
	build := func() []string {
		var q ActionQueue
		for i, speed := range []int{12, 11, 12, 10, 13} {
			m := queueMonster(string(rune('a'+i)), speed, 0)
			q.Enqueue(model.EnqueuedAction{User: m, Method: technique("damage", false)})
		}
		q.Sort(rand.New(rand.NewPCG(7, 7)), testQueueConfig)
		var names []string
		for _, a := range q.Actions() {
			names = append(names, a.User.Name)
		}
		return names
	}
	assert.Equal(t, build(), build())
}

func TestActionQueue_JitterRolledOnce(t *testing.T) {
	var q ActionQueue
	a := queueMonster("a", 10, 0)
	b := queueMonster("b", 10, 0)
	q.Enqueue(model.EnqueuedAction{User: a, Method: technique("damage", false)})
	q.Sort(fixedSource{F: 1}, testQueueConfig) // a gets +3

	q.Enqueue(model.EnqueuedAction{User: b, Method: technique("damage", false)})
	q.Sort(fixedSource{F: 0.6}, testQueueConfig) // b gets +0.6, a keeps +3

	acts := q.Actions()
	assert.Same(t, a, acts[0].User)
	assert.Same(t, b, acts[1].User)
}

func TestActionQueue_RemoveByUser(t *testing.T) {
	var q ActionQueue
	a := queueMonster("a", 10, 0)
	b := queueMonster("b", 10, 0)
	q.Enqueue(model.EnqueuedAction{User: a, Method: technique("damage", false)})
	q.Enqueue(model.EnqueuedAction{User: b, Method: technique("damage", false)})
	q.Enqueue(model.EnqueuedAction{User: a, Method: technique("meta", false)})

	if got := q.RemoveByUser(a); got != 2 {
		t.Errorf("RemoveByUser() = %d; want 2", got)
	}
	require.Equal(t, 1, q.Len())
	assert.Same(t, b, q.Actions()[0].User)

	q.Clear()
	_, ok := q.Pop()
	assert.False(t, ok)
}
