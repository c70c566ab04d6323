package skill

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/data"
	"github.com/udisondev/tuxbattle/internal/model"
)

// fixedSource always draws f for Float64 and 0 for IntN.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(int) int     { return 0 }

// stubArena is a minimal battle view for effect tests.
type stubArena struct {
	rng       model.Source
	hydrator  *Hydrator
	turn      int
	history   []model.HistoryEntry
	left      []*model.Monster
	right     []*model.Monster
	bench     []*model.Monster
	removed   []*model.Monster
	escapeOK  bool
	trainer   bool
	forfeited bool
}

func (a *stubArena) Rand() model.Source { return a.rng }
func (a *stubArena) Turn() int          { return a.turn }

func (a *stubArena) History(turn int) []model.HistoryEntry {
	var out []model.HistoryEntry
	for _, h := range a.history {
		if h.Turn == turn {
			out = append(out, h)
		}
	}
	return out
}

func (a *stubArena) side(m *model.Monster) ([]*model.Monster, []*model.Monster) {
	for _, x := range a.left {
		if x == m {
			return a.left, a.right
		}
	}
	return a.right, a.left
}

func (a *stubArena) Opponents(m *model.Monster) []*model.Monster {
	_, opp := a.side(m)
	return opp
}

func (a *stubArena) Allies(m *model.Monster) []*model.Monster {
	own, _ := a.side(m)
	var out []*model.Monster
	for _, x := range own {
		if x != m {
			out = append(out, x)
		}
	}
	return out
}

func (a *stubArena) Enqueue(model.EnqueuedAction) {}

func (a *stubArena) RemoveActions(user *model.Monster) int {
	a.removed = append(a.removed, user)
	return 1
}

func (a *stubArena) NewCondition(slug string) (*model.Condition, error) {
	return a.hydrator.NewCondition(slug)
}

func (a *stubArena) Swap(m *model.Monster) (*model.Monster, error) {
	if len(a.bench) == 0 {
		return nil, errNoBench
	}
	next := a.bench[0]
	a.bench = a.bench[1:]
	return next, nil
}

func (a *stubArena) Escape(*model.Monster) bool { return a.escapeOK }

func (a *stubArena) Forfeit(*model.Monster) bool {
	a.forfeited = a.trainer
	return a.trainer
}

func (a *stubArena) IsTrainerBattle() bool { return a.trainer }

var errNoBench = errors.New("no healthy monster on the bench")

func newTestHydrator(t *testing.T) *Hydrator {
	t.Helper()
	c, err := data.Load()
	require.NoError(t, err)
	return NewHydrator(c)
}

func newTestArena(t *testing.T, h *Hydrator, user, target *model.Monster) *stubArena {
	t.Helper()
	return &stubArena{
		rng:      fixedSource{f: 0},
		hydrator: h,
		turn:     1,
		left:     []*model.Monster{user},
		right:    []*model.Monster{target},
	}
}

func newTestMonster(t *testing.T, h *Hydrator, slug string, level int) *model.Monster {
	t.Helper()
	m, err := h.NewMonster(slug, level, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	m.TasteWarm, m.TasteCold = model.TasteNone, model.TasteNone
	m.SetStats()
	m.SetCurrentHP(m.HP)
	return m
}

func newTestTechnique(t *testing.T, h *Hydrator, slug string) *model.Technique {
	t.Helper()
	tech, err := h.NewTechnique(slug)
	require.NoError(t, err)
	return tech
}
