package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/game/skill"
	"github.com/udisondev/tuxbattle/internal/model"
	"github.com/udisondev/tuxbattle/internal/testutil"
)

type fixedSource = testutil.FixedSource

func newTestHydrator(t *testing.T) *skill.Hydrator {
	t.Helper()
	return testutil.Hydrator(t)
}

func newTestMonster(t *testing.T, h *skill.Hydrator, slug string, level int, moves ...string) *model.Monster {
	t.Helper()
	return testutil.Monster(t, h, slug, level, moves...)
}

func newTestParty(t *testing.T, name string, player bool, ms ...*model.Monster) *model.Party {
	t.Helper()
	return testutil.Party(t, name, player, ms...)
}

func newWildParty(t *testing.T, ms ...*model.Monster) *model.Party {
	t.Helper()
	return testutil.WildParty(t, "wild", ms...)
}

func startBattle(t *testing.T, h *skill.Hydrator, left, right *model.Party, rng model.Source) *Battle {
	t.Helper()
	b := NewBattle(left, right, h, rng, DefaultOptions())
	require.NoError(t, b.Start(context.Background()))
	return b
}

// use submits a known technique of user, or a hydrated meta technique.
func use(t *testing.T, h *skill.Hydrator, b *Battle, user *model.Monster, slug string, target *model.Monster) {
	t.Helper()
	tech := user.FindTechnique(slug)
	if tech == nil {
		var err error
		tech, err = h.NewTechnique(slug)
		require.NoError(t, err)
	}
	require.NoError(t, b.Enqueue(model.EnqueuedAction{User: user, Method: tech, Target: target}))
}

func resolve(t *testing.T, b *Battle) TurnReport {
	t.Helper()
	r, err := b.ResolveTurn(context.Background())
	require.NoError(t, err)
	return r
}

func tokens(ns []model.Narration) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Token)
	}
	return out
}
