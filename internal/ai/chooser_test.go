package ai

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/model"
	"github.com/udisondev/tuxbattle/internal/testutil"
)

type field struct{ opponents []*model.Monster }

func (f field) Opponents(*model.Monster) []*model.Monster { return f.opponents }

func TestChooseAction_PrefersEffectiveDamage(t *testing.T) {
	h := testutil.Hydrator(t)
	// water_jet is super effective against fire, ram is neutral.
	user := testutil.Monster(t, h, "dollfin", 20, "ram", "water_jet")
	foe := testutil.Monster(t, h, "agnite", 20)

	a, ok := ChooseAction(field{[]*model.Monster{foe}}, user, testutil.FixedSource{F: 0.5})
	require.True(t, ok)
	assert.Equal(t, "water_jet", a.Method.Name())
	assert.Same(t, foe, a.Target)
	assert.Same(t, user, a.User)
}

func TestChooseAction_HealsWhenLow(t *testing.T) {
	h := testutil.Hydrator(t)
	user := testutil.Monster(t, h, "dollfin", 20, "ram", "mend")
	foe := testutil.Monster(t, h, "agnite", 20)
	f := field{[]*model.Monster{foe}}

	a, ok := ChooseAction(f, user, testutil.FixedSource{F: 0.5})
	require.True(t, ok)
	assert.Equal(t, "ram", a.Method.Name(), "full HP: mend predicate rejects")

	user.SetCurrentHP(user.HP / 5)
	a, ok = ChooseAction(f, user, testutil.FixedSource{F: 0.5})
	require.True(t, ok)
	assert.Equal(t, "mend", a.Method.Name())
	assert.Same(t, user, a.Target)
}

func TestChooseAction_SkipsRecharging(t *testing.T) {
	h := testutil.Hydrator(t)
	user := testutil.Monster(t, h, "dollfin", 20, "water_jet", "ram")
	foe := testutil.Monster(t, h, "agnite", 20)
	user.FindTechnique("water_jet").NextUse = 2

	a, ok := ChooseAction(field{[]*model.Monster{foe}}, user, testutil.FixedSource{F: 0.5})
	require.True(t, ok)
	assert.Equal(t, "ram", a.Method.Name())

	user.FindTechnique("ram").NextUse = 1
	a, ok = ChooseAction(field{[]*model.Monster{foe}}, user, testutil.FixedSource{F: 0.5})
	require.True(t, ok)
	assert.Equal(t, "water_jet", a.Method.Name(), "falls back to the first move")
}

func TestChooseAction_SkipsUntargetable(t *testing.T) {
	h := testutil.Hydrator(t)
	user := testutil.Monster(t, h, "agnite", 20, "ram")
	flying := testutil.Monster(t, h, "eyenemy", 20)
	flying.OutOfRange = "flying"
	ground := testutil.Monster(t, h, "nut", 20)

	a, ok := ChooseAction(field{[]*model.Monster{flying, ground}}, user, testutil.FixedSource{F: 0.5})
	require.True(t, ok)
	assert.Same(t, ground, a.Target)
}

func TestChooseAction_NothingToDo(t *testing.T) {
	h := testutil.Hydrator(t)
	user := testutil.Monster(t, h, "agnite", 20)
	for _, tech := range slices.Clone(user.Moves()) {
		user.Forget(tech.Slug)
	}
	foe := testutil.Monster(t, h, "nut", 20)

	_, ok := ChooseAction(field{[]*model.Monster{foe}}, user, testutil.FixedSource{})
	assert.False(t, ok, "no moves")

	user = testutil.Monster(t, h, "agnite", 20, "ram")
	_, ok = ChooseAction(field{}, user, testutil.FixedSource{})
	assert.False(t, ok, "no opponents")
}

func TestChooseReplacement(t *testing.T) {
	a := &model.Monster{HP: 50}
	a.SetCurrentHP(10)
	b := &model.Monster{HP: 50}
	b.SetCurrentHP(40)
	c := &model.Monster{HP: 50}

	assert.Same(t, b, ChooseReplacement([]*model.Monster{a, b, c}))
	assert.Nil(t, ChooseReplacement([]*model.Monster{c}))
	assert.Nil(t, ChooseReplacement(nil))
}
