package evolution

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/data"
	"github.com/udisondev/tuxbattle/internal/game/skill"
	"github.com/udisondev/tuxbattle/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func newMonster() *model.Monster {
	return &model.Monster{
		Slug:      "rockitten",
		Name:      "rockitten",
		Level:     10,
		Types:     []model.Element{model.ElementEarth},
		Gender:    model.GenderFemale,
		TasteWarm: "peppy",
		TasteCold: "mild",
		Melee:     30,
		Armour:    20,
		Bond:      50,
	}
}

func TestCanEvolve(t *testing.T) {
	tests := []struct {
		name string
		evo  model.Evolution
		ctx  Context
		want bool
	}{
		{"empty candidate", model.Evolution{MonsterSlug: "x"}, Context{}, true},
		{"level reached", model.Evolution{Level: 10}, Context{}, true},
		{"level not reached", model.Evolution{Level: 11}, Context{}, false},
		{"gender", model.Evolution{Gender: model.GenderMale}, Context{}, false},
		{"element", model.Evolution{Element: model.ElementEarth}, Context{}, true},
		{"inside matches", model.Evolution{Inside: boolPtr(false)}, Context{Inside: false}, true},
		{"inside differs", model.Evolution{Inside: boolPtr(false)}, Context{Inside: true}, false},
		{"traded", model.Evolution{Traded: boolPtr(true)}, Context{}, false},
		{"party present", model.Evolution{Party: []string{"nut"}}, Context{Party: []string{"agnite", "nut"}}, true},
		{"party missing", model.Evolution{Party: []string{"nut"}}, Context{Party: []string{"agnite"}}, false},
		{"taste warm", model.Evolution{TasteWarm: "peppy"}, Context{}, true},
		{"taste cold", model.Evolution{TasteCold: "soft"}, Context{}, false},
		{"stats", model.Evolution{Stats: "melee:greater_than:armour"}, Context{}, true},
		{"stats reversed", model.Evolution{Stats: "armour:greater_than:melee"}, Context{}, false},
		{"bond", model.Evolution{Bond: "greater_or_equal:50"}, Context{}, true},
		{"bond low", model.Evolution{Bond: "greater_than:50"}, Context{}, false},
		{"variables", model.Evolution{Variables: []string{"weather:rain"}}, Context{Variables: map[string]string{"weather": "rain"}}, true},
		{"variables differ", model.Evolution{Variables: []string{"weather:rain"}}, Context{}, false},
		{"conjunction fails on one field", model.Evolution{Level: 5, Gender: model.GenderMale}, Context{}, false},
		{"item without use", model.Evolution{Item: "stone", Level: 1}, Context{}, false},
		{"item ignores other fields", model.Evolution{Item: "stone", Level: 99}, Context{UseItem: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanEvolve(newMonster(), tt.evo, tt.ctx)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("CanEvolve() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCanEvolve_Moves(t *testing.T) {
	m := newMonster()
	require.NoError(t, m.Learn(&model.Technique{Slug: "ram"}))

	ok, err := CanEvolve(m, model.Evolution{Tech: "ram"}, Context{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanEvolve(m, model.Evolution{Moves: []string{"ram", "fire_claw"}}, Context{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanEvolve_StepsMutate(t *testing.T) {
	m := newMonster()
	m.Steps = 498
	evo := model.Evolution{Steps: 500}

	ok, err := CanEvolve(m, evo, Context{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 499, m.Steps)
	assert.True(t, m.LevellingUp)
	assert.True(t, m.GotExperience)

	ok, err = CanEvolve(m, evo, Context{})
	require.NoError(t, err)
	assert.True(t, ok)

	// Equality only: passing the threshold closes the window.
	ok, err = CanEvolve(m, evo, Context{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanEvolve_Malformed(t *testing.T) {
	tests := []struct {
		name string
		evo  model.Evolution
	}{
		{"stats arity", model.Evolution{Stats: "melee:armour"}},
		{"stats unknown stat", model.Evolution{Stats: "luck:less_than:armour"}},
		{"stats operator", model.Evolution{Stats: "melee:bigger:armour"}},
		{"bond separator", model.Evolution{Bond: "greater_than"}},
		{"bond value", model.Evolution{Bond: "greater_than:lots"}},
		{"variable separator", model.Evolution{Variables: []string{"weather"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CanEvolve(newMonster(), tt.evo, Context{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed) || errors.Is(err, model.ErrUnknownOperator))
		})
	}
}

func TestFirstEligible(t *testing.T) {
	m := newMonster()
	m.Evolutions = []model.Evolution{
		{MonsterSlug: "rockat", Level: 18},
		{MonsterSlug: "rockat", Traded: boolPtr(false)},
	}
	evo, ok, err := FirstEligible(m, Context{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, evo.Level)
	assert.Equal(t, boolPtr(false), evo.Traded)

	m.Evolutions = []model.Evolution{{MonsterSlug: "rockat", Bond: "bad"}}
	_, _, err = FirstEligible(m, Context{})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEvolve(t *testing.T) {
	catalog, err := data.Load()
	require.NoError(t, err)
	h := skill.NewHydrator(catalog)

	m, err := h.NewMonster("agnite", 20, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	m.SetCurrentHP(m.HP / 2)
	moves := len(m.Moves())

	evo, ok, err := FirstEligible(m, Context{})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, Evolve(h, m, evo))
	assert.Equal(t, "agnidon", m.Slug)
	assert.Equal(t, []model.EvolutionRecord{{From: "agnite", To: "agnidon", Level: 20}}, m.History)
	assert.Len(t, m.Moves(), moves)
	assert.InDelta(t, 0.5, m.HPRatio(), 0.05)

	assert.Error(t, Evolve(h, m, model.Evolution{MonsterSlug: "missingno"}))
}
