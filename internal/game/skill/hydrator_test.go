package skill

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/data"
	"github.com/udisondev/tuxbattle/internal/model"
)

func TestHydrator_NewMonster(t *testing.T) {
	h := newTestHydrator(t)

	tests := []struct {
		level     int
		wantMoves []string
	}{
		{1, []string{"ram"}},
		{10, []string{"ram", "fire_claw", "enrage"}},
		{20, []string{"ram", "fire_claw", "enrage", "vengeance"}},
	}

	for _, tt := range tests {
		m, err := h.NewMonster("agnite", tt.level, rand.New(rand.NewPCG(7, 7)))
		require.NoError(t, err)

		var got []string
		for _, mv := range m.Moves() {
			got = append(got, mv.Slug)
		}
		assert.Equal(t, tt.wantMoves, got, "moves at level %d", tt.level)
		assert.Equal(t, m.HP, m.CurrentHP())
		assert.True(t, m.Wild)
		assert.Contains(t, []model.Gender{model.GenderMale, model.GenderFemale}, m.Gender)
		assert.Equal(t, m.ExperienceRequired(0), m.TotalExperience)
	}
}

func TestHydrator_NewMonsterErrors(t *testing.T) {
	h := newTestHydrator(t)
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := h.NewMonster("missingno", 5, rng)
	assert.ErrorIs(t, err, data.ErrNotFound)

	_, err = h.NewMonster("agnite", 0, rng)
	assert.Error(t, err)

	_, err = h.NewTechnique("hyper_beam")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestHydrator_SkipsMalformedSpecs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	pack := `
techniques:
  - slug: glitch_beam
    sort: damage
    range: ranged
    types: [aether]
    accuracy: 1.0
    power: 1.0
    effects: ["damage", "poison_cloud 3", "give poison"]
    conditions: ["is level roughly,5", "not fainted"]
`
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o600))
	c, err := data.LoadFile(path)
	require.NoError(t, err)
	h := NewHydrator(c)

	tech, err := h.NewTechnique("glitch_beam")
	require.NoError(t, err)
	require.Len(t, tech.Effects, 1, "only the well-formed effect survives")
	assert.Equal(t, "damage", tech.Effects[0].Name())
	require.Len(t, tech.Predicates, 1)
	assert.Equal(t, "fainted", tech.Predicates[0].Name())
}

func TestHydrator_RestoreMonster(t *testing.T) {
	h := newTestHydrator(t)
	m, err := h.NewMonster("budaye", 12, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	m.ModSpeed = 5
	m.SetStats()
	m.Damage(10)
	m.Moves()[0].Counter = 9
	m.Moves()[0].NextUse = 2
	poison, err := h.NewCondition("poison")
	require.NoError(t, err)
	poison.NrTurn = 3
	m.ApplyStatus(poison)

	restored, err := h.RestoreMonster(m.GetState())
	require.NoError(t, err)

	assert.Equal(t, m.InstanceID, restored.InstanceID)
	assert.Equal(t, m.Speed, restored.Speed)
	assert.Equal(t, m.CurrentHP(), restored.CurrentHP())
	assert.Equal(t, m.Types, restored.Types)
	require.Len(t, restored.Moves(), len(m.Moves()))
	assert.Equal(t, 9, restored.Moves()[0].Counter)
	assert.Equal(t, 2, restored.Moves()[0].NextUse)
	assert.NotEmpty(t, restored.Moves()[0].Effects, "effects are rehydrated from the catalog")
	require.Len(t, restored.Status(), 1)
	assert.Equal(t, 3, restored.Status()[0].NrTurn)
	assert.Same(t, restored, restored.Status()[0].Link)
}

func TestHydrator_ApplySpecies(t *testing.T) {
	h := newTestHydrator(t)
	m, err := h.NewMonster("agnite", 20, rand.New(rand.NewPCG(5, 5)))
	require.NoError(t, err)
	armour := m.Armour

	require.NoError(t, h.ApplySpecies(m, "agnidon"))
	assert.Equal(t, "agnidon", m.Slug)
	assert.Equal(t, "dragon", m.Shape.Slug)
	assert.Empty(t, m.Evolutions)
	assert.Greater(t, m.Armour, armour)
}
