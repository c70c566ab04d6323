package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/tuxbattle/internal/model"
)

func TestMonster_ExactMoves(t *testing.T) {
	h := Hydrator(t)
	m := Monster(t, h, "agnite", 10, "ram", "fire_claw")

	got := make([]string, 0, len(m.Moves()))
	for _, tech := range m.Moves() {
		got = append(got, tech.Slug)
	}
	assert.Equal(t, []string{"ram", "fire_claw"}, got)
	assert.Equal(t, m.HP, m.CurrentHP())
	assert.Equal(t, model.TasteNone, m.TasteWarm)
	assert.Equal(t, model.TasteNone, m.TasteCold)
}

func TestParties(t *testing.T) {
	h := Hydrator(t)
	a := Monster(t, h, "agnite", 5)
	b := Monster(t, h, "nut", 5)

	p := Party(t, "ash", true, a)
	assert.False(t, p.IsWild())
	assert.True(t, p.Contains(a))

	w := WildParty(t, "wild", b)
	assert.True(t, w.IsWild())
	assert.True(t, b.Wild)
}

func TestCatalog_Shared(t *testing.T) {
	assert.Same(t, Catalog(t), Catalog(t))
}
