package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParty_AddMonster(t *testing.T) {
	p := NewParty("player", "Red", true)
	for i := range MaxPartySize + 1 {
		m := newTestMonster(t, fmt.Sprintf("mon%d", i), 5)
		m.Wild = true
		require.NoError(t, p.AddMonster(m))
		assert.Same(t, p, m.Owner())
		assert.False(t, m.Wild)
	}

	assert.Len(t, p.Monsters(), MaxPartySize)
	require.Len(t, p.Storage(), 1, "overflow goes to storage")

	other := NewParty("npc", "Blue", false)
	err := other.AddMonster(p.Monsters()[0])
	assert.ErrorIs(t, err, ErrAlreadyOwned)
}

func TestParty_WildKeepsFlag(t *testing.T) {
	p := NewWildParty("encounter")
	m := newTestMonster(t, "nut", 3)
	require.NoError(t, p.AddMonster(m))
	assert.True(t, p.IsWild())
	assert.True(t, m.Wild)
	assert.Same(t, p, m.Owner())
}

func TestParty_StoreWithdraw(t *testing.T) {
	p := NewParty("player", "Red", true)
	m := newTestMonster(t, "rockitten", 5)
	require.NoError(t, p.AddMonster(m))

	require.NoError(t, p.Store(m))
	assert.False(t, p.Contains(m))
	assert.ErrorIs(t, p.Store(m), ErrNotInParty)

	require.NoError(t, p.Withdraw(m))
	assert.True(t, p.Contains(m))
	assert.ErrorIs(t, p.Withdraw(m), ErrNotInStorage)
}

func TestParty_Transfer(t *testing.T) {
	from := NewParty("player", "Red", true)
	to := NewParty("npc", "Blue", false)
	m := newTestMonster(t, "rockitten", 5)
	require.NoError(t, from.AddMonster(m))

	require.NoError(t, from.Transfer(m, to))
	assert.Same(t, to, m.Owner())
	assert.True(t, m.Traded)
	assert.Empty(t, from.Monsters())
	assert.Equal(t, []string{"rockitten"}, to.SpeciesSlugs())

	assert.ErrorIs(t, from.Transfer(m, to), ErrNotInParty)
}

func TestParty_HealthyMonsters(t *testing.T) {
	p := NewParty("player", "Red", true)
	a := newTestMonster(t, "a", 5)
	b := newTestMonster(t, "b", 5)
	require.NoError(t, p.AddMonster(a))
	require.NoError(t, p.AddMonster(b))

	a.Faint(nil)
	healthy := p.HealthyMonsters()
	require.Len(t, healthy, 1)
	assert.Same(t, b, healthy[0])

	assert.True(t, p.RemoveMonster(b))
	assert.Nil(t, b.Owner())
	assert.False(t, p.RemoveMonster(b))
}
