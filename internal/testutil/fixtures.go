// Package testutil holds fixtures shared by the package tests: the built-in
// catalog, a hydrator over it and helpers that build monsters and parties.
package testutil

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/data"
	"github.com/udisondev/tuxbattle/internal/game/skill"
	"github.com/udisondev/tuxbattle/internal/model"
)

// ErrSimulated is a sentinel error for testing error handling paths.
var ErrSimulated = errors.New("simulated error for testing")

// FixedSource always draws F for Float64 and 0 for IntN. With F = 0.5 the
// speed jitter is zero.
type FixedSource struct{ F float64 }

func (s FixedSource) Float64() float64 { return s.F }
func (s FixedSource) IntN(int) int     { return 0 }

// Каталог read-only, грузим один раз на процесс.
var loadCatalog = sync.OnceValues(data.Load)

// Catalog returns the built-in catalog.
func Catalog(tb testing.TB) *data.Catalog {
	tb.Helper()
	c, err := loadCatalog()
	require.NoError(tb, err)
	return c
}

// Hydrator returns a hydrator over the built-in catalog.
func Hydrator(tb testing.TB) *skill.Hydrator {
	tb.Helper()
	return skill.NewHydrator(Catalog(tb))
}

// Monster builds a tasteless monster at full HP. When moves are given the
// monster knows exactly those, in that order.
func Monster(tb testing.TB, h *skill.Hydrator, slug string, level int, moves ...string) *model.Monster {
	tb.Helper()
	m, err := h.NewMonster(slug, level, rand.New(rand.NewPCG(1, 2)))
	require.NoError(tb, err)
	m.TasteWarm, m.TasteCold = model.TasteNone, model.TasteNone
	m.SetStats()
	m.SetCurrentHP(m.HP)

	if len(moves) > 0 {
		for _, tech := range slices.Clone(m.Moves()) {
			m.Forget(tech.Slug)
		}
		for _, slug := range moves {
			tech, err := h.NewTechnique(slug)
			require.NoError(tb, err)
			require.NoError(tb, m.Learn(tech))
		}
	}
	return m
}

// Party builds a trainer party holding ms in order.
func Party(tb testing.TB, id string, player bool, ms ...*model.Monster) *model.Party {
	tb.Helper()
	return fill(tb, model.NewParty(id, id, player), ms)
}

// WildParty builds a wild party holding ms in order.
func WildParty(tb testing.TB, id string, ms ...*model.Monster) *model.Party {
	tb.Helper()
	return fill(tb, model.NewWildParty(id), ms)
}

func fill(tb testing.TB, p *model.Party, ms []*model.Monster) *model.Party {
	tb.Helper()
	for _, m := range ms {
		require.NoError(tb, p.AddMonster(m))
	}
	return p
}
