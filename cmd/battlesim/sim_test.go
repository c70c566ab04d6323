package main

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/config"
	"github.com/udisondev/tuxbattle/internal/db"
	"github.com/udisondev/tuxbattle/internal/game/combat"
	"github.com/udisondev/tuxbattle/internal/model"
	"github.com/udisondev/tuxbattle/internal/testutil"
)

type savedBattle struct {
	row     db.BattleRow
	events  []db.EventRow
	parties []*model.Party
}

type memoryStore struct {
	mu      sync.Mutex
	battles []savedBattle
	err     error
}

func (s *memoryStore) SaveBattle(_ context.Context, b db.BattleRow, events []db.EventRow, parties ...*model.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.battles = append(s.battles, savedBattle{row: b, events: events, parties: parties})
	return nil
}

func testConfig() config.Battlesim {
	cfg := config.DefaultBattlesim()
	cfg.Combat.Seed = 1234
	cfg.Simulation.Battles = 6
	cfg.Simulation.Parallelism = 3
	cfg.Simulation.Level = 12
	cfg.Simulation.PartySize = 2
	return cfg
}

func newTestSimulator(t *testing.T, cfg config.Battlesim, store battleStore) *simulator {
	t.Helper()
	s, err := newSimulator(cfg, testutil.Hydrator(t), store)
	require.NoError(t, err)
	return s
}

func TestSimulator_Run(t *testing.T) {
	store := &memoryStore{}
	s := newTestSimulator(t, testConfig(), store)

	results, err := s.run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 6)
	require.Len(t, store.battles, 6)

	for i, r := range results {
		assert.Equal(t, uint64(1234+i), r.Seed)
		assert.Equal(t, i%2 == 0, r.Trainer, "battle %d", i)
		assert.LessOrEqual(t, r.Turns, testConfig().Combat.MaxTurns)
		if r.Outcome == combat.OutcomeVictory {
			assert.NotEqual(t, combat.SideNone, r.Winner)
		}
	}

	for _, saved := range store.battles {
		require.NotEmpty(t, saved.events)
		for i, e := range saved.events {
			assert.Equal(t, i, e.Seq)
		}
		assert.Len(t, saved.parties, 2)
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.Battles = 4

	first, err := newTestSimulator(t, cfg, nil).run(context.Background())
	require.NoError(t, err)
	second, err := newTestSimulator(t, cfg, nil).run(context.Background())
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Outcome, second[i].Outcome, "battle %d", i)
		assert.Equal(t, first[i].Winner, second[i].Winner, "battle %d", i)
		assert.Equal(t, first[i].Turns, second[i].Turns, "battle %d", i)
	}
}

func TestSimulator_StoreError(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.Battles = 1
	s := newTestSimulator(t, cfg, &memoryStore{err: testutil.ErrSimulated})

	_, err := s.run(context.Background())
	assert.ErrorIs(t, err, testutil.ErrSimulated)
}

func TestSimulator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSimulator(t, testConfig(), nil).run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
