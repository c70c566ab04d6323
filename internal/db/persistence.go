package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/tuxbattle/internal/model"
)

// PersistenceService saves a finished battle together with the monster
// state of the parties that fought it.
type PersistenceService struct {
	pool     *pgxpool.Pool
	monsters *MonsterRepository
	battles  *BattleRepository
}

// NewPersistenceService creates a new service.
func NewPersistenceService(pool *pgxpool.Pool, monsters *MonsterRepository, battles *BattleRepository) *PersistenceService {
	return &PersistenceService{pool: pool, monsters: monsters, battles: battles}
}

// SaveBattle stores the battle summary, its events and the monsters of every
// non-wild party in a single transaction.
func (s *PersistenceService) SaveBattle(ctx context.Context, b BattleRow, events []EventRow, parties ...*model.Party) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for battle %s: %w", b.ID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "battleID", b.ID, "error", err)
		}
	}()

	if err := s.battles.SaveTx(ctx, tx, b, events); err != nil {
		return err
	}
	for _, p := range parties {
		if p == nil || p.IsWild() {
			continue
		}
		if err := s.monsters.SavePartyTx(ctx, tx, p.ID, PartyRows(p)); err != nil {
			return fmt.Errorf("saving party %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing battle %s: %w", b.ID, err)
	}
	slog.Info("battle saved",
		"battleID", b.ID,
		"events", len(events),
		"outcome", b.Outcome)
	return nil
}
