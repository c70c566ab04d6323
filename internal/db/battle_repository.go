package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BattleRow is the summary of a finished battle.
type BattleRow struct {
	ID         uuid.UUID
	LeftParty  string
	RightParty string
	Trainer    bool
	Outcome    string
	Winner     string
	Turns      int
	Seed       uint64
	CreatedAt  time.Time
}

// EventRow is one narration line of a battle.
type EventRow struct {
	Seq    int
	Turn   int
	Token  string
	Params map[string]string
}

// BattleRepository stores battle summaries and their narration log.
type BattleRepository struct {
	db *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository.
func NewBattleRepository(db *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{db: db}
}

// Get returns one battle summary.
func (r *BattleRepository) Get(ctx context.Context, id uuid.UUID) (BattleRow, error) {
	query := `
		SELECT id, left_party, right_party, trainer, outcome, winner, turns, seed, created_at
		FROM battles
		WHERE id = $1
	`
	var (
		b    BattleRow
		seed int64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.LeftParty, &b.RightParty, &b.Trainer,
		&b.Outcome, &b.Winner, &b.Turns, &seed, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return BattleRow{}, fmt.Errorf("battle %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return BattleRow{}, fmt.Errorf("querying battle %s: %w", id, err)
	}
	b.Seed = uint64(seed)
	return b, nil
}

// Events returns the narration log of a battle in order.
func (r *BattleRepository) Events(ctx context.Context, id uuid.UUID) ([]EventRow, error) {
	query := `
		SELECT seq, turn, token, params
		FROM battle_events
		WHERE battle_id = $1
		ORDER BY seq
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("querying events of battle %s: %w", id, err)
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		var e EventRow
		if err := rows.Scan(&e.Seq, &e.Turn, &e.Token, &e.Params); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event rows: %w", err)
	}
	return out, nil
}

// SaveTx inserts the battle summary and its events within a transaction.
func (r *BattleRepository) SaveTx(ctx context.Context, tx pgx.Tx, b BattleRow, events []EventRow) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO battles (id, left_party, right_party, trainer, outcome, winner, turns, seed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.LeftParty, b.RightParty, b.Trainer, b.Outcome, b.Winner, b.Turns, int64(b.Seed),
	)
	if err != nil {
		return fmt.Errorf("inserting battle %s: %w", b.ID, err)
	}
	if len(events) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(events))
	for _, e := range events {
		params := e.Params
		if params == nil {
			params = map[string]string{}
		}
		rows = append(rows, []any{b.ID, e.Seq, e.Turn, e.Token, params})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"battle_events"},
		[]string{"battle_id", "seq", "turn", "token", "params"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting events of battle %s: %w", b.ID, err)
	}

	slog.Debug("saved battle events",
		"battleID", b.ID,
		"count", len(events))
	return nil
}
