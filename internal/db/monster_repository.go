package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/tuxbattle/internal/model"
)

// MonsterRow is one persisted monster of a party.
type MonsterRow struct {
	PartyID string
	Slot    int
	Stored  bool
	State   model.MonsterState
}

// MonsterRepository stores monster state snapshots as JSONB.
type MonsterRepository struct {
	db *pgxpool.Pool
}

// NewMonsterRepository creates a new MonsterRepository.
func NewMonsterRepository(db *pgxpool.Pool) *MonsterRepository {
	return &MonsterRepository{db: db}
}

// Load returns the state of one monster.
func (r *MonsterRepository) Load(ctx context.Context, id uuid.UUID) (MonsterRow, error) {
	query := `
		SELECT party_id, slot, stored, state
		FROM monsters
		WHERE instance_id = $1
	`
	var (
		row MonsterRow
		raw []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&row.PartyID, &row.Slot, &row.Stored, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return MonsterRow{}, fmt.Errorf("monster %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return MonsterRow{}, fmt.Errorf("querying monster %s: %w", id, err)
	}
	if err := json.Unmarshal(raw, &row.State); err != nil {
		return MonsterRow{}, fmt.Errorf("decoding monster %s: %w", id, err)
	}
	return row, nil
}

// LoadByParty returns the monsters of a party, party list first, in slot order.
func (r *MonsterRepository) LoadByParty(ctx context.Context, partyID string) ([]MonsterRow, error) {
	query := `
		SELECT slot, stored, state
		FROM monsters
		WHERE party_id = $1
		ORDER BY stored, slot
	`
	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("querying monsters of party %s: %w", partyID, err)
	}
	defer rows.Close()

	var out []MonsterRow
	for rows.Next() {
		row := MonsterRow{PartyID: partyID}
		var raw []byte
		if err := rows.Scan(&row.Slot, &row.Stored, &raw); err != nil {
			return nil, fmt.Errorf("scanning monster row: %w", err)
		}
		if err := json.Unmarshal(raw, &row.State); err != nil {
			return nil, fmt.Errorf("decoding monster of party %s: %w", partyID, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monster rows: %w", err)
	}
	return out, nil
}

// SavePartyTx replaces every monster row of partyID within a transaction.
func (r *MonsterRepository) SavePartyTx(ctx context.Context, tx pgx.Tx, partyID string, monsters []MonsterRow) error {
	if _, err := tx.Exec(ctx, `DELETE FROM monsters WHERE party_id = $1`, partyID); err != nil {
		return fmt.Errorf("deleting monsters of party %s: %w", partyID, err)
	}
	if len(monsters) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range monsters {
		raw, err := json.Marshal(m.State)
		if err != nil {
			return fmt.Errorf("encoding monster %s: %w", m.State.InstanceID, err)
		}
		batch.Queue(`
			INSERT INTO monsters (instance_id, party_id, slot, stored, slug, level, state, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (instance_id) DO UPDATE
			SET party_id = $2, slot = $3, stored = $4, slug = $5, level = $6, state = $7, updated_at = NOW()`,
			m.State.InstanceID, partyID, m.Slot, m.Stored, m.State.Slug, m.State.Level, raw)
	}
	br := tx.SendBatch(ctx, batch)
	for _, m := range monsters {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("saving monster %s: %w", m.State.InstanceID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("closing monster batch: %w", err)
	}
	return nil
}

// Delete removes one monster.
func (r *MonsterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM monsters WHERE instance_id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting monster %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("monster %s: %w", id, ErrNotFound)
	}
	return nil
}

// PartyRows snapshots the party list and storage of p.
func PartyRows(p *model.Party) []MonsterRow {
	rows := make([]MonsterRow, 0, len(p.Monsters())+len(p.Storage()))
	for i, m := range p.Monsters() {
		rows = append(rows, MonsterRow{PartyID: p.ID, Slot: i, State: m.GetState()})
	}
	for i, m := range p.Storage() {
		rows = append(rows, MonsterRow{PartyID: p.ID, Slot: i, Stored: true, State: m.GetState()})
	}
	return rows
}
