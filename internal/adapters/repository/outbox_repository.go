package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/propguard/tenant-portal/internal/core/ports"
)

const outboxChannel = "portal_outbox_channel"

// SQLOutboxRepository stores portal events in the portal_outbox_events table
// and notifies the relay over LISTEN/NOTIFY so delivery starts immediately
// instead of waiting for the periodic sweep.
type SQLOutboxRepository struct {
	db *sql.DB
}

var _ ports.OutboxRepository = (*SQLOutboxRepository)(nil)

func NewSQLOutboxRepository(db *sql.DB) *SQLOutboxRepository {
	return &SQLOutboxRepository{db: db}
}

func (r *SQLOutboxRepository) Insert(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO portal_outbox_events (id, event_type, payload, created_at) VALUES ($1, $2, $3, NOW())`,
		id, eventType, body,
	)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, outboxChannel, id); err != nil {
		return err
	}

	return tx.Commit()
}
