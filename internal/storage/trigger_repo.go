package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TriggerRepo struct {
	db DBTX
}

func NewTriggerRepo(db DBTX) *TriggerRepo {
	return &TriggerRepo{db: db}
}

func (r *TriggerRepo) Insert(ctx context.Context, triggerType string, note *string, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO trigger_log (trigger_type, note, timestamp) VALUES (?, ?, ?)
	`, triggerType, note, at)
	if err != nil {
		return 0, fmt.Errorf("trigger insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("trigger last insert id: %w", err)
	}
	return id, nil
}

func (r *TriggerRepo) ListAll(ctx context.Context) ([]TriggerEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, trigger_type, note, timestamp
		FROM trigger_log
		ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("trigger list: %w", err)
	}
	defer rows.Close()

	var out []TriggerEntry
	for rows.Next() {
		var (
			e    TriggerEntry
			note sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.TriggerType, &note, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("trigger scan: %w", err)
		}
		if note.Valid {
			v := note.String
			e.Note = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trigger rows: %w", err)
	}
	return out, nil
}
