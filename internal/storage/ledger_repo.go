package storage

import (
	"context"
	"fmt"
	"time"
)

// LedgerRepo is append-only: no update or delete is exposed, and the
// balance is always recomputed from the deltas.
type LedgerRepo struct {
	db DBTX
}

func NewLedgerRepo(db DBTX) *LedgerRepo {
	return &LedgerRepo{db: db}
}

func (r *LedgerRepo) Append(ctx context.Context, delta int, reason string, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO point_ledger (delta, reason, created_at) VALUES (?, ?, ?)
	`, delta, reason, at)
	if err != nil {
		return 0, fmt.Errorf("ledger append: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ledger last insert id: %w", err)
	}
	return id, nil
}

func (r *LedgerRepo) Balance(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(delta), 0) FROM point_ledger`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("ledger balance: %w", err)
	}
	return n, nil
}

func (r *LedgerRepo) ListAll(ctx context.Context) ([]LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, delta, reason, created_at
		FROM point_ledger
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ledger list: %w", err)
	}
	defer rows.Close()

	var out []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.Delta, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ledger scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger rows: %w", err)
	}
	return out, nil
}
