package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type RewardRepo struct {
	db DBTX
}

func NewRewardRepo(db DBTX) *RewardRepo {
	return &RewardRepo{db: db}
}

func (r *RewardRepo) Insert(ctx context.Context, name string, costPoints int, cooldownMin int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO rewards (name, cost_points, cooldown_min) VALUES (?, ?, ?)
	`, name, costPoints, cooldownMin)
	if err != nil {
		return 0, fmt.Errorf("reward insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reward last insert id: %w", err)
	}
	return id, nil
}

func (r *RewardRepo) Get(ctx context.Context, id int64) (*Reward, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, cost_points, cooldown_min, last_redeemed_at
		FROM rewards
		WHERE id = ?
	`, id)
	return scanRewardRow(row)
}

func (r *RewardRepo) ListAll(ctx context.Context) ([]Reward, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, cost_points, cooldown_min, last_redeemed_at
		FROM rewards
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("reward list: %w", err)
	}
	defer rows.Close()

	var out []Reward
	for rows.Next() {
		rw, err := scanRewardRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reward rows: %w", err)
	}
	return out, nil
}

func (r *RewardRepo) MarkRedeemed(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rewards SET last_redeemed_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("reward mark redeemed: %w", err)
	}
	return nil
}

func scanRewardRow(row scanner) (*Reward, error) {
	var (
		id       int64
		name     string
		cost     int
		cooldown int
		last     sql.NullTime
	)

	if err := row.Scan(&id, &name, &cost, &cooldown, &last); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("reward scan: %w", err)
	}

	var lastPtr *time.Time
	if last.Valid {
		v := last.Time
		lastPtr = &v
	}

	return &Reward{
		ID:             id,
		Name:           name,
		CostPoints:     cost,
		CooldownMin:    cooldown,
		LastRedeemedAt: lastPtr,
	}, nil
}
