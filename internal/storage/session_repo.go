package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SessionRepo struct {
	db DBTX
}

func NewSessionRepo(db DBTX) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Insert(ctx context.Context, taskID int64, start time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO focus_sessions (task_id, start) VALUES (?, ?)
	`, taskID, start)
	if err != nil {
		return 0, fmt.Errorf("session insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session last insert id: %w", err)
	}
	return id, nil
}

func (r *SessionRepo) Get(ctx context.Context, id int64) (*FocusSession, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, task_id, start, "end", duration_min, completed, distract_count
		FROM focus_sessions
		WHERE id = ?
	`, id)
	return scanSessionRow(row)
}

func (r *SessionRepo) ListAll(ctx context.Context) ([]FocusSession, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, start, "end", duration_min, completed, distract_count
		FROM focus_sessions
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("session list: %w", err)
	}
	defer rows.Close()

	var out []FocusSession
	for rows.Next() {
		s, err := scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("session rows: %w", err)
	}
	return out, nil
}

// Finalize writes the end-of-session fields. Callers must have checked
// that the session is still active; the WHERE guard keeps a racing
// retry from finalizing twice.
func (r *SessionRepo) Finalize(ctx context.Context, id int64, end time.Time, durationMin int, completed bool, distractCount int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE focus_sessions
		SET "end" = ?, duration_min = ?, completed = ?, distract_count = ?
		WHERE id = ? AND "end" IS NULL
	`, end, durationMin, boolToInt(completed), distractCount, id)
	if err != nil {
		return fmt.Errorf("session finalize: %w", err)
	}
	return nil
}

func (r *SessionRepo) IncrementDistraction(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE focus_sessions SET distract_count = distract_count + 1 WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("session distract: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func scanSessionRow(row scanner) (*FocusSession, error) {
	var (
		id        int64
		taskID    int64
		start     time.Time
		end       sql.NullTime
		duration  int
		completed int
		distracts int
	)

	if err := row.Scan(&id, &taskID, &start, &end, &duration, &completed, &distracts); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session scan: %w", err)
	}

	var endPtr *time.Time
	if end.Valid {
		v := end.Time
		endPtr = &v
	}

	return &FocusSession{
		ID:            id,
		TaskID:        taskID,
		Start:         start,
		End:           endPtr,
		DurationMin:   duration,
		Completed:     completed != 0,
		DistractCount: distracts,
	}, nil
}
