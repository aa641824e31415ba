package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db DBTX
}

func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Title         string
	Note          *string
	EstMinutes    int
	Context       string
	DueDate       *string
	CreatedAt     time.Time
	Status        string
	Impact        int
	PriorityScore int
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, note, est_minutes, context, due_date, created_at, status, impact, priority_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Title, in.Note, in.EstMinutes, in.Context, in.DueDate, in.CreatedAt, in.Status, in.Impact, in.PriorityScore)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, note, est_minutes, context, due_date, created_at, status, impact, priority_score
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

// ListByStatus returns tasks in ranking order: priority score descending,
// then oldest first.
func (r *TaskRepo) ListByStatus(ctx context.Context, status string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, note, est_minutes, context, due_date, created_at, status, impact, priority_score
		FROM tasks
		WHERE status = ?
		ORDER BY priority_score DESC, created_at ASC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	return collectTasks(rows)
}

// ListOpenTop returns the top n open tasks in ranking order.
func (r *TaskRepo) ListOpenTop(ctx context.Context, n int) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, note, est_minutes, context, due_date, created_at, status, impact, priority_score
		FROM tasks
		WHERE status = 'open'
		ORDER BY priority_score DESC, created_at ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("task list top: %w", err)
	}
	return collectTasks(rows)
}

func (r *TaskRepo) Update(ctx context.Context, t *Task) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, note = ?, est_minutes = ?, context = ?, due_date = ?, status = ?, impact = ?, priority_score = ?
		WHERE id = ?
	`, t.Title, t.Note, t.EstMinutes, t.Context, t.DueDate, t.Status, t.Impact, t.PriorityScore, t.ID)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("task update status: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func (r *TaskRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE status = ?`, status)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task count: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		id        int64
		title     string
		note      sql.NullString
		est       int
		taskCtx   string
		dueDate   sql.NullString
		createdAt time.Time
		status    string
		impact    int
		score     int
	)

	if err := row.Scan(&id, &title, &note, &est, &taskCtx, &dueDate, &createdAt, &status, &impact, &score); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var notePtr *string
	if note.Valid {
		v := note.String
		notePtr = &v
	}
	var duePtr *string
	if dueDate.Valid {
		v := dueDate.String
		duePtr = &v
	}

	return &Task{
		ID:            id,
		Title:         title,
		Note:          notePtr,
		EstMinutes:    est,
		Context:       taskCtx,
		DueDate:       duePtr,
		CreatedAt:     createdAt,
		Status:        status,
		Impact:        impact,
		PriorityScore: score,
	}, nil
}

func collectTasks(rows *sql.Rows) ([]Task, error) {
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}
