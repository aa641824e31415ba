package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			note TEXT,
			est_minutes INTEGER NOT NULL DEFAULT 10,
			context TEXT NOT NULL DEFAULT 'work',
			due_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			status TEXT NOT NULL DEFAULT 'open',
			impact INTEGER NOT NULL DEFAULT 1,
			priority_score INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS focus_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			start DATETIME NOT NULL,
			"end" DATETIME,
			duration_min INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			distract_count INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		// Append-only; the balance is always derived by summing deltas.
		`CREATE TABLE IF NOT EXISTS point_ledger (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			delta INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			cost_points INTEGER NOT NULL,
			cooldown_min INTEGER NOT NULL DEFAULT 0,
			last_redeemed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS trigger_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			trigger_type TEXT NOT NULL,
			note TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`,
		`CREATE INDEX IF NOT EXISTS idx_focus_sessions_task_id ON focus_sessions(task_id);`,
		`CREATE INDEX IF NOT EXISTS idx_point_ledger_created_at ON point_ledger(created_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedRewards inserts the starter reward catalog on first run. It is a
// no-op once any reward rows exist, so user edits survive restarts.
func SeedRewards(ctx context.Context, db *sql.DB) error {
	row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rewards`)
	var n int
	if err := row.Scan(&n); err != nil {
		return fmt.Errorf("seed rewards count: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := []struct {
		name     string
		cost     int
		cooldown int
	}{
		{"Espresso or fancy tea", 8, 60},
		{"One meme scroll pass", 6, 90},
		{"10 pushups + music break", 5, 45},
		{"5 minutes of game time", 7, 120},
		{"10 minutes outside", 9, 180},
	}
	for _, d := range defaults {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO rewards (name, cost_points, cooldown_min) VALUES (?, ?, ?)
		`, d.name, d.cost, d.cooldown); err != nil {
			return fmt.Errorf("seed rewards insert: %w", err)
		}
	}
	return nil
}
