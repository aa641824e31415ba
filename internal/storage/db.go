package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ResolveDBPath returns the database location: the FRPG_DB environment
// variable when set, otherwise ~/.focusrpg.db.
func ResolveDBPath() (string, error) {
	if p := os.Getenv("FRPG_DB"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".focusrpg.db"), nil
}

// Open opens (and creates if missing) the SQLite database at path and
// brings the schema and seed rows up to date.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := SeedRewards(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
