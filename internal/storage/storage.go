// Package storage opens the on-device SQLite database and applies the
// embedded schema migrations. The same handle serves both the
// key-value tables and the structured tables; physical access is
// serialized through a single connection so interleaved callers cannot
// corrupt stored state.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// RunMigrations applies all embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn and
// migrates it to the current schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: the driver-level handle is process-wide shared
	// state, and a single connection serializes writes and keeps
	// in-memory databases coherent across goroutines.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
