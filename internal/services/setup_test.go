package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupDB builds an in-memory database with the full schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE user_teams (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  pokemon_id INTEGER NOT NULL UNIQUE,
  pokemon_name TEXT NOT NULL,
  pokemon_types TEXT NOT NULL,
  pokemon_height INTEGER,
  pokemon_weight INTEGER,
  species_url TEXT,
  added_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE favorites (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  pokemon_id INTEGER NOT NULL UNIQUE,
  added_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE kv_store (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
CREATE TABLE quiz_games (
  id TEXT PRIMARY KEY,
  score INTEGER NOT NULL,
  correct INTEGER NOT NULL,
  total INTEGER NOT NULL,
  streak INTEGER NOT NULL,
  played_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}
