package favorites

import (
	"context"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/dbx"
)

// SQLiteRepository implements Repository over the favorites table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, pokemonID int) error {
	// OR IGNORE makes the duplicate add a no-op against the UNIQUE
	// constraint instead of an error.
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (pokemon_id) VALUES (?)`, pokemonID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, pokemonID int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE pokemon_id = ?`, pokemonID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT pokemon_id FROM favorites ORDER BY added_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, pokemonID int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE pokemon_id = ?`, pokemonID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
