package team

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/dbx"
	"github.com/LulubuluL/pokedex/internal/models"
)

// SQLiteRepository implements Repository over the user_teams table.
// The UNIQUE constraint on pokemon_id is the last word on duplicates,
// so two racing inserts of the same species cannot both land.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, m *models.TeamMember) error {
	types, err := json.Marshal(m.Types)
	if err != nil {
		return fmt.Errorf("failed to marshal types: %w", err)
	}

	// INSERT OR IGNORE + RowsAffected distinguishes the duplicate case
	// without sniffing driver error strings.
	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO user_teams
			(pokemon_id, pokemon_name, pokemon_types, pokemon_height, pokemon_weight, species_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, string(types), m.Height, m.Weight, m.SpeciesURL)
	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrAlreadyInTeam
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	// id is the autoincrement tiebreak: added_at has one-second
	// resolution, which is too coarse for back-to-back adds.
	rows, err := r.db.QueryContext(ctx, `
		SELECT pokemon_id, pokemon_name, pokemon_types, pokemon_height, pokemon_weight, species_url
		FROM user_teams ORDER BY added_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select team: %w", err)
	}
	defer rows.Close()

	var result []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		var types string
		if err := rows.Scan(&m.ID, &m.Name, &types, &m.Height, &m.Weight, &m.SpeciesURL); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(types), &m.Types); err != nil {
			return nil, fmt.Errorf("failed to unmarshal types for %d: %w", m.ID, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, pokemonID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_teams WHERE pokemon_id = ?`, pokemonID)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_teams`)
	if err != nil {
		return fmt.Errorf("failed to clear team: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, pokemonID int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_teams WHERE pokemon_id = ?`, pokemonID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check team membership: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_teams`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team: %w", err)
	}
	return count, nil
}
