package games

import (
	"context"
	"fmt"
	"time"

	"github.com/LulubuluL/pokedex/internal/dbx"
	"github.com/LulubuluL/pokedex/internal/models"
)

// SQLiteRepository implements Repository over the quiz_games table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Record(ctx context.Context, g *models.GameResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_games (id, score, correct, total, streak, played_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.ID, g.Score, g.Correct, g.Total, g.Streak, g.PlayedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.GameResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, score, correct, total, streak, played_at
		FROM quiz_games ORDER BY played_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var result []models.GameResult
	for rows.Next() {
		var g models.GameResult
		var playedAt string
		if err := rows.Scan(&g.ID, &g.Score, &g.Correct, &g.Total, &g.Streak, &playedAt); err != nil {
			return nil, err
		}
		if g.PlayedAt, err = time.Parse(time.RFC3339, playedAt); err != nil {
			return nil, fmt.Errorf("failed to parse played_at for %s: %w", g.ID, err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
