// Package games persists the quiz game history: one row per completed
// game, keyed by a generated uuid.
package games

import (
	"context"

	"github.com/LulubuluL/pokedex/internal/models"
)

type Repository interface {
	// Record appends one completed game.
	Record(ctx context.Context, g *models.GameResult) error

	// List returns games newest first.
	List(ctx context.Context) ([]models.GameResult, error)
}
