// Package team implements the durable roster store: the user's
// bounded, ordered selection of species. Two backends satisfy the same
// interface — the structured user_teams table and the legacy key-value
// blob — so the layers above never care which one is wired in.
package team

import (
	"context"

	"github.com/LulubuluL/pokedex/internal/models"
)

// Repository describes durable team storage. Implementations must
// preserve insertion order and reject duplicate ids; capacity is the
// caller's concern.
type Repository interface {
	// Insert adds a member. A member with the same ID already present
	// yields common.ErrAlreadyInTeam and leaves storage unchanged.
	Insert(ctx context.Context, m *models.TeamMember) error

	// GetAll lists members ordered by insertion time, oldest first.
	GetAll(ctx context.Context) ([]models.TeamMember, error)

	// DeleteByID removes the member with the given species id.
	// Removing an absent id is a no-op, not an error.
	DeleteByID(ctx context.Context, pokemonID int) error

	// DeleteAll empties the team.
	DeleteAll(ctx context.Context) error

	// Exists reports membership of a species id.
	Exists(ctx context.Context, pokemonID int) (bool, error)

	// Count returns the authoritative team size, read from durable
	// state. Capacity checks must use this, never a cached list.
	Count(ctx context.Context) (int, error)
}
