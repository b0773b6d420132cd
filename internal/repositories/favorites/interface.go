// Package favorites implements the durable favorites store: pure set
// membership over species ids, newest mark first on listing.
package favorites

import "context"

// Repository describes durable favorite marks. Add and Remove are
// idempotent — favoriting is a toggle, not a scarce-resource
// allocation, so a duplicate add is a no-op success.
type Repository interface {
	Add(ctx context.Context, pokemonID int) error
	Remove(ctx context.Context, pokemonID int) error

	// ListIDs returns favorited ids, most recently added first.
	ListIDs(ctx context.Context) ([]int, error)

	Exists(ctx context.Context, pokemonID int) (bool, error)
	Count(ctx context.Context) (int, error)
}
