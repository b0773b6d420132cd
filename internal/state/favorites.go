package state

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/logging"
	"github.com/LulubuluL/pokedex/internal/services"
)

// FavoritesState mirrors the durable favorites store.
type FavoritesState struct {
	svc services.FavoritesService
	log logging.Logger

	mu      sync.RWMutex
	ids     []int
	loading bool
}

func NewFavoritesState(svc services.FavoritesService, log logging.Logger) *FavoritesState {
	return &FavoritesState{svc: svc, log: log, loading: true}
}

// Reload re-reads the favorite ids. Failure keeps the previous mirror
// and clears loading, same policy as TeamState.
func (s *FavoritesState) Reload(ctx context.Context) {
	ids, err := s.svc.ListIDs(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error(ctx, "error loading favorites", "err", err)
		return
	}
	s.ids = ids
}

// IDs returns a copy of the mirrored ids, newest first.
func (s *FavoritesState) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

func (s *FavoritesState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsFavorite answers from the mirror.
func (s *FavoritesState) IsFavorite(pokemonID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, pokemonID)
}

// Toggle flips membership durably (the service re-reads membership
// right before branching), reloads, and reports the new state.
func (s *FavoritesState) Toggle(ctx context.Context, pokemonID int) (bool, error) {
	favorited, err := s.svc.Toggle(ctx, pokemonID)
	s.Reload(ctx)
	if err != nil {
		s.log.Error(ctx, "error toggling favorite", "id", pokemonID, "err", err)
		return favorited, fmt.Errorf("%w: %v", common.ErrDatabase, err)
	}
	return favorited, nil
}
