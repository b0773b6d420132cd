package services

import (
	"context"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/repositories/favorites"
)

type FavoritesService interface {
	Add(ctx context.Context, pokemonID int) error
	Remove(ctx context.Context, pokemonID int) error

	// Toggle flips membership: favorited becomes unfavorited and vice
	// versa. It reports the resulting membership.
	Toggle(ctx context.Context, pokemonID int) (favorited bool, err error)

	ListIDs(ctx context.Context) ([]int, error)
	Contains(ctx context.Context, pokemonID int) (bool, error)
}

type favoritesService struct {
	repo favorites.Repository
}

func NewFavoritesService(repo favorites.Repository) FavoritesService {
	return &favoritesService{repo: repo}
}

func (s *favoritesService) Add(ctx context.Context, pokemonID int) error {
	if err := s.repo.Add(ctx, pokemonID); err != nil {
		return fmt.Errorf("error adding favorite: %w", err)
	}
	return nil
}

func (s *favoritesService) Remove(ctx context.Context, pokemonID int) error {
	if err := s.repo.Remove(ctx, pokemonID); err != nil {
		return fmt.Errorf("error removing favorite: %w", err)
	}
	return nil
}

func (s *favoritesService) Toggle(ctx context.Context, pokemonID int) (bool, error) {
	// branch on membership read immediately before acting, never on a
	// cached set, so rapid repeated toggles cannot flap
	present, err := s.repo.Exists(ctx, pokemonID)
	if err != nil {
		return false, fmt.Errorf("error checking favorite: %w", err)
	}

	if present {
		if err := s.repo.Remove(ctx, pokemonID); err != nil {
			return true, fmt.Errorf("error removing favorite: %w", err)
		}
		return false, nil
	}

	if err := s.repo.Add(ctx, pokemonID); err != nil {
		return false, fmt.Errorf("error adding favorite: %w", err)
	}
	return true, nil
}

func (s *favoritesService) ListIDs(ctx context.Context) ([]int, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return ids, nil
}

func (s *favoritesService) Contains(ctx context.Context, pokemonID int) (bool, error) {
	return s.repo.Exists(ctx, pokemonID)
}
