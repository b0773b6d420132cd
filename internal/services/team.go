// Package services contains the domain services sitting between the
// repositories and the state layer: team capacity rules, favorite
// toggling, catalog fetch-through-cache, quiz statistics and settings.
package services

import (
	"context"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/team"
)

type TeamService interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Add(ctx context.Context, m *models.TeamMember) error
	Remove(ctx context.Context, pokemonID int) error
	Clear(ctx context.Context) error
	Contains(ctx context.Context, pokemonID int) (bool, error)
	Count(ctx context.Context) (int, error)
	IsFull(ctx context.Context) (bool, error)
}

type teamService struct {
	repo team.Repository
}

func NewTeamService(repo team.Repository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) List(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing team: %w", err)
	}
	return members, nil
}

// Add enforces the capacity and uniqueness invariants. The capacity
// check reads Count from durable state, not from any cached snapshot,
// so a mutation that raced in through another path is still counted.
func (s *teamService) Add(ctx context.Context, m *models.TeamMember) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting team: %w", err)
	}
	if count >= models.MaxTeamSize {
		return common.ErrTeamFull
	}

	// the repository rejects duplicates on its own; no pre-check that
	// could go stale between read and insert
	return s.repo.Insert(ctx, m)
}

func (s *teamService) Remove(ctx context.Context, pokemonID int) error {
	if err := s.repo.DeleteByID(ctx, pokemonID); err != nil {
		return fmt.Errorf("error removing from team: %w", err)
	}
	return nil
}

func (s *teamService) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error clearing team: %w", err)
	}
	return nil
}

func (s *teamService) Contains(ctx context.Context, pokemonID int) (bool, error) {
	return s.repo.Exists(ctx, pokemonID)
}

func (s *teamService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *teamService) IsFull(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count >= models.MaxTeamSize, nil
}
