// Package state holds the in-memory mirrors of the durable team and
// favorites stores. Each mirror offers synchronous read accessors to
// the view layer and asynchronous mutators that write durably first
// and then reload the mirror in full, so once a mutator returns the
// mirror is never ahead of or behind storage. The holders are passed
// by reference to whoever renders them; there is no ambient lookup.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/logging"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/services"
)

// TeamState mirrors the durable team store.
type TeamState struct {
	svc services.TeamService
	log logging.Logger

	mu      sync.RWMutex
	members []models.TeamMember
	loading bool
}

func NewTeamState(svc services.TeamService, log logging.Logger) *TeamState {
	return &TeamState{svc: svc, log: log, loading: true}
}

// Reload re-reads the backing store and replaces the mirror. On
// failure the previous mirror content stays, so a transient storage
// hiccup never blanks the UI; loading clears either way.
func (s *TeamState) Reload(ctx context.Context) {
	members, err := s.svc.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error(ctx, "error loading team", "err", err)
		return
	}
	s.members = members
}

// Members returns a copy of the mirrored roster in insertion order.
func (s *TeamState) Members() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeamMember, len(s.members))
	copy(out, s.members)
	return out
}

// Loading reports whether the first load has yet to complete.
func (s *TeamState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Contains answers from the mirror; it exists for render paths that
// must not block on storage.
func (s *TeamState) Contains(pokemonID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == pokemonID {
			return true
		}
	}
	return false
}

// IsFull answers from the mirror.
func (s *TeamState) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members) >= models.MaxTeamSize
}

// Add writes durably, reloads and returns the outcome. Invariant
// violations come back as common.ErrTeamFull or common.ErrAlreadyInTeam;
// anything unexpected is wrapped in common.ErrDatabase. Nothing
// panics past this boundary.
func (s *TeamState) Add(ctx context.Context, m *models.TeamMember) error {
	err := s.svc.Add(ctx, m)
	s.Reload(ctx)
	return s.mapErr(ctx, "add to team", err)
}

func (s *TeamState) Remove(ctx context.Context, pokemonID int) error {
	err := s.svc.Remove(ctx, pokemonID)
	s.Reload(ctx)
	return s.mapErr(ctx, "remove from team", err)
}

func (s *TeamState) Clear(ctx context.Context) error {
	err := s.svc.Clear(ctx)
	s.Reload(ctx)
	return s.mapErr(ctx, "clear team", err)
}

func (s *TeamState) mapErr(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrTeamFull) || errors.Is(err, common.ErrAlreadyInTeam) {
		return err
	}
	s.log.Error(ctx, "team operation failed", "op", op, "err", err)
	return fmt.Errorf("%w: %v", common.ErrDatabase, err)
}
