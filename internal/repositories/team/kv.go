package team

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
)

// teamKey is the legacy blob key the whole team is serialized under.
const teamKey = "pokemonTeam"

// KVRepository is the legacy team backend: the full roster as one JSON
// blob in the key-value store. It enforces the same duplicate
// rejection as the structured backend; earlier app revisions silently
// ignored duplicates here, which is exactly the bug this keeps fixed.
type KVRepository struct {
	store kv.Repository
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) load(ctx context.Context) ([]models.TeamMember, error) {
	data, err := r.store.Get(ctx, teamKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load team blob: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var team []models.TeamMember
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team blob: %w", err)
	}
	return team, nil
}

func (r *KVRepository) save(ctx context.Context, team []models.TeamMember) error {
	data, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("failed to marshal team blob: %w", err)
	}
	if err := r.store.Set(ctx, teamKey, data); err != nil {
		return fmt.Errorf("failed to save team blob: %w", err)
	}
	return nil
}

func (r *KVRepository) Insert(ctx context.Context, m *models.TeamMember) error {
	team, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range team {
		if existing.ID == m.ID {
			return common.ErrAlreadyInTeam
		}
	}
	return r.save(ctx, append(team, *m))
}

func (r *KVRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	return r.load(ctx)
}

func (r *KVRepository) DeleteByID(ctx context.Context, pokemonID int) error {
	team, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := team[:0]
	for _, m := range team {
		if m.ID != pokemonID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(team) {
		return nil
	}
	return r.save(ctx, kept)
}

func (r *KVRepository) DeleteAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, teamKey); err != nil {
		return fmt.Errorf("failed to clear team blob: %w", err)
	}
	return nil
}

func (r *KVRepository) Exists(ctx context.Context, pokemonID int) (bool, error) {
	team, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range team {
		if m.ID == pokemonID {
			return true, nil
		}
	}
	return false, nil
}

func (r *KVRepository) Count(ctx context.Context) (int, error) {
	team, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(team), nil
}
