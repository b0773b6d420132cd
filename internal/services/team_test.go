package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/team"
)

func newTeamService(t *testing.T) TeamService {
	t.Helper()
	return NewTeamService(team.NewSQLiteRepository(setupDB(t)))
}

func pikachu() *models.TeamMember {
	return &models.TeamMember{ID: 25, Name: "Pikachu", Types: []string{"electric"}}
}

func TestTeamAdd_HappyPath(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, pikachu()))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 25, got[0].ID)

	ok, err := s.Contains(ctx, 25)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTeamAdd_SeventhDistinctAddIsRejected(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, pikachu()))
	for id := 1; id <= 5; id++ {
		m := &models.TeamMember{ID: id, Name: fmt.Sprintf("mon-%d", id), Types: []string{"normal"}}
		require.NoError(t, s.Add(ctx, m))
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	full, err := s.IsFull(ctx)
	require.NoError(t, err)
	assert.True(t, full)

	err = s.Add(ctx, &models.TeamMember{ID: 6, Name: "mon-6", Types: []string{"normal"}})
	require.ErrorIs(t, err, common.ErrTeamFull)

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n, "rejected add must leave the roster unchanged")
}

func TestTeamAdd_DuplicateRejected(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, pikachu()))
	err := s.Add(ctx, pikachu())
	require.ErrorIs(t, err, common.ErrAlreadyInTeam)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTeamRemove_ThenContainsFalse(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, pikachu()))
	require.NoError(t, s.Remove(ctx, 25))

	ok, err := s.Contains(ctx, 25)
	require.NoError(t, err)
	assert.False(t, ok)

	// removing ids never present is fine too
	require.NoError(t, s.Remove(ctx, 9999))
}

func TestTeamClear(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, pikachu()))
	require.NoError(t, s.Clear(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTeamAdd_FreeSlotAfterRemove(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	for id := 1; id <= 6; id++ {
		require.NoError(t, s.Add(ctx, &models.TeamMember{ID: id, Name: "m", Types: nil}))
	}
	require.NoError(t, s.Remove(ctx, 3))

	require.NoError(t, s.Add(ctx, &models.TeamMember{ID: 7, Name: "m", Types: nil}),
		"removing frees capacity for a new add")
}
