package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/logging"
	"github.com/LulubuluL/pokedex/internal/repositories/favorites"
	"github.com/LulubuluL/pokedex/internal/services"
)

func newFavoritesState(t *testing.T) *FavoritesState {
	t.Helper()
	repo := favorites.NewSQLiteRepository(setupDB(t))
	return NewFavoritesState(services.NewFavoritesService(repo), logging.NewNopLogger())
}

func TestFavoritesState_ToggleIsInvolution(t *testing.T) {
	s := newFavoritesState(t)
	ctx := context.Background()
	s.Reload(ctx)

	assert.NotContains(t, s.IDs(), 25)

	favorited, err := s.Toggle(ctx, 25)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.True(t, s.IsFavorite(25), "mirror reflects the toggle immediately")

	favorited, err = s.Toggle(ctx, 25)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.False(t, s.IsFavorite(25))
	assert.NotContains(t, s.IDs(), 25)
}

func TestFavoritesState_RapidtogglesDoNotFlap(t *testing.T) {
	s := newFavoritesState(t)
	ctx := context.Background()
	s.Reload(ctx)

	// an even number of toggles always lands back on "not favorited",
	// because each one branches on freshly read membership
	for i := 0; i < 10; i++ {
		_, err := s.Toggle(ctx, 7)
		require.NoError(t, err)
	}
	assert.False(t, s.IsFavorite(7))
}

func TestFavoritesState_NewestFirstOrdering(t *testing.T) {
	s := newFavoritesState(t)
	ctx := context.Background()
	s.Reload(ctx)

	for _, id := range []int{3, 1, 2} {
		_, err := s.Toggle(ctx, id)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{2, 1, 3}, s.IDs())
}

func TestFavoritesState_LoadingLifecycle(t *testing.T) {
	s := newFavoritesState(t)

	assert.True(t, s.Loading())
	s.Reload(context.Background())
	assert.False(t, s.Loading())
}

// failingFavoritesService always errors.
type failingFavoritesService struct {
	services.FavoritesService
}

func (failingFavoritesService) Toggle(ctx context.Context, id int) (bool, error) {
	return false, errors.New("io error")
}

func (failingFavoritesService) ListIDs(ctx context.Context) ([]int, error) {
	return nil, errors.New("io error")
}

func TestFavoritesState_ToggleErrorWrappedAsDatabase(t *testing.T) {
	s := NewFavoritesState(failingFavoritesService{}, logging.NewNopLogger())

	_, err := s.Toggle(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrDatabase)
}
