package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LulubuluL/pokedex/internal/cache"
	"github.com/LulubuluL/pokedex/internal/logging"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
)

// fakeFetcher counts calls and returns a fixed catalog.
type fakeFetcher struct {
	calls   int
	entries []models.PokemonSummary
	err     error
}

func (f *fakeFetcher) FetchCatalog(ctx context.Context) ([]models.PokemonSummary, error) {
	f.calls++
	return f.entries, f.err
}

func newCatalogService(t *testing.T, fetcher CatalogFetcher) CatalogService {
	t.Helper()
	store := kv.NewSQLiteRepository(setupDB(t))
	return NewCatalogService(cache.New(store, logging.NewNopLogger()), fetcher)
}

func TestCatalog_FetchesOnceThenServesFromCache(t *testing.T) {
	fetcher := &fakeFetcher{entries: []models.PokemonSummary{
		{ID: 1, Name: "Bulbizarre"},
		{ID: 25, Name: "Pikachu"},
	}}
	s := newCatalogService(t, fetcher)
	ctx := context.Background()

	got, err := s.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, fetcher.calls)

	got, err = s.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, fetcher.calls, "second read must hit the cache")
	assert.True(t, s.IsCached(ctx))
}

func TestCatalog_FetchErrorPropagatesOnMiss(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("network down")}
	s := newCatalogService(t, fetcher)

	_, err := s.Catalog(context.Background())
	require.Error(t, err)
}

func TestRefresh_DropsCacheAndRefetches(t *testing.T) {
	fetcher := &fakeFetcher{entries: []models.PokemonSummary{{ID: 1, Name: "Bulbizarre"}}}
	s := newCatalogService(t, fetcher)
	ctx := context.Background()

	_, err := s.Catalog(ctx)
	require.NoError(t, err)

	fetcher.entries = []models.PokemonSummary{{ID: 1, Name: "Bulbizarre"}, {ID: 2, Name: "Herbizarre"}}
	got, err := s.Refresh(ctx)
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, 2, fetcher.calls)
}
