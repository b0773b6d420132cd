package services

import (
	"context"
	"fmt"

	"github.com/LulubuluL/pokedex/internal/cache"
	"github.com/LulubuluL/pokedex/internal/models"
)

// CatalogFetcher is the remote side of the catalog flow; implemented
// by pokeapi.Client.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]models.PokemonSummary, error)
}

type CatalogService interface {
	// Catalog returns the species catalog: cache when fresh, network
	// otherwise (with a best-effort write-through).
	Catalog(ctx context.Context) ([]models.PokemonSummary, error)

	// Refresh drops the cached snapshot and fetches a new one.
	Refresh(ctx context.Context) ([]models.PokemonSummary, error)

	// IsCached reports whether a fresh snapshot is available without
	// touching the network or evicting anything.
	IsCached(ctx context.Context) bool
}

type catalogService struct {
	cache   *cache.CatalogCache
	fetcher CatalogFetcher
}

func NewCatalogService(c *cache.CatalogCache, fetcher CatalogFetcher) CatalogService {
	return &catalogService{cache: c, fetcher: fetcher}
}

func (s *catalogService) Catalog(ctx context.Context) ([]models.PokemonSummary, error) {
	if entries := s.cache.Read(ctx); entries != nil {
		return entries, nil
	}

	entries, err := s.fetcher.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching catalog: %w", err)
	}

	s.cache.Write(ctx, entries)
	return entries, nil
}

func (s *catalogService) Refresh(ctx context.Context) ([]models.PokemonSummary, error) {
	s.cache.Invalidate(ctx)
	return s.Catalog(ctx)
}

func (s *catalogService) IsCached(ctx context.Context) bool {
	return s.cache.IsFresh(ctx)
}
