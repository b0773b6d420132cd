// Package pokeapi is the HTTP client for the remote species catalog.
// It produces the summaries the catalog cache stores; everything else
// the API returns is for the presentation layer and never parsed here.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/LulubuluL/pokedex/internal/common"
	"github.com/LulubuluL/pokedex/internal/models"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches catalog data over HTTP. Transient failures (network
// errors, 5xx) are retried with fibonacci backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	language   string
	limit      int
	maxRetries uint64
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests use an
// httptest server).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLanguage selects the localization used for display names.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithCatalogLimit caps how many pokedex entries FetchCatalog resolves.
// Zero means all of them.
func WithCatalogLimit(n int) Option {
	return func(c *Client) { c.limit = n }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		language:   "fr",
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type pokedexResponse struct {
	PokemonEntries []struct {
		EntryNumber    int `json:"entry_number"`
		PokemonSpecies struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"pokemon_species"`
	} `json:"pokemon_entries"`
}

type speciesResponse struct {
	Name  string `json:"name"`
	Names []struct {
		Name     string `json:"name"`
		Language struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"names"`
}

type pokemonResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Species struct {
		URL string `json:"url"`
	} `json:"species"`
}

// FetchCatalog retrieves the full national pokedex and resolves each
// entry's localized display name. Entries are returned in pokedex
// order. Types are not populated at list level; they come from
// FetchPokemon when a species is inspected or added to the team.
func (c *Client) FetchCatalog(ctx context.Context) ([]models.PokemonSummary, error) {
	var dex pokedexResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokedex/1/", &dex); err != nil {
		return nil, fmt.Errorf("failed to fetch pokedex: %w", err)
	}

	dexEntries := dex.PokemonEntries
	if c.limit > 0 && len(dexEntries) > c.limit {
		dexEntries = dexEntries[:c.limit]
	}

	entries := make([]models.PokemonSummary, 0, len(dexEntries))
	for _, e := range dexEntries {
		var species speciesResponse
		if err := c.getJSON(ctx, e.PokemonSpecies.URL, &species); err != nil {
			return nil, fmt.Errorf("failed to fetch species %d: %w", e.EntryNumber, err)
		}

		name := species.Name
		for _, n := range species.Names {
			if n.Language.Name == c.language {
				name = n.Name
				break
			}
		}

		entries = append(entries, models.PokemonSummary{
			ID:         e.EntryNumber,
			Name:       name,
			SpeciesURL: e.PokemonSpecies.URL,
		})
	}

	return entries, nil
}

// FetchPokemon retrieves one species' detail fields (types, height,
// weight) as a TeamMember value, the copy taken when the user adds the
// species to the team.
func (c *Client) FetchPokemon(ctx context.Context, id int) (*models.TeamMember, error) {
	var p pokemonResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon/%d", c.baseURL, id), &p); err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon %d: %w", id, err)
	}

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}

	return &models.TeamMember{
		ID:         p.ID,
		Name:       p.Name,
		Types:      types,
		Height:     p.Height,
		Weight:     p.Weight,
		SpeciesURL: p.Species.URL,
	}, nil
}

// getJSON fetches url into out, retrying transient failures.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("server error: %s", resp.Status))
		}
		if resp.StatusCode == http.StatusNotFound {
			return common.ErrorNotFound
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status: %s", resp.Status)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return json.Unmarshal(body, out)
	})
}
