// Package models defines the domain types persisted by the pokedex
// core: catalog summaries, team members, quiz statistics and settings.
package models

// PokemonSummary is one species as held in the catalog cache: the
// display fields a list screen needs, localized at write time.
// Summaries are immutable; a cache refresh replaces them wholesale.
type PokemonSummary struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	SpeciesURL string   `json:"speciesUrl"`
}

// TeamMember is a species committed to the user's team. It is a copy
// of catalog data taken at add time, not a reference, so it survives
// catalog cache eviction.
type TeamMember struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Height     int      `json:"height"`
	Weight     int      `json:"weight"`
	SpeciesURL string   `json:"speciesUrl"`
}

// MaxTeamSize is the team capacity. The 7th distinct add is rejected.
const MaxTeamSize = 6
