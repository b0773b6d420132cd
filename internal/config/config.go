// Package config loads runtime settings for the pokedex app. Values
// are resolved in three layers, later layers winning: built-in
// defaults, an optional JSON file (-c/-config), then command-line
// flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the on-device SQLite file.
//   - APIBaseURL: base URL of the remote catalog API.
//   - CatalogLimit: how many species the full catalog fetch requests.
//   - CacheTTL: how long a cached catalog snapshot stays fresh.
//   - HTTPTimeout: per-request timeout for catalog fetches.
type Config struct {
	DatabasePath string
	APIBaseURL   string
	CatalogLimit int
	CacheTTL     time.Duration
	HTTPTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "pokedex.db"
	c.APIBaseURL = "https://pokeapi.co/api/v2"
	c.CatalogLimit = 151
	c.CacheTTL = 24 * time.Hour
	c.HTTPTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
