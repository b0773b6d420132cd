package config

import (
	"encoding/json"
	"os"

	"github.com/LulubuluL/pokedex/internal/flagx"
	"github.com/LulubuluL/pokedex/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Durations may
// be given as strings ("24h") or integer nanoseconds; zero values mean
// "not set" and leave the current Config value untouched.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	APIBaseURL   string         `json:"api_base_url"`
	CatalogLimit int            `json:"catalog_limit"`
	CacheTTL     timex.Duration `json:"cache_ttl"`
	HTTPTimeout  timex.Duration `json:"http_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag, no file, no overlay. Read or unmarshal
// errors panic; this runs once at startup before anything else.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.CatalogLimit > 0 {
		cfg.CatalogLimit = jc.CatalogLimit
	}
	if jc.CacheTTL.Duration > 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
	if jc.HTTPTimeout.Duration > 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
}
