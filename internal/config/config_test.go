package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "pokedex.db", cfg.DatabasePath)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.APIBaseURL)
	assert.Equal(t, 151, cfg.CatalogLimit)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestParseJson_OverlaysOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_path": "/tmp/other.db",
		"cache_ttl": "1h"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"pokedex", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	// untouched fields keep defaults
	assert.Equal(t, 151, cfg.CatalogLimit)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.APIBaseURL)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"pokedex", "-d", "x.db", "-n", "251", "-t", "48"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "x.db", cfg.DatabasePath)
	assert.Equal(t, 251, cfg.CatalogLimit)
	assert.Equal(t, 48*time.Hour, cfg.CacheTTL)
}
