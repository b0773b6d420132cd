package config

import (
	"flag"
	"os"
	"time"

	"github.com/LulubuluL/pokedex/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file
//	-u string   base URL of the catalog API
//	-n int      number of species in the full catalog fetch
//	-t int      cache TTL in hours
//
// The args are filtered through flagx.FilterArgs so flags owned by
// other components (and the test runner) don't interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-n", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "catalog API base URL")
	fs.IntVar(&cfg.CatalogLimit, "n", cfg.CatalogLimit, "catalog fetch limit")
	cacheTTLHours := fs.Int("t", int(cfg.CacheTTL.Hours()), "catalog cache TTL (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CacheTTL = time.Duration(*cacheTTLHours) * time.Hour
}
