// Package cache holds the on-device snapshot of the remote species
// catalog. The cache is best-effort: a failed read is a miss, a failed
// write is logged and dropped, and neither ever fails the surrounding
// fetch operation.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/LulubuluL/pokedex/internal/logging"
	"github.com/LulubuluL/pokedex/internal/models"
	"github.com/LulubuluL/pokedex/internal/repositories/kv"
)

const (
	listKey      = "pokemon_list_cache"
	timestampKey = "pokemon_list_timestamp"

	// DefaultTTL is how long a snapshot stays fresh.
	DefaultTTL = 24 * time.Hour
)

// CatalogCache stores one full catalog snapshot with a freshness
// deadline. The snapshot is replaced wholesale on every write, never
// patched.
type CatalogCache struct {
	store kv.Repository
	log   logging.Logger
	ttl   time.Duration
	now   func() time.Time
}

// Option customizes a CatalogCache.
type Option func(*CatalogCache)

// WithTTL overrides the freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(c *CatalogCache) { c.ttl = ttl }
}

// WithClock overrides the time source. Tests use this to cross the TTL
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *CatalogCache) { c.now = now }
}

func New(store kv.Repository, log logging.Logger, opts ...Option) *CatalogCache {
	c := &CatalogCache{
		store: store,
		log:   log,
		ttl:   DefaultTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read returns the cached catalog, or nil on a miss: no record, an
// expired record (which is deleted as a side effect), or a storage
// error (logged and treated as a miss so the caller falls back to the
// network).
func (c *CatalogCache) Read(ctx context.Context) []models.PokemonSummary {
	data, err := c.store.Get(ctx, listKey)
	if err != nil {
		c.log.Warn(ctx, "catalog cache read failed", "err", err)
		return nil
	}
	writtenAt, ok := c.readTimestamp(ctx)
	if data == nil || !ok {
		return nil
	}

	if c.age(writtenAt) > c.ttl {
		// lazy eviction: stale records are removed on read, there is
		// no background sweeper
		c.Invalidate(ctx)
		return nil
	}

	var entries []models.PokemonSummary
	if err := json.Unmarshal(data, &entries); err != nil {
		c.log.Warn(ctx, "catalog cache is corrupt, dropping it", "err", err)
		c.Invalidate(ctx)
		return nil
	}
	return entries
}

// Write replaces the snapshot with entries stamped at now. Failures
// are logged and swallowed; failing to cache must never fail the fetch
// that produced the entries.
func (c *CatalogCache) Write(ctx context.Context, entries []models.PokemonSummary) {
	data, err := json.Marshal(entries)
	if err != nil {
		c.log.Warn(ctx, "catalog cache marshal failed", "err", err)
		return
	}
	if err := c.store.Set(ctx, listKey, data); err != nil {
		c.log.Warn(ctx, "catalog cache write failed", "err", err)
		return
	}
	millis := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err := c.store.Set(ctx, timestampKey, []byte(millis)); err != nil {
		c.log.Warn(ctx, "catalog cache timestamp write failed", "err", err)
	}
}

// Invalidate deletes the snapshot unconditionally (the manual refresh
// path).
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.store.Delete(ctx, listKey); err != nil {
		c.log.Warn(ctx, "catalog cache delete failed", "err", err)
	}
	if err := c.store.Delete(ctx, timestampKey); err != nil {
		c.log.Warn(ctx, "catalog cache timestamp delete failed", "err", err)
	}
}

// IsFresh reports whether a snapshot exists and is within TTL, without
// the eviction side effect of Read.
func (c *CatalogCache) IsFresh(ctx context.Context) bool {
	writtenAt, ok := c.readTimestamp(ctx)
	if !ok {
		return false
	}
	return c.age(writtenAt) <= c.ttl
}

func (c *CatalogCache) age(writtenAtMillis int64) time.Duration {
	return c.now().Sub(time.UnixMilli(writtenAtMillis))
}

func (c *CatalogCache) readTimestamp(ctx context.Context) (int64, bool) {
	raw, err := c.store.Get(ctx, timestampKey)
	if err != nil {
		c.log.Warn(ctx, "catalog cache timestamp read failed", "err", err)
		return 0, false
	}
	if raw == nil {
		return 0, false
	}
	millis, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return millis, true
}
