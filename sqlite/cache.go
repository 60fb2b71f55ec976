package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/mapacultural/editais"
)

// DefaultCacheTTL is how long a cached per-source result set stays fresh.
// Sources publish on a human cadence; 30 minutes keeps repeat searches
// cheap without hiding new edicts for long.
const DefaultCacheTTL = 30 * time.Minute

// Compile-time interface verification.
var _ editais.ResultCache = (*ResultCache)(nil)

// ResultCache implements editais.ResultCache using SQLite. Entries are keyed
// by source URL and normalized search term; writes are last-write-wins, and
// expired entries are treated as misses.
type ResultCache struct {
	db  *DB
	ttl time.Duration
}

// CacheOption configures a ResultCache.
type CacheOption func(*ResultCache)

// WithTTL sets the cache freshness window.
// Defaults to DefaultCacheTTL (30m) if not specified.
func WithTTL(d time.Duration) CacheOption {
	return func(c *ResultCache) {
		c.ttl = d
	}
}

// NewResultCache creates a new ResultCache.
func NewResultCache(db *DB, opts ...CacheOption) *ResultCache {
	c := &ResultCache{db: db, ttl: DefaultCacheTTL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cacheKey derives the entry key from the source URL and normalized term.
// The NUL separator keeps distinct (url, term) pairs from colliding.
func cacheKey(sourceURL, term string) string {
	h := xxhash.Sum64String(sourceURL + "\x00" + editais.Normalize(term))
	return strconv.FormatUint(h, 16)
}

// Get returns the cached records for a source URL and search term. Expired
// or missing entries report ok=false.
func (c *ResultCache) Get(ctx context.Context, sourceURL, term string) ([]editais.Record, bool, error) {
	var payload, cachedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT records, cached_at FROM result_cache WHERE key = ?
	`, cacheKey(sourceURL, term)).Scan(&payload, &cachedAt)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	at, err := time.Parse(time.RFC3339, cachedAt)
	if err != nil {
		return nil, false, editais.Errorf(editais.EINTERNAL, "failed to parse cached_at: %v", err)
	}
	if time.Since(at) >= c.ttl {
		return nil, false, nil
	}

	var records []editais.Record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, false, editais.Errorf(editais.EINTERNAL, "failed to decode cached records: %v", err)
	}

	return records, true, nil
}

// Put stores the records for a source URL and search term, replacing any
// previous entry.
func (c *ResultCache) Put(ctx context.Context, sourceURL, term string, records []editais.Record) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return editais.Errorf(editais.EINTERNAL, "failed to encode records: %v", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO result_cache (key, source_url, term, records, cached_at)
		VALUES (?, ?, ?, ?, ?)
	`, cacheKey(sourceURL, term), sourceURL, term, string(payload),
		time.Now().UTC().Format(time.RFC3339))

	return err
}
