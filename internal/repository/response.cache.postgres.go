package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/remote-image-loader/internal/domain"
	"github.com/joshuarp/remote-image-loader/internal/shared/hash"
)

const TierPostgres = "postgres"

const responseCacheSchema = `
CREATE TABLE IF NOT EXISTS image_response_cache (
	url_hash    TEXT PRIMARY KEY,
	url         TEXT NOT NULL,
	body        BYTEA NOT NULL,
	size_bytes  BIGINT NOT NULL,
	stored_at   TIMESTAMPTZ NOT NULL,
	accessed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS image_response_cache_accessed_at_idx
	ON image_response_cache (accessed_at DESC)`

// PostgresCache is a persistent tier stored in a single Postgres table.
type PostgresCache struct {
	db     *sqlx.DB
	keyer  hash.Keyer
	budget int64
}

func NewPostgresCache(db *sqlx.DB, keyer hash.Keyer, budget int64) *PostgresCache {
	return &PostgresCache{db: db, keyer: keyer, budget: budget}
}

func (c *PostgresCache) Name() string {
	return TierPostgres
}

// EnsureSchema creates the cache table when it does not exist yet.
func (c *PostgresCache) EnsureSchema(ctx context.Context) error {
	if c == nil || c.db == nil {
		return errors.New("repository: postgres cache is not initialized")
	}

	if _, err := c.db.ExecContext(ctx, responseCacheSchema); err != nil {
		return fmt.Errorf("repository: failed to create cache schema: %w", err)
	}
	return nil
}

func (c *PostgresCache) Get(ctx context.Context, url string) (domain.CacheEntry, bool, error) {
	if c == nil || c.db == nil {
		return domain.CacheEntry{}, false, errors.New("repository: postgres cache is not initialized")
	}

	type row struct {
		URL      string    `db:"url"`
		Body     []byte    `db:"body"`
		StoredAt time.Time `db:"stored_at"`
	}

	const query = `
UPDATE image_response_cache
SET accessed_at = now()
WHERE url_hash = $1
RETURNING url, body, stored_at`

	var found row
	if err := c.db.GetContext(ctx, &found, query, c.keyer.Key(url)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CacheEntry{}, false, nil
		}
		return domain.CacheEntry{}, false, fmt.Errorf("repository: postgres cache get failed: %w", err)
	}

	if found.URL != url {
		return domain.CacheEntry{}, false, nil
	}

	return domain.CacheEntry{URL: found.URL, Body: found.Body, StoredAt: found.StoredAt.UTC()}, true, nil
}

func (c *PostgresCache) Put(ctx context.Context, entry domain.CacheEntry) (int, error) {
	if c == nil || c.db == nil {
		return 0, errors.New("repository: postgres cache is not initialized")
	}

	key := c.keyer.Key(entry.URL)

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if entry.Size() > c.budget {
		const deleteQuery = `DELETE FROM image_response_cache WHERE url_hash = $1`
		if _, err := tx.ExecContext(ctx, deleteQuery, key); err != nil {
			return 0, fmt.Errorf("repository: failed to drop oversized entry: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("repository: failed to commit cache put: %w", err)
		}
		return 0, nil
	}

	const upsertQuery = `
INSERT INTO image_response_cache (url_hash, url, body, size_bytes, stored_at, accessed_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (url_hash) DO UPDATE
SET url = EXCLUDED.url, body = EXCLUDED.body, size_bytes = EXCLUDED.size_bytes,
	stored_at = EXCLUDED.stored_at, accessed_at = EXCLUDED.accessed_at`

	if _, err := tx.ExecContext(ctx, upsertQuery, key, entry.URL, entry.Body, entry.Size(), entry.StoredAt); err != nil {
		return 0, fmt.Errorf("repository: failed to upsert cache entry: %w", err)
	}

	// Keep the most recently accessed rows whose running total fits the budget.
	const evictQuery = `
DELETE FROM image_response_cache
WHERE url_hash IN (
	SELECT url_hash FROM (
		SELECT url_hash, SUM(size_bytes) OVER (ORDER BY accessed_at DESC, url_hash) AS running_bytes
		FROM image_response_cache
	) ranked
	WHERE running_bytes > $1
)`

	result, err := tx.ExecContext(ctx, evictQuery, c.budget)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to evict cache entries: %w", err)
	}

	evicted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count evicted entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("repository: failed to commit cache put: %w", err)
	}

	return int(evicted), nil
}

func (c *PostgresCache) Remove(ctx context.Context, url string) error {
	if c == nil || c.db == nil {
		return errors.New("repository: postgres cache is not initialized")
	}

	const query = `DELETE FROM image_response_cache WHERE url_hash = $1`
	if _, err := c.db.ExecContext(ctx, query, c.keyer.Key(url)); err != nil {
		return fmt.Errorf("repository: postgres cache remove failed: %w", err)
	}
	return nil
}
