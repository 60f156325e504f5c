package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/remote-image-loader/internal/domain"
	"github.com/joshuarp/remote-image-loader/internal/shared/metrics"
)

var ErrEmptyCacheURL = errors.New("repository: cache url is required")

// CacheTier is one storage layer of the response cache. Each tier owns its
// budget and eviction; Put reports how many entries it evicted.
type CacheTier interface {
	Name() string
	Get(ctx context.Context, url string) (domain.CacheEntry, bool, error)
	Put(ctx context.Context, entry domain.CacheEntry) (int, error)
	Remove(ctx context.Context, url string) error
}

// ResponseCache maps URLs to encoded response bodies across a memory tier and
// an optional persistent tier. Persistent-tier failures degrade to misses.
type ResponseCache struct {
	memory     *MemoryCache
	persistent CacheTier
	logger     *slog.Logger
	metrics    *metrics.Collector
	now        func() time.Time
}

// NewResponseCache builds the tiered cache. persistent may be nil.
func NewResponseCache(memory *MemoryCache, persistent CacheTier, logger *slog.Logger, collector *metrics.Collector) *ResponseCache {
	if logger == nil {
		logger = slog.Default()
	}

	return &ResponseCache{
		memory:     memory,
		persistent: persistent,
		logger:     logger,
		metrics:    collector,
		now:        time.Now,
	}
}

// Get looks in memory first, then in the persistent tier, promoting a
// persistent hit into memory. The returned body must not be modified.
func (c *ResponseCache) Get(ctx context.Context, url string) (domain.CacheEntry, bool) {
	if strings.TrimSpace(url) == "" {
		return domain.CacheEntry{}, false
	}

	if entry, ok, _ := c.memory.Get(ctx, url); ok {
		c.metrics.CacheLookup(TierMemory, metrics.LookupHit)
		return entry, true
	}
	c.metrics.CacheLookup(TierMemory, metrics.LookupMiss)

	if c.persistent == nil {
		return domain.CacheEntry{}, false
	}

	tier := c.persistent.Name()
	entry, ok, err := c.persistent.Get(ctx, url)
	if err != nil {
		c.metrics.CacheLookup(tier, metrics.LookupErr)
		c.logger.WarnContext(ctx, "persistent cache lookup failed", "tier", tier, "url", url, "error", err)
		return domain.CacheEntry{}, false
	}
	if !ok {
		c.metrics.CacheLookup(tier, metrics.LookupMiss)
		return domain.CacheEntry{}, false
	}
	c.metrics.CacheLookup(tier, metrics.LookupHit)

	evicted, _ := c.memory.Put(ctx, entry)
	c.metrics.CacheEvicted(TierMemory, evicted)

	return entry, true
}

// Put stores a private copy of body under url in every tier. Writes to the
// persistent tier are best effort.
func (c *ResponseCache) Put(ctx context.Context, url string, body []byte) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyCacheURL
	}

	entry := domain.CacheEntry{
		URL:      url,
		Body:     append([]byte(nil), body...),
		StoredAt: c.now().UTC(),
	}

	evicted, _ := c.memory.Put(ctx, entry)
	c.metrics.CacheEvicted(TierMemory, evicted)

	if c.persistent == nil {
		return nil
	}

	tier := c.persistent.Name()
	evicted, err := c.persistent.Put(ctx, entry)
	if err != nil {
		c.logger.WarnContext(ctx, "persistent cache store failed", "tier", tier, "url", url, "error", err)
		return nil
	}
	c.metrics.CacheEvicted(tier, evicted)

	return nil
}

// Remove purges url from every tier.
func (c *ResponseCache) Remove(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyCacheURL
	}

	if err := c.memory.Remove(ctx, url); err != nil {
		return err
	}

	if c.persistent == nil {
		return nil
	}
	return c.persistent.Remove(ctx, url)
}

// Stats reports memory tier occupancy.
func (c *ResponseCache) Stats() CacheStats {
	return c.memory.Stats()
}
