package repository

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/shirou/gopsutil/mem"

	"github.com/joshuarp/remote-image-loader/internal/domain"
)

const (
	TierMemory = "memory"

	// fallbackMemoryBudget is used when physical memory cannot be read.
	fallbackMemoryBudget int64 = 16 * 1024 * 1024

	// maxMemoryEntries bounds the entry count independently of bytes so a flood
	// of tiny bodies cannot grow the index without limit.
	maxMemoryEntries = 1 << 20
)

// DefaultMemoryBudget returns one percent of physical memory.
func DefaultMemoryBudget() int64 {
	vm, err := mem.VirtualMemory()
	if err != nil || vm.Total == 0 {
		return fallbackMemoryBudget
	}
	return int64(vm.Total / 100)
}

// CacheStats describes the occupancy of a byte-bounded tier.
type CacheStats struct {
	Entries int
	Bytes   int64
	Budget  int64
}

// MemoryCache is a byte-bounded LRU of response bodies keyed by URL.
type MemoryCache struct {
	mu     sync.Mutex
	lru    *simplelru.LRU[string, domain.CacheEntry]
	budget int64
	used   int64
}

// NewMemoryCache creates a memory tier holding at most budget body bytes.
// A budget <= 0 uses DefaultMemoryBudget.
func NewMemoryCache(budget int64) (*MemoryCache, error) {
	if budget <= 0 {
		budget = DefaultMemoryBudget()
	}

	c := &MemoryCache{budget: budget}
	l, err := simplelru.NewLRU[string, domain.CacheEntry](maxMemoryEntries, func(_ string, entry domain.CacheEntry) {
		c.used -= entry.Size()
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

func (c *MemoryCache) Name() string {
	return TierMemory
}

func (c *MemoryCache) Get(_ context.Context, url string) (domain.CacheEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(url)
	return entry, ok, nil
}

// Put stores entry and evicts least recently used entries until the tier is
// back within budget. Entries larger than the whole budget are not stored.
func (c *MemoryCache) Put(_ context.Context, entry domain.CacheEntry) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(entry.URL)
	if entry.Size() > c.budget {
		return 0, nil
	}

	c.lru.Add(entry.URL, entry)
	c.used += entry.Size()

	evicted := 0
	for c.used > c.budget {
		if _, _, ok := c.lru.RemoveOldest(); !ok {
			break
		}
		evicted++
	}
	return evicted, nil
}

func (c *MemoryCache) Remove(_ context.Context, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(url)
	return nil
}

func (c *MemoryCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{Entries: c.lru.Len(), Bytes: c.used, Budget: c.budget}
}
