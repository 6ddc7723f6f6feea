package newscache

import (
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/tickerpulse/internal/interfaces"
	"github.com/ternarybob/tickerpulse/internal/models"
)

type memoryEntry struct {
	items    []models.RawNewsItem
	storedAt time.Time
}

// MemoryCache is an in-process TTL cache of raw news items keyed by
// ticker. Expiry is lazy: stale entries are dropped on the next Get.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   interfaces.Clock
}

// NewMemoryCache creates a memory-only cache. clock must not be nil.
func NewMemoryCache(ttl time.Duration, clock interfaces.Clock) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached items for a ticker when present and fresh.
func (c *MemoryCache) Get(ticker string) ([]models.RawNewsItem, bool) {
	key := normalizeKey(ticker)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.clock.Now().Sub(entry.storedAt) >= c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.items, true
}

// Put stores the items for a ticker, replacing any existing entry.
func (c *MemoryCache) Put(ticker string, items []models.RawNewsItem) {
	key := normalizeKey(ticker)

	c.mu.Lock()
	c.entries[key] = memoryEntry{items: items, storedAt: c.clock.Now()}
	c.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func normalizeKey(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
