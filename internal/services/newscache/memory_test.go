package newscache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/tickerpulse/internal/models"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryCacheHit(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache(10*time.Minute, clock)

	items := []models.RawNewsItem{{Title: "Apple beats estimates"}}
	cache.Put("AAPL", items)

	got, ok := cache.Get("AAPL")
	require.True(t, ok)
	assert.Equal(t, items, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache(10*time.Minute, clock)

	_, ok := cache.Get("AAPL")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache(10*time.Minute, clock)

	cache.Put("AAPL", []models.RawNewsItem{{Title: "Apple beats estimates"}})

	clock.Advance(9 * time.Minute)
	_, ok := cache.Get("AAPL")
	assert.True(t, ok, "entry is fresh before the TTL elapses")

	clock.Advance(1 * time.Minute)
	_, ok = cache.Get("AAPL")
	assert.False(t, ok, "entry expires exactly at the TTL")
	assert.Equal(t, 0, cache.Len(), "expired entry is dropped")
}

func TestMemoryCacheKeyNormalization(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache(10*time.Minute, clock)

	cache.Put(" aapl ", []models.RawNewsItem{{Title: "Apple beats estimates"}})

	_, ok := cache.Get("AAPL")
	assert.True(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCacheReplace(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache(10*time.Minute, clock)

	cache.Put("AAPL", []models.RawNewsItem{{Title: "first"}})
	cache.Put("AAPL", []models.RawNewsItem{{Title: "second"}})

	got, ok := cache.Get("AAPL")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Title)
}
