package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[string, int](time.Minute, 10, clock)

	c.Set("a", 1)

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_EntriesExpireAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[string, int](time.Minute, 10, clock)

	c.Set("a", 1)
	clock.Advance(time.Minute + time.Second)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_EvictExpiredReclaimsEntries(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[string, int](time.Minute, 10, clock)

	c.Set("a", 1)
	c.Set("b", 2)
	clock.Advance(2 * time.Minute)
	c.Set("c", 3)

	assert.Equal(t, 2, c.EvictExpired())
	assert.Equal(t, 1, c.Len())
}

func TestCache_NeverExceedsMaxEntries(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[int, int](time.Minute, 3, clock)

	for i := 0; i < 10; i++ {
		c.Set(i, i)
	}

	assert.LessOrEqual(t, c.Len(), 3)
}

func TestCache_FullCachePrefersEvictingExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[string, int](time.Minute, 2, clock)

	c.Set("old", 1)
	clock.Advance(2 * time.Minute)
	c.Set("fresh", 2)
	c.Set("newer", 3)

	_, ok := c.Get("fresh")
	assert.True(t, ok, "unexpired entry must survive when expired ones exist")
	_, ok = c.Get("newer")
	assert.True(t, ok)
}

func TestCache_InvalidateRemovesEntry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[string, int](time.Minute, 10, clock)

	c.Set("a", 1)
	c.Invalidate("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_OverwriteRefreshesTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[string, int](time.Minute, 10, clock)

	c.Set("a", 1)
	clock.Advance(45 * time.Second)
	c.Set("a", 2)
	clock.Advance(45 * time.Second)

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}
