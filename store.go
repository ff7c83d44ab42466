package ggtex

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/ggtex/cache"
)

// GlyphCache is the default GlyphStore. Entries live in a sharded LRU
// cache; the miss-path lock is a single mutex shared by every interpreter
// using the cache.
//
// GlyphCache is safe for concurrent use.
type GlyphCache struct {
	mu      sync.Mutex
	entries *cache.ShardedCache[Key, *Glyph]
	stores  atomic.Uint64
}

// NewGlyphCache creates a cache holding up to capacity runs per shard
// (cache.ShardCount shards). If capacity <= 0, cache.DefaultCapacity is used.
// See WithCacheCapacity for how capacity limits the labels that can be drawn.
func NewGlyphCache(capacity int) *GlyphCache {
	return &GlyphCache{
		entries: cache.NewSharded[Key, *Glyph](capacity, Key.Hash),
	}
}

// Lookup implements GlyphStore.
func (c *GlyphCache) Lookup(key Key) (Size, bool) {
	g, ok := c.entries.Get(key)
	if !ok {
		return Size{}, false
	}
	return g.Size, true
}

// Store implements GlyphStore.
func (c *GlyphCache) Store(key Key, g *Glyph) {
	if g == nil {
		return
	}
	c.entries.Set(key, g)
	c.stores.Add(1)
}

// Glyph implements GlyphSource.
func (c *GlyphCache) Glyph(key Key) (*Glyph, bool) {
	return c.entries.Peek(key)
}

// Lock implements sync.Locker.
func (c *GlyphCache) Lock() { c.mu.Lock() }

// Unlock implements sync.Locker.
func (c *GlyphCache) Unlock() { c.mu.Unlock() }

// Len returns the number of cached runs.
func (c *GlyphCache) Len() int {
	return c.entries.Len()
}

// Stores returns how many runs have been stored, i.e. how many times a
// run was rasterized into this cache.
func (c *GlyphCache) Stores() uint64 {
	return c.stores.Load()
}

// Stats returns the underlying cache statistics.
func (c *GlyphCache) Stats() cache.Stats {
	return c.entries.Stats()
}

// Clear drops all cached runs.
func (c *GlyphCache) Clear() {
	c.entries.Clear()
}
