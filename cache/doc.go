// Package cache provides the sharded LRU cache that backs ggtex's glyph cache.
//
// ShardedCache spreads keys over 16 independently locked shards, each with
// its own LRU list, so that concurrent label parses contend only when their
// keys land in the same shard.
//
//	c := cache.NewSharded[string, int](256, cache.StringHasher)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Hit, miss and eviction counters are kept with atomics and can be read at
// any time through Stats.
//
// ShardedCache is safe for concurrent use and must not be copied after
// creation.
package cache
