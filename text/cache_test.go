package text

import (
	"sync"
	"testing"
)

// TestCacheGetOrCreate tests GetOrCreate functionality.
func TestCacheGetOrCreate(t *testing.T) {
	cache := NewCache[string, int](0)

	createCount := 0
	create := func() int {
		createCount++
		return 42
	}

	if val := cache.GetOrCreate("key1", create); val != 42 {
		t.Errorf("Expected GetOrCreate to return 42, got %v", val)
	}
	if val := cache.GetOrCreate("key1", create); val != 42 || createCount != 1 {
		t.Errorf("Expected cached value without a second create, got %v after %d creates", val, createCount)
	}
	if val, ok := cache.Get("key1"); !ok || val != 42 {
		t.Errorf("Expected Get to return (42, true), got (%v, %v)", val, ok)
	}

	cache.Delete("key1")
	if _, ok := cache.Get("key1"); ok {
		t.Error("Expected key1 to be deleted")
	}
}

// TestCacheEviction tests that the soft limit evicts least recently used entries.
func TestCacheEviction(t *testing.T) {
	cache := NewCache[string, int](8)

	for i := 0; i < 8; i++ {
		cache.GetOrCreate(string(rune('a'+i)), func() int { return i })
	}
	// Refresh "a" so it survives.
	cache.Get("a")
	cache.GetOrCreate("z", func() int { return 99 })

	if n := cache.Len(); n > 8 {
		t.Errorf("Expected cache size <= 8 after eviction, got %d", n)
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("Expected recently used entry 'a' to be in cache")
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("Expected oldest entry 'b' to be evicted")
	}
	if _, ok := cache.Get("z"); !ok {
		t.Error("Expected newest entry 'z' to be in cache")
	}
}

// TestCacheConcurrentCreate tests that concurrent callers create once.
func TestCacheConcurrentCreate(t *testing.T) {
	cache := NewCache[string, int](0)

	var mu sync.Mutex
	creates := 0
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.GetOrCreate("shared", func() int {
				mu.Lock()
				creates++
				mu.Unlock()
				return 1
			})
		}()
	}
	wg.Wait()

	if creates != 1 {
		t.Errorf("Expected exactly one create, got %d", creates)
	}
}
