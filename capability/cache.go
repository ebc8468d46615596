package capability

import (
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/imgkit/pkg/cache"
)

type cacheEntry struct {
	caps     *ClientCapabilities
	storedAt time.Time
}

// resultCache is the process-wide store of completed detection results.
// Insertion-order eviction in prune batches; reads never promote. With a
// non-zero TTL an expired entry reads as a miss and is dropped.
type resultCache struct {
	store *cache.FIFOCache[string, cacheEntry]
	ttl   time.Duration

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func newResultCache(cfg CacheConfig) *resultCache {
	if !cfg.Enabled {
		return nil
	}
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 1000
	}
	prune := cfg.PruneAmount
	if prune <= 0 {
		prune = 100
	}

	rc := &resultCache{
		store: cache.NewFIFOCache[string, cacheEntry](maxSize, prune),
		ttl:   cfg.TTL,
	}
	rc.store.SetEvictCallback(func(string, cacheEntry) {
		rc.evictions.Add(1)
	})
	return rc
}

func (c *resultCache) get(key string) (*ClientCapabilities, bool) {
	entry, ok := c.store.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		c.store.Remove(key)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.caps, true
}

func (c *resultCache) put(key string, caps *ClientCapabilities) {
	c.store.Put(key, cacheEntry{caps: caps, storedAt: time.Now()})
}

// CacheStats is a point-in-time snapshot of cache effectiveness counters.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

func (c *resultCache) stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.store.Len(),
	}
}
