// Package cache provides a generic, thread-safe bounded cache with
// insertion-order (FIFO) batch eviction.
//
// The cache evicts a configurable batch of its oldest entries whenever an
// insert would exceed its capacity. Unlike an LRU cache, reads never refresh
// an entry's position: which entries survive under the bound depends only on
// insertion order. For workloads where the cache is a pure performance
// optimization and a stale-entry miss only costs a recomputation, this trades
// retention fairness for a cheaper hit path (no list manipulation on Get).
//
// # Usage
//
// Create a cache with a capacity and a prune batch size:
//
//	c := cache.NewFIFOCache[string, *Result](1000, 100)
//
// Basic operations:
//
//	c.Put("key", result)
//
//	result, found := c.Get("key")
//	if found {
//		// Use result
//	}
//
//	removed, existed := c.Remove("key")
//
//	c.Clear()
//
// # Resource Cleanup
//
// For values that need cleanup when evicted, use the eviction callback:
//
//	c.SetEvictCallback(func(key string, r *Result) {
//		r.Close()
//	})
//
// # Thread Safety
//
// All operations are thread-safe and can be called concurrently from multiple
// goroutines. A single mutex guards the map and eviction list; critical
// sections are short and no operation blocks on anything but the mutex.
package cache
