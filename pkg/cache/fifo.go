package cache

import (
	"container/list"
	"sync"
)

type fifoEntry[K comparable, V any] struct {
	key   K
	value V
}

// FIFOCache is a thread-safe bounded cache with insertion-order eviction.
// When an insert would exceed the capacity, a batch of the oldest entries is
// removed first. Reads do not refresh an entry's position: an entry's
// lifetime is decided by when it was inserted, not by how often it is hit.
// This is deliberately cheaper and less fair than LRU; callers that need
// recency-aware retention should not use this type.
type FIFOCache[K comparable, V any] struct {
	capacity int
	prune    int
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V) // Callback for cleanup when items are evicted
}

// NewFIFOCache creates a cache holding at most capacity entries, evicting
// prune oldest entries per overflow. The capacity must be positive, otherwise
// it panics. A prune outside [1, capacity] is clamped into that range.
func NewFIFOCache[K comparable, V any](capacity, prune int) *FIFOCache[K, V] {
	if capacity <= 0 {
		panic("FIFO cache capacity must be positive")
	}
	if prune < 1 {
		prune = 1
	}
	if prune > capacity {
		prune = capacity
	}
	return &FIFOCache[K, V]{
		capacity: capacity,
		prune:    prune,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// SetEvictCallback sets a callback function that is called when items are evicted.
func (c *FIFOCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value from the cache. The entry's eviction position is
// unchanged. Returns the value and true if found, zero value and false
// otherwise.
func (c *FIFOCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*fifoEntry[K, V])
		return entry.value, true
	}

	var zero V
	return zero, false
}

// Put adds or updates a value in the cache. An update keeps the entry's
// original insertion position. When adding would exceed the capacity, the
// configured prune amount of oldest entries is evicted first.
// Returns the previous value if it existed, and a boolean indicating if it existed.
func (c *FIFOCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*fifoEntry[K, V])
		oldValue := entry.value
		entry.value = value
		return oldValue, true
	}

	if c.order.Len() >= c.capacity {
		for i := 0; i < c.prune; i++ {
			elem := c.order.Back()
			if elem == nil {
				break
			}
			c.removeElement(elem)
		}
	}

	entry := &fifoEntry[K, V]{key: key, value: value}
	c.items[key] = c.order.PushFront(entry)

	var zero V
	return zero, false
}

// Remove removes an item from the cache.
// Returns the removed value and true if it existed, zero value and false otherwise.
func (c *FIFOCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*fifoEntry[K, V])
		c.removeElement(elem)
		return entry.value, true
	}

	var zero V
	return zero, false
}

func (c *FIFOCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all items from the cache.
// If an evict callback is set, it's called for each item.
func (c *FIFOCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, elem := range c.items {
			entry := elem.Value.(*fifoEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element)
	c.order.Init()
}

// Must be called with lock held.
func (c *FIFOCache[K, V]) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	entry := elem.Value.(*fifoEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
