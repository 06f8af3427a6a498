package rtr

import "container/list"

// DefaultCacheSize is the lookup cache capacity used by New.
const DefaultCacheSize = 512

// cacheEntry is a cached lookup result. key is kept on the entry so
// eviction from the list tail can delete the map slot in O(1).
type cacheEntry[T any] struct {
	key     string
	handler T
	params  []Parameter
}

// LookupCache is a bounded map from (method, raw path+query) to a matched
// handler and its extracted path parameters, evicted in strict LRU order.
// The map and the recency list always agree on membership: every insert,
// promotion and eviction touches both together.
//
// A LookupCache is not safe for concurrent use. The intended model is one
// cache per worker goroutine over an immutable route table - see
// Router.FindRouteUsing - which keeps the hot path free of locks.
type LookupCache[T any] struct {
	capacity int
	items    map[string]*list.Element
	recency  *list.List // front = most recently used
	hits     int64
	misses   int64
}

// NewLookupCache creates a cache holding at most capacity entries.
// A non-positive capacity falls back to DefaultCacheSize.
func NewLookupCache[T any](capacity int) *LookupCache[T] {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &LookupCache[T]{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		recency:  list.New(),
	}
}

// get returns the cached entry for key and promotes it to most recently
// used. The returned params must be treated as read-only.
func (c *LookupCache[T]) get(key string) (*cacheEntry[T], bool) {
	elem, exists := c.items[key]
	if !exists {
		c.misses++
		return nil, false
	}

	c.recency.MoveToFront(elem)
	c.hits++
	return elem.Value.(*cacheEntry[T]), true
}

// put inserts or refreshes an entry. Updating an existing key never
// evicts; inserting a new key at capacity evicts the list tail first.
func (c *LookupCache[T]) put(key string, handler T, params []Parameter) {
	if elem, exists := c.items[key]; exists {
		entry := elem.Value.(*cacheEntry[T])
		entry.handler = handler
		entry.params = params
		c.recency.MoveToFront(elem)
		return
	}

	if c.recency.Len() >= c.capacity {
		if oldest := c.recency.Back(); oldest != nil {
			delete(c.items, oldest.Value.(*cacheEntry[T]).key)
			c.recency.Remove(oldest)
		}
	}

	c.items[key] = c.recency.PushFront(&cacheEntry[T]{key: key, handler: handler, params: params})
}

// Clear drops every entry. Counters are kept.
func (c *LookupCache[T]) Clear() {
	c.items = make(map[string]*list.Element, c.capacity)
	c.recency.Init()
}

// Len returns the current number of cached entries.
func (c *LookupCache[T]) Len() int {
	return c.recency.Len()
}

// Stats returns the hit and miss counts since the cache was created.
func (c *LookupCache[T]) Stats() (hits, misses int64) {
	return c.hits, c.misses
}
