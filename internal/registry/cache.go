// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cache.go - Bounded LRU cache for suggestion results.
package registry

import (
	"container/list"
	"fmt"
)

// suggestionCache is a capped map with LRU eviction, keyed by
// (partial, limit). Capacity 0 disables caching entirely. Every mutating
// registry method calls invalidate: correctness of a cached suggestion list
// depends on the whole command set.
type suggestionCache struct {
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

type cacheEntry struct {
	key    string
	values []string
}

func cacheKey(partial string, limit int) string {
	return fmt.Sprintf("%d\x00%s", limit, partial)
}

func newSuggestionCache(capacity int) *suggestionCache {
	if capacity < 0 {
		capacity = 0
	}
	return &suggestionCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *suggestionCache) get(partial string, limit int) ([]string, bool) {
	if c.capacity == 0 {
		return nil, false
	}
	elem, ok := c.entries[cacheKey(partial, limit)]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).values, true
}

func (c *suggestionCache) put(partial string, limit int, values []string) {
	if c.capacity == 0 {
		return
	}

	key := cacheKey(partial, limit)
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).values = values
		c.order.MoveToFront(elem)
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, values: values})
}

// invalidate drops every cached entry.
func (c *suggestionCache) invalidate() {
	if c.capacity == 0 {
		return
	}
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// len reports the number of cached entries, for tests.
func (c *suggestionCache) len() int {
	return len(c.entries)
}
