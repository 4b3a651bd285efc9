// Package cache provides a keyed, time-boxed in-process cache.
// Entries expire after the configured TTL; concurrent writers race with
// last-write-wins semantics, which is fine for idempotent recomputation
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a TTL-bounded LRU keyed by string
type Cache[V any] struct {
	lru *expirable.LRU[string, V]
}

// New constructs a cache holding at most size entries, each for at most ttl.
// size <= 0 defaults to 1024; ttl <= 0 defaults to 24h
func New[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		size = 1024
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

// Get returns the cached value and whether it was present and unexpired
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set stores v under key, resetting its TTL
func (c *Cache[V]) Set(key string, v V) {
	c.lru.Add(key, v)
}

// Delete removes key if present
func (c *Cache[V]) Delete(key string) {
	c.lru.Remove(key)
}

// GetOrCompute returns the cached value for key, computing and storing it on
// miss. Concurrent misses may compute more than once; the last write wins
func (c *Cache[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}
	c.lru.Add(key, v)
	return v, nil
}
