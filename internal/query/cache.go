// Package query provides a transient in-process response cache keyed
// by request parameters. Entries live for a fixed TTL and concurrent
// lookups of the same key share a single upstream fetch.
package query

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type Cache[V any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry[V]
	group   singleflight.Group
	now     func() time.Time
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or runs fetch and caches its
// result. Concurrent callers for the same key share one fetch; the
// first caller's context drives it. Errors are not cached.
func (c *Cache[V]) Get(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A racing caller may have stored the value between our miss
		// and acquiring the flight.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Len reports the number of live entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, e := range c.entries {
		if c.now().Before(e.expiresAt) {
			n++
		}
	}
	return n
}

func (c *Cache[V]) lookup(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if !c.now().Before(e.expiresAt) {
		// Lazy expiry; re-check under the write lock.
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) store(key string, v V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
