// Package pathcache implements the shared path memoization cache.
package pathcache

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/routelab/gridroute/grid"
)

// Cache is a concurrency-safe, capacity-bounded, insert-only store of
// computed paths. The zero value is not usable; construct with New.
type Cache struct {
	capacity int

	mu      sync.RWMutex
	entries map[Key]grid.Path

	hits   atomic.Uint64
	misses atomic.Uint64

	group singleflight.Group // collapses concurrent identical misses
}

// New returns an empty cache holding at most capacity entries.
// A capacity ≤ 0 disables insertion entirely: every Get misses and
// every Put is dropped, which makes a "cache disabled" configuration
// indistinguishable from a permanently cold cache.
func New(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[Key]grid.Path),
	}
}

// Get returns a copy of the path stored under k, or (nil, false) on a
// miss. Every call counts toward the hit/miss statistics.
func (c *Cache) Get(k Key) (grid.Path, bool) {
	p, ok := c.lookup(k)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)

	return p.Clone(), true
}

// lookup reads the raw entry without touching statistics or copying.
func (c *Cache) lookup(k Key) (grid.Path, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.entries[k]

	return p, ok
}

// Put stores a copy of p under k. It is a no-op when the key is already
// present, when the cache is full, or when p is empty. Entries are
// never evicted: once the capacity is reached the cache serves its
// existing contents and ignores new ones.
func (c *Cache) Put(k Key, p grid.Path) {
	if len(p) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[k]; exists {
		return
	}
	if c.capacity <= 0 || len(c.entries) >= c.capacity {
		return
	}
	c.entries[k] = p.Clone()
}

// Resolve returns the path for k, computing and storing it on a miss.
// Concurrent Resolve calls for the same key share a single compute
// invocation; every caller receives its own copy of the result.
// Compute errors are returned unchanged and never cached.
func (c *Cache) Resolve(k Key, compute func() (grid.Path, error)) (grid.Path, error) {
	if p, ok := c.Get(k); ok {
		return p, nil
	}

	v, err, _ := c.group.Do(k.flight(), func() (interface{}, error) {
		// A concurrent flight may have stored the entry between the
		// miss above and this callback. Recheck without skewing stats.
		if p, ok := c.lookup(k); ok {
			return p, nil
		}
		p, err := compute()
		if err != nil {
			return nil, err
		}
		c.Put(k, p)

		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(grid.Path).Clone(), nil
}

// Clear drops every entry and resets the hit/miss counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[Key]grid.Path)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns a snapshot of the cache counters. The fields are read
// independently, so a snapshot taken under concurrent load is
// approximate.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Size:     c.Len(),
		Capacity: c.capacity,
	}
}
