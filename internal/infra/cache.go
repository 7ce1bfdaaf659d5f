// Package infra provides shared caching infrastructure for the OSRS companion
// server: a single-value expiring snapshot cell and a keyed TTL cache.
package infra

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Cache size limits to prevent unbounded memory growth
const (
	DefaultMaxCacheEntries = 1000            // Maximum number of cache entries
	DefaultCacheCleanup    = 5 * time.Minute // How often to run cache cleanup
)

// Snapshot holds a single expiring value. Replacement is a whole-value swap
// under the lock, so readers see either the old snapshot or the new one,
// never a partial update.
type Snapshot[T any] struct {
	mu        sync.RWMutex
	value     T
	storedAt  time.Time
	ttl       time.Duration
	populated bool
}

// NewSnapshot creates an empty snapshot cell with the given TTL.
func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	return &Snapshot[T]{ttl: ttl}
}

// Get returns the current value if the cell is populated and within its TTL.
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.populated || time.Since(s.storedAt) >= s.ttl {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Set replaces the stored value wholesale and resets the expiry clock.
func (s *Snapshot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.storedAt = time.Now()
	s.populated = true
}

// Age returns how long ago the value was stored. The second return is false
// if the cell has never been populated.
func (s *Snapshot[T]) Age() (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.populated {
		return 0, false
	}
	return time.Since(s.storedAt), true
}

// cacheEntry holds cached data with its expiry and insertion time
type cacheEntry struct {
	data      interface{}
	storedAt  time.Time
	expiresAt time.Time
}

// Cache provides a keyed TTL cache with a bounded entry count. Entries are
// replaced wholesale on Set, never merged.
type Cache struct {
	entries    sync.Map // key (string) -> *cacheEntry
	count      int64    // atomic counter for cache size
	maxEntries int64
	mu         sync.Mutex // protects eviction

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCache creates a new TTL cache with the specified max entries.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &Cache{
		maxEntries: int64(maxEntries),
		stopCh:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a cached value and its insertion time if the entry exists
// and hasn't expired.
func (c *Cache) Get(key string) (interface{}, time.Time, bool) {
	if entry, ok := c.entries.Load(key); ok {
		ce := entry.(*cacheEntry)
		if time.Now().Before(ce.expiresAt) {
			return ce.data, ce.storedAt, true
		}
		// Expired, delete it
		if _, existed := c.entries.LoadAndDelete(key); existed {
			atomic.AddInt64(&c.count, -1)
		}
	}
	return nil, time.Time{}, false
}

// Set stores a value in the cache with the specified TTL, superseding any
// prior entry for the key.
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	now := time.Now()

	_, existed := c.entries.Load(key)

	c.entries.Store(key, &cacheEntry{
		data:      data,
		storedAt:  now,
		expiresAt: now.Add(ttl),
	})

	if !existed {
		if newCount := atomic.AddInt64(&c.count, 1); newCount > c.maxEntries {
			go c.evictOldest(int(newCount - c.maxEntries))
		}
	}
}

// Delete removes a key from the cache.
func (c *Cache) Delete(key string) {
	if _, existed := c.entries.LoadAndDelete(key); existed {
		atomic.AddInt64(&c.count, -1)
	}
}

// Size returns the current number of entries in the cache.
func (c *Cache) Size() int64 {
	return atomic.LoadInt64(&c.count)
}

// Close stops the background cleanup goroutine.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// cleanupLoop periodically removes expired entries
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(DefaultCacheCleanup)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries and evicts the oldest if over the limit
func (c *Cache) cleanup() {
	now := time.Now()
	var expired int64

	c.entries.Range(func(key, value interface{}) bool {
		ce := value.(*cacheEntry)
		if now.After(ce.expiresAt) {
			if _, existed := c.entries.LoadAndDelete(key); existed {
				expired++
			}
		}
		return true
	})

	if expired > 0 {
		atomic.AddInt64(&c.count, -expired)
	}

	if current := atomic.LoadInt64(&c.count); current > c.maxEntries {
		c.evictOldest(int(current - c.maxEntries))
	}
}

// evictOldest removes the entries with the oldest insertion times
func (c *Cache) evictOldest(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	type entryInfo struct {
		key      string
		storedAt time.Time
	}
	var all []entryInfo

	c.entries.Range(func(key, value interface{}) bool {
		ce := value.(*cacheEntry)
		all = append(all, entryInfo{key: key.(string), storedAt: ce.storedAt})
		return true
	})

	// Oldest first
	sort.Slice(all, func(i, j int) bool {
		return all[i].storedAt.Before(all[j].storedAt)
	})

	evicted := 0
	for _, entry := range all {
		if evicted >= count {
			break
		}
		if _, existed := c.entries.LoadAndDelete(entry.key); existed {
			evicted++
		}
	}

	if evicted > 0 {
		atomic.AddInt64(&c.count, -int64(evicted))
	}
}
