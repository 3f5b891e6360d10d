package cache

import (
	"sync"
	"time"
)

type entry struct {
	value      string
	expiration time.Time
	hits       int
}

// RenderCache memoizes rendered view fragments such as charts, keyed by
// content and size.
type RenderCache struct {
	data    map[string]entry
	mutex   sync.RWMutex
	ttl     time.Duration
	maxSize int
	now     func() time.Time

	hits   int
	misses int
}

// NewRenderCache creates a cache. A non-positive ttl keeps entries until they
// are evicted for space.
func NewRenderCache(ttl time.Duration, maxSize int) *RenderCache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &RenderCache{
		data:    make(map[string]entry),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (c *RenderCache) Get(key string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, exists := c.data[key]
	if !exists {
		c.misses++
		return "", false
	}
	if c.expired(e) {
		delete(c.data, key)
		c.misses++
		return "", false
	}

	e.hits++
	c.data[key] = e
	c.hits++
	return e.value, true
}

func (c *RenderCache) Set(key, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.removeExpiredEntries()
		if len(c.data) >= c.maxSize {
			c.evictOldestEntry()
		}
	}

	c.data[key] = entry{value: value, expiration: c.expiry()}
}

// GetOrRender returns the cached value for key, calling render and storing
// its result on a miss.
func (c *RenderCache) GetOrRender(key string, render func() string) string {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := render()
	c.Set(key, v)
	return v
}

func (c *RenderCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]entry)
}

func (c *RenderCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.data)
}

func (c *RenderCache) GetStats() map[string]int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return map[string]int{
		"total_entries": len(c.data),
		"max_size":      c.maxSize,
		"hits":          c.hits,
		"misses":        c.misses,
	}
}

func (c *RenderCache) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.ttl)
}

func (c *RenderCache) expired(e entry) bool {
	return !e.expiration.IsZero() && c.now().After(e.expiration)
}

// evictOldestEntry drops the least used entry, breaking ties by the earliest
// expiration.
func (c *RenderCache) evictOldestEntry() {
	var victim string
	var victimEntry entry
	found := false

	for key, e := range c.data {
		if !found || e.hits < victimEntry.hits ||
			(e.hits == victimEntry.hits && e.expiration.Before(victimEntry.expiration)) {
			victim, victimEntry, found = key, e, true
		}
	}

	if found {
		delete(c.data, victim)
	}
}

func (c *RenderCache) removeExpiredEntries() {
	for key, e := range c.data {
		if c.expired(e) {
			delete(c.data, key)
		}
	}
}
