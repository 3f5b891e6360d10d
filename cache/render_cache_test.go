package cache

import (
	"testing"
	"time"
)

func TestRenderCacheGetOrRender(t *testing.T) {
	c := NewRenderCache(0, 4)
	calls := 0
	render := func() string {
		calls++
		return "chart"
	}

	for i := 0; i < 3; i++ {
		if got := c.GetOrRender("line:40x10", render); got != "chart" {
			t.Fatalf("GetOrRender() = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	stats := c.GetStats()
	if stats["hits"] != 2 || stats["misses"] != 1 {
		t.Errorf("stats = %v, want 2 hits and 1 miss", stats)
	}
}

func TestRenderCacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewRenderCache(time.Minute, 4)
	c.now = func() time.Time { return now }

	c.Set("a", "1")
	if _, ok := c.Get("a"); !ok {
		t.Fatal("fresh entry missing")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Error("expired entry returned")
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after expiry", c.Size())
	}
}

func TestRenderCacheEviction(t *testing.T) {
	c := NewRenderCache(0, 2)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a")

	c.Set("c", "3")
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("least used entry b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("entry a should survive")
	}

	// Overwriting an existing key never evicts.
	c.Set("a", "updated")
	if v, _ := c.Get("a"); v != "updated" || c.Size() != 2 {
		t.Errorf("overwrite: a=%q size=%d", v, c.Size())
	}
}

func TestRenderCacheClear(t *testing.T) {
	c := NewRenderCache(0, 0)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d", c.Size())
	}
}
