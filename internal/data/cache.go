package data

import (
	"sync"
	"time"
)

// snapshotCache holds the most recent snapshot for a bounded validity
// window. It keeps the last successful snapshot around past expiry so
// error states can still render stale data.
type snapshotCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	value   *Snapshot
	expires time.Time
}

func newSnapshotCache(ttl time.Duration, now func() time.Time) *snapshotCache {
	return &snapshotCache{
		ttl: ttl,
		now: now,
	}
}

func (c *snapshotCache) get() (*Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value == nil || c.now().After(c.expires) {
		return nil, false
	}
	return c.value, true
}

func (c *snapshotCache) put(snapshot *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = snapshot
	c.expires = c.now().Add(c.ttl)
}

func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Keep the value as last-known-good; only the freshness window is
	// reset.
	c.expires = time.Time{}
}

func (c *snapshotCache) last() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
