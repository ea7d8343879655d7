package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
)

type memoryEntry struct {
	snapshot *livedata.Snapshot
	expires  time.Time
}

// MemoryCache keeps snapshots in a map keyed by baby and time zone.
// It is only coherent within a single server process.
type MemoryCache struct {
	mu          sync.Mutex
	ttl         time.Duration
	entries     map[string]map[string]memoryEntry
	invalidated map[string]time.Time
	now         func() time.Time
}

// NewMemoryCache creates a MemoryCache whose entries live for ttl
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:         ttl,
		entries:     make(map[string]map[string]memoryEntry),
		invalidated: make(map[string]time.Time),
		now:         time.Now,
	}
}

// Get returns the snapshot of babyID for tz unless it expired
func (c *MemoryCache) Get(_ context.Context, babyID, tz string) (*livedata.Snapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[babyID][tz]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(entry.expires) {
		delete(c.entries[babyID], tz)
		return nil, false, nil
	}
	return entry.snapshot, true, nil
}

// Set stores snapshot under its baby and time zone. A snapshot generated
// before the baby's last invalidation is dropped.
func (c *MemoryCache) Set(_ context.Context, snapshot *livedata.Snapshot) error {
	if snapshot == nil || snapshot.Baby == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	babyID := snapshot.Baby.ID
	if stamp, ok := c.invalidated[babyID]; ok {
		if !snapshot.GeneratedAt.After(stamp) {
			return nil
		}
		if c.now().Sub(stamp) > c.ttl {
			delete(c.invalidated, babyID)
		}
	}
	if c.entries[babyID] == nil {
		c.entries[babyID] = make(map[string]memoryEntry)
	}
	c.entries[babyID][snapshot.TimeZone] = memoryEntry{snapshot: snapshot, expires: c.now().Add(c.ttl)}
	return nil
}

// Invalidate drops every time zone variant of babyID
func (c *MemoryCache) Invalidate(_ context.Context, babyID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, babyID)
	c.invalidated[babyID] = c.now()
	return nil
}
