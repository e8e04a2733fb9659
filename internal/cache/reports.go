package cache

import (
	"sync"
	"time"

	"grid-scenarios/internal/analysis"

	"github.com/google/uuid"
)

// DefaultTTL is how long a computed report stays retrievable.
const DefaultTTL = 1 * time.Hour

// Entry is a cached report.
type Entry struct {
	ID        string
	Report    analysis.Report
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ReportCache keeps computed reports in memory so a client can fetch them again by ID.
// Nothing is written to disk; entries disappear on expiry or process restart.
type ReportCache struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time
}

func New(ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReportCache{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores a report under a fresh ID and returns the entry.
// Expired entries are pruned on every Put.
func (c *ReportCache) Put(r analysis.Report) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for id, e := range c.store {
		if now.After(e.ExpiresAt) {
			delete(c.store, id)
		}
	}

	e := &Entry{
		ID:        uuid.NewString(),
		Report:    r,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.store[e.ID] = e
	return *e
}

// Get retrieves a cached report if available and not expired.
func (c *ReportCache) Get(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.store[id]
	if !ok {
		return Entry{}, false
	}
	if c.now().After(e.ExpiresAt) {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of stored entries, expired ones included.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache.
func (c *ReportCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*Entry)
}
