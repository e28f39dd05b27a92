// Package iconcache stores brand icon lookups. The default backend is
// a process-wide in-memory map; a Redis backend exists for multi-
// instance deployments where per-instance caches would multiply
// upstream lookups.
package iconcache

import (
	"context"
	"sync"
	"time"

	"distractions/internal/domain"
)

// DefaultTTL is how long a lookup result, positive or negative, is
// served from cache before the upstream is asked again.
const DefaultTTL = 24 * time.Hour

// Memory is the in-process icon cache. Entries are never evicted, only
// superseded; domain cardinality for a personal tool is small enough
// that unbounded growth is fine. Initialized empty at process start,
// no teardown.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]domain.IconEntry
}

// NewMemory creates an empty in-process cache. A non-positive ttl
// selects the default.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]domain.IconEntry),
	}
}

// Get returns a fresh entry. A stale entry is a miss: the caller is
// expected to refresh and overwrite it.
func (m *Memory) Get(ctx context.Context, dom string) (domain.IconEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[dom]
	if !ok || m.now().Sub(entry.CachedAt) >= m.ttl {
		return domain.IconEntry{}, false
	}
	return entry, true
}

// Put stores an entry, last write wins. Two concurrent fillers for the
// same domain are harmless: results are idempotent.
func (m *Memory) Put(ctx context.Context, dom string, entry domain.IconEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[dom] = entry
}
