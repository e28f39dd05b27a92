package domain

import (
	"context"
	"time"
)

// DistractionStore is the Baserow-backed feed table.
type DistractionStore interface {
	// List returns all non-archived rows, newest first.
	List(ctx context.Context) ([]*DistractionRow, error)
	// Archive flips the row's Archived select to Yes.
	Archive(ctx context.Context, id int) error
	// Hide flips the row's Hidden select to Yes.
	Hide(ctx context.Context, id int) error
	// Delete removes the row permanently.
	Delete(ctx context.Context, id int) error
}

// CuratedStore reads the curated Coda table.
type CuratedStore interface {
	List(ctx context.Context) ([]*CuratedRow, error)
}

// InboxStore is the Coda inbox table with action routing.
type InboxStore interface {
	// List returns all inbox rows, newest first.
	List(ctx context.Context) ([]*InboxRow, error)
	// Delete removes an inbox row permanently.
	Delete(ctx context.Context, rowID string) error
	// RouteAndDelete copies the entry content into the destination
	// table named by the action tag, then deletes the inbox row.
	RouteAndDelete(ctx context.Context, rowID, action, content string) error
}

// IconEntry is one cached brand icon lookup. An empty Logo with a set
// timestamp is a definitive known-absent result, cached the same way a
// hit is so repeated misses do not repeatedly hit the upstream API.
type IconEntry struct {
	Logo     string
	CachedAt time.Time
}

// IconCache stores brand icon lookups keyed by canonical domain.
// Get never returns an entry older than the cache's TTL: stale entries
// are a miss, and the caller refreshes and overwrites them.
type IconCache interface {
	Get(ctx context.Context, domain string) (IconEntry, bool)
	Put(ctx context.Context, domain string, entry IconEntry)
}
