package iconcache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"distractions/internal/domain"
)

const keyPrefix = "brandlogo:"

// absentMarker is stored for known-absent logos so a cached negative
// result is distinguishable from an uncached domain.
const absentMarker = "\x00absent"

// Redis is the shared icon cache backend. Staleness is delegated to
// key expiry, so Get never sees an entry older than the TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis wraps an existing Redis client as an icon cache. A
// non-positive ttl selects the default.
func NewRedis(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached lookup for the domain. Transport errors are
// treated as misses: the caller refreshes, exactly as it would on a
// cold cache.
func (r *Redis) Get(ctx context.Context, dom string) (domain.IconEntry, bool) {
	val, err := r.client.Get(ctx, keyPrefix+dom).Result()
	if err == redis.Nil {
		return domain.IconEntry{}, false
	}
	if err != nil {
		r.logger.Warn("icon cache read failed", "domain", dom, "error", err)
		return domain.IconEntry{}, false
	}

	entry := domain.IconEntry{CachedAt: time.Now()}
	if val != absentMarker {
		entry.Logo = val
	}
	return entry, true
}

// Put stores the lookup under the cache TTL. Write failures are logged
// and swallowed: the cache is cosmetic and the next lookup simply hits
// the upstream again.
func (r *Redis) Put(ctx context.Context, dom string, entry domain.IconEntry) {
	val := entry.Logo
	if val == "" {
		val = absentMarker
	}
	if err := r.client.Set(ctx, keyPrefix+dom, val, r.ttl).Err(); err != nil {
		r.logger.Warn("icon cache write failed", "domain", dom, "error", err)
	}
}
