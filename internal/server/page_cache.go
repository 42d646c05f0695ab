package server

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/lucas-b-santos/invoice-dashboard/internal/cache"
)

// listingCache caches rendered listing pages per path+query. Invalidation
// bumps a generation counter so every cached variant of the listing route is
// dropped at once; stale generations age out through the TTL.
type listingCache struct {
	pages *cache.TTLCache[string, string]
	gen   atomic.Int64
	ttl   time.Duration
}

func newListingCache(ttl time.Duration) *listingCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &listingCache{
		pages: cache.NewTTLCache[string, string](),
		ttl:   ttl,
	}
}

func (lc *listingCache) Get(key string) (string, bool) {
	if lc == nil {
		return "", false
	}
	return lc.pages.Get(lc.versioned(key))
}

func (lc *listingCache) Set(key, html string) {
	if lc == nil {
		return
	}
	lc.pages.Set(lc.versioned(key), html, lc.ttl)
}

// Invalidate drops all cached listing variants. Fire-and-forget: callers do
// not wait on anything beyond the counter bump.
func (lc *listingCache) Invalidate() {
	if lc == nil {
		return
	}
	lc.gen.Add(1)
}

func (lc *listingCache) versioned(key string) string {
	return strconv.FormatInt(lc.gen.Load(), 10) + "|" + key
}
