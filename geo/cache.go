package geo

import (
	"strings"

	cache "github.com/patrickmn/go-cache"
)

// DistanceCache memoizes pairwise haversine distances keyed by an
// order-independent pair of location IDs.
//
// The cache is an explicitly constructed dependency: build one per
// optimization run and pass it down (never share across runs, so replayed
// IDs with changed coordinates cannot read stale entries). All pipeline
// access is single-threaded; the underlying store is goroutine-safe
// regardless, which keeps concurrent test runs harmless.
type DistanceCache struct {
	store *cache.Cache
}

// NewDistanceCache returns an empty DistanceCache.
// Entries never expire; lifetime is bounded by the run that owns the cache.
func NewDistanceCache() *DistanceCache {
	return &DistanceCache{store: cache.New(cache.NoExpiration, 0)}
}

// pairKey builds the order-independent key for two location IDs.
// The lexicographically smaller ID goes first so (a,b) and (b,a) collide.
func pairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "|" + b
}

// Distance returns the great-circle distance between a and b in
// kilometers, computing and memoizing it on first use.
//
// Locations without an ID bypass the cache entirely: throwaway synthetic
// points have no identity to key on, and a zero-ID collision would return
// another point's distance.
//
// Complexity: O(1) amortized.
func (c *DistanceCache) Distance(a, b Location) float64 {
	if a.ID == "" || b.ID == "" {
		return Haversine(a, b)
	}

	key := pairKey(a.ID, b.ID)
	if v, ok := c.store.Get(key); ok {
		return v.(float64)
	}

	d := Haversine(a, b)
	c.store.Set(key, d, cache.NoExpiration)
	return d
}

// Reset drops every memoized entry. Call between independent optimization
// runs that reuse the same cache instance.
func (c *DistanceCache) Reset() {
	c.store.Flush()
}

// Len reports the number of memoized pairs (test hook).
func (c *DistanceCache) Len() int {
	return c.store.ItemCount()
}
