package repository

import (
	"github.com/jellydator/ttlcache/v3"
)

// newCache builds a capacity-bounded TTL cache. Reads touch entries, so both
// expiry and capacity eviction hit the least recently used entry first.
func newCache[V any](s settings) *ttlcache.Cache[string, V] {
	return ttlcache.New[string, V](
		ttlcache.WithTTL[string, V](s.ttl),
		ttlcache.WithCapacity[string, V](uint64(s.capacity)),
	)
}

// live unwraps item when it is present and has not expired.
func live[V any](item *ttlcache.Item[string, V]) (V, bool) {
	var zero V
	if item == nil || item.IsExpired() {
		return zero, false
	}
	return item.Value(), true
}
