package relay

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/tarancss/selene/lib/store"
)

// NameCache maps account addresses to their display names. Entries are inserted once and never evicted. It is safe
// for concurrent use; lookups of unrelated addresses do not contend.
type NameCache struct {
	m *xsync.MapOf[string, string]
}

// NewNameCache returns an empty cache.
func NewNameCache() *NameCache {
	return &NameCache{m: xsync.NewMapOf[string, string]()}
}

// Get returns the name cached for address.
func (c *NameCache) Get(address string) (string, bool) {
	return c.m.Load(address)
}

// Resolve returns the name cached for address, computing it with lookup when absent. Concurrent callers missing the
// same address wait for a single lookup. loaded reports whether the name was already cached.
func (c *NameCache) Resolve(address string, lookup func() string) (name string, loaded bool) {
	return c.m.LoadOrCompute(address, lookup)
}

// Warm adds persisted names and returns how many were not cached yet.
func (c *NameCache) Warm(ns []store.Name) int {
	n := 0

	for _, v := range ns {
		if _, loaded := c.m.LoadOrStore(v.Address, v.Name); !loaded {
			n++
		}
	}

	return n
}

// Len returns the number of cached addresses.
func (c *NameCache) Len() int {
	return c.m.Size()
}
