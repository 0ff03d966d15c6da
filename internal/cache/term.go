// Package cache holds process-wide caches shared across requests.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/swsgraph/internal/config"
	"github.com/heartmarshall/swsgraph/internal/domain"
)

// TermCache keeps SWS terms between requests. Terms change rarely, but the
// identity of "current" moves, so it gets a shorter TTL. Entries are scoped
// to the impersonated identity because SWS may answer differently per caller.
type TermCache struct {
	c          *gocache.Cache
	termTTL    time.Duration
	currentTTL time.Duration
}

// NewTermCache creates a TermCache. A non-positive TTL disables caching of
// that class of term. With a zero CleanupInterval expired entries are only
// dropped on access and no janitor goroutine is started.
func NewTermCache(cfg config.CacheConfig) *TermCache {
	return &TermCache{
		c:          gocache.New(gocache.NoExpiration, cfg.CleanupInterval),
		termTTL:    cfg.TermTTL,
		currentTTL: cfg.CurrentTermTTL,
	}
}

// Get returns the cached term for key as seen by actAs.
func (tc *TermCache) Get(actAs string, key domain.TermKey) (*domain.Term, bool) {
	v, ok := tc.c.Get(cacheKey(actAs, key))
	if !ok {
		return nil, false
	}
	t, ok := v.(*domain.Term)
	return t, ok && t != nil
}

// Set stores t under key. A current-term lookup is also stored under the
// term's own year and quarter.
func (tc *TermCache) Set(actAs string, key domain.TermKey, t *domain.Term) {
	if t == nil {
		return
	}
	if key.IsCurrent() {
		if tc.currentTTL > 0 {
			tc.c.Set(cacheKey(actAs, key), t, tc.currentTTL)
		}
		key = t.Key()
		if key.IsCurrent() {
			return
		}
	}
	if tc.termTTL > 0 {
		tc.c.Set(cacheKey(actAs, key), t, tc.termTTL)
	}
}

// Len reports the number of cached entries, including expired ones not yet
// cleaned up.
func (tc *TermCache) Len() int {
	return tc.c.ItemCount()
}

// Flush drops every entry.
func (tc *TermCache) Flush() {
	tc.c.Flush()
}

func cacheKey(actAs string, key domain.TermKey) string {
	return actAs + "|" + key.String()
}
