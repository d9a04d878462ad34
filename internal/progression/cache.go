package progression

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// cachedStateEntry wraps a state with version metadata for cache invalidation
type cachedStateEntry struct {
	Version  string                   `json:"version"`
	State    *domain.ProgressionState `json:"state"`
	CachedAt time.Time                `json:"cached_at"`
}

// stateCache provides an in-memory LRU cache for progression reads
// with time-based expiration and version-based invalidation.
// Entries are cloned on the way in and out so callers never share maps.
type stateCache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *cachedStateEntry]
}

// newStateCache creates a cache holding at most size states for ttl each
func newStateCache(size int, ttl time.Duration) *stateCache {
	return &stateCache{
		lru: expirable.NewLRU[string, *cachedStateEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached state.
// Entries written under another schema version are dropped.
func (c *stateCache) Get(userID string) (*domain.ProgressionState, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}

	return entry.State.Clone(), true
}

// Set stores a copy of state under the current schema version.
// A state older than the cached one is ignored.
func (c *stateCache) Set(state *domain.ProgressionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.lru.Peek(state.UserID); ok && cur.Version == CacheSchemaVersion && cur.State.Version > state.Version {
		return
	}
	c.lru.Add(state.UserID, &cachedStateEntry{
		Version:  CacheSchemaVersion,
		State:    state.Clone(),
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user's state from the cache
func (c *stateCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Clear removes all entries from the cache
func (c *stateCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached states
func (c *stateCache) Len() int {
	return c.lru.Len()
}
