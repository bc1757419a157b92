package engine

import (
	"sync"
	"time"
)

// Clock abstracts wall time so tests can drive cache expiry
// deterministically.
type Clock func() time.Time

// PriorsFetcher loads platform-wide mean mastery per skill, typically an
// aggregate query against the event store.
type PriorsFetcher func() (map[string]float64, error)

// DefaultPriorsTTL bounds how stale the cross-user priors may get.
const DefaultPriorsTTL = 15 * time.Minute

// PriorsCache is a time-boxed in-process cache of cross-user mastery
// priors. Priors only seed cold-start defaults, so the cache tolerates
// being stale or absent: a failed refresh keeps serving the previous
// snapshot, and an empty cache simply reports no prior.
type PriorsCache struct {
	fetch PriorsFetcher
	ttl   time.Duration
	clock Clock

	mu        sync.RWMutex
	priors    map[string]float64
	fetchedAt time.Time
}

// NewPriorsCache builds a cache around fetch. A zero ttl uses the
// default; a nil clock uses wall time.
func NewPriorsCache(fetch PriorsFetcher, ttl time.Duration, clock Clock) *PriorsCache {
	if ttl <= 0 {
		ttl = DefaultPriorsTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &PriorsCache{fetch: fetch, ttl: ttl, clock: clock}
}

// Prior returns the platform-wide mastery prior for a skill, refreshing
// the snapshot when the TTL has lapsed.
func (c *PriorsCache) Prior(skillID string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	c.refreshIfStale()

	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.priors[skillID]
	return p, ok
}

// Mean returns the average prior across all skills, used to seed a
// whole-scale placement diagnostic.
func (c *PriorsCache) Mean() (float64, bool) {
	if c == nil {
		return 0, false
	}
	c.refreshIfStale()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.priors) == 0 {
		return 0, false
	}
	var sum float64
	for _, p := range c.priors {
		sum += p
	}
	return sum / float64(len(c.priors)), true
}

func (c *PriorsCache) refreshIfStale() {
	c.mu.RLock()
	fresh := c.priors != nil && c.clock().Sub(c.fetchedAt) < c.ttl
	c.mu.RUnlock()
	if fresh || c.fetch == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.priors != nil && c.clock().Sub(c.fetchedAt) < c.ttl {
		return
	}
	priors, err := c.fetch()
	if err != nil {
		// Keep serving the stale snapshot; callers fall back to
		// hardcoded defaults when no prior exists at all.
		c.fetchedAt = c.clock()
		return
	}
	c.priors = priors
	c.fetchedAt = c.clock()
}
