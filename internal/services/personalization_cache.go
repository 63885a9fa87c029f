package services

import (
	"context"
	"sync"
	"time"

	"github.com/quannhg/graduation-invitation/internal/models"
)

// Personalizer resolves an inviter token to personalized copy.
type Personalizer interface {
	Lookup(ctx context.Context, inviter string) (*models.Personalization, error)
}

type cacheEntry struct {
	value     *models.Personalization
	expiresAt time.Time
}

// CachedPersonalizer keeps successful lookups for a TTL. Failures are not
// cached so a flaky endpoint does not pin the default page.
type CachedPersonalizer struct {
	next Personalizer
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCachedPersonalizer(next Personalizer, ttl time.Duration) *CachedPersonalizer {
	return &CachedPersonalizer{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedPersonalizer) Lookup(ctx context.Context, inviter string) (*models.Personalization, error) {
	if c.ttl <= 0 {
		return c.next.Lookup(ctx, inviter)
	}

	c.mu.Lock()
	entry, ok := c.entries[inviter]
	c.mu.Unlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	res, err := c.next.Lookup(ctx, inviter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[inviter] = cacheEntry{value: res, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return res, nil
}

// Purge drops expired entries and returns how many were removed.
func (c *CachedPersonalizer) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

func (c *CachedPersonalizer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
