package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

// LRUCache keeps the ranked view in process memory with a TTL
type LRUCache struct {
	lru *expirable.LRU[string, *cachedLeaderboard]
}

// NewLRUCache creates an in-process leaderboard cache
func NewLRUCache(size int, ttl time.Duration) service.LeaderboardCache {
	return &LRUCache{
		lru: expirable.NewLRU[string, *cachedLeaderboard](size, nil, ttl),
	}
}

func (c *LRUCache) Get(_ context.Context) ([]*entity.LeaderboardEntry, bool, error) {
	cached, found := c.lru.Get(allTimeKey)
	if !found {
		return nil, false, nil
	}
	if cached.Version != SchemaVersion {
		c.lru.Remove(allTimeKey)
		return nil, false, nil
	}
	return copyEntries(cached.Entries), true, nil
}

func (c *LRUCache) Set(_ context.Context, entries []*entity.LeaderboardEntry) error {
	c.lru.Add(allTimeKey, newCachedLeaderboard(entries))
	return nil
}

func (c *LRUCache) Invalidate(_ context.Context) error {
	c.lru.Remove(allTimeKey)
	return nil
}
