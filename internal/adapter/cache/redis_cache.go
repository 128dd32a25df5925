package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

// RedisCache keeps the ranked view in Redis so replicas share it
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed leaderboard cache. prefix namespaces
// the key.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) service.LeaderboardCache {
	return &RedisCache{
		client: client,
		key:    prefix + ":" + allTimeKey,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context) ([]*entity.LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var cached cachedLeaderboard
	if err := json.Unmarshal(raw, &cached); err != nil || cached.Version != SchemaVersion {
		_ = c.client.Del(ctx, c.key).Err()
		return nil, false, nil
	}
	return cached.Entries, true, nil
}

func (c *RedisCache) Set(ctx context.Context, entries []*entity.LeaderboardEntry) error {
	raw, err := json.Marshal(newCachedLeaderboard(entries))
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
