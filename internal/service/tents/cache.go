package tents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

const cacheKey = "tents:catalog"

// ErrCacheMiss в кеше нет каталога
var ErrCacheMiss = errors.New("tents.cache: miss")

// RedisCache кеш каталога шатров поверх redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache создает кеш каталога
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get читает каталог из кеша
func (c *RedisCache) Get(ctx context.Context) ([]domain.Tent, error) {
	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("tents.cache: Get - redis error: %w", err)
	}

	var catalog []domain.Tent
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("tents.cache: Get - unmarshal error: %w", err)
	}
	return catalog, nil
}

// Set сохраняет каталог в кеш с TTL
func (c *RedisCache) Set(ctx context.Context, tents []domain.Tent, ttl time.Duration) error {
	raw, err := json.Marshal(tents)
	if err != nil {
		return fmt.Errorf("tents.cache: Set - marshal error: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("tents.cache: Set - redis error: %w", err)
	}
	return nil
}
