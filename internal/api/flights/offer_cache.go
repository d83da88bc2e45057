package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

const offerKeyPrefix = "flights:offers:"

// OfferCache keeps recent live search results so repeated plans for the same
// route do not hit the provider again.
type OfferCache interface {
	Get(ctx context.Context, key string) ([]types.FlightOption, bool)
	Set(ctx context.Context, key string, offers []types.FlightOption)
}

// OfferKey builds the cache key for a search.
func OfferKey(origin, destination, departureDate string, travelers int) string {
	return fmt.Sprintf("%s%s:%s:%s:%d", offerKeyPrefix, origin, destination, departureDate, travelers)
}

// MemoryOfferCache is an in-process cache.
type MemoryOfferCache struct {
	cache *cache.Cache
}

func NewMemoryOfferCache(ttl time.Duration) *MemoryOfferCache {
	return &MemoryOfferCache{cache: cache.New(ttl, 2*ttl)}
}

func (m *MemoryOfferCache) Get(_ context.Context, key string) ([]types.FlightOption, bool) {
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false
	}
	offers, ok := v.([]types.FlightOption)
	return offers, ok
}

func (m *MemoryOfferCache) Set(_ context.Context, key string, offers []types.FlightOption) {
	m.cache.Set(key, offers, cache.DefaultExpiration)
}

// RedisOfferCache shares cached offers between instances.
// Failures are logged and treated as misses.
type RedisOfferCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisOfferCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisOfferCache {
	return &RedisOfferCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisOfferCache) Get(ctx context.Context, key string) ([]types.FlightOption, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Offer cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	var offers []types.FlightOption
	if err := json.Unmarshal(raw, &offers); err != nil {
		c.logger.WarnContext(ctx, "Offer cache entry is corrupt", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return offers, true
}

func (c *RedisOfferCache) Set(ctx context.Context, key string, offers []types.FlightOption) {
	raw, err := json.Marshal(offers)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode offers for cache", slog.Any("error", err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Offer cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
