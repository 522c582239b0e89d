// Package cache keeps restaurants in Redis for cart pricing. Restaurants change
// rarely and every quote needs one, while products are always read from the store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "restaurant:"

// CachedCatalogReader decorates a ports.CatalogReader with a read-through cache of
// restaurants. Redis failures are logged and the call falls through to the store.
//
// Registration must not use it: the restaurant check there runs inside the
// write transaction.
type CachedCatalogReader struct {
	next   ports.CatalogReader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedCatalogReader(
	next ports.CatalogReader,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedCatalogReader {
	return &CachedCatalogReader{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "restaurant_cache"),
	}
}

func (c *CachedCatalogReader) key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// GetRestaurant returns the cached restaurant or loads and caches it. Missing
// restaurants are not cached.
func (c *CachedCatalogReader) GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error) {
	key := c.key(id)

	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var restaurant catalog.Restaurant
		if jsonErr := json.Unmarshal(payload, &restaurant); jsonErr == nil {
			return restaurant, nil
		}
		c.logger.WarnContext(ctx, "dropping unreadable cache entry", "key", key)
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.WarnContext(ctx, "cache delete failed", "key", key, "error", err)
		}
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	restaurant, err := c.next.GetRestaurant(ctx, id)
	if err != nil {
		return catalog.Restaurant{}, err
	}

	if payload, err := json.Marshal(restaurant); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
		}
	}
	return restaurant, nil
}

// GetProducts is never cached: prices must be current when quoting.
func (c *CachedCatalogReader) GetProducts(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	return c.next.GetProducts(ctx, ids)
}
