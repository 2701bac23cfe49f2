package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/jwebster45206/room-finder/pkg/route"
)

// RouteCache stores computed routes for one building in a Cache. Failures
// are logged and reported as misses; they never fail a request.
type RouteCache struct {
	cache    Cache
	building string
	ttl      time.Duration
	logger   *slog.Logger
}

// NewRouteCache returns a route cache scoped to the named building.
func NewRouteCache(cache Cache, building string, ttl time.Duration, logger *slog.Logger) *RouteCache {
	return &RouteCache{
		cache:    cache,
		building: buildingKey(building),
		ttl:      ttl,
		logger:   logger,
	}
}

// Key returns the cache key of the route between two rooms.
func (c *RouteCache) Key(from, to string) string {
	return "route:" + c.building + ":" + from + ":" + to
}

// Get returns the cached route between two rooms, if present.
func (c *RouteCache) Get(ctx context.Context, from, to string) (*route.Result, bool) {
	key := c.Key(from, to)
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Route cache read failed", "key", key, "error", err)
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var res route.Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		c.logger.Warn("Discarding unreadable cached route", "key", key, "error", err)
		if err := c.cache.Del(ctx, key); err != nil {
			c.logger.Warn("Failed to delete cached route", "key", key, "error", err)
		}
		return nil, false
	}
	return &res, true
}

// Put stores a route between two rooms.
func (c *RouteCache) Put(ctx context.Context, from, to string, res *route.Result) {
	key := c.Key(from, to)
	data, err := json.Marshal(res)
	if err != nil {
		c.logger.Error("Failed to marshal route for cache", "key", key, "error", err)
		return
	}
	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		c.logger.Warn("Route cache write failed", "key", key, "error", err)
	}
}

// Ping checks the underlying cache.
func (c *RouteCache) Ping(ctx context.Context) error {
	return c.cache.Ping(ctx)
}

func buildingKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "default"
	}
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == ':' || r == '/'
	}), "-")
}
