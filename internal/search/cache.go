// README: Redis-backed caching decorator for search sources.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedSources wraps flight/hotel/activity sources and caches their results
// in Redis with a TTL. Cache failures are logged and treated as misses so a
// down Redis never breaks a search.
type CachedSources struct {
	flights    FlightSource
	hotels     HotelSource
	activities ActivitySource
	redis      *redis.Client
	ttl        time.Duration
}

func NewCachedSources(flights FlightSource, hotels HotelSource, activities ActivitySource, rdb *redis.Client, ttl time.Duration) *CachedSources {
	return &CachedSources{
		flights:    flights,
		hotels:     hotels,
		activities: activities,
		redis:      rdb,
		ttl:        ttl,
	}
}

func (c *CachedSources) SearchFlights(ctx context.Context, destination string, durationDays int) ([]Flight, error) {
	key := cacheKey("flights", destination, durationDays)
	var cached []Flight
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}
	results, err := c.flights.SearchFlights(ctx, destination, durationDays)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, results)
	return results, nil
}

func (c *CachedSources) SearchHotels(ctx context.Context, destination string, durationDays int) ([]Hotel, error) {
	key := cacheKey("hotels", destination, durationDays)
	var cached []Hotel
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}
	results, err := c.hotels.SearchHotels(ctx, destination, durationDays)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, results)
	return results, nil
}

func (c *CachedSources) SearchActivities(ctx context.Context, destination string, durationDays int) ([]Activity, error) {
	key := cacheKey("activities", destination, durationDays)
	var cached []Activity
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}
	results, err := c.activities.SearchActivities(ctx, destination, durationDays)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, results)
	return results, nil
}

// lookup reports whether key was present and unmarshalled into dst.
func (c *CachedSources) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := c.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("search cache get %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("search cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedSources) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("search cache encode %s: %v", key, err)
		return
	}
	if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("search cache set %s: %v", key, err)
	}
}

func cacheKey(kind, destination string, durationDays int) string {
	return fmt.Sprintf("search:%s:%s:%d", kind, strings.ToLower(strings.TrimSpace(destination)), durationDays)
}
