// README: Cache decorator tests (key shape; Redis-backed round trip is env-gated).
package search

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestCacheKey(t *testing.T) {
	cases := []struct {
		kind, dest string
		days       int
		want       string
	}{
		{"flights", "Paris, France", 10, "search:flights:paris, france:10"},
		{"hotels", "  Tokyo  ", 7, "search:hotels:tokyo:7"},
	}
	for _, tc := range cases {
		if got := cacheKey(tc.kind, tc.dest, tc.days); got != tc.want {
			t.Errorf("cacheKey(%s, %q, %d) = %q, want %q", tc.kind, tc.dest, tc.days, got, tc.want)
		}
	}
}

// TestCachedSourcesRoundTrip exercises a real Redis when TRIP_TEST_REDIS is
// set; the second call must be served from the cache.
func TestCachedSourcesRoundTrip(t *testing.T) {
	addr := os.Getenv("TRIP_TEST_REDIS")
	if addr == "" {
		t.Skip("TRIP_TEST_REDIS not set; skipping Redis-backed cache tests")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })

	ctx := context.Background()
	if err := rdb.Del(ctx, cacheKey("flights", "Paris, France", 10)).Err(); err != nil {
		t.Fatalf("cleanup key: %v", err)
	}

	counting := &countingFlights{inner: NewCatalog()}
	cached := NewCachedSources(counting, NewCatalog(), NewCatalog(), rdb, time.Minute)

	first, err := cached.SearchFlights(ctx, "Paris, France", 10)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := cached.SearchFlights(ctx, "Paris, France", 10)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}

	if counting.calls != 1 {
		t.Errorf("inner source called %d times, want 1 (second call should hit the cache)", counting.calls)
	}
	if len(first) != len(second) {
		t.Errorf("cached result differs: %d vs %d flights", len(first), len(second))
	}
}

type countingFlights struct {
	inner FlightSource
	calls int
}

func (c *countingFlights) SearchFlights(ctx context.Context, destination string, durationDays int) ([]Flight, error) {
	c.calls++
	return c.inner.SearchFlights(ctx, destination, durationDays)
}
