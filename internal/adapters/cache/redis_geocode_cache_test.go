package cache

import (
	"context"
	"midpoint-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisGeocodeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client, ttl), mr
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t, 0)
	ctx := context.Background()

	in := map[string]domain.Coordinates{
		"address:boston, ma": {Lat: 42.3601, Lng: -71.0589},
		"place_id:abc":       {Lat: -33.8688, Lng: 151.2093},
	}
	if err := c.PutMany(ctx, in); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"address:boston, ma", "place_id:abc", "place_id:missing", "place_id:abc", " "})
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d: %v", len(got), got)
	}
	for k, want := range in {
		if got[k] != want {
			t.Errorf("%s = %+v, want %+v", k, got[k], want)
		}
	}
}

func TestRedisGeocodeCacheTTL(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	if err := c.PutMany(ctx, map[string]domain.Coordinates{"place_id:x": {Lat: 1, Lng: 2}}); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	if ttl := mr.TTL(redisGeocodePrefix + "place_id:x"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}

	mr.FastForward(2 * time.Hour)

	got, err := c.GetMany(ctx, []string{"place_id:x"})
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected expired entry, got %v", got)
	}
}

func TestRedisGeocodeCacheRejectsInvalid(t *testing.T) {
	c, _ := newTestRedisCache(t, 0)

	err := c.PutMany(context.Background(), map[string]domain.Coordinates{"k": {Lat: 91, Lng: 0}})
	if err == nil {
		t.Fatalf("expected error for out-of-range latitude")
	}
}

func TestRedisGeocodeCacheMalformedValue(t *testing.T) {
	c, mr := newTestRedisCache(t, 0)
	mr.Set(redisGeocodePrefix+"k", "not-a-pair")

	if _, err := c.GetMany(context.Background(), []string{"k"}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestUniqueKeys(t *testing.T) {
	got := uniqueKeys([]string{" a ", "b", "a", "", "c"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
