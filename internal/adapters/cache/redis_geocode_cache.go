package cache

import (
	"context"
	"errors"
	"fmt"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisGeocodePrefix = "geocode:"

// RedisGeocodeCache stores lookup key -> "lat,lng" strings in Redis.
// A zero TTL keeps entries until evicted.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached coordinates for the given lookup keys with a single MGET.
func (s *RedisGeocodeCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.redis.GetMany")(&err)

	if s.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	redisKeys := make([]string, 0, len(uniq))
	for _, k := range uniq {
		redisKeys = append(redisKeys, redisGeocodePrefix+k)
	}

	vals, err := s.Client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(uniq))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		c, err := decodeCoordinates(raw)
		if err != nil {
			return nil, fmt.Errorf("get geocode cache key=%q: %w", uniq[i], err)
		}
		out[uniq[i]] = c
	}

	return out, nil
}

// Store lookup key -> coordinate mappings in one pipeline.
func (s *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.redis.PutMany")(&err)

	if s.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := s.Client.TxPipeline()
	for key, c := range results {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert geocode cache: empty lookup key")
		}
		if !c.Valid() {
			return fmt.Errorf("insert geocode cache key=%q: invalid coordinates %v", key, c)
		}
		pipe.Set(ctx, redisGeocodePrefix+key, encodeCoordinates(c), s.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis exec: %w", err)
	}

	return nil
}

func encodeCoordinates(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

func decodeCoordinates(raw string) (domain.Coordinates, error) {
	latStr, lngStr, ok := strings.Cut(raw, ",")
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("malformed cached coordinates %q", raw)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed cached latitude %q: %w", latStr, err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed cached longitude %q: %w", lngStr, err)
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}
