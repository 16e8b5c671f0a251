package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

const (
	cacheKeyPrefix  = "geocode:"
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Cache stores resolved locations by cache key.
type Cache interface {
	Get(ctx context.Context, key string) (Location, bool, error)
	Set(ctx context.Context, key string, loc Location) error
}

// RedisCache keeps resolved locations in redis as JSON.
type RedisCache struct {
	rc  *redis.Client
	ttl time.Duration
}

func NewRedisCache(rc *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{rc: rc, ttl: ttl}
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rc := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rc.Ping(ctx).Err(); err != nil {
		rc.Close()
		return nil, eris.Wrapf(err, "geocoder: ping redis %s", addr)
	}
	return rc, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (Location, bool, error) {
	s, err := c.rc.Get(ctx, cacheKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return Location{}, false, nil
	}
	if err != nil {
		return Location{}, false, eris.Wrap(err, "geocoder: redis get")
	}
	var loc Location
	if err := json.Unmarshal([]byte(s), &loc); err != nil {
		return Location{}, false, eris.Wrap(err, "geocoder: decode cached location")
	}
	return loc, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, loc Location) error {
	b, err := json.Marshal(loc)
	if err != nil {
		return eris.Wrap(err, "geocoder: encode location")
	}
	if err := c.rc.Set(ctx, cacheKeyPrefix+key, string(b), c.ttl).Err(); err != nil {
		return eris.Wrap(err, "geocoder: redis set")
	}
	return nil
}

// MemoryCache is an in-process Cache without expiry.
type MemoryCache struct {
	mu   sync.RWMutex
	locs map[string]Location
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{locs: make(map[string]Location)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (Location, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	loc, ok := c.locs[key]
	return loc, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, loc Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locs[key] = loc
	return nil
}
