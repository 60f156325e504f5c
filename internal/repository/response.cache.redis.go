package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/remote-image-loader/internal/domain"
	"github.com/joshuarp/remote-image-loader/internal/shared/hash"
)

const TierRedis = "redis"

// Entries live in a hash per key; a sorted set scored by last access time and
// a byte counter let the put script evict in recency order atomically.
var (
	redisGetScript = redis.NewScript(`
local data = redis.call('HMGET', KEYS[1], 'url', 'body', 'stored_at')
if not data[1] then
	return false
end
redis.call('ZADD', KEYS[2], ARGV[1], ARGV[2])
return data
`)

	redisPutScript = redis.NewScript(`
local entryKey = KEYS[1]
local lruKey = KEYS[2]
local bytesKey = KEYS[3]
local member = ARGV[1]
local size = tonumber(ARGV[5])
local budget = tonumber(ARGV[6])
local now = tonumber(ARGV[7])
local prefix = ARGV[8]

local previous = tonumber(redis.call('HGET', entryKey, 'size'))
if previous then
	redis.call('DECRBY', bytesKey, previous)
	redis.call('DEL', entryKey)
	redis.call('ZREM', lruKey, member)
end

if size > budget then
	return {0, 0}
end

redis.call('HSET', entryKey, 'url', ARGV[2], 'body', ARGV[3], 'stored_at', ARGV[4], 'size', size)
redis.call('ZADD', lruKey, now, member)
local total = redis.call('INCRBY', bytesKey, size)

local evicted = 0
while total > budget do
	local oldest = redis.call('ZRANGE', lruKey, 0, 0)
	if not oldest[1] or oldest[1] == member then
		break
	end
	local victim = prefix .. ':entry:' .. oldest[1]
	local victimSize = tonumber(redis.call('HGET', victim, 'size')) or 0
	redis.call('DEL', victim)
	redis.call('ZREM', lruKey, oldest[1])
	total = redis.call('DECRBY', bytesKey, victimSize)
	evicted = evicted + 1
end

return {1, evicted}
`)

	redisRemoveScript = redis.NewScript(`
local size = tonumber(redis.call('HGET', KEYS[1], 'size'))
if size then
	redis.call('DECRBY', KEYS[3], size)
end
redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return 1
`)
)

// RedisCache is a persistent tier stored in Redis with its own byte budget.
type RedisCache struct {
	client *redis.Client
	keyer  hash.Keyer
	prefix string
	budget int64
	now    func() time.Time
}

// RedisCacheOption configures the Redis tier.
type RedisCacheOption func(*RedisCache)

// WithRedisCachePrefix sets a prefix for all Redis keys.
func WithRedisCachePrefix(prefix string) RedisCacheOption {
	return func(c *RedisCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// NewRedisCache creates a Redis tier holding at most budget body bytes.
func NewRedisCache(client *redis.Client, keyer hash.Keyer, budget int64, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client: client,
		keyer:  keyer,
		prefix: "remote-image-loader:cache",
		budget: budget,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RedisCache) Name() string {
	return TierRedis
}

func (c *RedisCache) keys(member string) []string {
	return []string{
		c.prefix + ":entry:" + member,
		c.prefix + ":lru",
		c.prefix + ":bytes",
	}
}

func (c *RedisCache) Get(ctx context.Context, url string) (domain.CacheEntry, bool, error) {
	if c == nil || c.client == nil {
		return domain.CacheEntry{}, false, errors.New("repository: redis cache is not initialized")
	}

	member := c.keyer.Key(url)
	keys := c.keys(member)

	result, err := redisGetScript.Run(ctx, c.client, keys[:2], c.now().UnixMilli(), member).Slice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.CacheEntry{}, false, nil
		}
		return domain.CacheEntry{}, false, fmt.Errorf("repository: redis cache get failed: %w", err)
	}

	if len(result) != 3 {
		return domain.CacheEntry{}, false, fmt.Errorf("repository: redis cache get returned %d fields", len(result))
	}

	storedURL, _ := result[0].(string)
	if storedURL != url {
		return domain.CacheEntry{}, false, nil
	}

	body, _ := result[1].(string)
	storedAtRaw, _ := result[2].(string)
	storedAtNanos, _ := strconv.ParseInt(storedAtRaw, 10, 64)

	return domain.CacheEntry{
		URL:      storedURL,
		Body:     []byte(body),
		StoredAt: time.Unix(0, storedAtNanos).UTC(),
	}, true, nil
}

func (c *RedisCache) Put(ctx context.Context, entry domain.CacheEntry) (int, error) {
	if c == nil || c.client == nil {
		return 0, errors.New("repository: redis cache is not initialized")
	}

	member := c.keyer.Key(entry.URL)

	result, err := redisPutScript.Run(ctx, c.client, c.keys(member),
		member,
		entry.URL,
		entry.Body,
		entry.StoredAt.UnixNano(),
		entry.Size(),
		c.budget,
		c.now().UnixMilli(),
		c.prefix,
	).Int64Slice()
	if err != nil {
		return 0, fmt.Errorf("repository: redis cache put failed: %w", err)
	}

	if len(result) != 2 {
		return 0, fmt.Errorf("repository: redis cache put returned %d fields", len(result))
	}

	return int(result[1]), nil
}

func (c *RedisCache) Remove(ctx context.Context, url string) error {
	if c == nil || c.client == nil {
		return errors.New("repository: redis cache is not initialized")
	}

	member := c.keyer.Key(url)
	if err := redisRemoveScript.Run(ctx, c.client, c.keys(member), member).Err(); err != nil {
		return fmt.Errorf("repository: redis cache remove failed: %w", err)
	}
	return nil
}
