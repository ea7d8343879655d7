package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "biibii:livedata:"

// KEYS: snapshot, zone index, invalidation stamp
// ARGV: payload, ttl ms, generated at ms
var setScript = redis.NewScript(`
local stamp = redis.call('GET', KEYS[3])
if stamp and tonumber(stamp) >= tonumber(ARGV[3]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
redis.call('SADD', KEYS[2], KEYS[1])
redis.call('PEXPIRE', KEYS[2], ARGV[2])
return 1
`)

// KEYS: zone index, invalidation stamp
// ARGV: now ms, ttl ms
var invalidateScript = redis.NewScript(`
redis.call('SET', KEYS[2], ARGV[1], 'PX', ARGV[2])
local keys = redis.call('SMEMBERS', KEYS[1])
for _, key in ipairs(keys) do
	redis.call('DEL', key)
end
redis.call('DEL', KEYS[1])
return #keys
`)

// RedisCache stores one key per (baby, time zone) so every snapshot expires on
// its own. A per-baby set indexes those keys for invalidation, and a per-baby
// stamp rejects snapshots built before the last invalidation.
// All keys of a baby share a hash tag so the scripts stay on one slot.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
	now    func() time.Time
}

// NewRedisCache wraps client. Entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger logger.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger, now: time.Now}
}

func (c *RedisCache) key(babyID, tz string) string {
	return keyPrefix + "{" + babyID + "}:" + tz
}

func (c *RedisCache) indexKey(babyID string) string {
	return keyPrefix + "{" + babyID + "}:zones"
}

func (c *RedisCache) stampKey(babyID string) string {
	return keyPrefix + "{" + babyID + "}:invalidated"
}

// Get returns the cached snapshot of babyID for tz
func (c *RedisCache) Get(ctx context.Context, babyID, tz string) (*livedata.Snapshot, bool, error) {
	data, err := c.client.Get(ctx, c.key(babyID, tz)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read live data from redis: %w", err)
	}

	var snapshot livedata.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// a stale encoding is treated as a miss and overwritten by the caller
		c.logger.Warn("dropping undecodable live data for baby ", babyID, ": ", err)
		return nil, false, nil
	}
	return &snapshot, true, nil
}

// Set stores snapshot under its own key unless the baby was invalidated after
// the snapshot was generated
func (c *RedisCache) Set(ctx context.Context, snapshot *livedata.Snapshot) error {
	if snapshot == nil || snapshot.Baby == nil {
		return nil
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode live data: %w", err)
	}

	babyID := snapshot.Baby.ID
	keys := []string{c.key(babyID, snapshot.TimeZone), c.indexKey(babyID), c.stampKey(babyID)}
	stored, err := setScript.Run(ctx, c.client, keys, data, c.ttl.Milliseconds(), snapshot.GeneratedAt.UnixMilli()).Int()
	if err != nil {
		return fmt.Errorf("failed to write live data to redis: %w", err)
	}
	if stored == 0 {
		c.logger.Debug("skipped caching live data for baby ", babyID, " generated before its last invalidation")
	}
	return nil
}

// Invalidate removes every cached snapshot of babyID
func (c *RedisCache) Invalidate(ctx context.Context, babyID string) error {
	keys := []string{c.indexKey(babyID), c.stampKey(babyID)}
	if err := invalidateScript.Run(ctx, c.client, keys, c.now().UnixMilli(), c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to invalidate live data in redis: %w", err)
	}
	return nil
}

// Close releases the redis connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}
