package cache

import (
	"context"
	"fmt"

	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/pkg/config"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// NewLiveDataCache builds the cache selected by settings. It returns a nil
// cache for type none, which disables caching.
func NewLiveDataCache(ctx context.Context, settings *config.CacheSettings, logger logger.Logger) (livedata.Cache, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.CacheTypeNone:
		logger.Info("Live data caching disabled")
		return nil, nil
	case config.CacheTypeMemory:
		logger.Info("Using in-memory live data cache with ttl ", settings.TTL)
		return NewMemoryCache(settings.TTL), nil
	case config.CacheTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.RedisAddr, err)
		}
		logger.Info("Using redis live data cache at ", settings.RedisAddr, " with ttl ", settings.TTL)
		return NewRedisCache(client, settings.TTL, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}
