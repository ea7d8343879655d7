package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Live data cache backends
const (
	CacheTypeNone   = "none"
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// CacheSettings configures where live data snapshots are cached and for how long.
type CacheSettings struct {
	Type          string        `mapstructure:"type" validate:"required,oneof=none memory redis"`
	TTL           time.Duration `mapstructure:"ttl" validate:"gte=0"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"gte=0,lte=15"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}
	if s.Type == CacheTypeRedis && s.RedisAddr == "" {
		return fmt.Errorf("redis address is required for redis cache")
	}
	if s.Type != CacheTypeNone && s.TTL <= 0 {
		return fmt.Errorf("ttl must be positive for %s cache", s.Type)
	}
	return nil
}
