package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BIIBII_DATABASE_DSN.
const EnvPrefix = "BIIBII"

// CORSSettings lists the origins allowed to call the API from a browser.
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1,dive,required"`
}

// MetricsSettings toggles the prometheus endpoint.
type MetricsSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// RestConfig is the full configuration of the REST server.
type RestConfig struct {
	Port          string           `mapstructure:"port" validate:"required,numeric"`
	Logger        LoggerSettings   `mapstructure:"logger"`
	Database      DatabaseSettings `mapstructure:"database"`
	LiveDataCache CacheSettings    `mapstructure:"live_data_cache"`
	CORS          CORSSettings     `mapstructure:"cors"`
	Metrics       MetricsSettings  `mapstructure:"metrics"`
}

// Validate checks the config and all nested settings
func (c *RestConfig) Validate() error {
	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.LiveDataCache.Validate(); err != nil {
		return err
	}
	if err := validator.New().Struct(&c.CORS); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}
	if err := validator.New().Struct(&c.Metrics); err != nil {
		return fmt.Errorf("validation failed for MetricsSettings: %w", err)
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path, applies BIIBII_* environment
// overrides and returns the validated configuration.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// every key needs a default so AutomaticEnv can see it during Unmarshal
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "biibii.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 0)
	v.SetDefault("database.max_idle_conns", 0)
	v.SetDefault("database.conn_max_lifetime", time.Duration(0))
	v.SetDefault("live_data_cache.type", CacheTypeMemory)
	v.SetDefault("live_data_cache.ttl", 5*time.Second)
	v.SetDefault("live_data_cache.redis_addr", "")
	v.SetDefault("live_data_cache.redis_password", "")
	v.SetDefault("live_data_cache.redis_db", 0)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	return v
}
