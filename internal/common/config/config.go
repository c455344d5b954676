// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Export  ExportConfig  `mapstructure:"export"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig holds settings for the Cashworxs backend API.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// SessionConfig holds settings for the persisted credential store.
type SessionConfig struct {
	Dir      string `mapstructure:"dir"`
	TokenTTL int    `mapstructure:"token_ttl"` // hours
}

// CacheConfig holds settings for the reference-data cache.
type CacheConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
	TTL   int         `mapstructure:"ttl"` // seconds
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds the optional Prometheus listener settings.
type MetricsConfig struct {
	Address string `mapstructure:"address"` // empty disables the listener
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	Dir        string `mapstructure:"dir"`
	DateFormat string `mapstructure:"date_format"`
}

// Validate checks that a redis config is usable when enabled.
func (r RedisConfig) Validate() error {
	if r.Enabled && r.Address == "" {
		return fmt.Errorf("cache.redis.address is required when cache.redis.enabled is true")
	}
	return nil
}
