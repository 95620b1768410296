// Package config loads the service configuration from a YAML file and the environment.
package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aretw0/devsession/internal/logging"
	"github.com/aretw0/devsession/pkg/persistence/middleware"
)

// Supported store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendFile   = "file"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the top-level configuration.
type Config struct {
	Namespace  string           `mapstructure:"namespace" yaml:"namespace"`
	LogLevel   string           `mapstructure:"log_level" yaml:"log_level"`
	LogFormat  string           `mapstructure:"log_format" yaml:"log_format"`
	Store      StoreConfig      `mapstructure:"store" yaml:"store"`
	Encryption EncryptionConfig `mapstructure:"encryption" yaml:"encryption"`
	HTTP       HTTPConfig       `mapstructure:"http" yaml:"http"`
	Metrics    MetricsConfig    `mapstructure:"metrics" yaml:"metrics"`
}

// StoreConfig selects and tunes the backing store.
type StoreConfig struct {
	Backend    string      `mapstructure:"backend" yaml:"backend"`
	MaxEntries int         `mapstructure:"max_entries" yaml:"max_entries"`
	Redis      RedisConfig `mapstructure:"redis" yaml:"redis"`
	File       FileConfig  `mapstructure:"file" yaml:"file"`
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// FileConfig configures the filesystem backend.
type FileConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// EncryptionConfig holds base64-encoded AES-256 keys. Encryption is off when ActiveKey is empty.
type EncryptionConfig struct {
	ActiveKey    string   `mapstructure:"active_key" yaml:"active_key"`
	FallbackKeys []string `mapstructure:"fallback_keys" yaml:"fallback_keys"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// MetricsConfig toggles Prometheus instrumentation.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}

	switch c.Store.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q (want memory, redis or file)", c.Store.Backend)
	}

	if c.Store.MaxEntries < 0 {
		return fmt.Errorf("store.max_entries must not be negative")
	}
	if c.Store.Redis.TTL < 0 {
		return fmt.Errorf("store.redis.ttl must not be negative")
	}

	if _, err := c.Encryption.Keys(); err != nil {
		return err
	}
	return nil
}

// Keys decodes the configured keys. It returns nil when encryption is disabled.
func (e EncryptionConfig) Keys() (*middleware.EncryptionConfig, error) {
	if e.ActiveKey == "" {
		if len(e.FallbackKeys) > 0 {
			return nil, fmt.Errorf("encryption.fallback_keys set without encryption.active_key")
		}
		return nil, nil
	}

	active, err := decodeKey("encryption.active_key", e.ActiveKey)
	if err != nil {
		return nil, err
	}
	out := &middleware.EncryptionConfig{ActiveKey: active}
	for i, k := range e.FallbackKeys {
		key, err := decodeKey(fmt.Sprintf("encryption.fallback_keys[%d]", i), k)
		if err != nil {
			return nil, err
		}
		out.FallbackKeys = append(out.FallbackKeys, key)
	}
	return out, nil
}

func decodeKey(field, s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid base64: %w", field, err)
	}
	if len(key) != middleware.KeySize {
		return nil, fmt.Errorf("%s must decode to %d bytes, got %d", field, middleware.KeySize, len(key))
	}
	return key, nil
}
