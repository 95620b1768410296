package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DEVSESSION_STORE_REDIS_ADDR.
const EnvPrefix = "DEVSESSION"

// NewViper returns a viper instance reading configFile (if set) or devsession.yaml from the
// working directory, with environment overrides and defaults applied.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("devsession")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	// Defaults double as key registrations so AutomaticEnv sees nested keys on Unmarshal.
	v.SetDefault("namespace", "sessions")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", LogFormatText)
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("store.max_entries", 0)
	v.SetDefault("store.redis.addr", "")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "devsession:")
	v.SetDefault("store.redis.ttl", "0s")
	v.SetDefault("store.file.dir", ".devsession/cache")
	v.SetDefault("encryption.active_key", "")
	v.SetDefault("encryption.fallback_keys", []string{})
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)
}

// Load reads the configuration. A missing default config file is not an error;
// defaults and environment variables apply.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
