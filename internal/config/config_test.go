package config_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/devsession/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devsession.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testKey(fill byte) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat(string(fill), 32)))
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(config.NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "sessions", cfg.Namespace)
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "devsession:", cfg.Store.Redis.Prefix)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Metrics.Enabled)

	keys, err := cfg.Encryption.Keys()
	require.NoError(t, err)
	assert.Nil(t, keys)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
namespace: fleet
log_level: debug
log_format: json
store:
  backend: redis
  redis:
    addr: localhost:6379
    db: 2
    ttl: 90s
encryption:
  active_key: `+testKey('a')+`
  fallback_keys:
    - `+testKey('b')+`
`)

	cfg, err := config.Load(config.NewViper(path))
	require.NoError(t, err)

	assert.Equal(t, "fleet", cfg.Namespace)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, 90*time.Second, cfg.Store.Redis.TTL)

	keys, err := cfg.Encryption.Keys()
	require.NoError(t, err)
	require.NotNil(t, keys)
	assert.Len(t, keys.ActiveKey, 32)
	assert.Len(t, keys.FallbackKeys, 1)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: memory\n")
	t.Setenv("DEVSESSION_STORE_BACKEND", "file")
	t.Setenv("DEVSESSION_STORE_FILE_DIR", "/var/cache/devsession")

	cfg, err := config.Load(config.NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Store.Backend)
	assert.Equal(t, "/var/cache/devsession", cfg.Store.File.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown backend":    "store:\n  backend: memcached\n",
		"redis without addr": "store:\n  backend: redis\n",
		"short key":          "encryption:\n  active_key: " + base64.StdEncoding.EncodeToString([]byte("short")) + "\n",
		"bad base64":         "encryption:\n  active_key: '%%%'\n",
		"fallback only":      "encryption:\n  fallback_keys: [" + testKey('b') + "]\n",
		"bad log level":      "log_level: loud\n",
		"bad log format":     "log_format: xml\n",
		"negative capacity":  "store:\n  max_entries: -1\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.NewViper(writeConfig(t, body)))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := config.Load(config.NewViper(writeConfig(t, "store: [unclosed\n")))
	assert.Error(t, err)
}
