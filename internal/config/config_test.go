package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.DefaultWeight)
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
	assert.Equal(t, 7*24*time.Hour, cfg.Cache.TTL.Duration)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
default_weight = 5

[cache]
backend = "redis"
ttl = "24h"

[cache.redis]
addr = "redis.internal:6380"
db = 2

[server]
addr = ":9090"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.DefaultWeight)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL.Duration)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[server]\naddr = \":7070\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 1, cfg.DefaultWeight)
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidTTL(t *testing.T) {
	path := writeConfig(t, "[cache]\nttl = \"soon\"\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestCacheDirExplicit(t *testing.T) {
	c := CacheConfig{Dir: "/tmp/custom"}

	dir, err := c.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom", dir)
}

func TestCacheDirXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := CacheConfig{}.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "edgewalk"), dir)
}

func TestOpenBackends(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := CacheConfig{Backend: BackendNone}.Open()
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = CacheConfig{Backend: BackendFile}.Open()
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = CacheConfig{Backend: "memcached"}.Open()
	assert.Error(t, err)
}
