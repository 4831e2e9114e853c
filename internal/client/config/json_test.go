package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_base_url":    "https://www.example/api",
		"storage_path":    "/data/js.db",
		"request_timeout": "10s",
		"log_level":       "debug",
		"log_backend":     "zerolog",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"request_timeout": 2000000000,
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-config", full}))

		assert.Equal(t, Config{
			APIBaseURL:     "https://www.example/api",
			StoragePath:    "/data/js.db",
			RequestTimeout: 10 * time.Second,
			LogLevel:       "debug",
			LogBackend:     "zerolog",
		}, *cfg)
	})

	t.Run("absent keys keep values", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "https://keep/api", LogLevel: "info"}
		require.NoError(t, parseJSON(cfg, []string{"-c", partial}))

		assert.Equal(t, "https://keep/api", cfg.APIBaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "https://defaults/api", RequestTimeout: 42 * time.Second}
		require.NoError(t, parseJSON(cfg, []string{"-a", "x"}))

		assert.Equal(t, "https://defaults/api", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJSON(&Config{}, []string{"-config", bad}))
	})
}
