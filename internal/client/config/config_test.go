package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv() envconfig.Lookuper { return envconfig.MapLookuper(map[string]string{}) }

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://jabumarket.com.ng/api", c.APIBaseURL)
	assert.Equal(t, "jabuspark.db", c.StoragePath)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	require.NoError(t, c.Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load(context.Background(), nil, noEnv())
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "https://json.example/api",
		"storage_path":    "/tmp/json.db",
		"request_timeout": "5s",
		"log_level":       "debug",
	})
	env := envconfig.MapLookuper(map[string]string{
		"JABUSPARK_API_BASE_URL": "https://env.example/api",
		"JABUSPARK_LOG_LEVEL":    "warn",
	})
	args := []string{"-c", path, "-l", "error"}

	cfg, err := Load(context.Background(), args, env)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example/api", cfg.APIBaseURL, "env beats json")
	assert.Equal(t, "/tmp/json.db", cfg.StoragePath, "json beats defaults")
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "error", cfg.LogLevel, "flags beat env")
	assert.Equal(t, "slog", cfg.LogBackend)
}

func TestLoad_Invalid(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, []string{"-a", "not a url"}, noEnv())
	require.Error(t, err)

	_, err = Load(ctx, nil, envconfig.MapLookuper(map[string]string{"JABUSPARK_LOG_BACKEND": "logrus"}))
	require.Error(t, err)

	_, err = Load(ctx, []string{"-t", "abc"}, noEnv())
	require.Error(t, err)

	_, err = Load(ctx, []string{"-c", "/does/not/exist.json"}, noEnv())
	require.Error(t, err)
}
