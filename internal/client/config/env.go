package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig is a DTO for environment variables. Empty values leave the
// corresponding Config field untouched.
type envConfig struct {
	APIBaseURL     string        `env:"JABUSPARK_API_BASE_URL"`
	APIBase        string        `env:"JABUSPARK_API_BASE"`
	StoragePath    string        `env:"JABUSPARK_STORAGE_PATH"`
	LogLevel       string        `env:"JABUSPARK_LOG_LEVEL"`
	LogBackend     string        `env:"JABUSPARK_LOG_BACKEND"`
	RequestTimeout time.Duration `env:"JABUSPARK_REQUEST_TIMEOUT"`
}

const requestTimeoutEnv = "JABUSPARK_REQUEST_TIMEOUT"

// parseEnv overlays cfg with environment variables. JABUSPARK_API_BASE_URL
// wins over its alias JABUSPARK_API_BASE. A set JABUSPARK_REQUEST_TIMEOUT
// applies even when it is "0s". A nil env reads the process environment.
func parseEnv(ctx context.Context, cfg *Config, env envconfig.Lookuper) error {
	if env == nil {
		env = envconfig.OsLookuper()
	}

	var ec envConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &ec, Lookuper: env}); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	switch {
	case ec.APIBaseURL != "":
		cfg.APIBaseURL = ec.APIBaseURL
	case ec.APIBase != "":
		cfg.APIBaseURL = ec.APIBase
	}
	if ec.StoragePath != "" {
		cfg.StoragePath = ec.StoragePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogBackend != "" {
		cfg.LogBackend = ec.LogBackend
	}
	if v, ok := env.Lookup(requestTimeoutEnv); ok && v != "" {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	return nil
}
