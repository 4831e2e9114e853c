package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	DefaultAPIBaseURL  = "https://jabumarket.com.ng/api"
	DefaultStoragePath = "jabuspark.db"
)

// Config holds runtime settings for the Jabuspark client.
//
// Fields:
//   - APIBaseURL: root of the PHP endpoint collection.
//   - StoragePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request timeout; zero disables it.
//   - LogLevel, LogBackend: see logging.New.
type Config struct {
	APIBaseURL     string        `validate:"required,url,startswith=http"`
	StoragePath    string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gte=0"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	LogBackend     string        `validate:"oneof=slog zerolog"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.StoragePath = DefaultStoragePath
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by -c/-config,
// then the environment, then command-line flags. Later sources take
// precedence. args excludes the program name.
func Load(ctx context.Context, args []string, env envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, env); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
