package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jabuspark/internal/flagx"
	"github.com/dmitrijs2005/jabuspark/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration, so "30s" and integer nanoseconds are both accepted. Absent
// keys leave the runtime Config untouched.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	StoragePath    string          `json:"storage_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogBackend     string          `json:"log_backend"`
}

// parseJSON overlays cfg with the file named by -c or -config in args. No
// flag means no file.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	return nil
}
