// Package config loads runtime configuration for the Jabuspark client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (go-envconfig).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-s string   local session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	JABUSPARK_API_BASE_URL     API base URL (alias: JABUSPARK_API_BASE)
//	JABUSPARK_STORAGE_PATH     local session database path
//	JABUSPARK_REQUEST_TIMEOUT  request timeout, e.g. "15s"
//	JABUSPARK_LOG_LEVEL        debug, info, warn or error
//	JABUSPARK_LOG_BACKEND      slog or zerolog
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://jabumarket.com.ng/api",
//	  "storage_path": "jabuspark.db",
//	  "request_timeout": "15s",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
package config
