// Package config loads runtime configuration for the bucketdrop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, passed to Load (the CLI's -c/--config flag).
//  3. Environment variables prefixed with BUCKETDROP_.
//  4. Command-line flags, applied by the CLI on top of the result.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "auth_token": "eyJ...",
//	  "request_timeout": "30s",
//	  "download_dir": "downloads",
//	  "log_format": "slog"
//	}
//
// # Environment
//
//	BUCKETDROP_SERVER_URL, BUCKETDROP_AUTH_TOKEN, BUCKETDROP_REQUEST_TIMEOUT,
//	BUCKETDROP_DOWNLOAD_DIR, BUCKETDROP_LOG_FORMAT
package config
