// Package config loads runtime configuration for the formkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), FORMKEEPER_*.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   record store backend: sqlite, redis or memory
//	-d string   SQLite database file
//	-r string   redis address host:port
//	-n int      redis logical database
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "backend": "redis",
//	  "database_path": "formkeeper.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_db": 0,
//	  "redis_key_prefix": "formkeeper:",
//	  "redis_timeout": "3s",
//	  "log_level": "info"
//	}
package config
