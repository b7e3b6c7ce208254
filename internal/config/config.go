package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/formkeeper/internal/logging"
)

// Backend names a record store implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Config holds runtime settings for the formkeeper CLI.
type Config struct {
	Backend      Backend `env:"FORMKEEPER_BACKEND"`
	DatabasePath string  `env:"FORMKEEPER_DB"`

	RedisAddr      string        `env:"FORMKEEPER_REDIS_ADDR"`
	RedisDB        int           `env:"FORMKEEPER_REDIS_DB"`
	RedisKeyPrefix string        `env:"FORMKEEPER_REDIS_PREFIX"`
	RedisTimeout   time.Duration `env:"FORMKEEPER_REDIS_TIMEOUT"`

	LogLevel string `env:"FORMKEEPER_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabasePath = "formkeeper.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisKeyPrefix = "formkeeper:"
	c.RedisTimeout = 3 * time.Second
	c.LogLevel = "info"
}

// Validate rejects settings the CLI cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database path must be set for the %s backend", c.Backend)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address must be set for the %s backend", c.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
