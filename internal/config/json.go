package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/formkeeper/internal/flagx"
	"github.com/dmitrijs2005/formkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from a zero value, so a partial file
// only overrides what it names.
type JsonConfig struct {
	Backend        *string         `json:"backend"`
	DatabasePath   *string         `json:"database_path"`
	RedisAddr      *string         `json:"redis_addr"`
	RedisDB        *int            `json:"redis_db"`
	RedisKeyPrefix *string         `json:"redis_key_prefix"`
	RedisTimeout   *timex.Duration `json:"redis_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.Backend != nil {
		cfg.Backend = Backend(*jc.Backend)
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RedisAddr != nil {
		cfg.RedisAddr = *jc.RedisAddr
	}
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.RedisKeyPrefix != nil {
		cfg.RedisKeyPrefix = *jc.RedisKeyPrefix
	}
	if jc.RedisTimeout != nil {
		cfg.RedisTimeout = jc.RedisTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
