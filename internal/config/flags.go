package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/formkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so -c/-config and unknown arguments are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-r", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.Backend), "record store backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "sqlite database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address and port")
	fs.IntVar(&cfg.RedisDB, "n", cfg.RedisDB, "redis database number")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Backend = Backend(*backend)
}
