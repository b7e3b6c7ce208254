package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/formkeeper/internal/accounts"
	"github.com/dmitrijs2005/formkeeper/internal/config"
	"github.com/dmitrijs2005/formkeeper/internal/filex"
	"github.com/dmitrijs2005/formkeeper/internal/forms"
	"github.com/dmitrijs2005/formkeeper/internal/logging"
	"github.com/dmitrijs2005/formkeeper/internal/recordstore"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *accounts.Service
	forms    *forms.Handler
	closeFn  func() error

	// userName is the user shown in the prompt after a successful login.
	userName string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the configured record store and builds the services on
// top of it. Log lines carry a session_id unique to this run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	logger = logger.With("session_id", uuid.NewString(), "backend", string(c.Backend))

	store, closeFn, err := openStore(ctx, c)
	if err != nil {
		logger.Error(ctx, "error opening record store", "error", err)
		return nil, err
	}

	svc := accounts.NewService(store, logger)

	return &App{
		config:   c,
		logger:   logger,
		accounts: svc,
		forms:    forms.NewHandler(svc),
		closeFn:  closeFn,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func openStore(ctx context.Context, c *config.Config) (recordstore.Store, func() error, error) {
	switch c.Backend {
	case config.BackendMemory:
		return recordstore.NewMemory(), func() error { return nil }, nil

	case config.BackendRedis:
		ctx, cancel := context.WithTimeout(ctx, c.RedisTimeout)
		defer cancel()

		r, err := recordstore.OpenRedis(ctx, &redis.Options{
			Addr:         c.RedisAddr,
			DB:           c.RedisDB,
			DialTimeout:  c.RedisTimeout,
			ReadTimeout:  c.RedisTimeout,
			WriteTimeout: c.RedisTimeout,
		}, c.RedisKeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil

	case config.BackendSQLite:
		if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
			return nil, nil, err
		}
		s, db, err := recordstore.OpenSQLite(ctx, c.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return s, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// Run starts the REPL on stdin and blocks until the user exits or stdin
// is closed.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "cli started")
	printlnFn("Welcome to formkeeper (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, a.reader)

	a.logger.Info(ctx, "cli stopped")
}

// Close releases the record store.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
