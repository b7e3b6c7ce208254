package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/formkeeper/internal/config"
	"github.com/dmitrijs2005/formkeeper/internal/logging"
)

func testConfig(t *testing.T, backend config.Backend) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.Backend = backend
	c.DatabasePath = filepath.Join(t.TempDir(), "data", "fk.db")
	return c
}

func TestNewApp_Backends(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		backend config.Backend
		setup   func(c *config.Config)
	}{
		{name: "memory", backend: config.BackendMemory},
		{name: "sqlite", backend: config.BackendSQLite},
		{name: "redis", backend: config.BackendRedis, setup: func(c *config.Config) { c.RedisAddr = mr.Addr() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig(t, tt.backend)
			if tt.setup != nil {
				tt.setup(c)
			}

			app, err := NewApp(context.Background(), c, logging.New(io.Discard, slog.LevelError))
			require.NoError(t, err)
			require.NotNil(t, app)
			assert.False(t, app.isLoggedIn())

			list, err := app.accounts.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)

			assert.NoError(t, app.Close())
		})
	}
}

func TestNewApp_Errors(t *testing.T) {
	ctx := context.Background()
	logger := logging.New(io.Discard, slog.LevelError)

	c := testConfig(t, "mongo")
	_, err := NewApp(ctx, c, logger)
	assert.ErrorContains(t, err, `unknown backend "mongo"`)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	c = testConfig(t, config.BackendRedis)
	c.RedisAddr = addr
	c.RedisTimeout = 200 * time.Millisecond
	_, err = NewApp(ctx, c, logger)
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestNewApp_TagsLogsWithSession(t *testing.T) {
	var buf bytes.Buffer
	app, err := NewApp(context.Background(), testConfig(t, config.BackendMemory), logging.New(&buf, slog.LevelInfo))
	require.NoError(t, err)

	app.logger.Info(context.Background(), "probe")
	assert.Contains(t, buf.String(), "session_id=")
	assert.Contains(t, buf.String(), "backend=memory")
}

func TestApp_RunSession(t *testing.T) {
	captureOutput(t)
	stubTerminal(t, false, nil, nil)

	c := testConfig(t, config.BackendSQLite)
	app, err := NewApp(context.Background(), c, logging.New(io.Discard, slog.LevelError))
	require.NoError(t, err)
	defer app.Close()

	var out bytes.Buffer
	app.out = &out
	app.reader = bufio.NewReader(strings.NewReader(lines(
		"register", "alice", "alice@mail.org", "Ab1!Ab1!Ab1!", "Ab1!Ab1!Ab1!", "y",
		"login", "alice", "Ab1!Ab1!Ab1!",
		"list",
		"exit",
	)))

	app.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Registered alice.")
	assert.Contains(t, s, "Welcome, alice!")
	assert.Contains(t, s, "1. alice <alice@mail.org>")
	assert.True(t, app.isLoggedIn())
}
