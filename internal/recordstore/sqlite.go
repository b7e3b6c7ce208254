package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/formkeeper/internal/dbx"
	"github.com/dmitrijs2005/formkeeper/internal/recordstore/migrations"
)

// SQLite stores records in the "records" table.
type SQLite struct {
	db dbx.DBTX
	tx dbx.TxBeginner
}

// NewSQLite wraps an already migrated database handle. When db can begin
// transactions (a *sql.DB or *sql.Conn) Update is transactional; a store
// built on a *sql.Tx shares the caller's transaction.
func NewSQLite(db dbx.DBTX) *SQLite {
	s := &SQLite{db: db}
	if b, ok := db.(dbx.TxBeginner); ok {
		s.tx = b
	}
	return s
}

// RunMigrations brings the schema of db up to date. goose's progress
// output is discarded so it does not mix with the CLI's stdout.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// sqlitePragmas make a writer wait for another process's lock instead of
// failing with SQLITE_BUSY, and take the write lock when a transaction
// begins so a read-modify-write never has to upgrade it.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_txlock=immediate"

func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sqlitePragmas
}

// OpenSQLite opens the database file at dsn, migrates it and returns the
// store together with the handle the caller must close.
//
// The pool is limited to one connection, which serializes writers from
// this process; writers in other processes wait on the file lock.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, *sql.DB, error) {
	db, err := sql.Open("sqlite", sqliteDSN(dsn))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return NewSQLite(db), db, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.db, key)
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.db, key, value)
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", key, err)
	}
	return nil
}

// Update reads and writes key inside a single transaction.
func (s *SQLite) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if s.tx == nil {
		return s.update(ctx, s.db, key, fn)
	}
	return dbx.WithTx(ctx, s.tx, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.update(ctx, tx, key, fn)
	})
}

func (s *SQLite) update(ctx context.Context, db dbx.DBTX, key string, fn UpdateFunc) error {
	current, err := get(ctx, db, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return set(ctx, db, key, next)
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}
