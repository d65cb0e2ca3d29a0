// Package sqlstore implements docstore.Store on a single `documents` table
// in PostgreSQL (pgx) or SQLite (modernc). Schemas are applied with goose.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// DBTX is the subset of database/sql used by the store.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect carries the driver specific bits.
type Dialect struct {
	Name          string
	Driver        string
	GooseDialect  string
	MigrationsDir string

	getQuery    string
	putQuery    string
	deleteQuery string
}

var Postgres = Dialect{
	Name:          "postgres",
	Driver:        "pgx",
	GooseDialect:  "pgx",
	MigrationsDir: "postgres",
	getQuery: `SELECT body FROM documents
		 WHERE tbl = $1 AND id = $2`,
	putQuery: `INSERT INTO documents (tbl, id, body, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (tbl, id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
	deleteQuery: `DELETE FROM documents
		 WHERE tbl = $1 AND id = $2`,
}

var SQLite = Dialect{
	Name:          "sqlite",
	Driver:        "sqlite",
	GooseDialect:  "sqlite3",
	MigrationsDir: "sqlite",
	getQuery: `SELECT body FROM documents
		 WHERE tbl = ? AND id = ?`,
	putQuery: `INSERT INTO documents (tbl, id, body, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (tbl, id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
	deleteQuery: `DELETE FROM documents
		 WHERE tbl = ? AND id = ?`,
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

type Store struct {
	db      DBTX
	closer  func() error
	dialect Dialect
	codec   docstore.Codec
}

// New wraps an existing connection. The schema is expected to exist.
func New(db DBTX, dialect Dialect, codec docstore.Codec) *Store {
	if codec == nil {
		codec = docstore.JSON
	}
	return &Store{db: db, dialect: dialect, codec: codec, closer: func() error { return nil }}
}

// Open connects with the dialect's driver, applies migrations and returns
// a ready store that owns the connection.
func Open(ctx context.Context, dialect Dialect, dsn string, codec docstore.Codec) (*Store, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	if dialect.Name == SQLite.Name {
		// single writer avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	s := New(db, dialect, codec)
	s.closer = db.Close
	return s, nil
}

// RunMigrations sets up goose with the embedded migrations of the dialect
// and runs them against db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect.GooseDialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dialect.MigrationsDir)
}

func (s *Store) Get(ctx context.Context, table, id string, out any) error {
	var body []byte
	err := s.db.QueryRowContext(ctx, s.dialect.getQuery, table, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	if err := s.codec.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, table, id string, doc any) error {
	body, err := s.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, s.dialect.putQuery, table, id, body); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, table, id string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.deleteQuery, table, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.closer()
}
