// Package sqlite implements the record repositories on an SQLite file through
// database/sql and mattn/go-sqlite3.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/domain"
)

const busyTimeoutMillis = 5000

// Open opens (creating if needed) the SQLite database at path and pings it.
// A single connection is used so writers never contend for the file lock.
func Open(ctx context.Context, path string, log zerolog.Logger) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL", path, busyTimeoutMillis)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	log.Info().Str("path", path).Msg("opened sqlite database")
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY,
		first_name TEXT    NOT NULL,
		last_name  TEXT    NOT NULL,
		age        INTEGER NOT NULL,
		email      TEXT    NOT NULL,
		role       TEXT    NOT NULL,
		phone      TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          INTEGER PRIMARY KEY,
		description TEXT    NOT NULL,
		start_date  TEXT    NOT NULL,
		end_date    TEXT    NOT NULL,
		address     TEXT    NOT NULL,
		price       REAL    NOT NULL,
		customer_id INTEGER NOT NULL,
		executor_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS offers (
		id          INTEGER PRIMARY KEY,
		order_id    INTEGER NOT NULL,
		executor_id INTEGER NOT NULL
	)`,
}

// EnsureSchema creates the record tables when they do not exist yet. Dates are
// stored as YYYY-MM-DD text.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func isConstraintKey(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || se.ExtendedCode == sqlite3.ErrConstraintUnique
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case isConstraintKey(err):
		return domain.ErrDuplicateKey
	default:
		return err
	}
}

func affected(res sql.Result, err error) error {
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
