// Package postgres implements the record repositories on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

const pingTimeout = 10 * time.Second

// PoolOptions tunes the connection pool.
type PoolOptions struct {
	MaxConns int32
	// LogQueries traces every statement through the application logger.
	LogQueries bool
}

// NewPool opens a pgx pool against dsn and verifies it with a ping.
func NewPool(ctx context.Context, dsn string, opts PoolOptions, log zerolog.Logger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.LogQueries {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(log.With().Str("component", "pgx").Logger()),
			LogLevel: traceLevel(log.GetLevel()),
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Info().Int32("max_conns", cfg.MaxConns).Msg("connected to postgres")
	return pool, nil
}

// traceLevel maps the application log level onto pgx's.
func traceLevel(l zerolog.Level) tracelog.LogLevel {
	switch l {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.Disabled:
		return tracelog.LogLevelNone
	default:
		return tracelog.LogLevelError
	}
}
