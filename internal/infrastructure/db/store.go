// Package db opens the configured relational store and exposes its
// repositories behind the ports interfaces.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/ports"
	"github.com/recordhub/records-api/internal/infrastructure/db/postgres"
	"github.com/recordhub/records-api/internal/infrastructure/db/sqlite"
	"github.com/recordhub/records-api/internal/pkg/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Store struct {
	Driver string
	Users  ports.UserRepository
	Orders ports.OrderRepository
	Offers ports.OfferRepository

	ping  func(ctx context.Context) error
	close func()
}

// Open connects to the store named by cfg.Driver and creates the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*Store, error) {
	switch cfg.Driver {
	case DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.URL, postgres.PoolOptions{
			MaxConns:   cfg.MaxConns,
			LogQueries: cfg.LogQueries,
		}, log)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Driver: DriverPostgres,
			Users:  postgres.NewUserRepository(pool),
			Orders: postgres.NewOrderRepository(pool),
			Offers: postgres.NewOfferRepository(pool),
			ping:   pool.Ping,
			close:  pool.Close,
		}, nil

	case DriverSQLite:
		sqlDB, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		if err := sqlite.EnsureSchema(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return &Store{
			Driver: DriverSQLite,
			Users:  sqlite.NewUserRepository(sqlDB),
			Orders: sqlite.NewOrderRepository(sqlDB),
			Offers: sqlite.NewOfferRepository(sqlDB),
			ping:   sqlDB.PingContext,
			close: func() {
				if err := sqlDB.Close(); err != nil {
					log.Warn().Err(err).Msg("closing sqlite database")
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close() {
	s.close()
}
