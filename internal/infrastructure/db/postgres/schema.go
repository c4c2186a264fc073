package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGINT PRIMARY KEY,
		first_name TEXT    NOT NULL,
		last_name  TEXT    NOT NULL,
		age        INTEGER NOT NULL,
		email      TEXT    NOT NULL,
		role       TEXT    NOT NULL,
		phone      TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          BIGINT PRIMARY KEY,
		description TEXT             NOT NULL,
		start_date  DATE             NOT NULL,
		end_date    DATE             NOT NULL,
		address     TEXT             NOT NULL,
		price       DOUBLE PRECISION NOT NULL,
		customer_id BIGINT           NOT NULL,
		executor_id BIGINT           NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS offers (
		id          BIGINT PRIMARY KEY,
		order_id    BIGINT NOT NULL,
		executor_id BIGINT NOT NULL
	)`,
}

// EnsureSchema creates the record tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
