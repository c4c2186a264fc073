package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/pkg/config"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "records.db"),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := store.Offers.Create(ctx, &domain.Offer{ID: 1, OrderID: 2, ExecutorID: 3}); err != nil {
		t.Fatalf("create offer: %v", err)
	}
	if _, err := store.Offers.FindByID(ctx, 1); err != nil {
		t.Fatalf("find offer: %v", err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.DatabaseConfig{Driver: "oracle"}, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
