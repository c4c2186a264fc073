// Command api serves the users, orders and offers record endpoints.
//
//	@title			Records API
//	@version		1.0
//	@description	CRUD service for users, orders and offers.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/recordhub/records-api/internal/api"
	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/infrastructure/db"
	"github.com/recordhub/records-api/internal/pkg/config"
	"github.com/recordhub/records-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		// Init may not have run yet when configuration is invalid.
		log := logger.New(logger.Options{Service: "records-api", Output: os.Stderr})
		log.Error().Err(err).Msg("records-api stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "records-api",
		Env:     cfg.Env,
	})

	policy, err := domain.ParseIDPolicy(cfg.IDPolicy)
	if err != nil {
		return err
	}

	store, err := db.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info().Str("driver", store.Driver).Msg("database ready")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := api.NewRouter(api.Dependencies{
		Users:     store.Users,
		Orders:    store.Orders,
		Offers:    store.Offers,
		Store:     store,
		StoreName: store.Driver,
		Logger:    log,
		IDPolicy:  policy,
		Registry:  reg,
		Swagger:   cfg.SwaggerEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("id_policy", string(policy)).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
