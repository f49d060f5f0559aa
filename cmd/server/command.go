package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/agenthub/hub/internal/authz"
	"github.com/agenthub/hub/internal/config"
	"github.com/agenthub/hub/internal/db"
	"github.com/agenthub/hub/internal/handlers"
	"github.com/agenthub/hub/internal/log"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/middleware"
	"github.com/agenthub/hub/internal/repo/sql"
	"github.com/agenthub/hub/internal/resolver"
)

// run starts the API server and blocks until the context is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	log.Setup(cfg.Logging.Level)

	log.Debug(ctx, "Starting the application", slog.Any("config", cfg))

	dbCon, err := db.StartDB(ctx, cfg)
	if err != nil {
		return oops.In("server").Wrapf(err, "failed to initialise db connection")
	}

	repository := sql.NewRepository(dbCon)
	adminRepository := sql.NewAdminRepository(dbCon)

	res := resolver.New(repository, cfg.Resolver.CacheSize, cfg.Resolver.CacheTTL)
	gate := authz.NewGate(repository)
	mgr := manager.New(repository, adminRepository, res)

	middleware.RegisterMetrics(prometheus.DefaultRegisterer)

	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handlers.NewRouter(mgr, gate, res, *cfg),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info(ctx, "API server listening", slog.String("address", cfg.HTTP.Address))

		serveErr := srv.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	select {
	case err = <-errCh:
		return oops.In("server").Wrapf(err, "api server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		return oops.In("server").Wrapf(err, "shutting down api server")
	}

	return nil
}

// Cmd builds the `hub server` command.
func Cmd(buildInfo string) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "AgentHub API Server",
		Long:  "Starts the AgentHub HTTP API server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.LoadConfig()
			if err != nil {
				return oops.In("server").Wrapf(err, "failed to load config")
			}

			log.Info(ctx, "Starting AgentHub server", slog.String("build", buildInfo))

			return run(ctx, cfg)
		},
	}
}
