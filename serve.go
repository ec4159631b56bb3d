package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/akinalp/directory/config"
	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/middleware"
	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg/cache"
	"github.com/akinalp/directory/pkg/logger"
	"github.com/akinalp/directory/pkg/metrics"
	"github.com/akinalp/directory/pkg/ratelimit"
)

const (
	loginMaxAttempts = 5
	loginWindow      = 2 * time.Minute
	shutdownTimeout  = 5 * time.Second
)

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

// setup, her komutun ortak başlangıcı: config + root logger.
func setup(configFile string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}

	root := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, os.Stderr)
	return cfg, root, nil
}

// runServe, wire-up sırası:
//
//	config → logger → database (+migration) → repositories → cache/metrics/limiter
//	→ services → handlers → routes → global middleware (alice) → http.Server
func runServe(ctx context.Context, configFile string) error {
	cfg, root, err := setup(configFile)
	if err != nil {
		return err
	}
	log := logger.Component(root, "main")

	db, err := database.New(cfg.Database.Path, database.Migrations(), logger.Component(root, "database"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repos := initRepositories(db.Conn)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	categoryCache := cache.New[string, []models.Category](cfg.Cache.CategoryTTL, time.Minute)
	defer categoryCache.Close()

	loginLimiter := ratelimit.NewLoginRateLimiter(loginMaxAttempts, loginWindow)
	defer loginLimiter.Close()

	svcs := initServices(repos, cfg, categoryCache, root)
	h := initHandlers(svcs, db.Conn, loginLimiter, m)

	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, repos.User, m, registry)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	httpLog := logger.Component(root, "http")
	handler := alice.New(
		middleware.Logger(httpLog),
		middleware.Recovery(httpLog),
		corsHandler.Handler,
	).Then(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}
