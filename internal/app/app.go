// Package app assembles the service: it opens the store once, runs migrations,
// builds the use cases and serves HTTP until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortlink/internal/adapter/repository/postgres"
	"github.com/vadimbarashkov/shortlink/internal/config"
	"github.com/vadimbarashkov/shortlink/internal/usecase"
	"github.com/vadimbarashkov/shortlink/migrations"
	"golang.org/x/sync/errgroup"

	redisCache "github.com/vadimbarashkov/shortlink/internal/adapter/cache/redis"
	delivery "github.com/vadimbarashkov/shortlink/internal/adapter/delivery/http"
	pg "github.com/vadimbarashkov/shortlink/pkg/postgres"
	rdb "github.com/vadimbarashkov/shortlink/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func newLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel:        slog.LevelDebug,
		Concise:         true,
		RequestHeaders:  true,
		TimeFieldFormat: time.RFC3339,
	}

	if env == config.EnvProd || env == config.EnvStage {
		opts.LogLevel = slog.LevelInfo
		opts.JSON = true
		opts.Concise = false
	}

	return httplog.NewLogger("shortlink", opts)
}

// newRouter builds the use cases over db and returns the HTTP handler serving them.
func newRouter(cfg *config.Config, logger *httplog.Logger, db *sqlx.DB, userOpts ...usecase.UserOption) http.Handler {
	urlRepo := postgres.NewURLRepository(db)
	userRepo := postgres.NewUserRepository(db)

	urlUseCase := usecase.NewURLUseCase(urlRepo, userRepo, logger.Logger)
	userUseCase := usecase.NewUserUseCase(userRepo, userOpts...)
	rankingUseCase := usecase.NewRankingUseCase(cfg.PopularLimit, urlRepo)

	return delivery.NewRouter(logger, cfg.HTTPServer.RequestTimeout, urlUseCase, userUseCase, rankingUseCase)
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := newLogger(cfg.Env)

	db, err := pg.New(
		ctx,
		cfg.Postgres.DSN(),
		pg.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		pg.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		pg.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		pg.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := pg.RunMigrations(migrations.FS, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	userOpts := []usecase.UserOption{usecase.WithUserLogger(logger.Logger)}

	if cfg.Redis.Enabled() {
		client, err := rdb.New(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}
		defer client.Close()

		userOpts = append(userOpts, usecase.WithUserCache(redisCache.NewUserCache(client, cfg.Redis.TTL)))
		logger.InfoContext(ctx, "api token cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
	}

	router := newRouter(cfg, logger, db, userOpts...)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
