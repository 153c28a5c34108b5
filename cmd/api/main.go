// Copyright (c) 2026 Book Alchemy. All rights reserved.

// Command api is the entry point for the Book Alchemy catalog server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from the environment (and an optional .env file).
//  3. Open the SQLite database.
//  4. Run database migrations (idempotent).
//  5. Connect to Redis when the ISBN cache is enabled.
//  6. Wire the ISBN lookup and the HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nagrapoonam/Book-Alchemy/internal/api"
	"github.com/nagrapoonam/Book-Alchemy/internal/core/author"
	"github.com/nagrapoonam/Book-Alchemy/internal/core/book"
	"github.com/nagrapoonam/Book-Alchemy/internal/lookup"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/config"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/constants"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/migration"
	redisstore "github.com/nagrapoonam/Book-Alchemy/internal/platform/redis"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/sqlite"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("isbn_cache", cfg.CacheEnabled()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. SQLite ─────────────────────────────────────────────────────────
	db, err := sqlite.Open(startupCtx, cfg.DatabasePath, log)
	must(log, err, "open sqlite database")
	defer func() {
		log.Info("closing sqlite database")
		if cerr := db.Close(); cerr != nil {
			log.Error("sqlite close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(db, log), "run migrations")

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	}

	// ── 6. ISBN lookup ────────────────────────────────────────────────────
	var fetcher book.ISBNFetcher = lookup.NewClient(cfg.LookupBaseURL, cfg.LookupUserAgent, cfg.LookupTimeout, cfg.LookupRPS)
	if rdb != nil {
		fetcher = lookup.NewCachedFetcher(fetcher, rdb, cfg.LookupCacheTTL, log)
	}

	// ── 7. Health handlers ────────────────────────────────────────────────
	deps := api.HealthDependencies{
		CheckDatabase: func() error {
			return sqlite.Ping(context.Background(), db)
		},
	}
	if rdb != nil {
		deps.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(deps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authorService := author.NewService(author.NewSQLiteRepository(db), log)
	bookService := book.NewService(book.NewSQLiteRepository(db), authorService, fetcher, cfg.CoverURLTemplate, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Author:    author.NewHandler(authorService),
		Book:      book.NewHandler(bookService),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// It is limited to startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
