// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the StoreHub HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire the authentication gateway, sessions and domain handlers.
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

	"github.com/taibuivan/storehub/internal/api"
	"github.com/taibuivan/storehub/internal/platform/config"
	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/middleware"
	"github.com/taibuivan/storehub/internal/platform/migration"
	pgstore "github.com/taibuivan/storehub/internal/platform/postgres"
	redisstore "github.com/taibuivan/storehub/internal/platform/redis"
	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/staff/officer"
	"github.com/taibuivan/storehub/internal/users/account"
	"github.com/taibuivan/storehub/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Duration("session_ttl", cfg.Session.TTL),
	)

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives as long as the process; stops the rate limiter janitors on exit.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Authentication Gateway ─────────────────────────────────────────
	gateway, err := auth.NewGateway(
		auth.NewOfficerStore(pool),
		auth.NewUserStore(pool),
		auth.GatewayConfig{
			AdminEmail:    cfg.Admin.Email,
			AdminPassword: cfg.Admin.Password,
			Hints: auth.AccountHints{
				Pending:     cfg.Redirect.AccountPending,
				NotVerified: cfg.Redirect.AccountNotVerified,
				Inactive:    cfg.Redirect.AccountInactive,
			},
		},
	)
	must(log, err, "initialize authentication gateway")

	signer, err := sec.NewSessionTokenSigner(cfg.Session.Secret, constants.SessionIssuer)
	must(log, err, "initialize session signer")

	sessions := auth.NewSessionManager(auth.NewSessionStore(rdb), signer, cfg.Session.TTL)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(log,
		api.DependencyCheck{Name: "postgres", Check: func(context context.Context) error {
			return pgstore.Ping(context, pool)
		}},
		api.DependencyCheck{Name: "redis", Check: func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		}},
	)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authHandler := auth.NewHandler(
		gateway,
		sessions,
		auth.NewRedirector(cfg.Redirect),
		auth.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		middleware.LoginThrottle(rootCtx),
	)

	accountService := account.NewService(
		account.NewPostgresRepository(pool),
		account.NewVerificationTokenRepository(rdb),
		account.NewLogNotifier(log, cfg.Redirect.AccountNotVerified),
		log,
	)

	officerService := officer.NewService(officer.NewPostgresRepository(pool), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   account.NewHandler(accountService),
		Staff:     officer.NewHandler(officerService),
	}

	server := api.NewServer(rootCtx, cfg, log, sessions, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	shutdownErr := server.Shutdown(shutdownTimeout)

	// Last-login writes detached from their requests finish before the pools close.
	gateway.Wait()

	if shutdownErr != nil {
		log.Error("server_shutdown_failed", slog.Any("error", shutdownErr))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, stage string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("stage", stage),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
