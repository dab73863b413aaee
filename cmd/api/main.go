// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Artistly HTTP API server.
//
// # Startup Sequence
//
//  1. Load .env, initialize the structured logger and read configuration.
//  2. Connect to PostgreSQL when DATABASE_URL is set, run migrations and seed
//     the catalog and submissions. Otherwise serve the seed data from memory.
//  3. Connect to Redis when REDIS_URL is set for drafts and sessions.
//  4. Wire the auth, catalog, onboarding and submission domains.
//  5. Start the HTTP server with graceful shutdown.
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

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/api"
	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/migration"
	pgstore "github.com/taibuivan/artistly/internal/platform/postgres"
	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
	"github.com/taibuivan/artistly/internal/platform/sec"
	"github.com/taibuivan/artistly/internal/submission"
	"github.com/taibuivan/artistly/internal/users/auth"
)

func main() {
	// ── 1. Logger & Configuration ─────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

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
		slog.Bool("postgres", cfg.UsePostgres()),
		slog.Bool("redis", cfg.UseRedis()),
	)

	// Process lifetime context. Cancelled on SIGINT / SIGTERM.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 2. Seed Data ──────────────────────────────────────────────────────
	artists, err := catalog.SeedArtists()
	must(log, err, "decode artist seed")

	applications, err := submission.SeedSubmissions(artists)
	must(log, err, "decode submission seed")

	var (
		artistRepository     catalog.Repository
		submissionRepository submission.Repository
		health               api.HealthDependencies
	)

	// ── 3. PostgreSQL (optional) ──────────────────────────────────────────
	if cfg.UsePostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.Options{
			MaxConns:         cfg.DatabaseMaxConns,
			StatementTimeout: constants.GlobalRequestTimeout,
			ApplicationName:  constants.AppName,
		}, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		artistStore := catalog.NewPostgresRepository(pool)
		must(log, artistStore.Seed(startupCtx, artists), "seed artists")

		submissionStore := submission.NewPostgresRepository(pool)
		must(log, submissionStore.Seed(startupCtx, applications), "seed submissions")

		artistRepository = artistStore
		submissionRepository = submissionStore
		health.CheckDatabase = func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}
	} else {
		log.Warn("postgres_disabled", slog.String("fallback", "memory"))
		artistRepository = catalog.NewMemoryRepository(artists)
		submissionRepository = submission.NewMemoryRepository(applications)
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var (
		draftRepository   onboarding.DraftRepository
		sessionRepository auth.SessionRepository
	)

	if cfg.UseRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, cfg.RedisPoolSize, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		draftRepository = onboarding.NewRedisDraftRepository(rdb, cfg.DraftTTL)
		sessionRepository = auth.NewRedisSessionRepository(rdb)
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	} else {
		log.Warn("redis_disabled", slog.String("fallback", "memory"))
		drafts := onboarding.NewMemoryDraftRepository(cfg.DraftTTL)
		sessions := auth.NewMemorySessionRepository()
		go drafts.RunJanitor(rootCtx, constants.StoreCleanupInterval)
		go sessions.RunJanitor(rootCtx, constants.StoreCleanupInterval)

		draftRepository = drafts
		sessionRepository = sessions
	}

	// ── 5. Auth ───────────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	demoUsers, err := auth.DemoUsers(time.Now())
	must(log, err, "hash demo accounts")

	authService := auth.NewService(
		auth.NewMemoryUserRepository(demoUsers...),
		sessionRepository,
		tokens,
		cfg.SessionTTL,
		log,
	)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	catalogService := catalog.NewService(artistRepository, log)
	submissionService := submission.NewService(submissionRepository, log)
	onboardingService := onboarding.NewService(draftRepository, submissionService, cfg.SubmitDelay, log)
	if cfg.Debug {
		onboardingService.Subscribe(onboarding.LogTransitions(log))
	}

	liveness, readiness := api.NewHealthHandlers(health, log)

	server := api.NewServer(rootCtx, cfg, log, authService, api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        auth.NewHandler(authService),
		Catalog:     catalog.NewHandler(catalogService),
		Onboarding:  onboarding.NewHandler(onboardingService),
		Submissions: submission.NewHandler(submissionService),
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, client *redis.Client) {
	log.Info("closing_redis_client")
	if err := client.Close(); err != nil {
		log.Error("redis_close_failed", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Startup wiring only. After startup all errors are returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
