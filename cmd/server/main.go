// Command server runs the UrbanSprout gardening backend: plant suggestions,
// the advice chatbot, and the store API.
//
// Startup order:
//  1. Load .env (best effort) and environment configuration
//  2. Configure zerolog (level, optional pretty console output)
//  3. Open SQLite, migrate, and seed starter data
//  4. Load the CSV plant catalog (embedded fallback on failure)
//  5. Pick the session store (Redis when REDIS_ADDR is set, else in-memory)
//  6. Wire services and routes, start the HTTP server
//  7. Shut down gracefully on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/urbansprout/go-garden-backend/internal/ai"
	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/config"
	httpapi "github.com/urbansprout/go-garden-backend/internal/http"
	"github.com/urbansprout/go-garden-backend/internal/observability"
	"github.com/urbansprout/go-garden-backend/internal/repo"
	"github.com/urbansprout/go-garden-backend/internal/session"
	"github.com/urbansprout/go-garden-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing.
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Database.
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := repo.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	// Plant catalog. Load degrades to the embedded fallback set; log it so a
	// bad deploy is visible, but keep serving.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Warn().Err(err).Str("catalog_path", cfg.CatalogPath).
			Msg("catalog load failed, using embedded fallback set")
	}
	log.Info().Int("plants", cat.Len()).Msg("plant catalog ready")

	// Session store.
	var sessions session.Store
	if cfg.Session.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Session.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("redis_addr", cfg.Session.RedisAddr).Msg("redis unreachable")
		}
		sessions = session.NewRedisStore(rdb, cfg.Session.MaxTurns, cfg.Session.TTL)
		log.Info().Str("redis_addr", cfg.Session.RedisAddr).Msg("using redis session store")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.MaxTurns, cfg.Session.TTL)
	}

	// Model client. Without an API key the advice service serves its canned
	// fallback answers.
	var gen ai.Generator
	if cfg.AI.APIKey != "" {
		gen = ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	} else {
		log.Warn().Msg("AI_API_KEY unset, chat runs in fallback mode")
	}

	// HTTP engine and routes.
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, cat, gen, sessions, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
