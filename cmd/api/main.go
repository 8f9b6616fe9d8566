// Package main is the entry point for the Space Voyages API server.
// Its sole responsibility is wiring dependencies together and starting the
// server and the repricing scheduler. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql (goose)
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/jmarek/space-voyages/backend/internal/ai"
	"github.com/jmarek/space-voyages/backend/internal/config"
	"github.com/jmarek/space-voyages/backend/internal/handler"
	"github.com/jmarek/space-voyages/backend/internal/middleware"
	"github.com/jmarek/space-voyages/backend/internal/repo"
	"github.com/jmarek/space-voyages/backend/internal/service"
	"github.com/jmarek/space-voyages/backend/migrations"
)

// maxBodyBytes caps incoming request bodies; chat conversations are the
// largest expected payload and stay well under this.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// Apply pending migrations on boot so the schema and the binary stay in sync.
	if err := migrateUp(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	gen, err := ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	if err != nil {
		slog.Error("failed to create text-generation client", "error", err)
		os.Exit(1)
	}

	packages := repo.NewPackageRepo(pool)
	catalog := service.NewCatalogService(packages)
	recommend := service.NewRecommendService(packages, gen, logger)
	chat := service.NewChatService(gen, logger)
	repricer := service.NewRepricer(packages, logger)
	scheduler := service.NewScheduler(repricer, cfg.RepriceInterval, logger)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS → body cap.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srv := handler.NewServer(catalog, recommend, chat)
	r.Mount("/", srv.Routes())

	// --- Repricing scheduler ----------------------------------------------
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go scheduler.Run(schedCtx)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // AI calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrateUp applies all pending embedded migrations using goose.
// Goose needs database/sql, so it gets its own short-lived connection.
func migrateUp(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	if len(results) > 0 {
		slog.Info("migrations applied", "count", len(results))
	}
	return nil
}
