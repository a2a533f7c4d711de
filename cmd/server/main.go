package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/api"
	dbfs "github.com/garnizeh/pathfinder/db"
	"github.com/garnizeh/pathfinder/internal/config"
	"github.com/garnizeh/pathfinder/internal/db"
	"github.com/garnizeh/pathfinder/internal/fixtures"
	"github.com/garnizeh/pathfinder/internal/logger"
	"github.com/garnizeh/pathfinder/internal/reminders"
	"github.com/garnizeh/pathfinder/internal/repository/sqlite"
	"github.com/garnizeh/pathfinder/internal/store"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	lg, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	lg.Info("starting pathfinder server", zap.String("version", version), zap.String("build_time", buildTime), zap.String("env", cfg.Env))
	api.SetLogger(lg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New(store.WithLogger(lg))

	// Snapshot persistence is optional
	var repo *sqlite.SQLiteRepo
	if cfg.PersistenceEnabled() {
		dbCtx, dbCancel := context.WithTimeout(ctx, cfg.APITimeout)
		database, err := db.New(dbCtx, cfg.DatabasePath, lg)
		if err != nil {
			dbCancel()
			lg.Fatal("failed to open database", zap.Error(err))
		}
		defer database.Close()

		if err := db.Migrate(dbCtx, database, dbfs.Migrations); err != nil {
			dbCancel()
			lg.Fatal("failed to migrate database", zap.Error(err))
		}

		repo = sqlite.New(database, lg)
		if _, err := st.Load(dbCtx, repo); err != nil {
			lg.Error("failed to load snapshot, starting fresh", zap.Error(err))
		}
		dbCancel()
	}

	if st.Empty() && cfg.Seed {
		if err := fixtures.Seed(ctx, st); err != nil {
			lg.Fatal("failed to seed fixtures", zap.Error(err))
		}
		lg.Info("seeded demo data")
	}

	unsubscribe := st.Subscribe(func(sl store.Slice) {
		lg.Debug("store changed", zap.String("slice", string(sl)))
	})
	defer unsubscribe()

	var notifier *reminders.Notifier
	if cfg.Reminders.Enabled {
		notifier = reminders.NewNotifier(st, reminders.LogHandler(lg), cfg.Reminders.ScanInterval, cfg.Reminders.Lookahead, reminders.WithLogger(lg))
		notifier.Start(ctx)
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.SetupRoutes(st, api.SystemInfo{
			Version:     version,
			BuildTime:   buildTime,
			Persistence: cfg.PersistenceEnabled(),
		}),
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		lg.Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}
	if notifier != nil {
		notifier.Stop()
	}
	if repo != nil {
		if err := st.Save(shutdownCtx, repo); err != nil {
			lg.Error("failed to save snapshot", zap.Error(err))
		}
	}

	lg.Info("server exited")
}
