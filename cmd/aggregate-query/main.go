package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/emis-lab/aggregate-query/internal/config"
	"github.com/emis-lab/aggregate-query/internal/core/storage"
	"github.com/emis-lab/aggregate-query/internal/core/storage/memory"
	"github.com/emis-lab/aggregate-query/internal/core/storage/postgres"
	"github.com/emis-lab/aggregate-query/internal/migrations"
	"github.com/emis-lab/aggregate-query/internal/query"
	"github.com/emis-lab/aggregate-query/internal/server"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("Aggregate query service failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(configPath string) error {
	// 0. Initialize a logger for config loading; replaced once the level is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.SlogLevel(),
	})))
	slog.Info("Loaded config",
		"addr", cfg.Server.Addr(),
		"mode", cfg.Server.Mode,
		"base_url", cfg.Server.BaseURL,
		"database_type", cfg.Database.Type)

	// 2. Initialize Storage
	store, closeStore, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	// 3. Initialize Server and routes
	srv := server.New(cfg.Server.Addr(), store, cfg.Server.Mode, cfg.Server.CORSAllowedOrigins)
	query.NewService(store, cfg.Server.BaseURL, cfg.Server.MaxBodySizeMB).RegisterRoutes(srv.Engine)

	// 4. Run until a signal arrives
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Signal received, shutting down...")
		return nil
	})

	return g.Wait()
}

func openStore(cfg config.DatabaseConfig) (storage.AggregateQueryStore, func() error, error) {
	if cfg.Type == config.DatabaseMemory {
		slog.Warn("Using in-memory store; data is lost on restart")
		return memory.NewStore(), func() error { return nil }, nil
	}

	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	adapter, err := postgres.NewAdapter(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize postgres store: %w", err)
	}
	return adapter, adapter.Close, nil
}
