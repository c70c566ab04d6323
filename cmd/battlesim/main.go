package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/udisondev/tuxbattle/internal/ai"
	"github.com/udisondev/tuxbattle/internal/config"
	"github.com/udisondev/tuxbattle/internal/data"
	"github.com/udisondev/tuxbattle/internal/db"
	"github.com/udisondev/tuxbattle/internal/game/skill"
	"github.com/udisondev/tuxbattle/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("loading .env", "err", err)
	}

	cfg, err := config.LoadBattlesim(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)
	slog.Info("battlesim starting",
		"log_level", cfg.LogLevel,
		"battles", cfg.Simulation.Battles,
		"parallelism", cfg.Simulation.Parallelism,
		"seed", cfg.Combat.Seed)

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}()

	catalog, err := data.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var store battleStore
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		pool := database.Pool()
		store = db.NewPersistenceService(pool, db.NewMonsterRepository(pool), db.NewBattleRepository(pool))
	}

	sim, err := newSimulator(cfg, skill.NewHydrator(catalog), store)
	if err != nil {
		return err
	}
	results, err := sim.run(ctx)
	if err != nil {
		return err
	}
	summarize(results)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
