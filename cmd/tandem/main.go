package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // calendar.timezone must resolve on hosts without zoneinfo

	"github.com/tandem-app/tandem/internal/calendar"
	corecfg "github.com/tandem-app/tandem/internal/core/config"
	"github.com/tandem-app/tandem/internal/core/storage/postgres"
	"github.com/tandem-app/tandem/internal/migrations"
	"github.com/tandem-app/tandem/internal/server"
)

func main() {
	configPath := flag.String("config", "tandem.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration (and presets)
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"timezone", cfg.Calendar.Timezone,
		"week_start", cfg.Calendar.WeekStart,
		"max_occurrences", cfg.Calendar.MaxOccurrences,
		"presets", len(cfg.PresetLoading.Presets))

	// 2. Run Database Migrations
	// The adapter validates the schema on open, so migrations run on a plain handle first.
	migrateDB, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		slog.Error("Failed to open database for migrations", "error", err)
		os.Exit(1)
	}
	if err := migrations.RunMigrations(migrateDB, cfg.Database.AutoMigrate); err != nil {
		migrateDB.Close()
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	migrateDB.Close()

	// 2.1. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 3. Initialize Calendar service
	calendarSvc := calendar.NewService(dbAdapter, cfg.PresetLoading.Repository, calendar.Options{
		Location:       cfg.Calendar.Location(),
		WeekStart:      cfg.Calendar.FirstWeekday(),
		AgendaDays:     cfg.Calendar.AgendaDays,
		MaxOccurrences: cfg.Calendar.MaxOccurrences,
		FeedName:       cfg.Calendar.FeedName,
	})

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode, map[string]server.HealthChecker{
		"database": dbAdapter,
	})
	srv.Mount(calendar.NewHandler(calendarSvc, cfg.Server.MaxBodySizeMB))

	// 5. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
