package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blance-app/blance_backend/internal/core/services"
	"github.com/blance-app/blance_backend/internal/platform/config"
	"github.com/blance-app/blance_backend/internal/repositories/database/pgsql"
	"github.com/blance-app/blance_backend/pkg/database"
)

// The recurring worker materializes due recurring transaction templates into
// real transactions on a fixed interval. It shares the service layer with the
// API binary but runs standalone so API deploys do not interrupt schedules.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, *repos)
	processor := serviceContainer.RecurringProcessor

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		processed, err := processor.ProcessDueRecurring(ctx, time.Now().UTC(), cfg.RecurringBatchSize)
		if err != nil {
			logger.Error("Recurring processing run failed", slog.String("error", err.Error()))
			return
		}
		if processed > 0 {
			logger.Info("Processed recurring transactions", slog.Int("count", processed))
		}
	}

	logger.Info("Recurring worker starting",
		slog.Duration("interval", cfg.RecurringInterval),
		slog.Int("batch_size", cfg.RecurringBatchSize),
	)

	// Catch up immediately on start, then tick.
	runOnce()

	ticker := time.NewTicker(cfg.RecurringInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Recurring worker shutting down")
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
