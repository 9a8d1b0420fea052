package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/core/services"
	"github.com/SscSPs/wholesale_payments/internal/jobs"
	"github.com/SscSPs/wholesale_payments/internal/platform/config"
	"github.com/SscSPs/wholesale_payments/internal/repositories/database/pgsql"
	"github.com/SscSPs/wholesale_payments/pkg/database"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.SlogLevel())); err != nil {
		slog.Error("Invalid log level", slog.String("log_level", cfg.LogLevel), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("component", "scheduler"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	payments := services.NewPaymentService(repos.StoreRepo, repos.OrderRepo, repos.ReportingRepo)
	digest := jobs.NewAgingDigestJob(payments, cfg.AgingDigestTop, logger)

	c := cron.New()
	_, err = c.AddFunc(cfg.AgingDigestCron, func() {
		runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		if err := digest.Run(runCtx); err != nil {
			logger.Error("Aging digest failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		logger.Error("Failed to schedule aging digest", slog.String("error", err.Error()))
		os.Exit(1)
	}

	c.Start()
	logger.Info("Scheduler started", slog.String("aging_digest_cron", cfg.AgingDigestCron))

	<-ctx.Done()
	logger.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	logger.Info("Scheduler stopped")
}
