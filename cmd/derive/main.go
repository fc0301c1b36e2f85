package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"euroleague-data-service/internal/config"
	"euroleague-data-service/internal/derive"
	"euroleague-data-service/internal/export"
	"euroleague-data-service/internal/logging"
	"euroleague-data-service/internal/metrics"
)

const appVersion = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "euroleague-derive",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, _, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return 1
	}

	runner := export.NewRunner(cfg.DataDir, cfg.OutputDir, logger, recorder)
	report, runErr := runner.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsStop(shutdownCtx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", "error", err)
	}

	if runErr != nil {
		logging.Error(logger, "derivation run failed", runErr)
		return 1
	}
	logging.Info(logger, "derivation run complete",
		"seasons_processed", report.SeasonsProcessed,
		"games_emitted", report.Emitted,
		"skipped_not_played", report.Skipped[derive.SkipNotPlayed],
		"skipped_no_stats", report.Skipped[derive.SkipNoStats],
		"skipped_zero_score", report.Skipped[derive.SkipZeroScore],
		"skipped_missing_stats_file", report.Skipped[derive.SkipMissingStatsFile],
	)
	return 0
}
