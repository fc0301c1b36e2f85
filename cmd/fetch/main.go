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

	"github.com/joho/godotenv"

	"euroleague-data-service/internal/archive"
	"euroleague-data-service/internal/config"
	"euroleague-data-service/internal/fetch"
	"euroleague-data-service/internal/logging"
	"euroleague-data-service/internal/metrics"
	"euroleague-data-service/internal/providers"
	"euroleague-data-service/internal/providers/euroleague"
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
		Service: "euroleague-fetch",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return 1
	}
	metricsSrv := serveMetrics(cfg.Metrics.Port, promHandler, logger)

	client := euroleague.NewClient(euroleague.Config{
		BaseURL:     cfg.Euroleague.BaseURL,
		Competition: cfg.Euroleague.Competition,
		StatsPause:  cfg.Fetch.StatsPause,
	})
	provider := providers.NewRetryingProvider(client, logger, recorder, cfg.Fetch.MaxAttempts, cfg.Fetch.RetryBackoff)
	pipeline := fetch.New(provider, archive.NewWriter(cfg.DataDir), archive.NewFSStore(cfg.DataDir), logger, recorder, cfg.Fetch)

	report, runErr := pipeline.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics server shutdown failed", "error", err)
		}
	}
	if err := metricsStop(shutdownCtx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", "error", err)
	}

	if runErr != nil {
		// Only a run that cannot reach the season list at all is fatal;
		// individual game/season failures were already absorbed.
		logging.Error(logger, "fetch run failed", runErr)
		return 1
	}
	logging.Info(logger, "fetch run complete",
		"seasons_processed", report.SeasonsProcessed,
		"seasons_failed", report.SeasonsFailed,
		"games_fetched", report.GamesFetched,
		"games_failed", report.GamesFailed,
	)
	return 0
}

func serveMetrics(port string, handler http.Handler, logger *slog.Logger) *http.Server {
	if handler == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	return srv
}
