package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"euroleague-data-service/internal/archive"
	"euroleague-data-service/internal/config"
	"euroleague-data-service/internal/domain/feed"
	"euroleague-data-service/internal/logging"
	"euroleague-data-service/internal/metrics"
	"euroleague-data-service/internal/providers"
)

// Pipeline turns the season catalog into a complete, locally durable set
// of (game, stats) document pairs. Seasons and games are processed
// strictly sequentially; a failed game or season is logged and skipped,
// never fatal to the run.
type Pipeline struct {
	provider providers.FeedProvider
	writer   *archive.Writer
	store    *archive.FSStore
	logger   *slog.Logger
	metrics  *metrics.Recorder

	gamePause time.Duration
	seasons   []string
	sleep     func(ctx context.Context, d time.Duration) error
}

// Report summarizes one pipeline run.
type Report struct {
	SeasonsProcessed int
	SeasonsFailed    int
	GamesFetched     int
	GamesFailed      int
}

// New constructs a fetch pipeline writing under the writer's base path.
func New(provider providers.FeedProvider, writer *archive.Writer, store *archive.FSStore, logger *slog.Logger, recorder *metrics.Recorder, cfg config.FetchConfig) *Pipeline {
	pause := cfg.GamePause
	if pause <= 0 {
		pause = 500 * time.Millisecond
	}
	return &Pipeline{
		provider:  provider,
		writer:    writer,
		store:     store,
		logger:    logger,
		metrics:   recorder,
		gamePause: pause,
		seasons:   cfg.Seasons,
		sleep:     sleepCtx,
	}
}

// Run fetches every season's games. Failure to obtain the season list is
// fatal; everything below that granularity is skipped and counted.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	var report Report

	seasons, err := p.listSeasons(ctx)
	if err != nil {
		return report, fmt.Errorf("list seasons: %w", err)
	}

	for _, season := range seasons {
		if len(p.seasons) > 0 && !contains(p.seasons, season.Code) {
			continue
		}
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if err := p.fetchSeason(ctx, season.Code, &report); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			report.SeasonsFailed++
			logging.Error(p.logger, "season fetch failed", err, slog.String(logging.FieldSeason, season.Code))
			continue
		}
		report.SeasonsProcessed++
	}

	logging.Info(p.logger, "fetch run finished",
		slog.Int("seasons_processed", report.SeasonsProcessed),
		slog.Int("seasons_failed", report.SeasonsFailed),
		slog.Int("games_fetched", report.GamesFetched),
		slog.Int("games_failed", report.GamesFailed),
	)
	return report, nil
}

// listSeasons reuses the durable season-list cache when present; only a
// cold cache triggers a network call, whose result is cached for the next run.
func (p *Pipeline) listSeasons(ctx context.Context) ([]feed.Season, error) {
	if p.store != nil && p.store.HasSeasons() {
		seasons, err := p.store.LoadSeasons()
		if err == nil {
			logging.Info(p.logger, "using cached season listing", slog.Int(logging.FieldCount, len(seasons)))
			return seasons, nil
		}
		logging.Warn(p.logger, "season cache unreadable, refetching", "error", err)
	}

	seasons, err := p.provider.ListSeasons(ctx)
	if err != nil {
		return nil, err
	}
	if p.writer != nil {
		if err := p.writer.WriteSeasons(seasons); err != nil {
			logging.Warn(p.logger, "season cache write failed", "error", err)
		}
	}
	return seasons, nil
}

func (p *Pipeline) fetchSeason(ctx context.Context, season string, report *Report) error {
	codes, err := p.provider.ListGameCodes(ctx, season)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		logging.Warn(p.logger, "no games for season", slog.String(logging.FieldSeason, season))
		return nil
	}

	for i, code := range codes {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Info(p.logger, "fetching game",
			slog.String(logging.FieldSeason, season),
			slog.Int(logging.FieldGameCode, code),
		)
		p.fetchGame(ctx, season, code, report)

		// Fixed pause between successive games to smooth request rate,
		// regardless of retry state.
		if i < len(codes)-1 {
			if err := p.sleep(ctx, p.gamePause); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Pipeline) fetchGame(ctx context.Context, season string, code int, report *Report) {
	game, stats, err := p.provider.FetchGame(ctx, season, code)
	if err == nil {
		if writeErr := p.writer.WriteGame(season, code, game); writeErr != nil {
			err = writeErr
		} else if writeErr := p.writer.WriteStats(season, code, stats); writeErr != nil {
			err = writeErr
		}
	}
	if err != nil {
		report.GamesFailed++
		p.metrics.RecordGameFailed()
		logging.Error(p.logger, "game fetch failed", err,
			slog.String(logging.FieldSeason, season),
			slog.Int(logging.FieldGameCode, code),
		)
		return
	}
	report.GamesFetched++
	p.metrics.RecordGameFetched()
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
