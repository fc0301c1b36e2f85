package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"euroleague-data-service/internal/archive"
	"euroleague-data-service/internal/derive"
	"euroleague-data-service/internal/logging"
	"euroleague-data-service/internal/metrics"
	"euroleague-data-service/internal/rdf"
)

// Runner walks every fetched season, pairs each game document with its
// stats document, derives the normalized record for eligible games and
// serializes it to Turtle. Skips are counted per reason, never fatal.
type Runner struct {
	store   *archive.FSStore
	engine  *derive.Engine
	logger  *slog.Logger
	metrics *metrics.Recorder

	dataDir   string
	outputDir string
}

// Report aggregates one derivation run.
type Report struct {
	SeasonsProcessed int
	Emitted          int
	Skipped          map[derive.SkipReason]int
}

// SkippedTotal sums the skip counts across all reasons.
func (r Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// NewRunner constructs a runner reading raw documents from dataDir and
// writing Turtle files under outputDir.
func NewRunner(dataDir, outputDir string, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	return &Runner{
		store:     archive.NewFSStore(dataDir),
		engine:    derive.NewEngine(logger),
		logger:    logger,
		metrics:   recorder,
		dataDir:   dataDir,
		outputDir: outputDir,
	}
}

// Run processes every discovered season pair in order.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{Skipped: make(map[derive.SkipReason]int)}

	pairs, err := archive.DiscoverSeasons(r.dataDir)
	if err != nil {
		return report, fmt.Errorf("discover seasons: %w", err)
	}
	if len(pairs) == 0 {
		return report, fmt.Errorf("no game/stats directory pairs under %s", r.dataDir)
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return report, err
	}

	for _, pair := range pairs {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if err := r.runSeason(ctx, pair, &report); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logging.Error(r.logger, "season derivation failed", err, slog.String(logging.FieldSeason, pair.SeasonID))
			continue
		}
		report.SeasonsProcessed++
	}

	logging.Info(r.logger, "derivation run finished",
		slog.Int("seasons_processed", report.SeasonsProcessed),
		slog.Int("games_emitted", report.Emitted),
		slog.Int("games_skipped", report.SkippedTotal()),
	)
	return report, nil
}

func (r *Runner) runSeason(ctx context.Context, pair archive.SeasonPair, report *Report) error {
	files, err := r.store.GameFiles(pair.GamesDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logging.Warn(r.logger, "no game documents in season", slog.String(logging.FieldSeason, pair.SeasonID))
		return nil
	}

	gamesOut, err := os.Create(filepath.Join(r.outputDir, "games"+pair.SeasonID+".ttl"))
	if err != nil {
		return err
	}
	defer gamesOut.Close()
	playersOut, err := os.Create(filepath.Join(r.outputDir, "players"+pair.SeasonID+".ttl"))
	if err != nil {
		return err
	}
	defer playersOut.Close()

	gamesBuf := bufio.NewWriter(gamesOut)
	playersBuf := bufio.NewWriter(playersOut)
	games := rdf.NewGamesWriter(gamesBuf)
	players := rdf.NewPlayerExtractor(playersBuf)
	if err := games.WritePrefixes(); err != nil {
		return err
	}
	if err := players.WritePrefixes(); err != nil {
		return err
	}

	for _, path := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := r.processGame(pair, path, games, players, report); err != nil {
			return err
		}
	}

	if err := gamesBuf.Flush(); err != nil {
		return err
	}
	return playersBuf.Flush()
}

func (r *Runner) processGame(pair archive.SeasonPair, path string, games *rdf.GamesWriter, players *rdf.PlayerExtractor, report *Report) error {
	game, err := r.store.LoadGameFile(path)
	if err != nil {
		logging.Warn(r.logger, "unreadable game document",
			slog.String(logging.FieldPath, path), "error", err)
		return nil
	}
	if game.Identifier == "" {
		return nil
	}

	stats, err := r.store.LoadStats(pair.StatsDir, game.GameCode)
	if err != nil {
		if errors.Is(err, archive.ErrStatsNotFound) {
			r.skip(report, derive.SkipMissingStatsFile, game.GameCode, pair.SeasonID)
			return nil
		}
		logging.Warn(r.logger, "unreadable stats document",
			slog.String(logging.FieldSeason, pair.SeasonID),
			slog.Int(logging.FieldGameCode, game.GameCode),
			"error", err)
		return nil
	}

	if reason := derive.Classify(game, stats); reason != derive.SkipNone {
		r.skip(report, reason, game.GameCode, pair.SeasonID)
		return nil
	}

	record := r.engine.Derive(game, stats)
	if err := games.WriteGame(record); err != nil {
		return err
	}
	if _, err := players.WriteFrom(stats); err != nil {
		return err
	}

	report.Emitted++
	r.metrics.RecordGameEmitted()
	return nil
}

func (r *Runner) skip(report *Report, reason derive.SkipReason, code int, season string) {
	report.Skipped[reason]++
	r.metrics.RecordGameSkipped(string(reason))
	logging.Info(r.logger, "skipping game",
		slog.String(logging.FieldSeason, season),
		slog.Int(logging.FieldGameCode, code),
		slog.String(logging.FieldReason, string(reason)),
	)
}
