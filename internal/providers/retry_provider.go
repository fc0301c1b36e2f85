package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"euroleague-data-service/internal/domain/feed"
	"euroleague-data-service/internal/logging"
	"euroleague-data-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 2000 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a FeedProvider with retry/backoff behavior.
// Rate-limit responses and transport failures back off linearly
// (attempt x base) and consume an attempt; the final attempt's failure
// surfaces wrapped in ErrProviderUnavailable.
type retryingProvider struct {
	inner       FeedProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner FeedProvider, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) FeedProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) ListSeasons(ctx context.Context) ([]feed.Season, error) {
	var seasons []feed.Season
	err := r.do(ctx, "seasons", func(ctx context.Context) error {
		var innerErr error
		seasons, innerErr = r.inner.ListSeasons(ctx)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *retryingProvider) ListGameCodes(ctx context.Context, season string) ([]int, error) {
	var codes []int
	err := r.do(ctx, "games", func(ctx context.Context) error {
		var innerErr error
		codes, innerErr = r.inner.ListGameCodes(ctx, season)
		return innerErr
	}, slog.String(logging.FieldSeason, season))
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *retryingProvider) FetchGame(ctx context.Context, season string, code int) (*feed.GameDocument, *feed.StatsDocument, error) {
	var (
		game  *feed.GameDocument
		stats *feed.StatsDocument
	)
	err := r.do(ctx, "game", func(ctx context.Context) error {
		var innerErr error
		game, stats, innerErr = r.inner.FetchGame(ctx, season, code)
		return innerErr
	}, slog.String(logging.FieldSeason, season), slog.Int(logging.FieldGameCode, code))
	if err != nil {
		return nil, nil, err
	}
	return game, stats, nil
}

func (r *retryingProvider) do(ctx context.Context, op string, call func(context.Context) error, attrs ...any) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := call(ctx)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(op, time.Since(start), err)
		}
		if err == nil {
			return nil
		}
		lastErr = err

		if rl, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(op, rl.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn("provider fetch retry", append(attrs,
			slog.String("op", op),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Int(logging.FieldStatusCode, StatusCodeOf(err)),
			"err", err,
		)...)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn("provider fetch failed", append(attrs,
		slog.String("op", op),
		slog.Int("attempts", r.maxAttempts),
		"err", lastErr,
	)...)
	return fmt.Errorf("%s: %w after %d attempts: %w", op, ErrProviderUnavailable, r.maxAttempts, lastErr)
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
