package metrics

import (
	"sync"
	"time"
)

type opStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls
// and pipeline progress. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*opStats

	gamesFetched int
	gamesFailed  int
	emitted      int
	skipped      map[string]int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*opStats),
		skipped: make(map[string]int),
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(op)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(op, duration, err)
	}
}

// RecordRateLimit tracks that a response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(op string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(op)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(op, retryAfter)
	}
}

// RecordGameFetched counts a (game, stats) document pair durably stored.
func (r *Recorder) RecordGameFetched() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.gamesFetched++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGameFetched()
	}
}

// RecordGameFailed counts a game dropped after exhausting retries.
func (r *Recorder) RecordGameFailed() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.gamesFailed++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGameFailed()
	}
}

// RecordGameEmitted counts a derived record produced by the engine.
func (r *Recorder) RecordGameEmitted() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.emitted++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGameEmitted()
	}
}

// RecordGameSkipped counts a game the engine excluded, by reason.
func (r *Recorder) RecordGameSkipped(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.skipped[reason]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGameSkipped(reason)
	}
}

func (r *Recorder) ensureStats(op string) *opStats {
	stats, ok := r.stats[op]
	if !ok {
		stats = &opStats{}
		r.stats[op] = stats
	}
	return stats
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureStats(op)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ProviderCalls returns the total attempts recorded for an operation.
func (r *Recorder) ProviderCalls(op string) int {
	return r.Snapshot(op).Calls
}

// ProviderErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) ProviderErrors(op string) int {
	return r.Snapshot(op).Errors
}

// RateLimitHits returns the number of rate limit events seen for an operation.
func (r *Recorder) RateLimitHits(op string) int {
	return r.Snapshot(op).RateLimitHits
}

// GamesFetched returns the number of stored document pairs.
func (r *Recorder) GamesFetched() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gamesFetched
}

// GamesFailed returns the number of games dropped after retries.
func (r *Recorder) GamesFailed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gamesFailed
}

// GamesEmitted returns the number of derived records produced.
func (r *Recorder) GamesEmitted() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emitted
}

// GamesSkipped returns the number of games excluded for the given reason.
func (r *Recorder) GamesSkipped(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped[reason]
}
