package config

import "time"

const (
	envDataDir      = "DATA_DIR"
	envOutputDir    = "OUTPUT_DIR"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDataDir     = "data"
	defaultOutputDir   = "output"
	defaultMetricsPort = "9090"

	envFetchAttempts = "FETCH_MAX_ATTEMPTS"
	envFetchBackoff  = "FETCH_RETRY_BACKOFF"
	envGamePause     = "FETCH_GAME_PAUSE"
	envStatsPause    = "FETCH_STATS_PAUSE"
	envFetchSeasons  = "FETCH_SEASONS"

	defaultFetchAttempts = 3
	// Linear backoff base on retry; the upstream API throttles aggressively.
	defaultFetchBackoff = 2000 * Duration(time.Millisecond)
	// Pause between successive games within a season to smooth request rate.
	defaultGamePause = 500 * Duration(time.Millisecond)
	// Pause between the game call and its stats call.
	defaultStatsPause = 200 * Duration(time.Millisecond)
)

// FetchConfig controls retry/pacing behavior of the fetch pipeline.
type FetchConfig struct {
	MaxAttempts  int
	RetryBackoff Duration
	GamePause    Duration
	StatsPause   Duration
	// Seasons restricts the run to the listed season codes; empty means all.
	Seasons []string
}

func loadFetch() FetchConfig {
	return FetchConfig{
		MaxAttempts:  intEnvOrDefault(envFetchAttempts, defaultFetchAttempts),
		RetryBackoff: durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
		GamePause:    durationEnvOrDefault(envGamePause, defaultGamePause),
		StatsPause:   durationEnvOrDefault(envStatsPause, defaultStatsPause),
		Seasons:      listEnvOrDefault(envFetchSeasons, nil),
	}
}
