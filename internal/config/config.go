package config

// Config holds runtime configuration for the fetch and derive binaries.
type Config struct {
	DataDir    string
	OutputDir  string
	Euroleague EuroleagueConfig
	Fetch      FetchConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DataDir:    envOrDefault(envDataDir, defaultDataDir),
		OutputDir:  envOrDefault(envOutputDir, defaultOutputDir),
		Euroleague: loadEuroleague(),
		Fetch:      loadFetch(),
		Metrics:    loadMetrics(),
	}
}
