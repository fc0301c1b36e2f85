package config

const (
	envElBaseURL     = "EUROLEAGUE_BASE_URL"
	envElCompetition = "EUROLEAGUE_COMPETITION"

	defaultElBaseURL     = "https://api-live.euroleague.net/v2"
	defaultElCompetition = "E"
)

// EuroleagueConfig controls how we talk to the EuroLeague live API.
type EuroleagueConfig struct {
	BaseURL     string
	Competition string
}

func loadEuroleague() EuroleagueConfig {
	return EuroleagueConfig{
		BaseURL:     envOrDefault(envElBaseURL, defaultElBaseURL),
		Competition: envOrDefault(envElCompetition, defaultElCompetition),
	}
}
