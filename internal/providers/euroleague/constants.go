package euroleague

import "time"

const (
	providerName = "euroleague"

	defaultBaseURL     = "https://api-live.euroleague.net/v2"
	defaultCompetition = "E"
	defaultHTTPTimeout = 60 * time.Second
	// Fixed delay between the game call and its stats call, independent
	// of the retry mechanism.
	defaultStatsPause = 200 * time.Millisecond
)
