package euroleague

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveCompetition(code string) string {
	if code == "" {
		return defaultCompetition
	}
	return code
}

func resolveStatsPause(pause time.Duration) time.Duration {
	if pause <= 0 {
		return defaultStatsPause
	}
	return pause
}
