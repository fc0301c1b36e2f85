package euroleague

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"euroleague-data-service/internal/domain/feed"
	"euroleague-data-service/internal/providers"
)

// Config controls how the euroleague client reaches the live API.
type Config struct {
	BaseURL     string
	Competition string
	HTTPClient  *http.Client
	StatsPause  time.Duration
}

// Client fetches seasons, game listings and per-game documents from the
// EuroLeague live API.
type Client struct {
	baseURL     string
	competition string
	httpClient  httpDoer
	statsPause  time.Duration
}

// NewClient constructs a euroleague client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		competition: resolveCompetition(cfg.Competition),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		statsPause:  resolveStatsPause(cfg.StatsPause),
	}
}

// ListSeasons retrieves every season of the configured competition.
func (c *Client) ListSeasons(ctx context.Context) ([]feed.Season, error) {
	var payload feed.SeasonsResponse
	if err := c.getJSON(ctx, c.seasonsURL(), &payload); err != nil {
		return nil, err
	}

	seasons := make([]feed.Season, 0, len(payload.Data))
	for _, s := range payload.Data {
		if s.Code == "" {
			continue
		}
		seasons = append(seasons, s)
	}
	if len(seasons) == 0 {
		return nil, fmt.Errorf("%s: no seasons data found", providerName)
	}
	return seasons, nil
}

// ListGameCodes retrieves the game codes of a season. A season with no
// games yields an empty slice.
func (c *Client) ListGameCodes(ctx context.Context, season string) ([]int, error) {
	var payload feed.GamesResponse
	if err := c.getJSON(ctx, c.gamesURL(season), &payload); err != nil {
		return nil, err
	}

	codes := make([]int, 0, len(payload.Data))
	for _, g := range payload.Data {
		if g.GameCode > 0 {
			codes = append(codes, g.GameCode)
		}
	}
	return codes, nil
}

// FetchGame retrieves the game document and its statistics document for
// one game code, with a short pause between the two calls to respect
// upstream rate limits.
func (c *Client) FetchGame(ctx context.Context, season string, code int) (*feed.GameDocument, *feed.StatsDocument, error) {
	var game feed.GameDocument
	if err := c.getJSON(ctx, c.gameURL(season, code), &game); err != nil {
		return nil, nil, err
	}

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case <-time.After(c.statsPause):
	}

	var stats feed.StatsDocument
	if err := c.getJSON(ctx, c.gameURL(season, code)+"/stats", &stats); err != nil {
		return nil, nil, err
	}
	return &game, &stats, nil
}

func (c *Client) seasonsURL() string {
	return fmt.Sprintf("%s/competitions/%s/seasons", c.baseURL, c.competition)
}

func (c *Client) gamesURL(season string) string {
	return c.seasonsURL() + "/" + season + "/games"
}

func (c *Client) gameURL(season string, code int) string {
	return c.gamesURL(season) + "/" + strconv.Itoa(code)
}

func (c *Client) getJSON(ctx context.Context, url string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
