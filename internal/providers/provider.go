package providers

import (
	"context"

	"euroleague-data-service/internal/domain/feed"
)

// FeedProvider defines how upstream season and game data is fetched.
// Implementations return feed shapes exactly as the upstream reports them;
// derivation happens downstream.
type FeedProvider interface {
	// ListSeasons returns every season the competition exposes.
	ListSeasons(ctx context.Context) ([]feed.Season, error)

	// ListGameCodes returns the game codes of a season, in upstream order.
	// A season with no games yields an empty slice, not an error.
	ListGameCodes(ctx context.Context, season string) ([]int, error)

	// FetchGame retrieves the game document and its statistics document
	// for one game code. Both documents are fetched in sequence.
	FetchGame(ctx context.Context, season string, code int) (*feed.GameDocument, *feed.StatsDocument, error)
}
