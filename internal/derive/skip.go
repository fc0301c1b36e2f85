package derive

import "euroleague-data-service/internal/domain/feed"

// SkipReason classifies why a game is excluded from derivation.
type SkipReason string

const (
	// SkipNone marks an eligible game.
	SkipNone SkipReason = ""
	// SkipNotPlayed marks a game whose played flag is explicitly false.
	SkipNotPlayed SkipReason = "not-played"
	// SkipNoStats marks a game where both sides carry no statistics.
	SkipNoStats SkipReason = "no-stats-data"
	// SkipZeroScore marks a placeholder payload: both scores zero, all
	// quarter partials zero, no overtime on either side.
	SkipZeroScore SkipReason = "zero-score-placeholder"
	// SkipMissingStatsFile marks an otherwise eligible game whose stats
	// document is absent on disk.
	SkipMissingStatsFile SkipReason = "missing-stats-file"
)

// Classify decides whether a paired (game, stats) document is eligible
// for derivation, returning SkipNone when it is.
func Classify(game *feed.GameDocument, stats *feed.StatsDocument) SkipReason {
	if !game.IsPlayed() {
		return SkipNotPlayed
	}
	if stats == nil {
		return SkipMissingStatsFile
	}
	if stats.Local.Empty() && stats.Road.Empty() {
		return SkipNoStats
	}
	if game.Local.Score == 0 && game.Road.Score == 0 &&
		partialsEmpty(game.Local.Partials) && partialsEmpty(game.Road.Partials) {
		return SkipZeroScore
	}
	return SkipNone
}

func partialsEmpty(p feed.Partials) bool {
	return p.Quarter1 == 0 && p.Quarter2 == 0 && p.Quarter3 == 0 && p.Quarter4 == 0 &&
		len(p.ExtraPeriods) == 0
}
