package derive

import (
	"log/slog"

	"euroleague-data-service/internal/domain/boxscore"
	"euroleague-data-service/internal/domain/feed"
	"euroleague-data-service/internal/logging"
)

// Engine derives normalized boxscore records from paired raw documents.
// It is purely functional over its inputs: no network, no shared state
// across games.
type Engine struct {
	logger *slog.Logger
}

// NewEngine constructs a derivation engine.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Derive assembles the normalized record for one eligible game. Callers
// are expected to run Classify first; Derive does not re-check eligibility.
func (e *Engine) Derive(game *feed.GameDocument, stats *feed.StatsDocument) boxscore.Game {
	homeScore := game.Local.Score
	awayScore := game.Road.Score
	winner, loser := e.winnerLoser(game)

	return boxscore.Game{
		SeasonCode:  game.Season.Code,
		SeasonAlias: game.Season.Alias,
		GameCode:    game.GameCode,
		Round:       game.Round,
		Phase:       game.PhaseType.Name,
		Group:       game.Group.RawName,
		Date:        game.LocalDate,
		VenueCode:   game.Venue.Code,
		Audience:    game.Audience,
		Referees:    game.Referees(),
		HomeScore:   homeScore,
		AwayScore:   awayScore,
		Overtime:    len(game.Local.Partials.ExtraPeriods) > 0,
		WinnerCode:  winner,
		LoserCode:   loser,
		Home:        buildTeamBoxscore(game.Local, stats.Local),
		Away:        buildTeamBoxscore(game.Road, stats.Road),
	}
}

// winnerLoser resolves the winner strictly by final score. A tie cannot
// occur in a finished basketball game but is not validated upstream; it
// resolves to the away team and is logged so bad payloads surface.
func (e *Engine) winnerLoser(game *feed.GameDocument) (winner, loser string) {
	home := game.Local.Club.Code
	away := game.Road.Club.Code
	if game.Local.Score == game.Road.Score {
		logging.Warn(e.logger, "tied final score in source data",
			slog.Int(logging.FieldGameCode, game.GameCode),
			slog.String(logging.FieldSeason, game.Season.Code),
		)
	}
	if game.Local.Score > game.Road.Score {
		return home, away
	}
	return away, home
}

func buildTeamBoxscore(side feed.GameSide, stats feed.StatsSide) boxscore.TeamBoxscore {
	var total feed.RawStatline
	if stats.Total != nil {
		total = *stats.Total
	}

	box := boxscore.TeamBoxscore{
		TeamCode: side.Club.Code,
		Statline: teamStatline(total, side.Partials),
		Players:  make([]boxscore.PlayerParticipation, 0, len(stats.Players)),
	}
	if stats.Coach != nil {
		box.CoachCode = stats.Coach.Code
	}

	for _, entry := range stats.Players {
		box.Players = append(box.Players, buildParticipation(entry))
	}
	return box
}

// buildParticipation maps one roster entry. A zero recorded played-time
// means "did not play": identity fields only, no statline.
func buildParticipation(entry feed.PlayerEntry) boxscore.PlayerParticipation {
	p := boxscore.PlayerParticipation{
		PlayerCode:   entry.Player.Person.Code,
		JerseyName:   entry.Player.Person.JerseyName,
		JerseyNumber: entry.Stats.Dorsal,
		Position:     entry.Player.PositionName,
		StartingFive: entry.Stats.StartFive,
		DNP:          entry.Stats.TimePlayed == 0,
	}
	if !p.DNP {
		sl := playerStatline(entry.Stats)
		p.Statline = &sl
	}
	return p
}
