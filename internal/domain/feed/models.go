package feed

// Season describes one competition year as returned by the seasons listing.
type Season struct {
	Code  string `json:"code"`
	Alias string `json:"alias"`
	Year  int    `json:"year"`
}

// SeasonsResponse is the payload of the seasons listing endpoint.
type SeasonsResponse struct {
	Data []Season `json:"data"`
}

// GameRef identifies one game within a season's game listing.
type GameRef struct {
	GameCode int `json:"gameCode"`
}

// GamesResponse is the payload of the per-season games listing endpoint.
type GamesResponse struct {
	Data []GameRef `json:"data"`
}

// SeasonRef is the season block embedded in a game document.
type SeasonRef struct {
	Alias string `json:"alias"`
	Code  string `json:"code"`
}

// PhaseType carries the competition phase name (Regular Season, Playoffs, ...).
type PhaseType struct {
	Name string `json:"name"`
}

// Group carries the raw group name within a phase.
type Group struct {
	RawName string `json:"rawName"`
}

// Venue identifies the arena a game was played in.
type Venue struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Referee identifies one of up to four game officials.
type Referee struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Club identifies a competing team.
type Club struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Partials holds a side's four quarter scores plus any overtime periods.
// ExtraPeriods is a sparse 1-indexed mapping of period number to points.
type Partials struct {
	Quarter1     int            `json:"partials1"`
	Quarter2     int            `json:"partials2"`
	Quarter3     int            `json:"partials3"`
	Quarter4     int            `json:"partials4"`
	ExtraPeriods map[string]int `json:"extraPeriods"`
}

// GameSide is one side (local/road) of a game document.
type GameSide struct {
	Club     Club     `json:"club"`
	Score    int      `json:"score"`
	Partials Partials `json:"partials"`
}

// GameDocument is the raw per-game payload. Immutable once fetched.
// Played is a pointer so an absent flag stays distinguishable from an
// explicit false; see IsPlayed.
type GameDocument struct {
	Identifier string    `json:"identifier"`
	GameCode   int       `json:"gameCode"`
	Played     *bool     `json:"played"`
	Season     SeasonRef `json:"season"`
	Round      int       `json:"round"`
	PhaseType  PhaseType `json:"phaseType"`
	Group      Group     `json:"group"`
	LocalDate  string    `json:"localDate"`
	Venue      Venue     `json:"venue"`
	Audience   int       `json:"audience"`
	Referee1   *Referee  `json:"referee1"`
	Referee2   *Referee  `json:"referee2"`
	Referee3   *Referee  `json:"referee3"`
	Referee4   *Referee  `json:"referee4"`
	Local      GameSide  `json:"local"`
	Road       GameSide  `json:"road"`
}

// IsPlayed reports whether the game was played. A document that omits
// the flag counts as played; only an explicit false excludes a game.
func (g GameDocument) IsPlayed() bool {
	return g.Played == nil || *g.Played
}

// Referees returns the codes of the assigned officials, skipping empty slots.
func (g GameDocument) Referees() []string {
	var codes []string
	for _, r := range []*Referee{g.Referee1, g.Referee2, g.Referee3, g.Referee4} {
		if r != nil && r.Code != "" {
			codes = append(codes, r.Code)
		}
	}
	return codes
}
