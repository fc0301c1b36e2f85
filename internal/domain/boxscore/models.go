package boxscore

// Statline is the full set of counting and derived statistics for one
// team or one player in one game. Quarter/overtime fields are populated
// for team statlines only; player statlines carry zero values there.
type Statline struct {
	Minutes              float64 `json:"minutes"`
	PIR                  int     `json:"pir"`
	Points               int     `json:"points"`
	FieldGoalsMade2      int     `json:"fieldGoalsMade2"`
	FieldGoalsAttempted2 int     `json:"fieldGoalsAttempted2"`
	FieldGoalsPct2       float64 `json:"fieldGoalsPct2"`
	FieldGoalsMade3      int     `json:"fieldGoalsMade3"`
	FieldGoalsAttempted3 int     `json:"fieldGoalsAttempted3"`
	FieldGoalsPct3       float64 `json:"fieldGoalsPct3"`
	FreeThrowsMade       int     `json:"freeThrowsMade"`
	FreeThrowsAttempted  int     `json:"freeThrowsAttempted"`
	FreeThrowsPct        float64 `json:"freeThrowsPct"`
	FieldGoalsMade       int     `json:"fieldGoalsMade"`
	FieldGoalsAttempted  int     `json:"fieldGoalsAttempted"`
	FieldGoalsPct        float64 `json:"fieldGoalsPct"`
	TotalRebounds        int     `json:"totalRebounds"`
	DefensiveRebounds    int     `json:"defensiveRebounds"`
	OffensiveRebounds    int     `json:"offensiveRebounds"`
	Assists              int     `json:"assists"`
	Steals               int     `json:"steals"`
	Turnovers            int     `json:"turnovers"`
	BlocksFor            int     `json:"blocksFor"`
	BlocksAgainst        int     `json:"blocksAgainst"`
	FoulsCommitted       int     `json:"foulsCommitted"`
	FoulsReceived        int     `json:"foulsReceived"`
	PlusMinus            int     `json:"plusMinus"`
	QuarterPoints        [4]int  `json:"quarterPoints,omitempty"`
	OvertimePoints       []int   `json:"overtimePoints,omitempty"`
	EndOfQuarter         [4]int  `json:"endOfQuarter,omitempty"`
	EndOfOvertime        []int   `json:"endOfOvertime,omitempty"`
}

// PlayerParticipation is one roster row on a boxscore. A participation
// carries a statline iff the player's recorded time is non-zero; DNP rows
// keep identity fields only.
type PlayerParticipation struct {
	PlayerCode   string    `json:"playerCode"`
	JerseyName   string    `json:"jerseyName"`
	JerseyNumber int       `json:"jerseyNumber"`
	Position     string    `json:"position,omitempty"`
	StartingFive bool      `json:"startingFive"`
	DNP          bool      `json:"dnp"`
	Statline     *Statline `json:"statline,omitempty"`
}

// TeamBoxscore is a side's aggregate game record: its statline, head
// coach and all player participations, in roster order.
type TeamBoxscore struct {
	TeamCode  string                `json:"teamCode"`
	CoachCode string                `json:"coachCode,omitempty"`
	Statline  Statline              `json:"statline"`
	Players   []PlayerParticipation `json:"players"`
}

// Game is the normalized record the derivation engine emits per eligible game.
type Game struct {
	SeasonCode  string       `json:"seasonCode"`
	SeasonAlias string       `json:"seasonAlias"`
	GameCode    int          `json:"gameCode"`
	Round       int          `json:"round"`
	Phase       string       `json:"phase"`
	Group       string       `json:"group"`
	Date        string       `json:"date"`
	VenueCode   string       `json:"venueCode"`
	Audience    int          `json:"audience"`
	Referees    []string     `json:"referees,omitempty"`
	HomeScore   int          `json:"homeScore"`
	AwayScore   int          `json:"awayScore"`
	Overtime    bool         `json:"overtime"`
	WinnerCode  string       `json:"winnerCode"`
	LoserCode   string       `json:"loserCode"`
	Home        TeamBoxscore `json:"home"`
	Away        TeamBoxscore `json:"away"`
}
