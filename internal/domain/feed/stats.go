package feed

// Country identifies a nationality in a person block.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Person identifies a player in a roster entry, including the biographic
// fields the feed embeds alongside the name. Height is centimeters;
// BirthDate carries the feed's full timestamp form.
type Person struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	JerseyName   string   `json:"jerseyName"`
	Country      *Country `json:"country"`
	BirthCountry *Country `json:"birthCountry"`
	Height       float64  `json:"height"`
	Weight       int      `json:"weight"`
	BirthDate    string   `json:"birthDate"`
}

// PlayerImages carries the image URLs attached to a roster entry.
type PlayerImages struct {
	Headshot string `json:"headshot"`
}

// PlayerRef ties a person to their listed position.
type PlayerRef struct {
	Person       Person        `json:"person"`
	PositionName string        `json:"positionName"`
	Images       *PlayerImages `json:"images"`
}

// Coach identifies a side's head coach.
type Coach struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RawStatline is the flat counting-stat block the API reports for a
// player, a team aggregate, or a whole-side total. TimePlayed is seconds.
type RawStatline struct {
	TimePlayed           int  `json:"timePlayed"`
	Dorsal               int  `json:"dorsal"`
	StartFive            bool `json:"startFive"`
	Valuation            int  `json:"valuation"`
	Points               int  `json:"points"`
	FieldGoalsMade2      int  `json:"fieldGoalsMade2"`
	FieldGoalsAttempted2 int  `json:"fieldGoalsAttempted2"`
	FieldGoalsMade3      int  `json:"fieldGoalsMade3"`
	FieldGoalsAttempted3 int  `json:"fieldGoalsAttempted3"`
	FreeThrowsMade       int  `json:"freeThrowsMade"`
	FreeThrowsAttempted  int  `json:"freeThrowsAttempted"`
	TotalRebounds        int  `json:"totalRebounds"`
	DefensiveRebounds    int  `json:"defensiveRebounds"`
	OffensiveRebounds    int  `json:"offensiveRebounds"`
	Assistances          int  `json:"assistances"`
	Steals               int  `json:"steals"`
	Turnovers            int  `json:"turnovers"`
	BlocksFavour         int  `json:"blocksFavour"`
	BlocksAgainst        int  `json:"blocksAgainst"`
	FoulsCommited        int  `json:"foulsCommited"`
	FoulsReceived        int  `json:"foulsReceived"`
	PlusMinus            int  `json:"plusMinus"`
}

// PlayerEntry is one roster participation with its individual statline.
type PlayerEntry struct {
	Player PlayerRef   `json:"player"`
	Stats  RawStatline `json:"stats"`
}

// StatsSide is one side (local/road) of a stats document.
type StatsSide struct {
	Coach   *Coach        `json:"coach"`
	Players []PlayerEntry `json:"players"`
	Team    *RawStatline  `json:"team"`
	Total   *RawStatline  `json:"total"`
}

// Empty reports whether the side carries no statistics at all: no coach,
// no players, and neither aggregate block present.
func (s StatsSide) Empty() bool {
	return s.Coach == nil && len(s.Players) == 0 && s.Team == nil && s.Total == nil
}

// StatsDocument is the raw per-game statistics payload. Immutable once fetched.
type StatsDocument struct {
	Local StatsSide `json:"local"`
	Road  StatsSide `json:"road"`
}
