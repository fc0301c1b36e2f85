package derive

import (
	"testing"

	"euroleague-data-service/internal/domain/feed"
)

func sampleGame() *feed.GameDocument {
	return &feed.GameDocument{
		Identifier: "E2023_22",
		GameCode:   22,
		Played:     boolPtr(true),
		Season:     feed.SeasonRef{Code: "E2023", Alias: "2023-24"},
		Round:      5,
		PhaseType:  feed.PhaseType{Name: "Regular Season"},
		Group:      feed.Group{RawName: "Regular"},
		LocalDate:  "2023-11-02",
		Venue:      feed.Venue{Code: "PAL", Name: "Palau"},
		Audience:   9500,
		Referee1:   &feed.Referee{Code: "REF1"},
		Referee2:   &feed.Referee{Code: "REF2"},
		Local: feed.GameSide{
			Club:     feed.Club{Code: "BAR"},
			Score:    93,
			Partials: feed.Partials{Quarter1: 21, Quarter2: 22, Quarter3: 20, Quarter4: 22, ExtraPeriods: map[string]int{"1": 8}},
		},
		Road: feed.GameSide{
			Club:     feed.Club{Code: "MAD"},
			Score:    90,
			Partials: feed.Partials{Quarter1: 20, Quarter2: 23, Quarter3: 22, Quarter4: 20, ExtraPeriods: map[string]int{"1": 5}},
		},
	}
}

func sampleStats() *feed.StatsDocument {
	return &feed.StatsDocument{
		Local: feed.StatsSide{
			Coach: &feed.Coach{Code: "C001"},
			Players: []feed.PlayerEntry{
				{
					Player: feed.PlayerRef{Person: feed.Person{Code: "P001", JerseyName: "VESELY"}, PositionName: "Center"},
					Stats:  feed.RawStatline{TimePlayed: 1500, Dorsal: 24, StartFive: true, Points: 18, FieldGoalsMade2: 7, FieldGoalsAttempted2: 10, FreeThrowsMade: 4, FreeThrowsAttempted: 5},
				},
				{
					Player: feed.PlayerRef{Person: feed.Person{Code: "P002", JerseyName: "BENCH"}},
					Stats:  feed.RawStatline{TimePlayed: 0, Dorsal: 13},
				},
			},
			Total: &feed.RawStatline{TimePlayed: 13500, Points: 93, FieldGoalsMade2: 25, FieldGoalsAttempted2: 45, FieldGoalsMade3: 10, FieldGoalsAttempted3: 28},
		},
		Road: feed.StatsSide{
			Coach: &feed.Coach{Code: "C002"},
			Players: []feed.PlayerEntry{
				{
					Player: feed.PlayerRef{Person: feed.Person{Code: "P010", JerseyName: "LLULL"}, PositionName: "Guard"},
					Stats:  feed.RawStatline{TimePlayed: 1800, Dorsal: 23, Points: 25},
				},
			},
			Total: &feed.RawStatline{TimePlayed: 13500, Points: 90},
		},
	}
}

func TestDeriveAssemblesGame(t *testing.T) {
	engine := NewEngine(nil)
	game := engine.Derive(sampleGame(), sampleStats())

	if game.SeasonCode != "E2023" || game.SeasonAlias != "2023-24" || game.GameCode != 22 {
		t.Fatalf("unexpected identity %+v", game)
	}
	if game.HomeScore != 93 || game.AwayScore != 90 {
		t.Fatalf("unexpected scores %d-%d", game.HomeScore, game.AwayScore)
	}
	if game.WinnerCode != "BAR" || game.LoserCode != "MAD" {
		t.Fatalf("unexpected winner/loser %s/%s", game.WinnerCode, game.LoserCode)
	}
	if !game.Overtime {
		t.Fatal("expected overtime flag")
	}
	if len(game.Referees) != 2 || game.Referees[0] != "REF1" || game.Referees[1] != "REF2" {
		t.Fatalf("unexpected referees %v", game.Referees)
	}
	if game.Home.TeamCode != "BAR" || game.Home.CoachCode != "C001" {
		t.Fatalf("unexpected home team %+v", game.Home)
	}
	if game.Away.TeamCode != "MAD" || game.Away.CoachCode != "C002" {
		t.Fatalf("unexpected away team %+v", game.Away)
	}
}

func TestDeriveAwayTeamWinner(t *testing.T) {
	doc := sampleGame()
	doc.Local.Score = 70
	doc.Road.Score = 85

	game := NewEngine(nil).Derive(doc, sampleStats())
	if game.WinnerCode != "MAD" || game.LoserCode != "BAR" {
		t.Fatalf("unexpected winner/loser %s/%s", game.WinnerCode, game.LoserCode)
	}
}

func TestDeriveTieResolvesToAwayTeam(t *testing.T) {
	doc := sampleGame()
	doc.Local.Score = 80
	doc.Road.Score = 80

	game := NewEngine(nil).Derive(doc, sampleStats())
	if game.WinnerCode != "MAD" || game.LoserCode != "BAR" {
		t.Fatalf("unexpected winner/loser on tie %s/%s", game.WinnerCode, game.LoserCode)
	}
}

func TestDeriveMarksDidNotPlay(t *testing.T) {
	game := NewEngine(nil).Derive(sampleGame(), sampleStats())

	if len(game.Home.Players) != 2 {
		t.Fatalf("expected two home players, got %d", len(game.Home.Players))
	}

	starter := game.Home.Players[0]
	if starter.DNP || starter.Statline == nil {
		t.Fatalf("expected starter with a statline, got %+v", starter)
	}
	if !starter.StartingFive || starter.JerseyNumber != 24 || starter.Position != "Center" {
		t.Fatalf("unexpected starter identity %+v", starter)
	}
	if starter.Statline.Minutes != 25 {
		t.Fatalf("unexpected minutes %v", starter.Statline.Minutes)
	}
	if starter.Statline.FreeThrowsPct != 80 {
		t.Fatalf("unexpected free throw percentage %v", starter.Statline.FreeThrowsPct)
	}

	bench := game.Home.Players[1]
	if !bench.DNP {
		t.Fatal("expected bench player with zero time marked DNP")
	}
	if bench.Statline != nil {
		t.Fatal("expected no statline for a DNP player")
	}
	if bench.PlayerCode != "P002" || bench.JerseyNumber != 13 {
		t.Fatalf("expected identity fields kept on DNP, got %+v", bench)
	}
}

func TestDeriveTeamRunningTotalsMatchScore(t *testing.T) {
	game := NewEngine(nil).Derive(sampleGame(), sampleStats())

	home := game.Home.Statline
	if home.EndOfQuarter != [4]int{21, 43, 63, 85} {
		t.Fatalf("unexpected home running totals %v", home.EndOfQuarter)
	}
	if len(home.OvertimePoints) != 1 || home.OvertimePoints[0] != 8 {
		t.Fatalf("unexpected home overtime points %v", home.OvertimePoints)
	}
	if len(home.EndOfOvertime) != 1 || home.EndOfOvertime[0] != game.HomeScore {
		t.Fatalf("expected final running total %d to equal score %d", home.EndOfOvertime[0], game.HomeScore)
	}

	away := game.Away.Statline
	if away.EndOfOvertime[len(away.EndOfOvertime)-1] != game.AwayScore {
		t.Fatalf("away final running total %v does not match score %d", away.EndOfOvertime, game.AwayScore)
	}
}

func TestDeriveToleratesMissingTotals(t *testing.T) {
	stats := sampleStats()
	stats.Road.Total = nil

	game := NewEngine(nil).Derive(sampleGame(), stats)
	if game.Away.Statline.Points != 0 {
		t.Fatalf("expected zero aggregate without totals, got %+v", game.Away.Statline)
	}
	if len(game.Away.Players) != 1 {
		t.Fatalf("expected roster preserved, got %d players", len(game.Away.Players))
	}
}

func TestDeriveRegulationGameHasNoOvertime(t *testing.T) {
	doc := sampleGame()
	doc.Local.Partials.ExtraPeriods = nil
	doc.Road.Partials.ExtraPeriods = nil
	doc.Local.Score = 85
	doc.Road.Score = 82

	game := NewEngine(nil).Derive(doc, sampleStats())
	if game.Overtime {
		t.Fatal("expected no overtime flag")
	}
	if len(game.Home.Statline.OvertimePoints) != 0 || len(game.Home.Statline.EndOfOvertime) != 0 {
		t.Fatalf("expected empty overtime sequences, got %+v", game.Home.Statline)
	}
}
