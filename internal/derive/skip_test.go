package derive

import (
	"encoding/json"
	"testing"

	"euroleague-data-service/internal/domain/feed"
)

func boolPtr(b bool) *bool { return &b }

func playedGame(homeScore, awayScore int) *feed.GameDocument {
	return &feed.GameDocument{
		Played: boolPtr(true),
		Local: feed.GameSide{
			Score:    homeScore,
			Partials: feed.Partials{Quarter1: homeScore},
		},
		Road: feed.GameSide{
			Score:    awayScore,
			Partials: feed.Partials{Quarter1: awayScore},
		},
	}
}

func statsWithPlayers() *feed.StatsDocument {
	return &feed.StatsDocument{
		Local: feed.StatsSide{
			Players: []feed.PlayerEntry{{Player: feed.PlayerRef{Person: feed.Person{Code: "P001"}}}},
			Total:   &feed.RawStatline{Points: 80},
		},
		Road: feed.StatsSide{
			Players: []feed.PlayerEntry{{Player: feed.PlayerRef{Person: feed.Person{Code: "P002"}}}},
			Total:   &feed.RawStatline{Points: 75},
		},
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		game  *feed.GameDocument
		stats *feed.StatsDocument
		want  SkipReason
	}{
		{
			name:  "eligible game",
			game:  playedGame(80, 75),
			stats: statsWithPlayers(),
			want:  SkipNone,
		},
		{
			name:  "explicitly not played",
			game:  &feed.GameDocument{Played: boolPtr(false)},
			stats: statsWithPlayers(),
			want:  SkipNotPlayed,
		},
		{
			name: "absent played flag counts as played",
			game: &feed.GameDocument{
				Local: feed.GameSide{Score: 80, Partials: feed.Partials{Quarter1: 80}},
				Road:  feed.GameSide{Score: 75, Partials: feed.Partials{Quarter1: 75}},
			},
			stats: statsWithPlayers(),
			want:  SkipNone,
		},
		{
			name:  "missing stats document",
			game:  playedGame(80, 75),
			stats: nil,
			want:  SkipMissingStatsFile,
		},
		{
			name:  "both sides empty",
			game:  playedGame(80, 75),
			stats: &feed.StatsDocument{},
			want:  SkipNoStats,
		},
		{
			name:  "zero score placeholder",
			game:  &feed.GameDocument{Played: boolPtr(true)},
			stats: statsWithPlayers(),
			want:  SkipZeroScore,
		},
		{
			name: "zero score but a quarter partial recorded",
			game: &feed.GameDocument{
				Played: boolPtr(true),
				Local:  feed.GameSide{Partials: feed.Partials{Quarter1: 2}},
			},
			stats: statsWithPlayers(),
			want:  SkipNone,
		},
		{
			name: "zero score but overtime recorded",
			game: &feed.GameDocument{
				Played: boolPtr(true),
				Local:  feed.GameSide{Partials: feed.Partials{ExtraPeriods: map[string]int{"1": 2}}},
			},
			stats: statsWithPlayers(),
			want:  SkipNone,
		},
		{
			name: "one side with stats is eligible",
			game: playedGame(20, 0),
			stats: &feed.StatsDocument{
				Local: feed.StatsSide{Total: &feed.RawStatline{Points: 20}},
			},
			want: SkipNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.game, tc.stats); got != tc.want {
				t.Fatalf("Classify = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassifyDecodedDocumentWithoutPlayedField(t *testing.T) {
	raw := `{
		"identifier": "E2023_12",
		"gameCode": 12,
		"local": {"score": 80, "partials": {"partials1": 20, "partials2": 20, "partials3": 20, "partials4": 20}},
		"road":  {"score": 75, "partials": {"partials1": 19, "partials2": 19, "partials3": 19, "partials4": 18}}
	}`
	var game feed.GameDocument
	if err := json.Unmarshal([]byte(raw), &game); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if game.Played != nil {
		t.Fatal("expected an absent flag to decode to nil")
	}

	if got := Classify(&game, statsWithPlayers()); got != SkipNone {
		t.Fatalf("Classify = %q, want eligible", got)
	}
}

func TestNotPlayedWinsOverMissingStats(t *testing.T) {
	game := &feed.GameDocument{Played: boolPtr(false)}
	if got := Classify(game, nil); got != SkipNotPlayed {
		t.Fatalf("Classify = %q, want %q", got, SkipNotPlayed)
	}
}
