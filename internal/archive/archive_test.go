package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"euroleague-data-service/internal/domain/feed"
)

func boolPtr(b bool) *bool { return &b }

func TestWriterRoundTripsGameAndStats(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)
	store := NewFSStore(base)

	game := &feed.GameDocument{Identifier: "E2023_12", GameCode: 12, Played: boolPtr(true)}
	if err := w.WriteGame("E2023", 12, game); err != nil {
		t.Fatalf("write game: %v", err)
	}

	stats := &feed.StatsDocument{}
	if err := w.WriteStats("E2023", 12, stats); err != nil {
		t.Fatalf("write stats: %v", err)
	}

	got, err := store.LoadGameFile(GamePath(base, "E2023", 12))
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	if got.Identifier != "E2023_12" || got.GameCode != 12 || !got.IsPlayed() {
		t.Fatalf("unexpected game %+v", got)
	}

	if _, err := store.LoadStats(filepath.Join(base, StatsDirName("E2023")), 12); err != nil {
		t.Fatalf("load stats: %v", err)
	}
}

func TestWriterLeavesNoTempFile(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)

	if err := w.WriteGame("E2023", 3, &feed.GameDocument{GameCode: 3}); err != nil {
		t.Fatalf("write game: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(base, GamesDirName("E2023")))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "game_3.json" {
		t.Fatalf("unexpected directory contents %v", entries)
	}
}

func TestWriterSkipsRewriteOfIdenticalContent(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)
	doc := &feed.GameDocument{GameCode: 5, Played: boolPtr(true)}

	if err := w.WriteGame("E2023", 5, doc); err != nil {
		t.Fatalf("first write: %v", err)
	}
	path := GamePath(base, "E2023", 5)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if err := w.WriteGame("E2023", 5, doc); err != nil {
		t.Fatalf("second write: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("expected identical content to be left untouched")
	}
}

func TestSeasonsCacheRoundTrip(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)
	store := NewFSStore(base)

	if store.HasSeasons() {
		t.Fatal("expected no seasons cache in fresh directory")
	}

	seasons := []feed.Season{
		{Code: "E2022", Alias: "2022-23", Year: 2022},
		{Code: "E2023", Alias: "2023-24", Year: 2023},
	}
	if err := w.WriteSeasons(seasons); err != nil {
		t.Fatalf("write seasons: %v", err)
	}

	if !store.HasSeasons() {
		t.Fatal("expected seasons cache after write")
	}
	got, err := store.LoadSeasons()
	if err != nil {
		t.Fatalf("load seasons: %v", err)
	}
	if len(got) != 2 || got[0].Code != "E2022" || got[1].Alias != "2023-24" {
		t.Fatalf("unexpected seasons %+v", got)
	}
}

func TestLoadStatsMissingFile(t *testing.T) {
	base := t.TempDir()
	store := NewFSStore(base)
	statsDir := filepath.Join(base, StatsDirName("E2023"))
	if err := os.MkdirAll(statsDir, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := store.LoadStats(statsDir, 99)
	if !errors.Is(err, ErrStatsNotFound) {
		t.Fatalf("expected ErrStatsNotFound, got %v", err)
	}
}

func TestGameFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"game_2.json", "game_1.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := NewFSStore(dir).GameFiles(dir)
	if err != nil {
		t.Fatalf("game files: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "game_1.json" || filepath.Base(files[1]) != "game_2.json" {
		t.Fatalf("unexpected order %v", files)
	}
}

func TestDiscoverSeasonsPairsByID(t *testing.T) {
	base := t.TempDir()
	for _, dir := range []string{
		GamesDirName("E2022"),
		StatsDirName("E2022"),
		GamesDirName("E2023"),
		// no stats dir for E2023
		"stats_E2021", // no games dir for E2021
		"unrelated",
	} {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	pairs, err := DiscoverSeasons(base)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected one pair, got %+v", pairs)
	}
	p := pairs[0]
	if p.SeasonID != "2022" {
		t.Fatalf("unexpected season id %q", p.SeasonID)
	}
	if filepath.Base(p.GamesDir) != "games_E2022" || filepath.Base(p.StatsDir) != "stats_E2022" {
		t.Fatalf("unexpected pair %+v", p)
	}
}

func TestDiscoverSeasonsSortedBySeason(t *testing.T) {
	base := t.TempDir()
	for _, season := range []string{"E2023", "E2021", "E2022"} {
		if err := os.MkdirAll(filepath.Join(base, GamesDirName(season)), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Join(base, StatsDirName(season)), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	pairs, err := DiscoverSeasons(base)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("expected three pairs, got %d", len(pairs))
	}
	want := []string{"2021", "2022", "2023"}
	for i, p := range pairs {
		if p.SeasonID != want[i] {
			t.Fatalf("unexpected order %+v", pairs)
		}
	}
}
