package archive

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var seasonIDPattern = regexp.MustCompile(`\d{4}`)

// SeasonPair is a matched pair of game and stats directories for one season.
type SeasonPair struct {
	GamesDir string
	StatsDir string
	SeasonID string
}

// DiscoverSeasons scans basePath for games_*/stats_* directory pairs that
// share a season id (the first 4-digit token in the directory name). Game
// directories without a stats counterpart are ignored.
func DiscoverSeasons(basePath string) ([]SeasonPair, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, err
	}

	statsBySeason := make(map[string]string)
	var gameDirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "games"):
			gameDirs = append(gameDirs, name)
		case strings.HasPrefix(name, "stats"):
			if id := extractSeasonID(name); id != "" {
				statsBySeason[id] = name
			}
		}
	}
	sort.Strings(gameDirs)

	var pairs []SeasonPair
	for _, dir := range gameDirs {
		id := extractSeasonID(dir)
		if id == "" {
			continue
		}
		statsDir, ok := statsBySeason[id]
		if !ok {
			continue
		}
		pairs = append(pairs, SeasonPair{
			GamesDir: filepath.Join(basePath, dir),
			StatsDir: filepath.Join(basePath, statsDir),
			SeasonID: id,
		})
	}
	return pairs, nil
}

func extractSeasonID(dirName string) string {
	return seasonIDPattern.FindString(dirName)
}
