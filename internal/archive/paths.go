package archive

import (
	"fmt"
	"path/filepath"
)

const seasonsFile = "seasons.json"

// GamesDirName returns the directory name holding a season's game documents.
func GamesDirName(season string) string {
	return "games_" + season
}

// StatsDirName returns the directory name holding a season's stats documents.
func StatsDirName(season string) string {
	return "stats_" + season
}

// GamePath builds the path to the game document of one game.
func GamePath(basePath, season string, code int) string {
	return filepath.Join(basePath, GamesDirName(season), fmt.Sprintf("game_%d.json", code))
}

// StatsPath builds the path to the stats document of one game.
func StatsPath(basePath, season string, code int) string {
	return filepath.Join(basePath, StatsDirName(season), statsFileName(code))
}

func statsFileName(code int) string {
	return fmt.Sprintf("stats_%d.json", code)
}

// SeasonsPath builds the path to the cached season listing.
func SeasonsPath(basePath string) string {
	return filepath.Join(basePath, seasonsFile)
}
