package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"euroleague-data-service/internal/domain/feed"
)

// Writer persists raw feed documents under a base directory, one file per
// document. Writes are complete-or-nothing: content goes to a temp file
// first and is renamed into place.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGame persists the game document for (season, code).
func (w *Writer) WriteGame(season string, code int, doc *feed.GameDocument) error {
	return w.writeJSON(GamePath(w.basePath, season, code), doc)
}

// WriteStats persists the stats document for (season, code).
func (w *Writer) WriteStats(season string, code int, doc *feed.StatsDocument) error {
	return w.writeJSON(StatsPath(w.basePath, season, code), doc)
}

// WriteSeasons caches the season listing at the archive root.
func (w *Writer) WriteSeasons(seasons []feed.Season) error {
	return w.writeJSON(SeasonsPath(w.basePath), feed.SeasonsResponse{Data: seasons})
}

func (w *Writer) writeJSON(target string, payload any) error {
	if w == nil {
		return fmt.Errorf("archive writer not configured")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
