package archive

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"euroleague-data-service/internal/domain/feed"
)

// ErrStatsNotFound marks a game whose stats document is absent on disk.
var ErrStatsNotFound = errors.New("stats document not found")

// FSStore loads raw feed documents from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// HasSeasons reports whether a cached season listing exists.
func (s *FSStore) HasSeasons() bool {
	if s == nil {
		return false
	}
	_, err := os.Stat(SeasonsPath(s.basePath))
	return err == nil
}

// LoadSeasons reads the cached season listing from disk.
func (s *FSStore) LoadSeasons() ([]feed.Season, error) {
	var payload feed.SeasonsResponse
	if err := s.decodeFile(SeasonsPath(s.basePath), &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// GameFiles lists a season directory's game documents in lexical order.
func (s *FSStore) GameFiles(gamesDir string) ([]string, error) {
	entries, err := os.ReadDir(gamesDir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(gamesDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// LoadGameFile reads one game document.
func (s *FSStore) LoadGameFile(path string) (*feed.GameDocument, error) {
	var doc feed.GameDocument
	if err := s.decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadStats reads the stats document matching a game code from a season's
// stats directory. A missing file yields ErrStatsNotFound.
func (s *FSStore) LoadStats(statsDir string, code int) (*feed.StatsDocument, error) {
	path := filepath.Join(statsDir, statsFileName(code))
	var doc feed.StatsDocument
	if err := s.decodeFile(path, &doc); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	if s == nil {
		return errors.New("archive store not configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
