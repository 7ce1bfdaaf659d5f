package player

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/isaachansen/osrs-companion/internal/oserr"
	"github.com/isaachansen/osrs-companion/metrics"
)

// Store reads sync documents from a local directory. One JSON file per
// player, named after the sanitized username.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a store over dir. The directory does not have to exist;
// an absent directory simply means no players are synced yet.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the sync directory path
func (s *Store) Dir() string {
	return s.dir
}

// SanitizeUsername maps a display username to its on-disk file stem:
// lowercased, with every character outside [a-z0-9_-] replaced by "_".
func SanitizeUsername(username string) string {
	lower := strings.ToLower(username)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Load reads and parses the sync document for username. A missing or
// unparseable file both yield a NotFoundError: from the caller's point of
// view the player has no usable local data either way.
func (s *Store) Load(username string) (*SyncDocument, error) {
	path := filepath.Join(s.dir, SanitizeUsername(username)+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("sync document unreadable", "path", path, "error", err)
		}
		metrics.RecordSyncRead(false)
		return nil, oserr.NewNotFoundError("player", username)
	}

	var doc SyncDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Debug("sync document malformed", "path", path, "error", err)
		metrics.RecordSyncRead(false)
		return nil, oserr.NewNotFoundError("player", username)
	}

	metrics.RecordSyncRead(true)
	return &doc, nil
}

// List returns the sanitized usernames of every synced player, sorted.
// An absent or unreadable sync directory yields an empty list, not an
// error: either way there are no players to report.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("sync directory unreadable", "dir", s.dir, "error", err)
		}
		return []string{}, nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}
