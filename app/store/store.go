package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/lysyi3m/informant/app/feed"
)

// DefaultPath is the fixed system location of the datfile.
const DefaultPath = "/var/cache/informant.dat"

// datfile is the on-disk shape: the per-source fetch cache paired with
// the ordered read-marker list.
type datfile struct {
	Cache    map[string]*feed.Cache `json:"cache"`
	ReadList []string               `json:"read_list"`
}

// Store is the persisted read state of one invocation. It is loaded
// once at startup, mutated in memory, and rewritten whole on every
// mark-as-read. Concurrent invocations are not coordinated; two
// processes racing on the same file end up last-writer-wins.
type Store struct {
	path   string
	dryRun bool

	cache    map[string]*feed.Cache
	readList []string
}

// Load reads the datfile at path. Loading fails soft: a missing,
// unreadable or undecodable file yields an empty store, never an
// error. In dry-run mode the returned store suppresses all writes.
func Load(path string, dryRun bool) *Store {
	s := &Store{
		path:   path,
		dryRun: dryRun,
		cache:  make(map[string]*feed.Cache),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("No usable datfile, starting empty", "path", path, "error", err)
		return s
	}

	var file datfile
	if err := json.Unmarshal(data, &file); err != nil {
		slog.Debug("Corrupt datfile, starting empty", "path", path, "error", err)
		return s
	}

	if file.Cache != nil {
		s.cache = file.Cache
	}
	s.readList = file.ReadList

	slog.Debug("Loaded datfile", "path", path, "read", len(s.readList), "cached_feeds", len(s.cache))
	return s
}

// Cache returns the fetch cache record for a source URL, creating an
// empty one on first use. Callers mutate the record in place.
func (s *Store) Cache(url string) *feed.Cache {
	if c, ok := s.cache[url]; ok {
		return c
	}
	c := &feed.Cache{}
	s.cache[url] = c
	return c
}

// IsRead reports whether the entry's read marker is present.
func (s *Store) IsRead(entry feed.Entry) bool {
	return slices.Contains(s.readList, entry.Key())
}

// MarkRead records the entry as read and saves the store. Marking an
// already-read entry is a no-op and triggers no save.
func (s *Store) MarkRead(entry feed.Entry) error {
	if s.IsRead(entry) {
		return nil
	}
	s.readList = append(s.readList, entry.Key())
	return s.Save()
}

// Save rewrites the datfile in full. In dry-run mode nothing is
// written, regardless of in-memory mutations.
func (s *Store) Save() error {
	if s.dryRun {
		slog.Debug("Dry run, not saving datfile", "path", s.path)
		return nil
	}

	file := datfile{Cache: s.cache, ReadList: s.readList}
	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to encode datfile: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("unable to save read information to %q: %w", s.path, err)
	}

	return nil
}

// ReadCount returns the number of recorded read markers.
func (s *Store) ReadCount() int {
	return len(s.readList)
}
