// Package store persists the two run-to-run maps: resolved company ids and
// previously notified job links. Both live as flat JSON files in the data
// dir, guarded by an advisory lock so an overlapping scheduled invocation
// cannot interleave writes.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	idCacheFile = "company_id_cache.json"
	seenFile    = "seen_jobs.json"
	lockFile    = "jobwatch.lock"
)

type Store struct {
	dataDir string
	lock    *flock.Flock

	idCache map[string]string            // company name -> site id
	seen    map[string]map[string]string // company name -> link -> first-seen RFC3339
}

func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	lk := flock.New(filepath.Join(dataDir, lockFile))
	ok, err := lk.TryLock()
	if err != nil {
		return nil, fmt.Errorf("state lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("state lock: another run holds %s", lockFile)
	}

	s := &Store{
		dataDir: dataDir,
		lock:    lk,
		idCache: make(map[string]string),
		seen:    make(map[string]map[string]string),
	}
	if err := readJSONFile(s.path(idCacheFile), &s.idCache); err != nil {
		_ = lk.Unlock()
		return nil, fmt.Errorf("load %s: %w", idCacheFile, err)
	}
	if err := readJSONFile(s.path(seenFile), &s.seen); err != nil {
		_ = lk.Unlock()
		return nil, fmt.Errorf("load %s: %w", seenFile, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.lock.Unlock()
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

func (s *Store) CompanyID(name string) (string, bool) {
	id, ok := s.idCache[name]
	return id, ok
}

// PutCompanyID records a resolved id and persists the cache right away, so a
// crash mid-run does not cost us the resolution.
func (s *Store) PutCompanyID(name, id string) error {
	s.idCache[name] = id
	return writeJSONAtomic(s.path(idCacheFile), s.idCache)
}

func (s *Store) HasSeen(company, link string) bool {
	_, ok := s.seen[company][link]
	return ok
}

func (s *Store) MarkSeen(company, link string, at time.Time) {
	if s.seen[company] == nil {
		s.seen[company] = make(map[string]string)
	}
	s.seen[company][link] = at.Format(time.RFC3339)
}

// SaveSeen writes the seen-jobs map once, at end of run.
func (s *Store) SaveSeen() error {
	return writeJSONAtomic(s.path(seenFile), s.seen)
}
