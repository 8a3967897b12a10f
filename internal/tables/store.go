// Package tables loads and memoizes the versioned JSON strategy tables the
// suggest engine reads: preflop open and vs-raise ranges, per-mode numeric
// knobs, and the flop rule trees. Readers see an atomically published
// (data, version) snapshot; version 0 is the sentinel for a missing or bad
// document and callers fall back to conservative behaviour when they see it.
package tables

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/singleflight"
)

// DefaultRecheck is how long a cached entry is trusted before its file
// mtime is consulted again. Zero disables rechecking entirely; Reload
// remains available either way.
const DefaultRecheck = 30 * time.Second

// maxEntries bounds the cache; three shipped strategies plus headroom.
const maxEntries = 8

type entry struct {
	decoded   any
	version   int
	mtime     time.Time
	lastCheck time.Time
}

// Store is a process-wide, read-mostly cache of decoded table documents
// keyed by path relative to the configs root.
type Store struct {
	root    string
	profile string
	clock   quartz.Clock
	recheck time.Duration

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]*entry
	order   []string // access order for eviction, oldest first
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the clock used for recheck throttling. Tests pass a
// quartz mock so reload timing is deterministic.
func WithClock(c quartz.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithRecheck sets the mtime recheck interval.
func WithRecheck(d time.Duration) Option {
	return func(s *Store) { s.recheck = d }
}

// WithProfile names the config profile this store serves. The name shows
// up in debug meta and the suggest log line.
func WithProfile(name string) Option {
	return func(s *Store) { s.profile = name }
}

// NewStore creates a table store rooted at dir.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		root:    dir,
		profile: "builtin",
		clock:   quartz.NewReal(),
		recheck: DefaultRecheck,
		entries: map[string]*entry{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Profile returns the config profile name.
func (s *Store) Profile() string {
	return s.profile
}

// Reload drops all cached entries so the next read reloads from disk.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]*entry{}
	s.order = nil
}

// get returns the decoded document and version for rel, loading it at most
// once per concurrent burst. decode turns raw JSON into the caller's typed
// representation; it is only invoked on (re)load.
func (s *Store) get(rel string, decode func([]byte) (any, error)) (any, int) {
	s.mu.RLock()
	e, ok := s.entries[rel]
	s.mu.RUnlock()
	if ok && !s.stale(e) {
		return e.decoded, e.version
	}

	v, _, _ := s.group.Do(rel, func() (any, error) {
		// Re-check under the flight: another goroutine may have
		// published a fresh entry while we waited.
		s.mu.RLock()
		cur, ok := s.entries[rel]
		s.mu.RUnlock()
		if ok && !s.stale(cur) {
			return cur, nil
		}
		fresh := s.load(rel, decode, cur)
		s.publish(rel, fresh)
		return fresh, nil
	})
	e = v.(*entry)
	return e.decoded, e.version
}

func (s *Store) stale(e *entry) bool {
	if s.recheck <= 0 {
		return false
	}
	return s.clock.Now().Sub(e.lastCheck) >= s.recheck
}

// load reads and decodes rel. On any failure it returns a version-0 entry
// so use sites emit CFG_FALLBACK_USED rather than erroring. When the file
// is unchanged since prev was built, prev's decoded data is reused.
func (s *Store) load(rel string, decode func([]byte) (any, error), prev *entry) *entry {
	now := s.clock.Now()
	path := filepath.Join(s.root, filepath.FromSlash(rel))
	fi, err := os.Stat(path)
	if err != nil {
		return &entry{decoded: nil, version: 0, lastCheck: now}
	}
	if prev != nil && prev.version != 0 && fi.ModTime().Equal(prev.mtime) {
		return &entry{decoded: prev.decoded, version: prev.version, mtime: prev.mtime, lastCheck: now}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return &entry{decoded: nil, version: 0, lastCheck: now}
	}
	decoded, err := decode(raw)
	if err != nil {
		return &entry{decoded: nil, version: 0, lastCheck: now}
	}
	ver := declaredVersion(raw)
	if ver == 0 {
		// No declared version: derive a monotone one from mtime.
		ver = int(fi.ModTime().Unix())
	}
	return &entry{decoded: decoded, version: ver, mtime: fi.ModTime(), lastCheck: now}
}

func (s *Store) publish(rel string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[rel]; !ok {
		s.order = append(s.order, rel)
		if len(s.order) > maxEntries {
			delete(s.entries, s.order[0])
			s.order = s.order[1:]
		}
	}
	s.entries[rel] = e
}

func declaredVersion(raw []byte) int {
	var doc struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0
	}
	return doc.Version
}
