package bindmap

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ctlbind.bindmap")

// Store holds the parsed binding maps found under a root directory.
type Store struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*Map
}

func New(rootDir string) *Store {
	return &Store{
		rootDir: rootDir,
		files:   make(map[string]*Map),
	}
}

func (s *Store) RootDir() string {
	return s.rootDir
}

// ScanAll parses every binding map below the root, skipping hidden
// directories.
func (s *Store) ScanAll() error {
	return filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != s.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Ext {
			if err := s.ScanFile(path); err != nil {
				log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (s *Store) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses path from content and returns the new map.
func (s *Store) UpdateFile(path string, content []byte) *Map {
	m := Parse(path, content)

	s.mu.Lock()
	s.files[path] = m
	s.mu.Unlock()

	log.Debugf("parsed %s: %d bindings, %d diagnostics", path, len(m.Entries), len(m.Diagnostics))
	return m
}

func (s *Store) RemoveFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
}

func (s *Store) GetFile(path string) *Map {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files[path]
}

// Files returns all maps ordered by path.
func (s *Store) Files() []*Map {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Map, 0, len(s.files))
	for _, m := range s.files {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (s *Store) Entries() []Entry {
	var all []Entry
	for _, m := range s.Files() {
		all = append(all, m.Entries...)
	}
	return all
}

func (s *Store) Diagnostics() []Diagnostic {
	var all []Diagnostic
	for _, m := range s.Files() {
		all = append(all, m.Diagnostics...)
	}
	return all
}
