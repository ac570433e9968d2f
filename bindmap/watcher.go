package bindmap

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ChangeFunc is called after a map is reparsed. m is nil when the file
// was removed.
type ChangeFunc func(path string, m *Map)

// Watcher polls the store root and keeps the store in sync with the
// binding maps on disk.
type Watcher struct {
	store        *Store
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     ChangeFunc
}

func NewWatcher(s *Store, interval time.Duration, onChange ChangeFunc) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		store:        s,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	currentFiles := make(map[string]bool)
	root := w.store.RootDir()

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != Ext {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			if err := w.store.ScanFile(path); err != nil {
				log.Warningf("rescan %s: %s", path, err)
				return nil
			}
			w.notify(path, w.store.GetFile(path))
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.store.RemoveFile(path)
			w.notify(path, nil)
		}
	}
}

func (w *Watcher) notify(path string, m *Map) {
	if w.onChange != nil {
		w.onChange(path, m)
	}
}
