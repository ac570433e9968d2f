package bindmap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStoreScanAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ctlmap"), "route/gain 1\nroute/mute 1\n")
	writeFile(t, filepath.Join(root, "sub", "b.ctlmap"), "vca/gain x\n")
	writeFile(t, filepath.Join(root, ".hidden", "c.ctlmap"), "route/gain 1\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "route/gain 1\n")

	s := New(root)
	if err := s.ScanAll(); err != nil {
		t.Fatalf("ScanAll: %v", err)
	}

	files := s.Files()
	if len(files) != 2 {
		t.Fatalf("len(Files()) = %d, want 2", len(files))
	}
	if files[0].Path != filepath.Join(root, "a.ctlmap") || files[1].Path != filepath.Join(root, "sub", "b.ctlmap") {
		t.Errorf("Files() = [%s %s], not sorted by path", files[0].Path, files[1].Path)
	}
	if got := len(s.Entries()); got != 2 {
		t.Errorf("len(Entries()) = %d, want 2", got)
	}
	if got := len(s.Diagnostics()); got != 1 {
		t.Errorf("len(Diagnostics()) = %d, want 1", got)
	}
}

func TestStoreUpdateAndRemove(t *testing.T) {
	s := New(t.TempDir())
	path := "/virtual/live.ctlmap"

	m := s.UpdateFile(path, []byte("route/gain 1\n"))
	if len(m.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(m.Entries))
	}
	if s.GetFile(path) != m {
		t.Error("GetFile did not return the updated map")
	}

	s.UpdateFile(path, []byte("route/gain 1\nroute/solo 2\n"))
	if got := len(s.GetFile(path).Entries); got != 2 {
		t.Errorf("len(Entries) after update = %d, want 2", got)
	}

	s.RemoveFile(path)
	if s.GetFile(path) != nil {
		t.Error("GetFile returned a map after RemoveFile")
	}
}

func TestStoreScanFileMissing(t *testing.T) {
	s := New(t.TempDir())
	if err := s.ScanFile(filepath.Join(s.RootDir(), "missing.ctlmap")); err == nil {
		t.Error("ScanFile on a missing file should fail")
	}
}

func TestWatcherScan(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "live.ctlmap")
	writeFile(t, path, "route/gain 1\n")

	type change struct {
		path    string
		removed bool
	}
	var changes []change
	s := New(root)
	w := NewWatcher(s, time.Hour, func(p string, m *Map) {
		changes = append(changes, change{p, m == nil})
	})

	w.scan()
	if len(changes) != 1 || changes[0].path != path || changes[0].removed {
		t.Fatalf("first scan changes = %v, want one update of %s", changes, path)
	}

	w.scan()
	if len(changes) != 1 {
		t.Errorf("unchanged file reported again: %v", changes)
	}

	writeFile(t, path, "route/gain 1\nroute/mute 1\n")
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	w.scan()
	if len(changes) != 2 {
		t.Fatalf("modified file not reported: %v", changes)
	}
	if got := len(s.GetFile(path).Entries); got != 2 {
		t.Errorf("len(Entries) after modification = %d, want 2", got)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	w.scan()
	if len(changes) != 3 || !changes[2].removed {
		t.Fatalf("removal not reported: %v", changes)
	}
	if s.GetFile(path) != nil {
		t.Error("removed file still in store")
	}
}

func TestWatcherStartStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ctlmap"), "route/gain 1\n")

	done := make(chan string, 1)
	w := NewWatcher(New(root), 10*time.Millisecond, func(p string, m *Map) {
		select {
		case done <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the initial scan")
	}

	w.Stop()
	w.Stop()
}
