package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(p, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(nil)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()
	if err := w.Watch(p); err != nil {
		t.Fatalf("watch: %v", err)
	}
	// Changes to siblings are filtered out.
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-w.Events():
		if ev.Path != p {
			t.Fatalf("unexpected event path %q", ev.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestWatchEmptyPathStops(t *testing.T) {
	w, err := New(nil)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()
	if err := w.Watch(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "missing-dir", "x.txt")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
