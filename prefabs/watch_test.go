package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "waddler.yaml")
	if err := os.WriteFile(path, []byte("name: waddler\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event = %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for a spec edit")
	}

	// Files that are neither specs nor scripts are filtered out.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event %q for a non-spec file", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseUnderBacklog(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// More edits than the event buffer holds, with nothing draining: the
	// forwarding goroutine ends up blocked mid-send when Close fires.
	for i := 0; i < 3*cap(w.Events); i++ {
		name := filepath.Join(dir, fmt.Sprintf("spec%02d.yaml", i))
		if err := os.WriteFile(name, []byte("x: 1\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	time.Sleep(300 * time.Millisecond)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close must be idempotent: %v", err)
	}

	// Edits after close deliver nothing; only the pre-close backlog may
	// still sit in the buffer.
	if err := os.WriteFile(filepath.Join(dir, "late.yaml"), []byte("x: 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	deadline := time.After(300 * time.Millisecond)
	for {
		select {
		case name := <-w.Events:
			if filepath.Base(name) == "late.yaml" {
				t.Fatalf("event delivered after close")
			}
		case <-deadline:
			return
		}
	}
}
