package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_CallsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.txt")
	if err := os.WriteFile(path, []byte("1|1|a.com|A|?|news\n"), 0644); err != nil {
		t.Fatalf("Failed to write mapping: %v", err)
	}

	var calls atomic.Int32
	w := New(path, 50*time.Millisecond, nil, func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// A burst of writes collapses into one callback.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("2|1|b.com|B|?|dev\n"), 0644); err != nil {
			t.Fatalf("Failed to rewrite mapping: %v", err)
		}
	}

	if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 1 }) {
		t.Fatal("callback was not invoked after write")
	}
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 for a debounced burst", got)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write mapping: %v", err)
	}

	var calls atomic.Int32
	w := New(path, 10*time.Millisecond, nil, func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write other file: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0 for unrelated file", got)
	}
}

func TestWatcher_StopPreventsCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.txt")

	var calls atomic.Int32
	w := New(path, 10*time.Millisecond, nil, func() { calls.Add(1) })
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	w.Stop()

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write mapping: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0 after Stop", got)
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "mapping.txt"), time.Millisecond, nil, func() {})
	if err := w.Start(context.Background()); err == nil {
		w.Stop()
		t.Error("Start() expected error for missing directory")
	}
}
