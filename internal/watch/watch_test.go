package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/osintlab/linkforge/internal/storage"
	"github.com/osintlab/linkforge/internal/testutil"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func watchEnv(t *testing.T) (string, storage.Provider, *slog.Logger) {
	t.Helper()
	dir, store := testutil.TestLinksDir(t, map[string]string{
		"maps.yaml": testutil.MinimalSource,
	})
	return dir, store, slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_InitialBuildAndRebuildOnChange(t *testing.T) {
	dir, store, logger := watchEnv(t)

	var mu sync.Mutex
	builds := 0
	countBuilds := func() int {
		mu.Lock()
		defer mu.Unlock()
		return builds
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Store:    store,
			Dir:      dir,
			Debounce: 50 * time.Millisecond,
			Logger:   logger,
			Build: func() error {
				mu.Lock()
				builds++
				mu.Unlock()
				return nil
			},
		})
	}()

	eventually(t, 2*time.Second, 10*time.Millisecond,
		func() bool { return countBuilds() == 1 },
		"initial build did not run")

	// Give the watcher a moment to register before changing the file.
	time.Sleep(100 * time.Millisecond)

	changed := `- id: changed
  display: Changed
  url: https://example.org/
  types: [any]
`
	if err := os.WriteFile(filepath.Join(dir, "maps.yaml"), []byte(changed), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 3*time.Second, 10*time.Millisecond,
		func() bool { return countBuilds() >= 2 },
		"change did not trigger a rebuild")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Run did not stop after cancellation")
	}
}

func TestRun_FailingBuildKeepsWatching(t *testing.T) {
	dir, store, logger := watchEnv(t)

	var mu sync.Mutex
	builds := 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Store:    store,
			Dir:      dir,
			Debounce: 50 * time.Millisecond,
			Logger:   logger,
			Build: func() error {
				mu.Lock()
				builds++
				mu.Unlock()
				return os.ErrInvalid
			},
		})
	}()

	eventually(t, 2*time.Second, 10*time.Millisecond,
		func() bool { mu.Lock(); defer mu.Unlock(); return builds == 1 },
		"initial build did not run")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("build failures must not abort the watch loop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Run did not stop after cancellation")
	}
}

func TestSourceDigest_TracksContent(t *testing.T) {
	dir, store, _ := watchEnv(t)

	before := sourceDigest(store)
	if before == "" {
		t.Fatal("digest should not be empty for a readable directory")
	}
	if again := sourceDigest(store); again != before {
		t.Error("digest must be stable while sources are unchanged")
	}

	if err := os.WriteFile(filepath.Join(dir, "maps.yaml"), []byte("- id: other\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if after := sourceDigest(store); after == before {
		t.Error("digest must change when a source changes")
	}
}
