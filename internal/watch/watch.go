// Package watch reruns the full catalog build whenever a source file
// changes. Every rebuild is a complete pass; nothing is incremental.
package watch

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/osintlab/linkforge/internal/checksum"
	"github.com/osintlab/linkforge/internal/storage"
)

// Options configures a watch loop.
type Options struct {
	Store    storage.Provider
	Dir      string
	Debounce time.Duration
	Logger   *slog.Logger
	Build    func() error
}

// Run performs an initial build and then rebuilds on every change to a
// .yaml file in the watched directory, until ctx is cancelled or a
// termination signal arrives. Build failures are logged, never fatal:
// the previous catalog stays in place and watching continues.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := opts.Build(); err != nil {
		opts.Logger.Error("initial build failed", slog.String("error", err.Error()))
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return loop(gCtx, opts)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			opts.Logger.Info("received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	return g.Wait()
}

// loop owns the fsnotify watcher. Change events are debounced, and a
// rebuild is skipped when the combined source digest is unchanged (editors
// that touch files without modifying them would otherwise cause no-op
// rebuild churn).
func loop(ctx context.Context, opts Options) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(opts.Dir); err != nil {
		return err
	}

	opts.Logger.Info("watching for changes", slog.String("dir", opts.Dir))

	lastDigest := sourceDigest(opts.Store)

	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	schedule := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(opts.Debounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(opts.Debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			opts.Logger.Info("watcher stopped")
			return nil

		case <-rebuildCh:
			digest := sourceDigest(opts.Store)
			if digest == lastDigest {
				opts.Logger.Debug("sources unchanged, skipping rebuild")
				continue
			}
			lastDigest = digest
			if err := opts.Build(); err != nil {
				opts.Logger.Error("rebuild failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".yaml") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				opts.Logger.Debug("source changed",
					slog.String("path", ev.Name),
					slog.String("op", ev.Op.String()))
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Error("watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// sourceDigest combines per-file checksums into one digest for the whole
// links directory. An empty string means the sources could not be listed.
func sourceDigest(store storage.Provider) string {
	files, err := store.List()
	if err != nil {
		return ""
	}
	digests := make([]string, 0, len(files))
	for _, f := range files {
		digests = append(digests, f.Name+":"+f.Checksum)
	}
	return checksum.Combine(digests)
}
