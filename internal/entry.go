// Package internal wires configuration, storage, and the builder into a
// single build run or a watch loop.
package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osintlab/linkforge/internal/apperr"
	"github.com/osintlab/linkforge/internal/builder"
	"github.com/osintlab/linkforge/internal/storage"
	"github.com/osintlab/linkforge/internal/watch"
)

// Run executes one build (or a watch loop) with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("links_dir", cfg.Links.Dir),
		slog.String("output_path", cfg.Output.Path),
		slog.Bool("check_only", app.checkOnly),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Links.Dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	if app.watch {
		return watch.Run(ctx, watch.Options{
			Store:    store,
			Dir:      cfg.Links.Dir,
			Debounce: cfg.Watch.Debounce,
			Logger:   logger,
			Build: func() error {
				return buildOnce(cfg, store, logger, app.checkOnly)
			},
		})
	}

	return buildOnce(cfg, store, logger, app.checkOnly)
}

// buildOnce runs one full validate-and-normalize pass and decides, on the
// complete error list, between writing the catalog and failing.
func buildOnce(cfg *Config, store storage.Provider, logger *slog.Logger, checkOnly bool) error {
	res, err := builder.New(store, logger).Run()
	if err != nil {
		return err
	}

	if len(res.Errors) > 0 {
		for _, msg := range res.Errors {
			logger.Error("validation error", slog.String("error", msg))
		}
		return fmt.Errorf("%w: %d error(s)", apperr.ErrValidationFailed, len(res.Errors))
	}

	if checkOnly {
		logger.Info("validation passed", slog.Int("links", len(res.Links)))
		return nil
	}

	doc := builder.Document(res.Links, cfg.Output.Version, cfg.Output.Note, time.Now())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')

	if err := store.WriteOutput(cfg.Output.Path, data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	logger.Info("catalog written",
		slog.String("path", cfg.Output.Path),
		slog.Int("links", len(res.Links)))
	return nil
}
