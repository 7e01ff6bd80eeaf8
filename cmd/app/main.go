package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/osintlab/linkforge/internal"
	pkgconfig "github.com/osintlab/linkforge/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Flag overrides win over both defaults and the config file.
	if dir := cmd.String("links-dir"); dir != "" {
		cfg.Links.Dir = dir
	}
	if out := cmd.String("out"); out != "" {
		cfg.Output.Path = out
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithCheckOnly(cmd.Bool("check")),
		internal.WithWatch(cmd.Bool("watch")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("build error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "linkforge",
		Usage:  "Compile categorized links/*.yaml sources into a validated links.json catalog",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("LINKFORGE_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "links-dir",
				Aliases: []string{"d"},
				Usage:   "Directory of category YAML files (overrides config)",
				Sources: cli.EnvVars("LINKFORGE_LINKS_DIR"),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Path of the generated catalog (overrides config)",
				Sources: cli.EnvVars("LINKFORGE_OUT"),
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Validate only, do not write the catalog",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Rebuild whenever a source file changes",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
