//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"conway/internal/app"
	"conway/internal/config"
	"conway/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		// Command-line flags take precedence over the file.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	eng, err := life.New(life.Config{
		Size:    cfg.Board.Size,
		Seed:    cfg.Board.Seed,
		Workers: cfg.Board.Workers,
	})
	if err != nil {
		slog.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	game := app.New(eng, cfg)
	side := cfg.Board.Size * cfg.Display.Scale

	ebiten.SetWindowTitle("conway")
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
