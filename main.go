package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"BrainBoard/internal/board"
	"BrainBoard/internal/brain"
	"BrainBoard/internal/config"
	"BrainBoard/internal/surface"
	"BrainBoard/internal/ui"

	"github.com/gogpu/gg"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "brainboard: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	net := brain.New(brain.Options{
		Iterations:   cfg.Iterations,
		ErrorThresh:  cfg.ErrorThresh,
		LearningRate: cfg.LearningRate,
		Momentum:     cfg.Momentum,
		Log:          cfg.TrainLog,
		Seed:         cfg.Seed,
	})

	b := board.New(surface.Options{
		Width:       cfg.SurfaceSize,
		Height:      cfg.SurfaceSize,
		CellSize:    cfg.CellSize,
		StrokeWidth: cfg.StrokeWidth,
	}, net)
	b.SetDebug(cfg.Debug)

	slog.Info("starting BrainBoard", "size", cfg.SurfaceSize, "cell", cfg.CellSize)
	ui.RunApp(b)
}
