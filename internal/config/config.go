// Package config holds the command line settings of the app.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	ErrSize     = errors.New("config: surface size must be positive")
	ErrCell     = errors.New("config: cell size must be between 1 and the surface size")
	ErrStroke   = errors.New("config: stroke width must be positive")
	ErrTraining = errors.New("config: invalid training option")
)

type Config struct {
	SurfaceSize int
	CellSize    int
	StrokeWidth float64
	Debug       bool

	Iterations   int
	ErrorThresh  float64
	LearningRate float64
	Momentum     float64
	Seed         int64
	TrainLog     bool

	LogLevel string
}

func Default() Config {
	return Config{
		SurfaceSize:  200,
		CellSize:     10,
		StrokeWidth:  10,
		Iterations:   20000,
		ErrorThresh:  0.005,
		LearningRate: 0.3,
		Momentum:     0.1,
		Seed:         1,
		LogLevel:     "info",
	}
}

// Parse reads flags over the defaults. Usage goes to out on -h or a bad
// flag, in which case the returned error wraps flag.ErrHelp or the parse error.
func Parse(args []string, out io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("brainboard", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&cfg.SurfaceSize, "size", cfg.SurfaceSize, "width and height of each drawing surface in pixels")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "side of one sampling grid cell in pixels")
	fs.Float64Var(&cfg.StrokeWidth, "stroke", cfg.StrokeWidth, "pen width in pixels")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "start with the debug grid overlay enabled")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "maximum training epochs")
	fs.Float64Var(&cfg.ErrorThresh, "error-thresh", cfg.ErrorThresh, "stop training below this error")
	fs.Float64Var(&cfg.LearningRate, "learning-rate", cfg.LearningRate, "back-propagation learning rate")
	fs.Float64Var(&cfg.Momentum, "momentum", cfg.Momentum, "weight change momentum")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "weight initialisation seed")
	fs.BoolVar(&cfg.TrainLog, "train-log", cfg.TrainLog, "log training progress")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SurfaceSize <= 0 {
		return fmt.Errorf("%w: %d", ErrSize, c.SurfaceSize)
	}
	if c.CellSize <= 0 || c.CellSize > c.SurfaceSize {
		return fmt.Errorf("%w: %d", ErrCell, c.CellSize)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: %v", ErrStroke, c.StrokeWidth)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations %d", ErrTraining, c.Iterations)
	}
	if c.ErrorThresh <= 0 {
		return fmt.Errorf("%w: error threshold %v", ErrTraining, c.ErrorThresh)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate %v", ErrTraining, c.LearningRate)
	}
	if c.Momentum < 0 {
		return fmt.Errorf("%w: momentum %v", ErrTraining, c.Momentum)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
