package config

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want %+v", cfg, Default())
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-size", "100", "-cell", "5", "-debug", "-seed", "7", "-log-level", "debug"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.SurfaceSize != 100 || cfg.CellSize != 5 || !cfg.Debug || cfg.Seed != 7 {
		t.Errorf("Parse() = %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"-size", "0"}, ErrSize},
		{[]string{"-cell", "0"}, ErrCell},
		{[]string{"-size", "50", "-cell", "60"}, ErrCell},
		{[]string{"-stroke", "-1"}, ErrStroke},
		{[]string{"-iterations", "0"}, ErrTraining},
		{[]string{"-momentum", "-0.5"}, ErrTraining},
		{[]string{"-h"}, flag.ErrHelp},
	}
	for _, tt := range tests {
		_, err := Parse(tt.args, io.Discard)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%v) error = %v, want %v", tt.args, err, tt.want)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (Config{LogLevel: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
