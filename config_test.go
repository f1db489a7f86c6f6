package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wall.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	l := cfg.Layout()
	if l.StepX() != 270 || l.StepY() != 330 {
		t.Errorf("steps = %v,%v, want 270,330", l.StepX(), l.StepY())
	}
	pan := cfg.PanSettings()
	if pan.MinSampleInterval != 10*time.Millisecond || pan.RefreshInterval != 120*time.Millisecond {
		t.Errorf("pan intervals = %v, %v", pan.MinSampleInterval, pan.RefreshInterval)
	}
	if cfg.ExpandSettings().Open.Ease != "hop" {
		t.Errorf("open ease = %q", cfg.ExpandSettings().Open.Ease)
	}
	eases, _ := cfg.Eases()
	if _, ok := eases["hop"]; !ok {
		t.Error("hop curve not registered")
	}
	if cfg.ContentCount() != DefaultPlaceholders {
		t.Errorf("content count = %d", cfg.ContentCount())
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  item_gap: 100
pan:
  ease: 0.2
title:
  list: [One, Two]
content:
  images: [a.png, b.jpg, c.webp]
easings:
  snap: "0.5, 0, 0.5, 1"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.ItemGap != 100 || cfg.Grid.ItemWidth != ItemWidth {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Pan.Ease != 0.2 || cfg.Pan.MomentumFactor != MomentumFactor {
		t.Errorf("pan = %+v", cfg.Pan)
	}
	if len(cfg.Title.List) != 2 || cfg.Title.List[1] != "Two" {
		t.Errorf("titles = %v", cfg.Title.List)
	}
	if cfg.ContentCount() != 3 {
		t.Errorf("content count = %d, want 3", cfg.ContentCount())
	}
	for _, name := range []string{"hop", "snap"} {
		if _, ok := cfg.Easings[name]; !ok {
			t.Errorf("easing %q missing", name)
		}
	}
	if len(DefaultTitles) != 10 {
		t.Error("loading a config modified the default titles")
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "grid: [1, 2"},
		{"overscan below one", "grid:\n  overscan: 0.5\n"},
		{"zero ease", "pan:\n  ease: 0\n"},
		{"negative width", "grid:\n  item_width: -1\n"},
		{"no content", "content:\n  placeholders: 0\n"},
		{"bad curve", "easings:\n  wild: \"1.5, 0, 0, 1\"\n"},
		{"short curve", "easings:\n  wild: \"0.5, 0\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadConfig succeeded, want error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}
