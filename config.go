package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"poster-wall/canvas"
	"poster-wall/expand"
	"poster-wall/input"
	"poster-wall/tween"
)

const (
	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	DefaultWindowTitle  = "Poster Wall"

	// --- Grid ---
	ItemWidth  = 120.0
	ItemHeight = 180.0
	ItemGap    = 150.0
	Overscan   = 2.0

	// --- Pan ---
	PanEase           = 0.075
	MomentumFactor    = 200.0
	VelocityThreshold = 0.1 // px/ms
	MinSampleMs       = 10  // ms
	RefreshDistance   = 100.0
	RefreshIntervalMs = 120 // ms

	// --- Input ---
	ClickSlop        = 5.0 // px per axis
	ResizeDebounceMs = 150 // ms

	// --- Expansion ---
	ExpandWidthFraction = 0.25
	ExpandAspectRatio   = 1.5
	HopCurve            = "0.9, 0, 0.1, 1"

	// --- Title ---
	TitleDuration = 1.0 // s
	TitleStagger  = 0.1 // s
	TitleDelay    = 0.5 // s
	TitleFontSize = 40.0

	// --- Tile drawing ---
	ShadowOffset    = 4.0
	BorderOffset    = 3.0
	BorderThickness = 2.0

	// --- Content ---
	DefaultPlaceholders = 12
	PlaceholderWidth    = 240
	PlaceholderHeight   = 360
	DecodeWorkers       = 4
)

var (
	// --- Colors ---
	ColorBackground    = color.RGBA{18, 18, 20, 255}
	ColorGuide         = color.RGBA{255, 255, 255, 24}
	ColorOverlay       = color.RGBA{10, 10, 12, 220}
	ColorPanelFallback = color.RGBA{60, 60, 70, 255}
	ColorTitle         = color.RGBA{240, 240, 235, 255}
	ColorOrigin        = color.RGBA{255, 100, 100, 150}
	ColorShadow        = color.RGBA{0, 0, 0, 90}
	ColorTileHover     = color.RGBA{255, 255, 255, 160}

	DefaultTitles = []string{
		"Chromatic Drift",
		"Salt Flats at Noon",
		"Paper Moon Society",
		"The Quiet Harbour",
		"Neon Cathedral",
		"Field Notes",
		"Afterimage",
		"Low Tide Choir",
		"Glass Orchard",
		"Midnight Ferry",
	}
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GridConfig struct {
	ItemWidth  float64 `yaml:"item_width"`
	ItemHeight float64 `yaml:"item_height"`
	ItemGap    float64 `yaml:"item_gap"`
	Overscan   float64 `yaml:"overscan"`
}

type PanConfig struct {
	Ease              float64 `yaml:"ease"`
	MomentumFactor    float64 `yaml:"momentum_factor"`
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	MinSampleMs       int     `yaml:"min_sample_ms"`
	RefreshDistance   float64 `yaml:"refresh_distance"`
	RefreshIntervalMs int     `yaml:"refresh_interval_ms"`
}

type InputConfig struct {
	ClickSlop        float64 `yaml:"click_slop"`
	ResizeDebounceMs int     `yaml:"resize_debounce_ms"`
}

type TimingConfig struct {
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
	Ease     string  `yaml:"ease"`
}

type ExpandConfig struct {
	WidthFraction float64      `yaml:"width_fraction"`
	AspectRatio   float64      `yaml:"aspect_ratio"`
	Open          TimingConfig `yaml:"open"`
	Close         TimingConfig `yaml:"close"`
	Resize        TimingConfig `yaml:"resize"`
	FadeOut       TimingConfig `yaml:"fade_out"`
	FadeIn        TimingConfig `yaml:"fade_in"`
	Overlay       TimingConfig `yaml:"overlay"`
}

type TitleConfig struct {
	Duration float64  `yaml:"duration"`
	Stagger  float64  `yaml:"stagger"`
	Delay    float64  `yaml:"delay"`
	Ease     string   `yaml:"ease"`
	FontSize float64  `yaml:"font_size"`
	List     []string `yaml:"list"`
	// Script is starlark source defining title(index, titles).
	Script string `yaml:"script"`
}

type ContentConfig struct {
	Images       []string `yaml:"images"`
	Placeholders int      `yaml:"placeholders"`
	Workers      int      `yaml:"workers"`
}

// Config is the full application configuration.
type Config struct {
	Window  WindowConfig      `yaml:"window"`
	Grid    GridConfig        `yaml:"grid"`
	Pan     PanConfig         `yaml:"pan"`
	Input   InputConfig       `yaml:"input"`
	Expand  ExpandConfig      `yaml:"expand"`
	Title   TitleConfig       `yaml:"title"`
	Content ContentConfig     `yaml:"content"`
	Easings map[string]string `yaml:"easings"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight, Title: DefaultWindowTitle},
		Grid:   GridConfig{ItemWidth: ItemWidth, ItemHeight: ItemHeight, ItemGap: ItemGap, Overscan: Overscan},
		Pan: PanConfig{
			Ease:              PanEase,
			MomentumFactor:    MomentumFactor,
			VelocityThreshold: VelocityThreshold,
			MinSampleMs:       MinSampleMs,
			RefreshDistance:   RefreshDistance,
			RefreshIntervalMs: RefreshIntervalMs,
		},
		Input: InputConfig{ClickSlop: ClickSlop, ResizeDebounceMs: ResizeDebounceMs},
		Expand: ExpandConfig{
			WidthFraction: ExpandWidthFraction,
			AspectRatio:   ExpandAspectRatio,
			Open:          TimingConfig{Duration: 1, Ease: "hop"},
			Close:         TimingConfig{Duration: 1, Ease: "hop"},
			Resize:        TimingConfig{Duration: 0.3, Ease: "power2.out"},
			FadeOut:       TimingConfig{Duration: 0.3, Ease: "power2.out"},
			FadeIn:        TimingConfig{Duration: 0.5, Delay: 0.5, Ease: "power2.out"},
			Overlay:       TimingConfig{Duration: 0.3, Ease: "power2.out"},
		},
		Title: TitleConfig{
			Duration: TitleDuration,
			Stagger:  TitleStagger,
			Delay:    TitleDelay,
			Ease:     "power3.out",
			FontSize: TitleFontSize,
			List:     DefaultTitles,
		},
		Content: ContentConfig{Placeholders: DefaultPlaceholders, Workers: DecodeWorkers},
		Easings: map[string]string{"hop": HopCurve},
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path. An
// empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the canvas cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Grid.ItemWidth <= 0 || c.Grid.ItemHeight <= 0:
		return fmt.Errorf("grid item size must be positive, got %vx%v", c.Grid.ItemWidth, c.Grid.ItemHeight)
	case c.Grid.ItemGap < 0:
		return fmt.Errorf("grid item gap must not be negative, got %v", c.Grid.ItemGap)
	case c.Grid.Overscan < 1:
		return fmt.Errorf("grid overscan must be at least 1, got %v", c.Grid.Overscan)
	case c.Pan.Ease <= 0 || c.Pan.Ease > 1:
		return fmt.Errorf("pan ease must be in (0,1], got %v", c.Pan.Ease)
	case c.Pan.MinSampleMs <= 0:
		return fmt.Errorf("pan min sample interval must be positive, got %v", c.Pan.MinSampleMs)
	case c.Expand.WidthFraction <= 0 || c.Expand.AspectRatio <= 0:
		return fmt.Errorf("expand geometry must be positive")
	case len(c.Content.Images) == 0 && c.Content.Placeholders <= 0:
		return fmt.Errorf("content needs images or a positive placeholder count")
	}
	if _, err := c.Eases(); err != nil {
		return err
	}
	return nil
}

// Eases builds the easing registry including the named custom curves.
func (c Config) Eases() (tween.Eases, error) {
	e := tween.NewEases()
	for name, desc := range c.Easings {
		if err := e.Register(name, desc); err != nil {
			return nil, fmt.Errorf("easing %q: %w", name, err)
		}
	}
	return e, nil
}

// ContentCount is the length of the content list tiles index into.
func (c Config) ContentCount() int {
	if len(c.Content.Images) > 0 {
		return len(c.Content.Images)
	}
	return c.Content.Placeholders
}

func (c Config) Layout() canvas.Layout {
	return canvas.Layout{
		ItemWidth:  c.Grid.ItemWidth,
		ItemHeight: c.Grid.ItemHeight,
		ItemGap:    c.Grid.ItemGap,
		Overscan:   c.Grid.Overscan,
	}
}

func (c Config) PanSettings() canvas.PanConfig {
	return canvas.PanConfig{
		Ease:              c.Pan.Ease,
		MomentumFactor:    c.Pan.MomentumFactor,
		VelocityThreshold: c.Pan.VelocityThreshold,
		MinSampleInterval: time.Duration(c.Pan.MinSampleMs) * time.Millisecond,
		RefreshDistance:   c.Pan.RefreshDistance,
		RefreshInterval:   time.Duration(c.Pan.RefreshIntervalMs) * time.Millisecond,
	}
}

func (c Config) InputSettings() input.Config {
	return input.Config{
		ClickSlop:      c.Input.ClickSlop,
		ResizeDebounce: time.Duration(c.Input.ResizeDebounceMs) * time.Millisecond,
	}
}

func (t TimingConfig) timing() expand.Timing {
	return expand.Timing{Duration: t.Duration, Delay: t.Delay, Ease: t.Ease}
}

func (c Config) ExpandSettings() expand.Config {
	return expand.Config{
		WidthFraction: c.Expand.WidthFraction,
		AspectRatio:   c.Expand.AspectRatio,
		Open:          c.Expand.Open.timing(),
		Close:         c.Expand.Close.timing(),
		Resize:        c.Expand.Resize.timing(),
		FadeOut:       c.Expand.FadeOut.timing(),
		FadeIn:        c.Expand.FadeIn.timing(),
		TitleDelay:    c.Title.Delay,
		OverlayFade:   c.Expand.Overlay.timing(),
	}
}
