// Package config provides the built-in settings for a snake session: board
// size, timing, window geometry and colours.
package config

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Config contains everything a frontend needs to run a session.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Window  WindowConfig  `yaml:"window"`
	Palette PaletteConfig `yaml:"palette"`
}

// GridConfig defines the board dimensions in cells.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the logic and frame rates.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // Wall-clock time per logic tick
	FPS          int           `yaml:"fps"`           // Input poll and redraw rate
}

// FrameInterval returns the time between frames.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.FPS)
}

// WindowConfig defines the desktop window size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaletteConfig holds colours as #rrggbb or #rrggbbaa strings.
type PaletteConfig struct {
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Fruit      string `yaml:"fruit"`
	Background string `yaml:"background"`
}

// Palette parses the configured colours.
func (p PaletteConfig) Palette() (core.Palette, error) {
	var out core.Palette
	fields := []struct {
		dst *core.Color
		src string
	}{
		{&out.Head, p.Head},
		{&out.Body, p.Body},
		{&out.Fruit, p.Fruit},
		{&out.Background, p.Background},
	}

	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return core.Palette{}, err
		}
		*f.dst = c
	}
	return out, nil
}

// Limits accepted by Validate.
const (
	MinGridSize = 2
	MaxGridSize = 100
	MaxFPS      = 240
)
