package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration used when the embedded
// defaults cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 10,
			Cols: 10,
		},
		Timing: TimingConfig{
			TickInterval: 160 * time.Millisecond,
			FPS:          60,
		},
		Window: WindowConfig{
			Width:  900,
			Height: 900,
		},
		Palette: PaletteConfig{
			Head:       "#227810ff",
			Body:       "#22e810ff",
			Fruit:      "#f40d2dff",
			Background: "#000000ff",
		},
	}
}
