package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the embedded defaults.
// Falls back to Default() if the embedded YAML is unusable.
func Load() Config {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return Default()
	}
	return cfg
}

// Parse decodes YAML over Default(), so omitted fields keep their defaults,
// and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Rows < MinGridSize || c.Grid.Rows > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid rows %d out of range [%d, %d]", c.Grid.Rows, MinGridSize, MaxGridSize))
	}
	if c.Grid.Cols < MinGridSize || c.Grid.Cols > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid cols %d out of range [%d, %d]", c.Grid.Cols, MinGridSize, MaxGridSize))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %v", c.Timing.TickInterval))
	}
	if c.Timing.FPS < 1 || c.Timing.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("fps %d out of range [1, %d]", c.Timing.FPS, MaxFPS))
	}
	if c.Window.Width < c.Grid.Cols || c.Window.Height < c.Grid.Rows {
		errs = append(errs, fmt.Errorf("window %dx%d too small for a %dx%d grid",
			c.Window.Width, c.Window.Height, c.Grid.Cols, c.Grid.Rows))
	}

	p, err := c.Palette.Palette()
	if err != nil {
		errs = append(errs, err)
	} else if p.Head == p.Body || p.Head == p.Fruit || p.Body == p.Fruit {
		errs = append(errs, errors.New("head, body and fruit colours must differ"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
