package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA colour used by renderers to fill grid cells.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a new colour.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the colour as #rrggbb, dropping alpha.
// Terminal styling has no alpha channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses #rrggbb or #rrggbbaa. Alpha defaults to 255.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("core: invalid colour %q: want #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}

	if len(hex) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Palette maps drawable cell kinds to colours.
type Palette struct {
	Head       Color
	Body       Color
	Fruit      Color
	Background Color
}

// DefaultPalette returns the classic dark-green head, light-green body and red fruit.
func DefaultPalette() Palette {
	return Palette{
		Head:       RGBA(34, 120, 16, 255),
		Body:       RGBA(34, 232, 16, 255),
		Fruit:      RGBA(244, 13, 45, 255),
		Background: RGBA(0, 0, 0, 255),
	}
}
