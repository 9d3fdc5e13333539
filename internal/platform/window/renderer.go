package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Renderer implements core.Renderer with raylib drawing calls.
// Clear begins the frame and Present ends it; EndDrawing also waits for
// the target FPS and polls input events.
type Renderer struct {
	layout     Layout
	background rl.Color
	title      string
}

// NewRenderer creates a renderer for the given layout.
func NewRenderer(layout Layout, background core.Color) *Renderer {
	return &Renderer{
		layout:     layout,
		background: toRL(background),
	}
}

// Clear starts a frame filled with the background colour.
func (r *Renderer) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)
}

// DrawCell fills one grid cell.
func (r *Renderer) DrawCell(pos core.Position, c core.Color) {
	x, y, w, h := r.layout.CellRect(pos)
	rl.DrawRectangle(x, y, w, h, toRL(c))
}

// Present ends the frame.
func (r *Renderer) Present() {
	rl.EndDrawing()
}

// SetTitle updates the window title when it changes.
func (r *Renderer) SetTitle(title string) {
	if title == r.title {
		return
	}
	r.title = title
	rl.SetWindowTitle(title)
}

func toRL(c core.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
