package game

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Title returns the window title for the current score.
func (g *Game) Title() string {
	return fmt.Sprintf("Snake Game! Score: %d", g.Score())
}

// Draw renders one frame: clear, one filled cell per non-empty grid cell,
// title, present. It only reads game state, so repeated calls between
// ticks draw the same frame.
func (g *Game) Draw(r core.Renderer, p core.Palette) {
	r.SetTitle(g.Title())
	r.Clear()

	g.grid.Each(func(pos core.Position, state CellState) {
		switch state {
		case CellSnakeHead:
			r.DrawCell(pos, p.Head)
		case CellSnakeBody:
			r.DrawCell(pos, p.Body)
		case CellFruit:
			r.DrawCell(pos, p.Fruit)
		}
	})

	r.Present()
}
