// Package game implements the snake session: the cell grid, the snake,
// the fruit and the controller that advances them once per logic tick.
// It has no frontend dependencies; renderers only see core.Renderer.
package game

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// CellState is the content of a single grid cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellSnakeHead
	CellSnakeBody
	CellFruit
	CellOutOfBounds // Query result only, never stored
)

func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnakeHead:
		return "head"
	case CellSnakeBody:
		return "body"
	case CellFruit:
		return "fruit"
	case CellOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Occupied returns true for cells taken by the snake.
func (c CellState) Occupied() bool {
	return c == CellSnakeHead || c == CellSnakeBody
}

// Grid is a fixed-size board stored row-major in a flat slice.
type Grid struct {
	rows  int
	cols  int
	cells []CellState
}

// NewGrid creates an empty grid. Non-positive dimensions panic.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos core.Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// Get returns the state at pos, or CellOutOfBounds for positions off the grid.
func (g *Grid) Get(pos core.Position) CellState {
	if !g.InBounds(pos) {
		return CellOutOfBounds
	}
	return g.cells[g.index(pos)]
}

// Set stores state at pos. Callers must pass an in-bounds position and a
// storable state; anything else is a bug and panics.
func (g *Grid) Set(pos core.Position, state CellState) {
	if !g.InBounds(pos) {
		panic(fmt.Sprintf("game: Set out of bounds at %v on %dx%d grid", pos, g.rows, g.cols))
	}
	if state == CellOutOfBounds {
		panic("game: CellOutOfBounds cannot be stored")
	}
	g.cells[g.index(pos)] = state
}

// Center returns the starting cell for a new snake.
// On even dimensions this is the upper-left of the four middle cells.
func (g *Grid) Center() core.Position {
	return core.Pos((g.rows-1)/2, (g.cols-1)/2)
}

// EmptyCells returns every Empty position in row-major order.
func (g *Grid) EmptyCells() []core.Position {
	empty := make([]core.Position, 0, len(g.cells))
	for i, c := range g.cells {
		if c == CellEmpty {
			empty = append(empty, core.Pos(i/g.cols, i%g.cols))
		}
	}
	return empty
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(pos core.Position, state CellState)) {
	for i, c := range g.cells {
		fn(core.Pos(i/g.cols, i%g.cols), c)
	}
}

func (g *Grid) index(pos core.Position) int {
	return pos.Row*g.cols + pos.Col
}
