package game

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func countCells(g *Grid, state CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(3, 4)

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("size = %dx%d, expected 3x4", g.Rows(), g.Cols())
	}
	if got := countCells(g, CellEmpty); got != 12 {
		t.Errorf("countCells(empty) = %d, expected 12", got)
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g := NewGrid(10, 10)

	tests := []core.Position{
		core.Pos(-1, 0),
		core.Pos(0, -1),
		core.Pos(10, 0),
		core.Pos(0, 10),
		core.Pos(10, 10),
	}
	for _, pos := range tests {
		if got := g.Get(pos); got != CellOutOfBounds {
			t.Errorf("Get(%v) = %v, expected out_of_bounds", pos, got)
		}
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(10, 10)
	pos := core.Pos(2, 7)

	g.Set(pos, CellFruit)
	if got := g.Get(pos); got != CellFruit {
		t.Errorf("Get(%v) = %v, expected fruit", pos, got)
	}

	// Row-major layout must not alias the transposed cell
	if got := g.Get(core.Pos(7, 2)); got != CellEmpty {
		t.Errorf("Get(7,2) = %v, expected empty", got)
	}
}

func TestGridNonSquare(t *testing.T) {
	g := NewGrid(3, 8)

	// Valid on 3x8 even though row 5 would be valid on an 8x3 grid
	g.Set(core.Pos(2, 7), CellSnakeHead)
	if got := g.Get(core.Pos(2, 7)); got != CellSnakeHead {
		t.Errorf("Get(2,7) = %v, expected head", got)
	}
	if got := g.Get(core.Pos(5, 1)); got != CellOutOfBounds {
		t.Errorf("Get(5,1) = %v, expected out_of_bounds", got)
	}
}

func TestGridSetPanics(t *testing.T) {
	tests := []struct {
		name  string
		pos   core.Position
		state CellState
	}{
		{"row out of bounds", core.Pos(10, 0), CellFruit},
		{"negative col", core.Pos(0, -1), CellFruit},
		{"storing out_of_bounds", core.Pos(0, 0), CellOutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Set(%v, %v) should panic", tc.pos, tc.state)
				}
			}()
			NewGrid(10, 10).Set(tc.pos, tc.state)
		})
	}
}

func TestNewGridPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) should panic")
		}
	}()
	NewGrid(0, 5)
}

func TestGridEmptyCells(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(core.Pos(0, 1), CellSnakeHead)
	g.Set(core.Pos(1, 0), CellFruit)

	empty := g.EmptyCells()
	expected := []core.Position{core.Pos(0, 0), core.Pos(1, 1)}

	if len(empty) != len(expected) {
		t.Fatalf("EmptyCells() = %v, expected %v", empty, expected)
	}
	for i := range expected {
		if empty[i] != expected[i] {
			t.Errorf("EmptyCells()[%d] = %v, expected %v", i, empty[i], expected[i])
		}
	}
}

func TestGridCenter(t *testing.T) {
	tests := []struct {
		rows, cols int
		expected   core.Position
	}{
		{10, 10, core.Pos(4, 4)},
		{11, 11, core.Pos(5, 5)},
		{1, 1, core.Pos(0, 0)},
		{4, 9, core.Pos(1, 4)},
	}

	for _, tc := range tests {
		if got := NewGrid(tc.rows, tc.cols).Center(); got != tc.expected {
			t.Errorf("Center() on %dx%d = %v, expected %v", tc.rows, tc.cols, got, tc.expected)
		}
	}
}
