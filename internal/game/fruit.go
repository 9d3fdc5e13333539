package game

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Fruit is the single collectible on the board.
type Fruit struct {
	pos     core.Position
	present bool
}

// PlaceFruit creates a fruit on a random empty cell.
// The second result is false when the board has no empty cell left.
func PlaceFruit(grid *Grid, rng *rand.Rand) (*Fruit, bool) {
	f := &Fruit{}
	ok := f.Relocate(grid, rng)
	return f, ok
}

// Relocate moves the fruit to a cell chosen uniformly among the currently
// empty ones and marks it on the grid. The old cell is not cleared: by the
// time the fruit moves, the snake's head already sits there.
// With no empty cell left the fruit becomes absent.
func (f *Fruit) Relocate(grid *Grid, rng *rand.Rand) bool {
	empty := grid.EmptyCells()
	if len(empty) == 0 {
		f.present = false
		return false
	}

	f.pos = empty[rng.Intn(len(empty))]
	f.present = true
	grid.Set(f.pos, CellFruit)
	return true
}

// Position returns the fruit cell and whether the fruit is on the board.
func (f *Fruit) Position() (core.Position, bool) {
	return f.pos, f.present
}

// Present reports whether the fruit is on the board.
func (f *Fruit) Present() bool {
	return f.present
}
