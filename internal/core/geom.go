// Package core provides fundamental types shared by the game logic and its
// frontends. It contains no external dependencies (especially no Bubble Tea
// or raylib) to keep game logic pure and testable.
package core

import "fmt"

// Position is a grid cell address. Row grows downwards, Col grows to the right.
type Position struct {
	Row, Col int
}

// Pos creates a new position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position shifted by the given offset.
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// Adjacent returns true if other differs by exactly one step on exactly one axis.
func (p Position) Adjacent(other Position) bool {
	return Abs(p.Row-other.Row)+Abs(p.Col-other.Col) == 1
}

// String formats the position as (row, col).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Offset is a unit step on the grid.
type Offset struct {
	DRow, DCol int
}

// Direction represents a heading on the grid.
type Direction int

// DirUp is the zero value so a fresh session heads up.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Offset returns the unit step for the direction.
func (d Direction) Offset() Offset {
	switch d {
	case DirUp:
		return Offset{DRow: -1}
	case DirDown:
		return Offset{DRow: 1}
	case DirLeft:
		return Offset{DCol: -1}
	case DirRight:
		return Offset{DCol: 1}
	default:
		return Offset{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
