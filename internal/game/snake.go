package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrBlockedMove is matched by every rejected snake movement.
var ErrBlockedMove = errors.New("game: blocked move")

// BlockReason says why a move was rejected.
type BlockReason int

const (
	BlockedOffGrid BlockReason = iota
	BlockedSelfCollision
)

func (r BlockReason) String() string {
	switch r {
	case BlockedOffGrid:
		return "off_grid"
	case BlockedSelfCollision:
		return "self_collision"
	default:
		return "unknown"
	}
}

// BlockedMoveError describes a rejected move.
type BlockedMoveError struct {
	Reason    BlockReason
	Direction core.Direction
	Target    core.Position
}

func (e *BlockedMoveError) Error() string {
	return fmt.Sprintf("game: blocked move %s to %v: %s", e.Direction, e.Target, e.Reason)
}

// Is makes errors.Is(err, ErrBlockedMove) succeed.
func (e *BlockedMoveError) Is(target error) bool {
	return target == ErrBlockedMove
}

// Snake is an ordered run of grid positions, head first.
// It keeps no reference to the grid; every mutating call receives it.
type Snake struct {
	body []core.Position
}

// NewSnake creates a length-1 snake at start and marks its head on the grid.
func NewSnake(grid *Grid, start core.Position) *Snake {
	grid.Set(start, CellSnakeHead)
	return &Snake{body: []core.Position{start}}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Position {
	return s.body[len(s.body)-1]
}

// Positions returns a copy of the segments, head first.
func (s *Snake) Positions() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Move advances the head one step and drops the tail, keeping the length.
func (s *Snake) Move(grid *Grid, dir core.Direction) error {
	return s.advance(grid, dir, false)
}

// Grow advances the head one step and keeps the tail, adding one segment.
func (s *Snake) Grow(grid *Grid, dir core.Direction) error {
	return s.advance(grid, dir, true)
}

// advance is the single movement algorithm behind Move and Grow.
// On error neither the snake nor the grid is modified.
func (s *Snake) advance(grid *Grid, dir core.Direction, grow bool) error {
	head := s.Head()
	next := head.Add(dir.Offset())

	switch state := grid.Get(next); {
	case state == CellOutOfBounds:
		return &BlockedMoveError{Reason: BlockedOffGrid, Direction: dir, Target: next}
	case state.Occupied():
		// The tail cell counts too: it is still body when the check runs.
		return &BlockedMoveError{Reason: BlockedSelfCollision, Direction: dir, Target: next}
	}

	s.body = append(s.body, core.Position{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	grid.Set(next, CellSnakeHead)
	grid.Set(head, CellSnakeBody)

	if !grow {
		tail := s.Tail()
		s.body = s.body[:len(s.body)-1]
		grid.Set(tail, CellEmpty)
	}
	return nil
}
