package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Default board size.
const (
	DefaultRows = 10
	DefaultCols = 10
)

// Options configures a new session.
type Options struct {
	Rows int
	Cols int
	Seed int64 // RNG seed for fruit placement
}

// DefaultOptions returns a 10x10 board with seed 0.
func DefaultOptions() Options {
	return Options{Rows: DefaultRows, Cols: DefaultCols}
}

// State is the controller's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateEnded
)

func (s State) String() string {
	if s == StateEnded {
		return "ended"
	}
	return "running"
}

// EndReason records how a session finished.
type EndReason int

const (
	EndNone EndReason = iota
	EndOffGrid
	EndSelfCollision
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndOffGrid:
		return "off_grid"
	case EndSelfCollision:
		return "self_collision"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// TickResult is returned by Game.Tick.
type TickResult struct {
	Ate    bool // Fruit was eaten this tick
	Ended  bool
	Reason EndReason
	Score  int
}

// Game owns the grid, snake and fruit of one session and advances them
// once per logic tick.
type Game struct {
	rng     *rand.Rand
	grid    *Grid
	snake   *Snake
	fruit   *Fruit
	heading core.Direction

	state  State
	reason EndReason
	score  int // Frozen at snake length when the session ends

	tick      uint64
	eaten     int
	blockedBy *BlockedMoveError // Move that ended the session, if any
}

// New creates a running session with a length-1 snake at the board centre,
// heading up, and one fruit on a random empty cell.
func New(opts Options) *Game {
	if opts.Rows == 0 && opts.Cols == 0 {
		opts.Rows, opts.Cols = DefaultRows, DefaultCols
	}

	g := &Game{
		rng:     rand.New(rand.NewSource(opts.Seed)),
		grid:    NewGrid(opts.Rows, opts.Cols),
		heading: core.DirUp,
		state:   StateRunning,
	}
	g.snake = NewSnake(g.grid, g.grid.Center())
	g.fruit, _ = PlaceFruit(g.grid, g.rng)
	return g
}

// Tick advances the session by one logic step.
// Once the session has ended, Tick is a no-op that repeats the final result.
func (g *Game) Tick(in core.Input) TickResult {
	if g.state == StateEnded {
		return g.result(false)
	}
	g.tick++

	if in.Quit {
		g.Quit()
		return g.result(false)
	}

	if in.HasDirection {
		g.Steer(in.Direction)
	}

	ahead := g.snake.Head().Add(g.heading.Offset())
	ate := g.grid.Get(ahead) == CellFruit

	var err error
	if ate {
		err = g.snake.Grow(g.grid, g.heading)
	} else {
		err = g.snake.Move(g.grid, g.heading)
	}

	if err != nil {
		var blocked *BlockedMoveError
		if errors.As(err, &blocked) {
			g.blockedBy = blocked
			if blocked.Reason == BlockedSelfCollision {
				g.end(EndSelfCollision)
			} else {
				g.end(EndOffGrid)
			}
		}
		return g.result(false)
	}

	if ate {
		g.eaten++
		g.fruit.Relocate(g.grid, g.rng)
	}
	return g.result(ate)
}

// Steer changes the heading unless d reverses it. Returns whether the
// heading was accepted.
func (g *Game) Steer(d core.Direction) bool {
	if d == g.heading.Opposite() {
		return false
	}
	g.heading = d
	return true
}

// Quit ends a running session with the current length as score.
func (g *Game) Quit() {
	if g.state == StateRunning {
		g.end(EndQuit)
	}
}

func (g *Game) end(reason EndReason) {
	g.state = StateEnded
	g.reason = reason
	g.score = g.snake.Len()
}

func (g *Game) result(ate bool) TickResult {
	return TickResult{
		Ate:    ate,
		Ended:  g.state == StateEnded,
		Reason: g.reason,
		Score:  g.Score(),
	}
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the session is still in play.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Ended reports whether the session has finished.
func (g *Game) Ended() bool {
	return g.state == StateEnded
}

// Reason returns why the session ended, or EndNone while running.
func (g *Game) Reason() EndReason {
	return g.reason
}

// BlockedBy returns the move that ended the session, or nil.
func (g *Game) BlockedBy() *BlockedMoveError {
	return g.blockedBy
}

// Score is the snake length: live while running, frozen once ended.
func (g *Game) Score() int {
	if g.state == StateEnded {
		return g.score
	}
	return g.snake.Len()
}

// Heading returns the direction of the next move.
func (g *Game) Heading() core.Direction {
	return g.heading
}

// Grid returns the board. Frontends must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Snake returns the snake. Frontends must treat it as read-only.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Fruit returns the fruit.
func (g *Game) Fruit() *Fruit {
	return g.fruit
}

// Ticks returns how many logic ticks have run.
func (g *Game) Ticks() uint64 {
	return g.tick
}
