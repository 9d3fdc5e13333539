// Package session binds one game to a palette and a logger so frontends can
// drive it through the tick scheduler.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// Session is a single play-through. It implements scheduler.Target.
type Session struct {
	game    *game.Game
	opts    game.Options
	palette core.Palette
	logger  *log.Logger

	logged bool // End line already written
}

// New starts a session and logs its parameters.
func New(opts game.Options, palette core.Palette, logger *log.Logger) *Session {
	g := game.New(opts)

	s := &Session{
		game:    g,
		opts:    opts,
		palette: palette,
		logger:  logger,
	}

	snap := g.Snapshot()
	logger.Info("session started",
		"rows", g.Grid().Rows(),
		"cols", g.Grid().Cols(),
		"seed", opts.Seed,
		"fruit", fruitField(snap),
	)
	return s
}

// Tick advances the game and logs fruit and end events.
func (s *Session) Tick(in core.Input) {
	res := s.game.Tick(in)

	if res.Ate {
		snap := s.game.Snapshot()
		s.logger.Debug("fruit eaten",
			"length", snap.SnakeLen,
			"tick", snap.Tick,
			"next", fruitField(snap),
		)
	}

	if res.Ended && !s.logged {
		s.logged = true
		fields := []interface{}{
			"reason", res.Reason,
			"score", res.Score,
			"ticks", s.game.Ticks(),
		}
		if b := s.game.BlockedBy(); b != nil {
			fields = append(fields, "blocked", b.Target)
		}
		s.logger.Info("session ended", fields...)
	}
}

// Draw renders the current frame.
func (s *Session) Draw(r core.Renderer) {
	s.game.Draw(r, s.palette)
}

// Ended reports whether the game is over.
func (s *Session) Ended() bool {
	return s.game.Ended()
}

// Score returns the live or final score.
func (s *Session) Score() int {
	return s.game.Score()
}

// Reason returns why the session ended.
func (s *Session) Reason() game.EndReason {
	return s.game.Reason()
}

// Title returns the window title for the current score.
func (s *Session) Title() string {
	return s.game.Title()
}

// Game exposes the underlying game for read-only use by frontends.
func (s *Session) Game() *game.Game {
	return s.game
}

// Palette returns the colours used for drawing.
func (s *Session) Palette() core.Palette {
	return s.palette
}

// Rows returns the board height.
func (s *Session) Rows() int {
	return s.game.Grid().Rows()
}

// Cols returns the board width.
func (s *Session) Cols() int {
	return s.game.Grid().Cols()
}

func fruitField(snap game.Snapshot) string {
	if !snap.HasFruit {
		return "none"
	}
	return core.Pos(snap.FruitRow, snap.FruitCol).String()
}
