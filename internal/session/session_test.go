package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

func newTestSession(t *testing.T, seed int64) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(game.Options{Rows: 10, Cols: 10, Seed: seed}, core.DefaultPalette(), logger)
	return s, &buf
}

// towardFruit picks a heading that moves a length-1 snake closer to the fruit
// without reversing.
func towardFruit(g *game.Game) core.Direction {
	snap := g.Snapshot()
	heading := g.Heading()

	switch {
	case snap.FruitCol < snap.HeadCol && heading != core.DirRight:
		return core.DirLeft
	case snap.FruitCol > snap.HeadCol && heading != core.DirLeft:
		return core.DirRight
	case snap.FruitCol != snap.HeadCol:
		return core.DirUp
	case snap.FruitRow < snap.HeadRow && heading != core.DirDown:
		return core.DirUp
	case snap.FruitRow > snap.HeadRow && heading != core.DirUp:
		return core.DirDown
	default:
		// Fruit is behind us in the same column, step aside first
		return core.DirRight
	}
}

func TestSessionLogsStart(t *testing.T) {
	_, buf := newTestSession(t, 1)

	out := buf.String()
	if !strings.Contains(out, "session started") {
		t.Errorf("missing start line: %q", out)
	}
	if !strings.Contains(out, "rows=10") || !strings.Contains(out, "seed=1") {
		t.Errorf("start line should carry grid and seed: %q", out)
	}
}

func TestSessionLogsFruitEaten(t *testing.T) {
	s, buf := newTestSession(t, 3)

	ate := false
	for i := 0; i < 40 && !s.Ended(); i++ {
		before := s.Score()
		s.Tick(core.DirectionInput(towardFruit(s.Game())))
		if s.Score() > before {
			ate = true
			break
		}
	}

	if !ate {
		t.Fatal("snake never reached the fruit")
	}
	if s.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", s.Score())
	}
	if !strings.Contains(buf.String(), "fruit eaten") {
		t.Errorf("missing fruit line: %q", buf.String())
	}
}

func TestSessionLogsEndOnce(t *testing.T) {
	s, buf := newTestSession(t, 5)

	for i := 0; i < 30 && !s.Ended(); i++ {
		s.Tick(core.DirectionInput(core.DirUp))
	}
	if !s.Ended() {
		t.Fatal("session should end after running off the top edge")
	}
	if s.Reason() != game.EndOffGrid {
		t.Errorf("Reason() = %v, expected off_grid", s.Reason())
	}

	// Further ticks are no-ops and must not log again
	s.Tick(core.Input{})
	s.Tick(core.QuitInput())

	out := buf.String()
	if n := strings.Count(out, "session ended"); n != 1 {
		t.Errorf("end line logged %d times, expected 1", n)
	}
	if !strings.Contains(out, "reason=off_grid") {
		t.Errorf("end line should carry reason: %q", out)
	}
}

func TestSessionQuit(t *testing.T) {
	s, buf := newTestSession(t, 0)

	s.Tick(core.QuitInput())

	if !s.Ended() || s.Reason() != game.EndQuit {
		t.Errorf("Ended() = %v, Reason() = %v, expected quit", s.Ended(), s.Reason())
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if !strings.Contains(buf.String(), "reason=quit") {
		t.Errorf("missing quit reason: %q", buf.String())
	}
}

type countingRenderer struct {
	cells  int
	titles []string
}

func (r *countingRenderer) Clear()                             { r.cells = 0 }
func (r *countingRenderer) DrawCell(core.Position, core.Color) { r.cells++ }
func (r *countingRenderer) Present()                           {}
func (r *countingRenderer) SetTitle(title string)              { r.titles = append(r.titles, title) }

func TestSessionDraw(t *testing.T) {
	s, _ := newTestSession(t, 2)
	r := &countingRenderer{}

	s.Draw(r)

	// Head plus fruit
	if r.cells != 2 {
		t.Errorf("cells drawn = %d, expected 2", r.cells)
	}
	if len(r.titles) != 1 || r.titles[0] != "Snake Game! Score: 1" {
		t.Errorf("titles = %v", r.titles)
	}
	if s.Rows() != 10 || s.Cols() != 10 {
		t.Errorf("size = %dx%d, expected 10x10", s.Rows(), s.Cols())
	}
}
