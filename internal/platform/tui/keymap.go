package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// KeyMap defines the key bindings for a session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns arrows, wasd and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// MapKey translates a key message to a heading.
// Returns the direction, whether the key was a direction, and whether it is a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (dir core.Direction, ok bool, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.DirUp, false, true
	case key.Matches(msg, k.Up):
		return core.DirUp, true, false
	case key.Matches(msg, k.Down):
		return core.DirDown, true, false
	case key.Matches(msg, k.Left):
		return core.DirLeft, true, false
	case key.Matches(msg, k.Right):
		return core.DirRight, true, false
	}
	return core.DirUp, false, false
}

// Latch is the terminal's core.InputSource. Key messages are queued as they
// arrive and applied on Poll, so one frame sees a stable view. The last
// direction key stays latched until another direction key replaces it.
type Latch struct {
	keys   KeyMap
	queued []tea.KeyMsg

	dir    core.Direction
	hasDir bool
	quit   bool
}

// NewLatch creates an input latch using the given bindings.
func NewLatch(keys KeyMap) *Latch {
	return &Latch{keys: keys}
}

// Feed queues a key message for the next Poll.
func (l *Latch) Feed(msg tea.KeyMsg) {
	l.queued = append(l.queued, msg)
}

// Poll applies queued keys in arrival order.
func (l *Latch) Poll() {
	for _, msg := range l.queued {
		dir, ok, isQuit := l.keys.MapKey(msg)
		if isQuit {
			l.quit = true
			continue
		}
		if ok {
			l.dir = dir
			l.hasDir = true
		}
	}
	l.queued = l.queued[:0]
}

// QuitRequested reports whether a quit key has been polled.
func (l *Latch) QuitRequested() bool {
	return l.quit
}

// LastDirection returns the most recently polled direction key.
func (l *Latch) LastDirection() (core.Direction, bool) {
	return l.dir, l.hasDir
}
