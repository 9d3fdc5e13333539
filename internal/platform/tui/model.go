package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/scheduler"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// Lines below the board: the help bar.
const footerHeight = 1

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// Model is the Bubble Tea model for a single session.
type Model struct {
	session  *session.Session
	loop     *scheduler.Loop
	input    *Latch
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model

	frame time.Duration
	last  time.Time // Time of the previous frame; zero before the first
	title string    // Last title sent to the terminal

	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving s with a logic tick of tick and a
// frame rate of one frame per frame interval.
func NewModel(s *session.Session, tick, frame time.Duration, width, height int) Model {
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = width

	renderer := NewScreenRenderer(s.Rows(), s.Cols())
	renderer.SetLabel(func() string {
		return fmt.Sprintf("Score: %d", s.Score())
	})

	return Model{
		session:  s,
		loop:     scheduler.New(tick),
		input:    NewLatch(keys),
		renderer: renderer,
		keys:     keys,
		help:     h,
		frame:    frame,
		width:    width,
		height:   height,
	}
}

// Init draws the first frame and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.session.Draw(m.renderer)
	return tea.Batch(tea.SetWindowTitle(m.session.Title()), frameCmd(m.frame))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.input.Feed(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleFrame runs one scheduler frame. While the terminal is too small the
// clock is held so no ticks fire behind the warning.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Duration(0)
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	if m.TooSmall() {
		elapsed = 0
	}

	m.loop.Frame(elapsed, m.input, m.renderer, m.session)

	var cmds []tea.Cmd
	if t := m.renderer.Title(); t != m.title {
		m.title = t
		cmds = append(cmds, tea.SetWindowTitle(t))
	}

	if m.session.Ended() {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
		return m, tea.Sequence(cmds...)
	}

	cmds = append(cmds, frameCmd(m.frame))
	return m, tea.Batch(cmds...)
}

// TooSmall reports whether the board and footer do not fit the terminal.
// An unknown size (zero) is treated as large enough.
func (m Model) TooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	w, h := BoardSize(m.session.Rows(), m.session.Cols())
	return m.width < w || m.height < h+footerHeight
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.TooSmall() {
		w, h := BoardSize(m.session.Rows(), m.session.Cols())
		return warnStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			w, h+footerHeight, m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(m.renderer.Frame())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Session returns the driven session.
func (m Model) Session() *session.Session {
	return m.session
}

// Ticks returns how many logic ticks have run.
func (m Model) Ticks() uint64 {
	return m.loop.Ticks()
}
