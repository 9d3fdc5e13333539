package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// ID is the registry identifier of the terminal frontend.
const ID = "terminal"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays a session inside the terminal.
type Frontend struct{}

// ID returns "terminal".
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// OwnsTerminal is true: the board is drawn on stdout.
func (Frontend) OwnsTerminal() bool { return true }

// Run starts the Bubble Tea program and blocks until the session ends or
// the player quits. Cancelling ctx stops the program.
func (Frontend) Run(ctx context.Context, s *session.Session, cfg config.Config) error {
	// Get terminal size early so the first View can check the fit
	width, height := 0, 0
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	model := NewModel(s, cfg.Timing.TickInterval, cfg.Timing.FrameInterval(), width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
