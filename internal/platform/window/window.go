// Package window runs a snake session in a desktop window with raylib.
// raylib needs cgo and must be driven from the main OS thread.
package window

import (
	"context"
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/scheduler"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// ID is the registry identifier of the window frontend.
const ID = "window"

func init() {
	// init runs on the main goroutine; keep it on the main thread for raylib
	runtime.LockOSThread()
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays a session in a fixed-size window.
type Frontend struct{}

// ID returns "window".
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "Desktop window (raylib)" }

// OwnsTerminal is false: logs may go to stderr.
func (Frontend) OwnsTerminal() bool { return false }

// Run opens a window, drives the session with the system clock and closes
// the window when the session ends.
func (Frontend) Run(ctx context.Context, s *session.Session, cfg config.Config) error {
	layout, err := NewLayout(cfg.Window.Width, cfg.Window.Height, s.Rows(), s.Cols())
	if err != nil {
		return err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(layout.Width, layout.Height, s.Title())
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		return fmt.Errorf("window: failed to open %dx%d window", layout.Width, layout.Height)
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(cfg.Timing.FPS))

	r := NewRenderer(layout, s.Palette().Background)
	kb := &Keyboard{}
	loop := scheduler.New(cfg.Timing.TickInterval)

	return loop.Run(ctx, scheduler.SystemClock{}, kb, r, s)
}
