// Package tui runs a snake session in the terminal with Bubble Tea.
// It handles the frame loop, key mapping and cell rendering; the game
// itself advances only through the tick scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame to poll input and redraw.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
