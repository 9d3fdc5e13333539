package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Each grid cell is two terminal columns wide so the board looks square.
const (
	cellWidth = 2
	cellRune  = '█'
)

// BoardSize returns the screen size in characters for a grid, border included.
func BoardSize(rows, cols int) (width, height int) {
	return cols*cellWidth + 2, rows + 2
}

// ScreenRenderer implements core.Renderer on top of a core.Screen.
// Present converts the buffer to a styled string that View returns.
type ScreenRenderer struct {
	screen *core.Screen
	styles map[core.Color]lipgloss.Style
	label  func() string
	frame  string
	title  string
}

// NewScreenRenderer creates a renderer for a rows x cols board.
func NewScreenRenderer(rows, cols int) *ScreenRenderer {
	w, h := BoardSize(rows, cols)
	return &ScreenRenderer{
		screen: core.NewScreen(w, h),
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// Clear blanks the board and redraws its border.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
	r.screen.DrawBox(0, 0, r.screen.Width(), r.screen.Height())
}

// DrawCell fills one grid cell.
func (r *ScreenRenderer) DrawCell(pos core.Position, c core.Color) {
	r.screen.FillRect(1+pos.Col*cellWidth, 1+pos.Row, cellWidth, 1, cellRune, c)
}

// Present labels the top border, when the label fits between the corners,
// and publishes the buffer as the current frame.
func (r *ScreenRenderer) Present() {
	if r.label != nil {
		text := " " + r.label() + " "
		if len([]rune(text)) <= r.screen.Width()-2 {
			r.screen.DrawTextCentered(0, text)
		}
	}
	r.frame = r.RenderScreen()
}

// SetLabel sets the function that provides the top border label.
func (r *ScreenRenderer) SetLabel(fn func() string) {
	r.label = fn
}

// SetTitle records the title; the model forwards changes to the terminal.
func (r *ScreenRenderer) SetTitle(title string) {
	r.title = title
}

// Frame returns the last presented frame.
func (r *ScreenRenderer) Frame() string {
	return r.frame
}

// Title returns the last title set.
func (r *ScreenRenderer) Title() string {
	return r.title
}

// Screen returns the underlying buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

func (r *ScreenRenderer) style(c core.Color) lipgloss.Style {
	st, ok := r.styles[c]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		r.styles[c] = st
	}
	return st
}

// RenderScreen converts the buffer to a styled string.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
func (r *ScreenRenderer) RenderScreen() string {
	s := r.screen
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Styled != start.Styled || cell.Fg != start.Fg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Styled {
				sb.WriteString(r.style(start.Fg).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
