package window

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Layout maps grid cells to window pixels.
// Cell size is the window dimension divided by the grid dimension.
type Layout struct {
	Width, Height int32
	CellW, CellH  int32
}

// NewLayout computes the cell size for a rows x cols grid in a width x height window.
func NewLayout(width, height, rows, cols int) (Layout, error) {
	if rows <= 0 || cols <= 0 {
		return Layout{}, fmt.Errorf("window: invalid grid %dx%d", cols, rows)
	}
	if width < cols || height < rows {
		return Layout{}, fmt.Errorf("window: %dx%d window too small for a %dx%d grid", width, height, cols, rows)
	}

	return Layout{
		Width:  int32(width),
		Height: int32(height),
		CellW:  int32(width / cols),
		CellH:  int32(height / rows),
	}, nil
}

// CellRect returns the pixel rectangle of a grid cell.
func (l Layout) CellRect(pos core.Position) (x, y, w, h int32) {
	return int32(pos.Col) * l.CellW, int32(pos.Row) * l.CellH, l.CellW, l.CellH
}
