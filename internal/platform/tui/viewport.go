package tui

import (
	"math"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2.0

// viewport maps playfield pixels to terminal cells. The playfield keeps its
// aspect ratio and is centred in the available area.
type viewport struct {
	cellW, cellH float64 // Pixels per cell
	cols, rows   int     // Cells covered by the playfield
	offX, offY   int     // Top-left cell of the playfield
}

func newViewport(fieldW, fieldH float64, termW, termH int) viewport {
	if termW < 1 {
		termW = 1
	}
	if termH < 1 {
		termH = 1
	}
	cellW := math.Max(fieldW/float64(termW), fieldH/(cellAspect*float64(termH)))
	if cellW <= 0 {
		cellW = 1
	}
	v := viewport{
		cellW: cellW,
		cellH: cellW * cellAspect,
	}
	v.cols = core.Min(termW, int(math.Ceil(fieldW/v.cellW)))
	v.rows = core.Min(termH, int(math.Ceil(fieldH/v.cellH)))
	v.offX = (termW - v.cols) / 2
	v.offY = (termH - v.rows) / 2
	return v
}

// cell returns the cell containing pixel (x, y).
func (v viewport) cell(x, y float64) (col, row int) {
	return v.offX + int(math.Floor(x/v.cellW)), v.offY + int(math.Floor(y/v.cellH))
}

// rect returns the cells covered by a hitbox, at least one cell.
func (v viewport) rect(h core.Hitbox) core.Rect {
	x0 := int(math.Floor(h.Left() / v.cellW))
	y0 := int(math.Floor(h.Top() / v.cellH))
	x1 := int(math.Ceil(h.Right() / v.cellW))
	y1 := int(math.Ceil(h.Bottom() / v.cellH))
	return core.NewRect(v.offX+x0, v.offY+y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// pixel returns the playfield point at the centre of a cell.
func (v viewport) pixel(col, row int) core.Point {
	return core.Point{
		X: (float64(col-v.offX) + 0.5) * v.cellW,
		Y: (float64(row-v.offY) + 0.5) * v.cellH,
	}
}

// bounds returns the playfield area in cells.
func (v viewport) bounds() core.Rect {
	return core.NewRect(v.offX, v.offY, v.cols, v.rows)
}
