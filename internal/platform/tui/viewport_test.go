package tui

import (
	"testing"

	"github.com/vovakirdan/star-catcher/internal/core"
)

func TestViewportFitsPlayfield(t *testing.T) {
	tests := []struct {
		termW, termH int
		cols, rows   int
	}{
		{80, 40, 60, 40},  // height-bound: 8x16 px cells
		{40, 100, 40, 27}, // width-bound: 12x24 px cells
		{120, 20, 30, 20}, // short terminal
		{48, 32, 48, 32},  // exact fit
	}

	for _, tc := range tests {
		v := newViewport(480, 640, tc.termW, tc.termH)
		if v.cols != tc.cols || v.rows != tc.rows {
			t.Errorf("%dx%d terminal: playfield = %dx%d cells, expected %dx%d",
				tc.termW, tc.termH, v.cols, v.rows, tc.cols, tc.rows)
		}
		if v.offX < 0 || v.offY < 0 || v.offX+v.cols > tc.termW || v.offY+v.rows > tc.termH {
			t.Errorf("%dx%d terminal: playfield %+v does not fit", tc.termW, tc.termH, v.bounds())
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(480, 640, 80, 40)

	col, row := v.cell(240, 320)
	p := v.pixel(col, row)
	if back, backRow := v.cell(p.X, p.Y); back != col || backRow != row {
		t.Errorf("cell(pixel(%d, %d)) = (%d, %d)", col, row, back, backRow)
	}

	// Menu start button centre lands inside the button.
	button := core.HitboxFromCenter(240, 280, 260, 50)
	col, row = v.cell(240, 280)
	if !button.ContainsPoint(v.pixel(col, row)) {
		t.Errorf("pixel(%d, %d) = %v is outside the button", col, row, v.pixel(col, row))
	}
}

func TestViewportRectMinimumSize(t *testing.T) {
	v := newViewport(480, 640, 40, 40)
	r := v.rect(core.NewHitbox(100, 100, 1, 1))
	if r.W < 1 || r.H < 1 {
		t.Errorf("rect() = %+v, expected at least one cell", r)
	}
}
