package term

import "vixel/internal/sim"

// HalfBlock draws two grid rows per terminal row: the foreground is the
// upper cell and the background the lower one.
const HalfBlock = '▀'

// Layout places a bottom-origin grid on a top-origin terminal. Each
// terminal row covers two grid rows.
type Layout struct {
	OffX, OffY int
	Cols, Rows int

	gridW, gridH int
}

// NewLayout centres the grid on a cols x rows screen. A screen too narrow
// keeps the right edge in view and a screen too short keeps the top, since
// the palette lives in the top-right corner.
func NewLayout(gridW, gridH, cols, rows int) Layout {
	l := Layout{Cols: cols, Rows: rows, gridW: gridW, gridH: gridH}
	l.OffX = (cols - gridW) / 2
	if cols < gridW {
		l.OffX = cols - gridW
	}
	if h := l.GridRows(); rows > h {
		l.OffY = (rows - h) / 2
	}
	return l
}

// GridRows is the number of terminal rows the grid occupies.
func (l Layout) GridRows() int { return (l.gridH + 1) / 2 }

// CellAt maps a terminal cell to the upper grid cell under it.
func (l Layout) CellAt(col, row int) (x, y int, ok bool) {
	x = col - l.OffX
	y = l.gridH - 1 - 2*(row-l.OffY)
	ok = x >= 0 && x < l.gridW && y >= 0 && y < l.gridH
	return x, y, ok
}

// Each calls fn for every visible terminal cell with the colours of the two
// grid cells it covers. px is row-major with y up. A missing lower row on
// odd-height grids is black.
func (l Layout) Each(px []sim.RGB, fn func(col, row int, top, bottom sim.RGB)) {
	for r := 0; r < l.GridRows(); r++ {
		row := r + l.OffY
		if row < 0 || row >= l.Rows {
			continue
		}
		yTop := l.gridH - 1 - 2*r
		yBot := yTop - 1
		for x := 0; x < l.gridW; x++ {
			col := x + l.OffX
			if col < 0 || col >= l.Cols {
				continue
			}
			top := px[yTop*l.gridW+x]
			var bottom sim.RGB
			if yBot >= 0 {
				bottom = px[yBot*l.gridW+x]
			}
			fn(col, row, top, bottom)
		}
	}
}
