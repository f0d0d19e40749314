package sim

// Grid is a fixed-size field of materials, stored row-major with y growing upward.
type Grid struct {
	W, H  int
	Cells []Material
}

func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, Cells: make([]Material, w*h)}
}

// Index returns the cell index of (x, y), or -1 when the coordinate is off-grid.
func (g *Grid) Index(x, y int) int {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return -1
	}
	return y*g.W + x
}

// At returns the material at (x, y). ok is false off-grid.
func (g *Grid) At(x, y int) (m Material, ok bool) {
	i := g.Index(x, y)
	if i < 0 {
		return Air, false
	}
	return g.Cells[i], true
}

// Set writes m at (x, y) and reports whether the cell exists.
func (g *Grid) Set(x, y int, m Material) bool {
	i := g.Index(x, y)
	if i < 0 {
		return false
	}
	g.Cells[i] = m
	return true
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.Cells, src.Cells)
}

// SameSize reports whether g and o have identical dimensions.
func (g *Grid) SameSize(o *Grid) bool {
	return g.W == o.W && g.H == o.H
}

// Count returns how many cells hold m.
func (g *Grid) Count(m Material) int {
	n := 0
	for _, c := range g.Cells {
		if c == m {
			n++
		}
	}
	return n
}

// Sanitize replaces unknown ids with Air and returns how many were replaced.
func (g *Grid) Sanitize() int {
	n := 0
	for i, c := range g.Cells {
		if !c.Valid() {
			g.Cells[i] = Sanitize(c)
			n++
		}
	}
	return n
}
