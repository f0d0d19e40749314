package sim

// brushRing is the one-deep 4-connected ring a size-2 brush adds around its centre.
var brushRing = [4]Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// Paint sets (x, y) to m, optionally with the surrounding brush ring when
// size > 1. Off-grid and indestructible cells are skipped. The ring is only
// painted when the centre cell was.
func (g *Grid) Paint(x, y int, m Material, size int) int {
	if !g.paintOne(x, y, m) {
		return 0
	}
	n := 1
	if size > 1 {
		for _, o := range brushRing {
			if g.paintOne(x+o.X, y+o.Y, m) {
				n++
			}
		}
	}
	return n
}

func (g *Grid) paintOne(x, y int, m Material) bool {
	i := g.Index(x, y)
	if i < 0 || g.Cells[i] == Indestructible {
		return false
	}
	g.Cells[i] = Sanitize(m)
	return true
}

// Fill turns every Air cell into m and returns how many changed.
func (g *Grid) Fill(m Material) int {
	m = Sanitize(m)
	if m == Air {
		return 0
	}
	n := 0
	for i, c := range g.Cells {
		if c == Air {
			g.Cells[i] = m
			n++
		}
	}
	return n
}
