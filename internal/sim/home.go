package sim

// Home is a goal area. It is active while its border is built from wood.
type Home struct {
	Pos    Point // bottom-left cell of the footprint
	W, H   int
	Active bool
}

func NewHome(x, y, w, h int) *Home {
	if w <= 0 {
		w = DefaultSpriteW
	}
	if h <= 0 {
		h = DefaultSpriteH
	}
	return &Home{Pos: Point{X: x, Y: y}, W: w, H: h}
}

// woodBorder counts wood on the rows above and below the footprint and on
// the columns to its sides. A missing row below counts as built.
func (h *Home) woodBorder(g *Grid) int {
	n := 0
	isWood := func(x, y int) bool {
		m, ok := g.At(x, y)
		return ok && m == Wood
	}
	for dx := 0; dx < h.W; dx++ {
		x := h.Pos.X + dx
		if isWood(x, h.Pos.Y+h.H) {
			n++
		}
		if g.Index(x, h.Pos.Y-1) < 0 || isWood(x, h.Pos.Y-1) {
			n++
		}
	}
	for dy := 0; dy < h.H; dy++ {
		y := h.Pos.Y + dy
		if isWood(h.Pos.X-1, y) {
			n++
		}
		if isWood(h.Pos.X+h.W, y) {
			n++
		}
	}
	return n
}

// Update recomputes Active and repaints the footprint, leaving wood and fire alone.
func (h *Home) Update(g *Grid) {
	h.Active = h.woodBorder(g) >= h.H+2*h.W
	paint := HomeInactive
	if h.Active {
		paint = HomeActive
	}
	for dy := 0; dy < h.H; dy++ {
		for dx := 0; dx < h.W; dx++ {
			x, y := h.Pos.X+dx, h.Pos.Y+dy
			m, ok := g.At(x, y)
			if !ok || m == Wood || m == Fire {
				continue
			}
			g.Set(x, y, paint)
		}
	}
}
