package sim

type Point struct {
	X, Y int
}

// Character is a walker that wanders the field until it reaches a built home.
// Pos is the bottom-left cell of its footprint.
type Character struct {
	Pos   Point
	Spawn Point
	Dir   int // +1 right, -1 left
	W, H  int

	Awake bool
	Home  bool

	Breath  int
	AirTime int
}

// NewCharacter places a sleeping character at (x, y). Non-positive sizes
// fall back to the default footprint.
func NewCharacter(x, y, w, h int) *Character {
	if w <= 0 {
		w = DefaultSpriteW
	}
	if h <= 0 {
		h = DefaultSpriteH
	}
	c := &Character{Spawn: Point{X: x, Y: y}, W: w, H: h}
	c.respawn()
	return c
}

func (c *Character) respawn() {
	c.Pos = c.Spawn
	c.Dir = 1
	c.Breath = MaxBreath
	c.AirTime = 0
}

// Die sends an awake character back to its spawn with fresh counters.
// It reports whether anything happened.
func (c *Character) Die() bool {
	if !c.Awake {
		return false
	}
	c.respawn()
	return true
}

// probe is what a character sees in one row or column of neighbours.
type probe struct {
	highest int // highest blocking row, -1 when clear
	blocked int
	water   int
	home    int
	lava    bool
}

// probeFront scans the column just ahead of the character, bottom to top.
// Off-grid cells block.
func (c *Character) probeFront(g *Grid) probe {
	x := c.Pos.X - 1
	if c.Dir > 0 {
		x = c.Pos.X + c.W
	}
	p := probe{highest: -1}
	for r := 0; r < c.H; r++ {
		m, ok := g.At(x, c.Pos.Y+r)
		if ok && m.Walkable() {
			continue
		}
		switch m {
		case Water:
			p.water++
		case HomeActive:
			p.home++
		case Lava:
			p.lava = true
		}
		p.highest = r
		p.blocked++
	}
	return p
}

// probeBelow scans the row under the footprint. Water does not hold a
// character up; off-grid does.
func (c *Character) probeBelow(g *Grid) probe {
	p := probe{highest: -1}
	for dx := 0; dx < c.W; dx++ {
		m, ok := g.At(c.Pos.X+dx, c.Pos.Y-1)
		if !ok {
			p.blocked++
			continue
		}
		switch m {
		case Air, HomeInactive, HomeActive:
			continue
		case Lava:
			p.lava = true
		case Water:
			p.water++
			continue
		}
		p.blocked++
	}
	return p
}

// submerged reports whether water flanks every row of the footprint.
func (c *Character) submerged(g *Grid) bool {
	for r := 0; r < c.H; r++ {
		y := c.Pos.Y + r
		l, _ := g.At(c.Pos.X-1, y)
		rt, _ := g.At(c.Pos.X+c.W, y)
		if l != Water && rt != Water {
			return false
		}
	}
	return true
}

// Update runs one tick of the character against g and redraws its marks.
func (c *Character) Update(g *Grid, tick uint64, emit func(Event)) {
	if c.Home {
		return
	}
	old := c.Pos
	if c.Awake {
		c.advance(g, tick, emit)
	}
	if c.Home {
		c.clear(g, old)
		return
	}
	c.clear(g, old)
	c.draw(g)
}

func (c *Character) event(k EventKind) Event {
	return Event{Kind: k, X: c.Pos.X, Y: c.Pos.Y}
}

func (c *Character) kill(k EventKind, emit func(Event)) {
	emit(c.event(k))
	c.Die()
}

func (c *Character) advance(g *Grid, tick uint64, emit func(Event)) {
	// Homes are entered through the column ahead only.
	front := c.probeFront(g)
	if front.home >= c.H {
		c.Awake = false
		c.Home = true
		emit(c.event(EventEnterHome))
		return
	}

	if tick%WalkCadence == 0 {
		if c.AirTime == FallWarning {
			emit(c.event(EventFall))
		}
		if front.lava {
			c.kill(EventLavaDeath, emit)
			return
		}
		c.walk(front)
	}

	if tick%GravityCadence == 0 {
		below := c.probeBelow(g)
		if below.lava {
			c.kill(EventLavaDeath, emit)
			return
		}
		if below.water > 0 {
			c.AirTime = 0
		}
		switch {
		case below.blocked == 0:
			c.Pos.Y--
			c.AirTime++
		case c.AirTime > MaxAirTime:
			c.kill(EventLandDie, emit)
			return
		default:
			c.AirTime = 0
		}
	}

	if tick%BreathCadence == 0 && c.submerged(g) {
		if c.Breath == DrowningWarning {
			emit(c.event(EventDrowning))
		}
		c.Breath--
		if c.Breath <= 0 {
			c.kill(EventDrown, emit)
		}
	}
}

func (c *Character) walk(front probe) {
	switch {
	case front.highest == -1:
		c.Pos.X += c.Dir
		c.Breath = MaxBreath
	case front.highest == 0 && c.H > 1:
		c.Pos.Y++
		c.Pos.X += c.Dir
	case front.highest == 1 && c.H > 2:
		c.Pos.Y += 2
		c.Pos.X += c.Dir
	default:
		c.Dir = -c.Dir
	}
}

// clear removes this character's marks from the footprint at p.
func (c *Character) clear(g *Grid, p Point) {
	for dy := 0; dy < c.H; dy++ {
		for dx := 0; dx < c.W; dx++ {
			if m, ok := g.At(p.X+dx, p.Y+dy); ok && m == CharacterMark {
				g.Set(p.X+dx, p.Y+dy, Air)
			}
		}
	}
}

func (c *Character) draw(g *Grid) {
	for dy := 0; dy < c.H; dy++ {
		for dx := 0; dx < c.W; dx++ {
			g.Set(c.Pos.X+dx, c.Pos.Y+dy, CharacterMark)
		}
	}
}
