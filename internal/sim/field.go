package sim

// FieldStats summarises what one field step did.
type FieldStats struct {
	Ignitions int // wood cells set alight by fire or lava
}

// StepField advances every material rule by one tick, reading only cur and
// writing only next. next is resized to match cur when needed. Cells are
// visited row-major from y=0 upward; when two sources write the same
// destination the later one in that order wins.
func StepField(cur, next *Grid, tick uint64, rng Source) FieldStats {
	if !next.SameSize(cur) || len(next.Cells) != len(cur.Cells) {
		next.W, next.H = cur.W, cur.H
		next.Cells = make([]Material, len(cur.Cells))
	}
	next.CopyFrom(cur)

	f := field{cur: cur, next: next.Cells, tick: tick, rng: rng}
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			f.cell(x, y)
		}
	}
	return f.stats
}

type field struct {
	cur   *Grid
	next  []Material
	tick  uint64
	rng   Source
	stats FieldStats
}

// get reads cur at index i; ok is false for the off-grid sentinel.
func (f *field) get(i int) (Material, bool) {
	if i < 0 {
		return Air, false
	}
	return Sanitize(f.cur.Cells[i]), true
}

func (f *field) is(i int, ms ...Material) bool {
	m, ok := f.get(i)
	if !ok {
		return false
	}
	for _, want := range ms {
		if m == want {
			return true
		}
	}
	return false
}

func (f *field) every(n uint64) bool { return f.tick%n == 0 }

func (f *field) roll(oneIn int) bool { return f.rng.Intn(oneIn) == 1 }

func (f *field) cell(x, y int) {
	g := f.cur
	i := g.Index(x, y)
	above := g.Index(x, y+1)
	below := g.Index(x, y-1)
	left := g.Index(x-1, y)
	right := g.Index(x+1, y)

	m := g.Cells[i]
	if !m.Valid() {
		f.next[i] = Sanitize(m)
		return
	}

	switch m {
	case Dirt:
		if f.every(EarthCadence) {
			f.dirt(i, above, below)
		}
	case Grass:
		if f.every(EarthCadence) {
			f.grass(i, above, below)
		}
	case Fire:
		if f.every(FireCadence) {
			f.fire(i, above, below, left, right)
		}
	case Stone:
		f.stone(i, below, left, right)
	case Water:
		f.water(i, below, left, right)
	case Lava:
		if f.every(LavaCadence) {
			f.lava(i, below, left, right)
		}
	case Acid:
		if f.every(AcidCadence) {
			f.acid(i, above, below, left, right)
		}
	}
}

func (f *field) dirt(i, above, below int) {
	switch {
	case f.is(below, Air, Water, Lava):
		f.next[i] = Air
		f.next[below] = Dirt
	case (below < 0 || f.is(below, Dirt)) && f.is(above, Air) && f.roll(GrassChance):
		f.next[i] = Grass
	default:
		f.next[i] = Dirt
	}
}

func (f *field) grass(i, above, below int) {
	switch {
	case f.is(below, Air):
		// Falling sod lands as plain dirt.
		f.next[i] = Air
		f.next[below] = Dirt
	case above >= 0 && !f.is(above, Air, CharacterMark):
		f.next[i] = Dirt
	default:
		f.next[i] = Grass
	}
}

func (f *field) fire(i int, neighbours ...int) {
	for _, n := range neighbours {
		if f.is(n, Wood) {
			f.next[n] = Fire
			f.stats.Ignitions++
		}
	}
	if f.roll(BurnOutChance) {
		f.next[i] = Air
	} else {
		f.next[i] = Fire
	}
}

func (f *field) stone(i, below, left, right int) {
	switch {
	case f.is(below, Air, Water) && f.is(left, Air) && f.is(right, Air):
		f.next[i] = Air
		f.next[below] = Stone
	case f.every(StoneSlipCadence) && f.is(below, Air, Water) && f.roll(StoneSlipChance):
		f.next[i] = Air
		f.next[below] = Stone
	default:
		f.next[i] = Stone
	}
}

// lateral picks the sideways move for a liquid: 1 left, 2 right, 0 none.
func (f *field) lateral(left, right int) int {
	switch f.rng.Intn(3) {
	case 1:
		return left
	case 2:
		return right
	}
	return -1
}

func (f *field) water(i, below, left, right int) {
	moved := false
	if side := f.lateral(left, right); side >= 0 && f.waterInto(i, side) {
		moved = true
	}
	if f.waterInto(i, below) {
		moved = true
	}
	if !moved {
		f.next[i] = Water
	}
}

func (f *field) waterInto(i, n int) bool {
	m, ok := f.get(n)
	if !ok {
		return false
	}
	switch m {
	case Air:
		f.next[i] = Air
		f.next[n] = Water
	case Lava:
		f.next[i] = Air
		f.next[n] = Stone
	case Fire:
		f.next[i] = Air
		f.next[n] = Air
	default:
		return false
	}
	return true
}

func (f *field) lava(i, below, left, right int) {
	moved := false
	if side := f.lateral(left, right); side >= 0 && f.lavaInto(i, side) {
		moved = true
	}
	if f.lavaInto(i, below) {
		moved = true
	}
	if !moved {
		f.next[i] = Lava
	}
	// Indestructible cells are never transitioned by the field step.
	if b, ok := f.get(below); ok && b != Air && b != Indestructible && f.roll(LavaSparkChance) {
		f.next[below] = Lava
	}
}

func (f *field) lavaInto(i, n int) bool {
	m, ok := f.get(n)
	if !ok {
		return false
	}
	switch m {
	case Air:
		f.next[i] = Air
		f.next[n] = Lava
	case Wood:
		f.next[i] = Air
		f.next[n] = Fire
		f.stats.Ignitions++
	case Water:
		f.next[i] = Air
		f.next[n] = Stone
	default:
		return false
	}
	return true
}

func (f *field) acid(i int, neighbours ...int) {
	for _, n := range neighbours {
		if m, ok := f.get(n); ok && m.Corrodible() {
			f.next[i] = Air
			f.next[n] = Acid
		}
	}
}
