package session

import "vixel/internal/sim"

// Slots is the number of player-selectable materials (ids 0..7).
const Slots = 8

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// slotRect is the 2x2 palette square of slot near the top-right corner.
// Slot 7 is the rightmost.
func slotRect(w, h, slot int) Rect {
	return Rect{X: w - 2*(Slots-1-slot) - 5, Y: h - 6, W: 2, H: 2}
}

// SlotAt maps a grid position to the palette slot under it.
func SlotAt(w, h, x, y int) (int, bool) {
	for i := 0; i < Slots; i++ {
		if slotRect(w, h, i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

type Slot struct {
	Material sim.Material
	Rect     Rect
	Disabled bool
	Selected bool
}

// CharacterDot is the home indicator of one character.
type CharacterDot struct {
	X, Y int
	Home bool
}

// Snapshot is a read-only copy of what the front-ends draw.
type Snapshot struct {
	W, H      int
	Cells     []sim.Material
	Level     int
	LastLevel bool
	Tick      uint64
	Current   sim.Material

	AllDisabled bool
	Slots       []Slot
	Dots        []CharacterDot
}

func (s *Session) Snapshot() Snapshot {
	g := s.sim.Grid()
	snap := Snapshot{
		W:           g.W,
		H:           g.H,
		Cells:       append([]sim.Material(nil), g.Cells...),
		Level:       s.Level,
		LastLevel:   s.LastLevel,
		Tick:        s.sim.Tick,
		Current:     s.Current,
		AllDisabled: s.allDisabled,
	}
	for i := 0; i < Slots; i++ {
		snap.Slots = append(snap.Slots, Slot{
			Material: sim.Material(i),
			Rect:     slotRect(s.W, s.H, i),
			Disabled: s.disabled[i],
			Selected: !s.allDisabled && s.Current == sim.Material(i),
		})
	}
	for k, c := range s.sim.Characters {
		snap.Dots = append(snap.Dots, CharacterDot{X: s.W - 2*k - 4, Y: s.H - 3, Home: c.Home})
	}
	return snap
}

var (
	white   = sim.RGB{R: 255, G: 255, B: 255}
	red     = sim.RGB{R: 255}
	dotAway = sim.RGB{R: 100, G: 100, B: 100}
)

// Compose renders the snapshot into dst (row-major, y up) with the UI
// drawn over the grid. dst is reallocated if too small.
func (snap Snapshot) Compose(dst []sim.RGB) []sim.RGB {
	n := snap.W * snap.H
	if cap(dst) < n {
		dst = make([]sim.RGB, n)
	}
	dst = dst[:n]
	for i, m := range snap.Cells {
		dst[i] = m.Color()
	}

	set := func(x, y int, c sim.RGB) {
		if x >= 0 && x < snap.W && y >= 0 && y < snap.H {
			dst[y*snap.W+x] = c
		}
	}
	for _, sl := range snap.Slots {
		c := sl.Material.Color()
		for dy := 0; dy < sl.Rect.H; dy++ {
			for dx := 0; dx < sl.Rect.W; dx++ {
				set(sl.Rect.X+dx, sl.Rect.Y+dy, c)
			}
		}
		var line sim.RGB
		switch {
		case sl.Disabled:
			line = red
		case sl.Selected:
			line = white
		default:
			continue
		}
		set(sl.Rect.X, sl.Rect.Y-1, line)
		set(sl.Rect.X+1, sl.Rect.Y-1, line)
	}
	for _, d := range snap.Dots {
		c := dotAway
		if d.Home {
			c = white
		}
		set(d.X, d.Y, c)
	}
	return dst
}
