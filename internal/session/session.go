package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"vixel/internal/level"
	"vixel/internal/sim"
)

// Levels supplies decoded level images.
type Levels interface {
	Load(index int) (*level.Level, error)
	Fallback() (*level.Level, error)
}

type Options struct {
	Width, Height int
	Levels        Levels
	Disabled      level.Disabled
	Rand          sim.Source
	Bus           *sim.EventBus
	Start         int

	// Warn receives non-fatal problems; nil means os.Stderr.
	Warn io.Writer
}

// Session is one player's run through the levels.
type Session struct {
	W, H int

	Level     int
	LastLevel bool
	Current   sim.Material

	// Loads counts level initialisations.
	Loads int

	sim         *sim.Simulation
	levels      Levels
	table       level.Disabled
	disabled    map[int]bool
	allDisabled bool
	scrolled    int
	hasClicked  bool

	rng  sim.Source
	bus  *sim.EventBus
	warn io.Writer
}

// New builds a session and loads the start level.
func New(opts Options) *Session {
	s := &Session{
		W:       opts.Width,
		H:       opts.Height,
		Level:   opts.Start,
		Current: sim.Dirt,
		levels:  opts.Levels,
		table:   opts.Disabled,
		rng:     opts.Rand,
		bus:     opts.Bus,
		warn:    opts.Warn,
	}
	if s.rng == nil {
		s.rng = sim.NewRand(1)
	}
	if s.warn == nil {
		s.warn = os.Stderr
	}
	s.scrolled = int(s.Current)
	s.InitLevel()
	return s
}

func (s *Session) Sim() *sim.Simulation { return s.sim }

func (s *Session) Grid() *sim.Grid { return s.sim.Grid() }

func (s *Session) warnf(format string, args ...any) { warnf(s.warn, format, args...) }

func warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "vixel: "+format+"\n", args...)
}

// InitLevel replaces the whole level state with a fresh load of s.Level.
func (s *Session) InitLevel() {
	s.Loads++
	s.disabled = s.table.For(s.Level)
	s.allDisabled = true
	for i := 0; i < Slots; i++ {
		if !s.disabled[i] {
			s.allDisabled = false
			break
		}
	}
	s.moveToSelectable(1)

	lv, last := s.load()
	s.LastLevel = last
	s.sim = sim.New(lv.Grid, s.rng, s.bus)
	for _, sp := range lv.Characters {
		s.sim.Characters = append(s.sim.Characters, sim.NewCharacter(sp.X, sp.Y, sp.W, sp.H))
	}
	for _, sp := range lv.Homes {
		s.sim.Homes = append(s.sim.Homes, sim.NewHome(sp.X, sp.Y, sp.W, sp.H))
	}

	g := s.sim.Grid()
	for i := 0; i < Slots; i++ {
		r := slotRect(s.W, s.H, i)
		for dy := 0; dy < r.H; dy++ {
			for dx := 0; dx < r.W; dx++ {
				g.Paint(r.X+dx, r.Y+dy, sim.Indestructible, 1)
			}
		}
	}
	// Place marks and home cells before the first tick.
	s.sim.StepCharacters()
	s.sim.StepHomes()
}

// load returns the current level, the end-of-content level, or an empty
// grid, reporting whether the numbered levels ran out.
func (s *Session) load() (*level.Level, bool) {
	if s.levels == nil {
		return s.empty(), true
	}
	lv, err := s.levels.Load(s.Level)
	if err == nil {
		if err = s.checkSize(lv); err == nil {
			return lv, false
		}
	}
	if !errors.Is(err, level.ErrLevelNotFound) {
		s.warnf("%v", err)
	}
	lv, err = s.levels.Fallback()
	if err == nil {
		if err = s.checkSize(lv); err == nil {
			return lv, true
		}
	}
	s.warnf("%v", err)
	return s.empty(), true
}

func (s *Session) checkSize(lv *level.Level) error {
	if lv.Grid.W != s.W || lv.Grid.H != s.H {
		return fmt.Errorf("level %d: %w: got %dx%d, want %dx%d",
			lv.Index, level.ErrSizeMismatch, lv.Grid.W, lv.Grid.H, s.W, s.H)
	}
	return nil
}

func (s *Session) empty() *level.Level {
	return &level.Level{Index: s.Level, Grid: sim.NewGrid(s.W, s.H)}
}

// Tick advances the simulation once and moves to the next level when
// every character is home. It reports whether the level changed.
func (s *Session) Tick() bool {
	s.sim.Step()
	if !s.sim.AllHome() {
		return false
	}
	s.bus.Emit(sim.Event{Kind: sim.EventLevelComplete})
	s.Level++
	s.InitLevel()
	return true
}

// PlacePixel paints with the brush; see sim.Grid.Paint.
func (s *Session) PlacePixel(x, y int, m sim.Material, size int) int {
	return s.sim.Grid().Paint(x, y, m, size)
}

// Fill turns all Air into the selected material.
func (s *Session) Fill() int {
	if s.allDisabled {
		return 0
	}
	return s.sim.Grid().Fill(s.Current)
}

func (s *Session) WakeAll() { s.sim.WakeAll() }

func (s *Session) Reset() { s.InitLevel() }

// PrevLevel steps back unless on the main menu.
func (s *Session) PrevLevel() bool {
	if s.Level <= 0 {
		return false
	}
	s.Level--
	s.InitLevel()
	return true
}

// NextLevel steps forward unless the content has run out.
func (s *Session) NextLevel() bool {
	if s.LastLevel {
		return false
	}
	s.Level++
	s.InitLevel()
	return true
}

// Disabled reports whether slot is hidden on this level.
func (s *Session) Disabled(slot int) bool { return s.disabled[slot] }

// AllDisabled is true when no slot can be selected.
func (s *Session) AllDisabled() bool { return s.allDisabled }

// Select picks slot if it is enabled.
func (s *Session) Select(slot int) bool {
	if slot < 0 || slot >= Slots || s.disabled[slot] {
		return false
	}
	s.Current = sim.Material(slot)
	s.scrolled = slot
	return true
}

// Scroll moves the selection by delta, wrapping and skipping disabled slots.
func (s *Session) Scroll(delta int) {
	if delta == 0 {
		return
	}
	s.scrolled += delta
	dir := 1
	if delta < 0 {
		dir = -1
	}
	s.moveToSelectable(dir)
}

func (s *Session) moveToSelectable(dir int) {
	s.scrolled = wrapSlot(s.scrolled)
	for n := 0; n < Slots && s.disabled[s.scrolled]; n++ {
		s.scrolled = wrapSlot(s.scrolled + dir)
	}
	if !s.disabled[s.scrolled] {
		s.Current = sim.Material(s.scrolled)
	}
}

func wrapSlot(i int) int {
	i %= Slots
	if i < 0 {
		i += Slots
	}
	return i
}
