package sim

// Simulation owns the double-buffered grid and the level's entities.
type Simulation struct {
	Tick uint64

	Characters []*Character
	Homes      []*Home

	cur  *Grid
	next *Grid
	rng  Source
	bus  *EventBus
}

// New takes ownership of g. A nil rng uses a fixed-seed Rand; bus may be nil.
func New(g *Grid, rng Source, bus *EventBus) *Simulation {
	if rng == nil {
		rng = NewRand(1)
	}
	g.Sanitize()
	return &Simulation{
		cur:  g,
		next: NewGrid(g.W, g.H),
		rng:  rng,
		bus:  bus,
	}
}

// Grid returns the current buffer. Callers may edit it between ticks.
func (s *Simulation) Grid() *Grid { return s.cur }

func (s *Simulation) emit(e Event) { s.bus.Emit(e) }

// Step runs one tick: field rules, buffer swap, characters, homes.
func (s *Simulation) Step() FieldStats {
	stats := StepField(s.cur, s.next, s.Tick, s.rng)
	s.cur, s.next = s.next, s.cur
	if stats.Ignitions > 0 {
		s.emit(Event{Kind: EventIgnite})
	}
	s.StepCharacters()
	s.StepHomes()
	s.Tick++
	return stats
}

func (s *Simulation) StepCharacters() {
	for _, c := range s.Characters {
		c.Update(s.cur, s.Tick, s.emit)
	}
}

func (s *Simulation) StepHomes() {
	for _, h := range s.Homes {
		h.Update(s.cur)
	}
}

// WakeAll starts every character walking.
func (s *Simulation) WakeAll() {
	for _, c := range s.Characters {
		if !c.Home {
			c.Awake = true
		}
	}
}

// HomeCount returns how many characters have reached a home.
func (s *Simulation) HomeCount() int {
	n := 0
	for _, c := range s.Characters {
		if c.Home {
			n++
		}
	}
	return n
}

// AllHome is false for a level without characters.
func (s *Simulation) AllHome() bool {
	return len(s.Characters) > 0 && s.HomeCount() >= len(s.Characters)
}
