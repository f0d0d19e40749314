package sim

import "testing"

type eventLog struct {
	sim    *Simulation
	events []Event
	ticks  []uint64
}

func (l *eventLog) record(e Event) {
	l.events = append(l.events, e)
	l.ticks = append(l.ticks, l.sim.Tick)
}

func (l *eventLog) count(k EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func (l *eventLog) firstTick(k EventKind) (uint64, bool) {
	for i, e := range l.events {
		if e.Kind == k {
			return l.ticks[i], true
		}
	}
	return 0, false
}

func newTestSim(t *testing.T, rng Source, rows ...string) (*Simulation, *eventLog) {
	t.Helper()
	bus := NewEventBus()
	s := New(gridOf(t, rows...), rng, bus)
	log := &eventLog{sim: s}
	bus.SubscribeAll(log.record)
	return s, log
}

func addCharacter(s *Simulation, x, y, w, h int) *Character {
	c := NewCharacter(x, y, w, h)
	c.Awake = true
	s.Characters = append(s.Characters, c)
	return c
}

func TestCharacterDefaultsFootprint(t *testing.T) {
	c := NewCharacter(4, 7, 0, -2)
	if c.W != DefaultSpriteW || c.H != DefaultSpriteH {
		t.Fatalf("footprint = %dx%d", c.W, c.H)
	}
	if c.Dir != 1 || c.Breath != MaxBreath || c.Awake || c.Home {
		t.Fatalf("unexpected initial state %+v", c)
	}
}

func TestCharacterWalksOneCellPerCycle(t *testing.T) {
	s, _ := newTestSim(t, ConstSource{},
		"......",
		"....#.",
		"######",
	)
	c := addCharacter(s, 1, 1, 1, 1)

	// x after each walk tick; the wall at x=4 and the grid edge turn it around.
	want := map[uint64]int{0: 2, 10: 3, 20: 3, 30: 2, 40: 1, 50: 0, 60: 0, 70: 1}
	prev := c.Pos.X
	for tick := uint64(0); tick <= 70; tick++ {
		s.Step()
		if tick%WalkCadence != 0 && c.Pos.X != prev {
			t.Fatalf("moved on tick %d", tick)
		}
		if x, ok := want[tick]; ok && c.Pos.X != x {
			t.Fatalf("tick %d: x = %d, want %d", tick, c.Pos.X, x)
		}
		if d := c.Pos.X - prev; d > 1 || d < -1 {
			t.Fatalf("tick %d: jumped %d cells", tick, d)
		}
		if c.Pos.Y != 1 {
			t.Fatalf("tick %d: left the platform, y = %d", tick, c.Pos.Y)
		}
		if m, _ := s.Grid().At(4, 1); m != Indestructible {
			t.Fatalf("tick %d: wall overwritten by %v", tick, m)
		}
		if n := s.Grid().Count(CharacterMark); n != 1 {
			t.Fatalf("tick %d: %d marks, want 1", tick, n)
		}
		prev = c.Pos.X
	}
}

func TestCharacterClimbsSteps(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		h       int
		want    Point
		wantDir int
	}{
		{
			name: "one block",
			rows: []string{
				"......",
				"......",
				"...#..",
				"######",
			},
			h:       2,
			want:    Point{X: 3, Y: 2},
			wantDir: 1,
		},
		{
			name: "two blocks",
			rows: []string{
				".......",
				".......",
				"...#...",
				"...#...",
				"#######",
			},
			h:       3,
			want:    Point{X: 3, Y: 3},
			wantDir: 1,
		},
		{
			name: "two blocks too tall for a short walker",
			rows: []string{
				".......",
				".......",
				"...#...",
				"...#...",
				"#######",
			},
			h:       2,
			want:    Point{X: 2, Y: 1},
			wantDir: -1,
		},
		{
			name: "wall",
			rows: []string{
				"...#...",
				"...#...",
				"...#...",
				"...#...",
				"#######",
			},
			h:       3,
			want:    Point{X: 2, Y: 1},
			wantDir: -1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t, ConstSource{}, tc.rows...)
			c := addCharacter(s, 2, 1, 1, tc.h)
			s.Step()
			if c.Pos != tc.want || c.Dir != tc.wantDir {
				t.Fatalf("pos %+v dir %d, want %+v dir %d", c.Pos, c.Dir, tc.want, tc.wantDir)
			}
		})
	}
}

func tallShaft(height int) []string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = "..."
	}
	rows[height-1] = "###"
	return rows
}

func TestCharacterFallDamage(t *testing.T) {
	s, log := newTestSim(t, ConstSource{}, tallShaft(50)...)
	c := addCharacter(s, 1, 45, 1, 1)

	for i := 0; i < 400 && log.count(EventLandDie) == 0; i++ {
		s.Step()
	}
	tick, ok := log.firstTick(EventLandDie)
	if !ok {
		t.Fatal("character survived a 44 cell fall")
	}
	// 44 falls at every 4th tick starting at 0; the landing tick follows.
	if tick != 176 {
		t.Fatalf("died on tick %d, want 176", tick)
	}
	if c.Pos != c.Spawn || c.AirTime != 0 || !c.Awake || c.Home {
		t.Fatalf("unexpected state after death %+v", c)
	}
}

func TestCharacterShortFallSurvives(t *testing.T) {
	s, log := newTestSim(t, ConstSource{}, tallShaft(12)...)
	c := addCharacter(s, 1, 10, 1, 1)
	for i := 0; i < 60; i++ {
		s.Step()
	}
	if log.count(EventLandDie) != 0 {
		t.Fatal("short fall killed the character")
	}
	if c.Pos.Y != 1 || c.AirTime != 0 {
		t.Fatalf("pos %+v airTime %d", c.Pos, c.AirTime)
	}
}

func TestCharacterDrowns(t *testing.T) {
	s, log := newTestSim(t, ConstSource{},
		"~~~",
		"~c~",
		"###",
	)
	c := addCharacter(s, 1, 1, 1, 1)

	for tick := uint64(0); tick < 6*MaxBreath; tick++ {
		s.Step()
		if tick == 84 && c.Breath != 1 {
			t.Fatalf("breath after tick 84 = %d, want 1", c.Breath)
		}
	}
	if n := log.count(EventDrown); n != 1 {
		t.Fatalf("drowned %d times, want 1", n)
	}
	if tick, _ := log.firstTick(EventDrown); tick != 90 {
		t.Fatalf("drowned on tick %d, want 90", tick)
	}
	if tick, _ := log.firstTick(EventDrowning); tick != 54 {
		t.Fatalf("drowning cue on tick %d, want 54", tick)
	}
	if c.Breath != MaxBreath || c.Pos != c.Spawn || c.Home || !c.Awake {
		t.Fatalf("unexpected state after drowning %+v", c)
	}
}

func TestCharacterDiesInLava(t *testing.T) {
	s, log := newTestSim(t, ConstSource{},
		"....",
		".cL.",
		"####",
	)
	c := NewCharacter(0, 2, 1, 1)
	c.Awake = true
	c.Pos = Point{X: 1, Y: 1}
	s.Characters = append(s.Characters, c)

	s.Step()
	if log.count(EventLavaDeath) != 1 {
		t.Fatal("lava did not kill")
	}
	assertGrid(t, s.Grid(),
		"c...",
		"..L.",
		"####",
	)
}

func TestDieIgnoredWhileAsleep(t *testing.T) {
	c := NewCharacter(0, 0, 1, 1)
	c.Pos = Point{X: 5, Y: 5}
	c.Breath = 3
	if c.Die() {
		t.Fatal("Die reported success on a sleeping character")
	}
	if c.Pos != (Point{X: 5, Y: 5}) || c.Breath != 3 {
		t.Fatalf("sleeping character was reset: %+v", c)
	}
}

func TestCharacterEntersActiveHome(t *testing.T) {
	s, log := newTestSim(t, ConstSource{},
		"......",
		".cHH..",
		"######",
	)
	c := addCharacter(s, 1, 1, 1, 1)
	s.Step()
	if !c.Home || c.Awake {
		t.Fatalf("character not home: %+v", c)
	}
	if log.count(EventEnterHome) != 1 {
		t.Fatal("missing enter-home event")
	}
	if n := s.Grid().Count(CharacterMark); n != 0 {
		t.Fatalf("%d marks left after entering home", n)
	}
	for i := 0; i < 20; i++ {
		s.Step()
	}
	if log.count(EventEnterHome) != 1 || c.Pos != (Point{X: 1, Y: 1}) {
		t.Fatal("home character kept updating")
	}
}

// Entry is only detected through the column ahead, so a character already
// standing inside a home that becomes active stays out.
func TestCharacterInsideHomeNeverEnters(t *testing.T) {
	s, log := newTestSim(t, ConstSource{},
		".W.",
		"WhW",
		".W.",
	)
	h := NewHome(1, 1, 1, 1)
	s.Homes = append(s.Homes, h)
	c := addCharacter(s, 1, 1, 1, 1)
	for i := 0; i < 50; i++ {
		s.Step()
	}
	if !h.Active {
		t.Fatal("walled home not active")
	}
	if c.Home || log.count(EventEnterHome) != 0 {
		t.Fatalf("character entered from inside: %+v", c)
	}
}

func TestSleepingCharacterOnlyDraws(t *testing.T) {
	s, _ := newTestSim(t, ConstSource{},
		"....",
		".HH.",
		"####",
	)
	c := NewCharacter(0, 1, 1, 1)
	s.Characters = append(s.Characters, c)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if c.Home || c.Pos != c.Spawn {
		t.Fatalf("sleeping character moved: %+v", c)
	}
	if m, _ := s.Grid().At(0, 1); m != CharacterMark {
		t.Fatalf("sleeping character not drawn, cell holds %v", m)
	}
}
