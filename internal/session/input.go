package session

// Input is one frame of player input, already mapped to grid coordinates.
// Key fields are edges: true only on the frame the key went down.
type Input struct {
	MouseX, MouseY int

	LeftHeld     bool
	LeftReleased bool
	RightHeld    bool

	Reset     bool
	Wake      bool
	Fill      bool
	PrevLevel bool
	NextLevel bool

	// SelectSlot is 1..Slots for a number key, 0 for none.
	SelectSlot int
	ScrollY    int
}

// Menu start button on level 0, in grid coordinates.
var startButton = Rect{X: 48, Y: 19, W: 51, H: 16}

// Update applies one frame of input.
func (s *Session) Update(in Input) {
	if in.LeftHeld {
		s.leftClick(in.MouseX, in.MouseY)
	}
	if in.LeftReleased {
		s.hasClicked = false
	}
	if in.RightHeld {
		s.PlacePixel(in.MouseX, in.MouseY, 0, 1)
	}
	if in.Reset {
		s.Reset()
	}
	if in.Wake {
		s.WakeAll()
	}
	if in.PrevLevel {
		s.PrevLevel()
	} else if in.NextLevel {
		s.NextLevel()
	}
	if in.Fill {
		s.Fill()
	}
	s.Scroll(in.ScrollY)
	if in.SelectSlot > 0 {
		s.Select(in.SelectSlot - 1)
	}
}

func (s *Session) leftClick(x, y int) {
	fresh := !s.hasClicked
	s.hasClicked = true
	if fresh && s.Level == 0 && startButton.Contains(x, y) {
		s.Level++
		s.InitLevel()
		return
	}
	if fresh {
		if slot, ok := SlotAt(s.W, s.H, x, y); ok {
			s.Select(slot)
			return
		}
	}
	if !s.allDisabled {
		s.PlacePixel(x, y, s.Current, 2)
	}
}
