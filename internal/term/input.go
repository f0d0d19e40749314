package term

import (
	"github.com/gdamore/tcell/v2"

	"vixel/internal/session"
)

// Input folds tcell events into per-frame session input. Button state
// persists between mouse events; keys and wheel steps are consumed by Take.
type Input struct {
	layout  Layout
	mouseX  int
	mouseY  int
	buttons tcell.ButtonMask
	prev    tcell.ButtonMask
	pending session.Input
}

func NewInput(l Layout) *Input {
	return &Input{layout: l}
}

// SetLayout swaps the mapping after a resize.
func (in *Input) SetLayout(l Layout) { in.layout = l }

// Handle records ev. It returns false when the player asked to quit.
func (in *Input) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		in.mouseX, in.mouseY, _ = in.layout.CellAt(col, row)
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			in.pending.ScrollY++
		}
		if btn&tcell.WheelDown != 0 {
			in.pending.ScrollY--
		}
		in.buttons = btn & (tcell.Button1 | tcell.Button2)
	}
	return true
}

func (in *Input) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	p := &in.pending
	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == 'r':
		p.Reset = true
	case r == ' ':
		p.Wake = true
	case r == 'm':
		p.Fill = true
	case r == '[':
		p.PrevLevel = true
	case r == ']':
		p.NextLevel = true
	case r >= '1' && r <= '0'+session.Slots:
		if p.SelectSlot == 0 {
			p.SelectSlot = int(r-'1') + 1
		}
	}
	return true
}

// Take returns the input gathered since the last call.
func (in *Input) Take() session.Input {
	s := in.pending
	in.pending = session.Input{}
	s.MouseX, s.MouseY = in.mouseX, in.mouseY
	s.LeftHeld = in.buttons&tcell.Button1 != 0
	s.LeftReleased = in.prev&tcell.Button1 != 0 && !s.LeftHeld
	s.RightHeld = in.buttons&tcell.Button2 != 0
	in.prev = in.buttons
	return s
}
