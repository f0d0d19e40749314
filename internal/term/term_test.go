package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"vixel/internal/sim"
)

func TestLayoutCellAt(t *testing.T) {
	tests := []struct {
		name         string
		gridW, gridH int
		cols, rows   int
		col, row     int
		wantX, wantY int
		wantOK       bool
	}{
		{"centred top-left", 4, 4, 10, 6, 3, 2, 0, 3, true},
		{"centred second row", 4, 4, 10, 6, 4, 3, 1, 1, true},
		{"left margin", 4, 4, 10, 6, 2, 2, -1, 3, false},
		{"narrow keeps right edge", 10, 4, 6, 2, 0, 0, 4, 3, true},
		{"narrow last column", 10, 4, 6, 2, 5, 1, 9, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.gridW, tt.gridH, tt.cols, tt.rows)
			x, y, ok := l.CellAt(tt.col, tt.row)
			if x != tt.wantX || y != tt.wantY || ok != tt.wantOK {
				t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
					tt.col, tt.row, x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}

func TestLayoutEachPairsRows(t *testing.T) {
	const w, h = 2, 3
	px := make([]sim.RGB, w*h)
	for i := range px {
		px[i] = sim.RGB{R: uint8(i + 1)}
	}
	got := map[[2]int][2]sim.RGB{}
	NewLayout(w, h, 2, 2).Each(px, func(col, row int, top, bottom sim.RGB) {
		got[[2]int{col, row}] = [2]sim.RGB{top, bottom}
	})

	want := map[[2]int][2]sim.RGB{
		{0, 0}: {px[4], px[2]},
		{1, 0}: {px[5], px[3]},
		{0, 1}: {px[0], {}},
		{1, 1}: {px[1], {}},
	}
	if len(got) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("cell %v = %v, want %v", k, got[k], v)
		}
	}
}

func TestLayoutEachClipsToScreen(t *testing.T) {
	px := make([]sim.RGB, 8*8)
	n := 0
	NewLayout(8, 8, 3, 2).Each(px, func(col, row int, _, _ sim.RGB) {
		if col < 0 || col >= 3 || row < 0 || row >= 2 {
			t.Fatalf("drew off screen at (%d,%d)", col, row)
		}
		n++
	})
	if n != 6 {
		t.Fatalf("drew %d cells, want 6", n)
	}
}

func TestInputKeys(t *testing.T) {
	in := NewInput(NewLayout(4, 4, 4, 2))
	for _, r := range "r m[]3 5" {
		if !in.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) {
			t.Fatalf("rune %q quit", r)
		}
	}
	got := in.Take()
	if !got.Reset || !got.Wake || !got.Fill || !got.PrevLevel || !got.NextLevel {
		t.Fatalf("missing key edges: %+v", got)
	}
	if got.SelectSlot != 3 {
		t.Fatalf("SelectSlot = %d, want first number pressed", got.SelectSlot)
	}
	if again := in.Take(); again.Reset || again.SelectSlot != 0 {
		t.Fatalf("key edges not consumed: %+v", again)
	}
}

func TestInputQuit(t *testing.T) {
	in := NewInput(NewLayout(4, 4, 4, 2))
	if in.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape did not quit")
	}
	if in.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c did not quit")
	}
}

func TestInputMouse(t *testing.T) {
	in := NewInput(NewLayout(4, 4, 4, 2))

	in.Handle(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	got := in.Take()
	if !got.LeftHeld || got.LeftReleased || got.MouseX != 1 || got.MouseY != 1 {
		t.Fatalf("press: %+v", got)
	}
	if held := in.Take(); !held.LeftHeld {
		t.Fatal("button state lost between events")
	}

	in.Handle(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	if got := in.Take(); got.LeftHeld || !got.LeftReleased {
		t.Fatalf("release: %+v", got)
	}

	in.Handle(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	if got := in.Take(); !got.RightHeld || got.LeftHeld {
		t.Fatalf("right: %+v", got)
	}

	in.Handle(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	in.Handle(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	in.Handle(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if got := in.Take(); got.ScrollY != 1 {
		t.Fatalf("ScrollY = %d, want 1", got.ScrollY)
	}
}

func TestMonoStreamer(t *testing.T) {
	m := &monoStreamer{data: []float64{0.5, -0.5, 0.25}}
	buf := make([][2]float64, 2)
	n, ok := m.Stream(buf)
	if n != 2 || !ok || buf[1] != [2]float64{-0.5, -0.5} {
		t.Fatalf("first chunk: n=%d ok=%v buf=%v", n, ok, buf)
	}
	n, ok = m.Stream(buf)
	if n != 1 || !ok || buf[0] != [2]float64{0.25, 0.25} {
		t.Fatalf("tail: n=%d ok=%v buf=%v", n, ok, buf)
	}
	if n, ok = m.Stream(buf); n != 0 || ok {
		t.Fatalf("drained: n=%d ok=%v", n, ok)
	}
}
