package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"vixel/internal/frame"
	"vixel/internal/session"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
	scrollY   float64
}

// NewInput installs a scroll callback on window; wheel motion is
// accumulated between samples.
func NewInput(window *glfw.Window) *Input {
	in := &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scrollY += yoff
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// mouse reports whether btn is held and whether it was let go this frame.
func (in *Input) mouse(window *glfw.Window, btn glfw.MouseButton) (held, released bool) {
	down := window.GetMouseButton(btn) == glfw.Press
	released = !down && in.prevMouse[btn]
	in.prevMouse[btn] = down
	return down, released
}

// takeScroll returns whole wheel steps and keeps the fractional remainder.
func (in *Input) takeScroll() int {
	n := int(in.scrollY)
	in.scrollY -= float64(n)
	return n
}

// Sample reads one frame of input with the cursor mapped onto the grid.
func (in *Input) Sample(window *glfw.Window, v frame.Viewport, fbW, fbH, gridW, gridH int) session.Input {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW > 0 && winH > 0 {
		cx *= float64(fbW) / float64(winW)
		cy *= float64(fbH) / float64(winH)
	}
	mx, my, _ := v.CellAt(cx, cy, fbH, gridW, gridH)

	var s session.Input
	s.MouseX, s.MouseY = mx, my
	s.LeftHeld, s.LeftReleased = in.mouse(window, glfw.MouseButtonLeft)
	s.RightHeld, _ = in.mouse(window, glfw.MouseButtonRight)
	s.Reset = in.JustPressed(window, glfw.KeyR)
	s.Wake = in.JustPressed(window, glfw.KeySpace)
	s.Fill = in.JustPressed(window, glfw.KeyM)
	s.PrevLevel = in.JustPressed(window, glfw.KeyLeftBracket)
	s.NextLevel = in.JustPressed(window, glfw.KeyRightBracket)
	for i := 0; i < session.Slots; i++ {
		if in.JustPressed(window, glfw.Key1+glfw.Key(i)) && s.SelectSlot == 0 {
			s.SelectSlot = i + 1
		}
	}
	s.ScrollY = in.takeScroll()
	return s
}
