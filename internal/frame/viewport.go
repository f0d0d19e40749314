package frame

import "math"

// Viewport is the letterboxed framebuffer rectangle the grid is drawn into.
type Viewport struct {
	X, Y, W, H int
}

// FitViewport scales a w x h grid by a whole number of pixels per cell,
// centred in the framebuffer. Framebuffers smaller than the grid fall back
// to a fractional fit.
func FitViewport(gridW, gridH, fbW, fbH int) Viewport {
	if gridW <= 0 || gridH <= 0 || fbW <= 0 || fbH <= 0 {
		return Viewport{}
	}
	scale := min(fbW/gridW, fbH/gridH)
	w, h := gridW*scale, gridH*scale
	if scale == 0 {
		if fbW*gridH < fbH*gridW {
			w, h = fbW, fbW*gridH/gridW
		} else {
			w, h = fbH*gridW/gridH, fbH
		}
	}
	return Viewport{X: (fbW - w) / 2, Y: (fbH - h) / 2, W: w, H: h}
}

// CellAt maps a framebuffer position (origin top-left) to a grid cell
// (origin bottom-left). ok is false outside the viewport.
func (v Viewport) CellAt(fx, fy float64, fbH, gridW, gridH int) (x, y int, ok bool) {
	if v.W <= 0 || v.H <= 0 {
		return 0, 0, false
	}
	// The viewport is anchored at the framebuffer bottom.
	gx := (fx - float64(v.X)) * float64(gridW) / float64(v.W)
	gy := (float64(fbH) - fy - float64(v.Y)) * float64(gridH) / float64(v.H)
	if gx < 0 || gy < 0 {
		return int(math.Floor(gx)), int(math.Floor(gy)), false
	}
	x, y = int(gx), int(gy)
	return x, y, x < gridW && y < gridH
}
