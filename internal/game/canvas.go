package game

import "vixel/internal/sim"

// Canvas is the RGBA8 image of the grid uploaded as one texture.
// Row 0 is the bottom of the level, matching GL texture coordinates.
type Canvas struct {
	W, H   int
	Pixels []uint8

	Tex uint32 // OpenGL texture id (created lazily)

	NeedsUpload bool
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		W:           w,
		H:           h,
		Pixels:      make([]uint8, w*h*4),
		NeedsUpload: true,
	}
}

// Blit copies composed colours into the canvas, marking it dirty only when
// a pixel changed.
func (c *Canvas) Blit(px []sim.RGB) {
	n := c.W * c.H
	if len(px) < n {
		n = len(px)
	}
	for i := 0; i < n; i++ {
		o := i * 4
		col := px[i]
		if c.Pixels[o] == col.R && c.Pixels[o+1] == col.G && c.Pixels[o+2] == col.B && c.Pixels[o+3] == 255 {
			continue
		}
		c.Pixels[o+0] = col.R
		c.Pixels[o+1] = col.G
		c.Pixels[o+2] = col.B
		c.Pixels[o+3] = 255
		c.NeedsUpload = true
	}
}
