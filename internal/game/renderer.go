package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"vixel/internal/frame"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	gridProg uint32
	gridVAO  uint32
	gridVBO  uint32

	uTex        int32
	uBrightness int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(gridVertSrc, gridFragSrc)
	if err != nil {
		return nil, fmt.Errorf("grid program: %w", err)
	}
	r := &Renderer{gridProg: prog}

	// Unit quad (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.gridVAO = vao
	r.gridVBO = vbo

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)
	r.uBrightness = gl.GetUniformLocation(prog, gl.Str("uBrightness\x00"))
	gl.Uniform1f(r.uBrightness, 1.0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.gridVBO != 0 {
		gl.DeleteBuffers(1, &r.gridVBO)
	}
	if r.gridVAO != 0 {
		gl.DeleteVertexArrays(1, &r.gridVAO)
	}
	if r.gridProg != 0 {
		gl.DeleteProgram(r.gridProg)
	}
}

// EnsureTexture creates the canvas texture if it doesn't have one yet.
func (r *Renderer) EnsureTexture(c *Canvas) {
	if c.Tex != 0 {
		return
	}
	gl.GenTextures(1, &c.Tex)
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(c.W), int32(c.H), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pixels),
	)
	c.NeedsUpload = false
}

// Upload re-sends canvas pixels when they changed.
func (r *Renderer) Upload(c *Canvas) {
	if c.Tex == 0 {
		r.EnsureTexture(c)
		return
	}
	if !c.NeedsUpload {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(c.W), int32(c.H),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pixels),
	)
	c.NeedsUpload = false
}

// Draw clears the framebuffer and draws the canvas into v.
func (r *Renderer) Draw(c *Canvas, v frame.Viewport, fbW, fbH int, brightness float32) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.Upload(c)

	gl.Viewport(int32(v.X), int32(v.Y), int32(v.W), int32(v.H))
	gl.UseProgram(r.gridProg)
	gl.Uniform1f(r.uBrightness, brightness)
	gl.BindVertexArray(r.gridVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}
