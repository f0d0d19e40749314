package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"vixel/internal/config"
	"vixel/internal/frame"
	"vixel/internal/session"
	"vixel/internal/sim"
	"vixel/internal/synth"
)

func RunDesktop(cfg config.Config) {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Width*cfg.PixelSize, cfg.Height*cfg.PixelSize)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	var audio *Audio
	if !cfg.Mute {
		audio, err = NewAudio(cfg.SFXVolume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		}
	}
	defer audio.Close()

	bus := sim.NewEventBus()
	bus.SubscribeAll(func(e sim.Event) {
		if k, ok := synth.SoundForEvent(e.Kind); ok {
			audio.Play(k)
		}
	})
	s := session.Open(cfg, bus, os.Stderr)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	canvas := NewCanvas(s.W, s.H)
	clock := frame.NewClock(cfg.Tick())
	input := NewInput(window)
	var px []sim.RGB

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		vp := frame.FitViewport(s.W, s.H, fbW, fbH)

		selected := s.Current
		s.Update(input.Sample(window, vp, fbW, fbH, s.W, s.H))
		if s.Current != selected {
			audio.Play(synth.SoundSelect)
		}
		for n := clock.Advance(time.Duration(dt * float64(time.Second))); n > 0; n-- {
			s.Tick()
		}
		audio.PlayMusic(s.Level == 0)

		px = s.Snapshot().Compose(px)
		canvas.Blit(px)
		rend.Draw(canvas, vp, fbW, fbH, 1)
		window.SwapBuffers()
	}
}
