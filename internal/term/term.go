// Package term is a terminal front-end that draws the grid with half-block
// characters and reads the mouse through tcell.
package term

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"vixel/internal/config"
	"vixel/internal/frame"
	"vixel/internal/session"
	"vixel/internal/sim"
	"vixel/internal/synth"
)

const framePeriod = 16 * time.Millisecond

func color(c sim.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints px onto screen through l.
func Draw(screen tcell.Screen, l Layout, px []sim.RGB) {
	l.Each(px, func(col, row int, top, bottom sim.RGB) {
		style := tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
		screen.SetContent(col, row, HalfBlock, nil, style)
	})
}

func RunTerminal(cfg config.Config) error {
	var sound *SoundManager
	if !cfg.Mute {
		sound = NewSoundManager(cfg.SFXVolume)
		if err := sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			sound = nil
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	bus := sim.NewEventBus()
	bus.SubscribeAll(func(e sim.Event) {
		if k, ok := synth.SoundForEvent(e.Kind); ok {
			sound.Play(k)
		}
	})
	// Warnings go to stderr, which the alternate screen hides until Fini.
	s := session.Open(cfg, bus, os.Stderr)

	cols, rows := screen.Size()
	layout := NewLayout(s.W, s.H, cols, rows)
	input := NewInput(layout)
	clock := frame.NewClock(cfg.Tick())

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	var px []sim.RGB
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				cols, rows = screen.Size()
				layout = NewLayout(s.W, s.H, cols, rows)
				input.SetLayout(layout)
				screen.Sync()
				continue
			}
			if !input.Handle(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			selected := s.Current
			s.Update(input.Take())
			if s.Current != selected {
				sound.Play(synth.SoundSelect)
			}
			for n := clock.Advance(dt); n > 0; n-- {
				s.Tick()
			}
			sound.PlayMusic(s.Level == 0)

			px = s.Snapshot().Compose(px)
			screen.Clear()
			Draw(screen, layout, px)
			screen.Show()
		}
	}
}
