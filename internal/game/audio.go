package game

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"vixel/internal/synth"
)

const (
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Audio plays procedural sound effects and the background loop.
type Audio struct {
	ctx         *oto.Context
	ready       chan struct{}
	sfxVolume   float64
	active      [synth.NumSounds]int32
	cache       sync.Map // synth.SoundKind -> []byte
	musicPlayer oto.Player
	musicMenu   bool
}

func NewAudio(sfxVolume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, sfxVolume: clampF(sfxVolume, 0, 1)}, nil
}

func (a *Audio) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

func (a *Audio) samples(kind synth.SoundKind) []byte {
	if v, ok := a.cache.Load(kind); ok {
		return v.([]byte)
	}
	buf := synth.EncodeStereoF32(synth.Generate(kind), 1)
	a.cache.Store(kind, buf)
	return buf
}

// Play starts kind unless MaxVoicesPerSound copies are already sounding.
func (a *Audio) Play(kind synth.SoundKind) {
	if !a.isReady() || kind < 0 || kind >= synth.NumSounds {
		return
	}
	voices := &a.active[kind]
	if atomic.AddInt32(voices, 1) > MaxVoicesPerSound {
		atomic.AddInt32(voices, -1)
		return
	}
	samples := a.samples(kind)
	go func() {
		defer atomic.AddInt32(voices, -1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayMusic switches between the menu and the level loop. Calling it again
// with the same mode keeps the current loop running.
func (a *Audio) PlayMusic(menu bool) {
	if !a.isReady() {
		return
	}
	if a.musicPlayer != nil {
		if a.musicMenu == menu {
			return
		}
		a.musicPlayer.Close()
	}
	reader := &musicReader{m: synth.NewMusic(menu, uint64(time.Now().UnixNano()))}
	player := a.ctx.NewPlayer(reader)
	player.SetVolume(MusicVolume)
	player.Play()
	a.musicPlayer = player
	a.musicMenu = menu
}

func (a *Audio) Close() {
	if a == nil || a.musicPlayer == nil {
		return
	}
	a.musicPlayer.Close()
	a.musicPlayer = nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// musicReader streams the endless loop as interleaved float32 frames.
type musicReader struct {
	m *synth.Music
}

func (r *musicReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	for i := 0; i < frames; i++ {
		l, rr := r.m.Next()
		synth.PutStereoF32(p, i, l, rr)
	}
	return frames * 8, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
