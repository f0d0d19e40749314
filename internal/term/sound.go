package term

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"vixel/internal/synth"
)

const (
	sampleRate = beep.SampleRate(synth.SampleRate)

	maxVoicesPerSound = 2
	musicVolume       = 0.08
	selectBlip        = 40 * time.Millisecond
)

// SoundManager mixes effects and the music loop onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicMenu   bool
	volume      float64
	active      [synth.NumSounds]atomic.Int32
	cache       [synth.NumSounds][]float64
	initialized bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, volume: min(max(volume, 0), 1)}
}

func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues kind unless maxVoicesPerSound copies are already sounding.
// The select sound is a plain sine blip.
func (sm *SoundManager) Play(kind synth.SoundKind) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || kind < 0 || kind >= synth.NumSounds {
		return
	}
	if sm.active[kind].Add(1) > maxVoicesPerSound {
		sm.active[kind].Add(-1)
		return
	}

	var s beep.Streamer
	if kind == synth.SoundSelect {
		sine, err := generators.SineTone(sampleRate, 880)
		if err != nil {
			sm.active[kind].Add(-1)
			return
		}
		s = beep.Take(sampleRate.N(selectBlip), sine)
	} else {
		if sm.cache[kind] == nil {
			sm.cache[kind] = synth.Generate(kind)
		}
		s = &monoStreamer{data: sm.cache[kind]}
	}
	done := beep.Callback(func() { sm.active[kind].Add(-1) })

	speaker.Lock()
	sm.mixer.Add(&gain{s: beep.Seq(s, done), g: sm.volume})
	speaker.Unlock()
}

// PlayMusic keeps the loop matching the current mode, restarting it when the
// mode changes.
func (sm *SoundManager) PlayMusic(menu bool) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && sm.musicMenu == menu {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
	}
	sm.music = &beep.Ctrl{Streamer: &musicStreamer{m: synth.NewMusic(menu, uint64(time.Now().UnixNano()))}}
	sm.mixer.Add(sm.music)
	speaker.Unlock()
	sm.musicMenu = menu
}

func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// monoStreamer plays precomputed mono samples on both channels.
type monoStreamer struct {
	data []float64
	pos  int
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.data) {
		return 0, false
	}
	for n < len(samples) && m.pos < len(m.data) {
		v := m.data[m.pos]
		samples[n] = [2]float64{v, v}
		m.pos++
		n++
	}
	return n, true
}

func (m *monoStreamer) Err() error { return nil }

type musicStreamer struct {
	m *synth.Music
}

func (ms *musicStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		l, r := ms.m.Next()
		samples[i] = [2]float64{l * musicVolume, r * musicVolume}
	}
	return len(samples), true
}

func (ms *musicStreamer) Err() error { return nil }

type gain struct {
	s beep.Streamer
	g float64
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.g
		samples[i][1] *= g.g
	}
	return n, ok
}

func (g *gain) Err() error { return g.s.Err() }
