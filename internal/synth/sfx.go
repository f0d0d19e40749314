package synth

import (
	"math"

	"vixel/internal/sim"
)

const SampleRate = 44100

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundIgnite SoundKind = iota
	SoundFall
	SoundLandDie
	SoundDrowning
	SoundDrown
	SoundLavaDeath
	SoundEnterHome
	SoundLevelComplete
	SoundSelect

	NumSounds
)

// SoundForEvent maps a simulation event to its sound effect.
func SoundForEvent(k sim.EventKind) (SoundKind, bool) {
	switch k {
	case sim.EventIgnite:
		return SoundIgnite, true
	case sim.EventFall:
		return SoundFall, true
	case sim.EventLandDie:
		return SoundLandDie, true
	case sim.EventDrowning:
		return SoundDrowning, true
	case sim.EventDrown:
		return SoundDrown, true
	case sim.EventLavaDeath:
		return SoundLavaDeath, true
	case sim.EventEnterHome:
		return SoundEnterHome, true
	case sim.EventLevelComplete:
		return SoundLevelComplete, true
	}
	return 0, false
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// Generate renders kind as mono samples in [-1,1] at SampleRate.
func Generate(kind SoundKind) []float64 {
	switch kind {
	case SoundIgnite:
		return genIgnite()
	case SoundFall:
		return genFall()
	case SoundLandDie:
		return genLandDie()
	case SoundDrowning:
		return genBubbles()
	case SoundDrown:
		return genDrown()
	case SoundLavaDeath:
		return genSizzle()
	case SoundEnterHome:
		return genEnterHome()
	case SoundLevelComplete:
		return genLevelComplete()
	case SoundSelect:
		return genSelect()
	}
	return nil
}

// genIgnite: crackling noise with low-frequency amplitude modulation.
func genIgnite() []float64 {
	n := int(0.13 * SampleRate)
	buf := make([]float64, n)
	seed := uint64(33333)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.65 + raw*0.35
		mod := 0.5 + 0.5*math.Sin(2*math.Pi*16*t)
		env := (1 - p) * 0.38
		s := (raw*0.3 + lp*0.55) * mod * env
		buf[i] = softSat(s)
	}
	return buf
}

// genFall: falling whistle.
func genFall() []float64 {
	n := int(0.45 * SampleRate)
	buf := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 1300 - 900*p
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(p, 0.05, 0.2, 0.7, 0.25)
		s := math.Sin(phase) * env * 0.22
		buf[i] = softSat(s)
	}
	return buf
}

// genLandDie: low thump under a descending FM tone.
func genLandDie() []float64 {
	n := int(0.22 * SampleRate)
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 320 - 220*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		s += math.Sin(2*math.Pi*60*t) * math.Exp(-t*25) * 0.5
		buf[i] = softSat(s)
	}
	return buf
}

// genBubbles: short rising blips.
func genBubbles() []float64 {
	const blips = 3
	step := int(0.07 * SampleRate)
	n := step * blips
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		j := i % step
		bp := float64(j) / float64(step)
		t := float64(j) / SampleRate
		base := 380.0 + 120*float64(i/step)
		freq := base + 500*bp
		s := math.Sin(2*math.Pi*freq*t) * adsr(bp, 0.05, 0.4, 0.2, 0.3) * 0.3
		buf[i] = softSat(s)
	}
	return buf
}

// genDrown: slow descending minor chord, staggered.
func genDrown() []float64 {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genSizzle: high-passed noise hiss.
func genSizzle() []float64 {
	n := int(0.35 * SampleRate)
	buf := make([]float64, n)
	seed := uint64(0x5122)
	prev := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		hp := raw - prev
		prev = raw
		env := adsr(p, 0.02, 0.3, 0.5, 0.5)
		s := hp * env * 0.25
		buf[i] = softSat(s)
	}
	return buf
}

// genEnterHome: two-note bell.
func genEnterHome() []float64 {
	notes := []float64{659.25, 987.77}
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.2*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.003, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 4*env) * env * 0.26
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genLevelComplete: ascending FM bell staircase.
func genLevelComplete() []float64 {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genSelect: crisp click + brief high tone.
func genSelect() []float64 {
	n := SampleRate * 65 / 1000
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		buf[i] = softSat(s)
	}
	return buf
}
