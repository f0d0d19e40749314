package synth

import "math"

// Music is an endless procedural loop. The menu mood is brighter and
// faster than the level mood.
type Music struct {
	t    float64
	seed uint64
	menu bool
}

func NewMusic(menu bool, seed uint64) *Music {
	return &Music{seed: seed | 1, menu: menu}
}

func (m *Music) Menu() bool { return m.menu }

var (
	menuChords = [][]float64{
		{261.6, 329.6, 392.0, 493.9}, // Cmaj7
		{220.0, 261.6, 329.6, 392.0}, // Am7
		{174.6, 220.0, 261.6, 349.2}, // Fmaj7
		{196.0, 246.9, 293.7, 392.0}, // G
	}
	levelChords = [][]float64{
		{146.8, 174.6, 220.0, 293.7}, // Dm7
		{164.8, 207.7, 246.9, 329.6}, // E
		{174.6, 220.0, 261.6, 349.2}, // Fmaj7
		{130.8, 164.8, 196.0, 261.6}, // C
	}
	arpOrder = [8]int{0, 1, 2, 1, 3, 2, 1, 0}
)

const beatsPerChord = 4

// Next advances one sample and returns the stereo pair.
func (m *Music) Next() (left, right float64) {
	chords, tempo := levelChords, 1.2
	if m.menu {
		chords, tempo = menuChords, 1.95
	}
	step8Len := 1.0 / (tempo * 2.0)

	m.t += 1.0 / SampleRate
	beat := int(m.t * tempo)
	chord := chords[(beat/beatsPerChord)%len(chords)]
	chordProg := math.Mod(m.t*tempo, beatsPerChord) / beatsPerChord
	step8 := int(m.t*tempo*2) % 8
	step8Trig := math.Mod(m.t, step8Len)

	padEnv := 0.55 + 0.45*math.Min(1.0, chordProg*1.2)
	s := fmPad(m.t, chord, padEnv)

	if step8%4 == 0 {
		bEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.02, 0.52, 0.26, 0.2)
		s += fmBass(m.t, chord[0]/2, bEnv) * 0.6
	}

	arpFreq := chord[arpOrder[step8]]
	if step8%2 == 1 {
		arpFreq *= 2.0
	}
	arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.01, 0.34, 0.14, 0.2)
	s += fmArp(m.t, arpFreq, arpEnv) * 0.7

	if m.menu && step8%2 == 1 {
		s += lcg(&m.seed) * math.Exp(-step8Trig*20.0) * 0.06
	}

	s = softSat(s * 0.9)
	pan := 0.11 * math.Sin(2*math.Pi*0.10*m.t)
	return softSat(s * (1 - pan)), softSat(s * (1 + pan))
}

// fmBass returns a warm FM bass sample.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	b += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.10
	return softSat(b)
}

// fmPad returns a pad sample from a chord, four detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}
