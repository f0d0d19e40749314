package synth

import "math"

// PutStereoF32 writes independent left/right samples in [-1,1] as
// float32 LE at frame i.
func PutStereoF32(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// EncodeStereoF32 duplicates mono samples, scaled by gain, into an
// interleaved float32 stereo buffer.
func EncodeStereoF32(mono []float64, gain float64) []byte {
	buf := make([]byte, len(mono)*8)
	for i, s := range mono {
		PutStereoF32(buf, i, s*gain, s*gain)
	}
	return buf
}
