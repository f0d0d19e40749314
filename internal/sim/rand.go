package sim

// Source supplies the random rolls used by material rules.
type Source interface {
	// Intn returns a value in [0, n). n <= 0 yields 0.
	Intn(n int) int
}

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// SeqSource replays a fixed roll sequence, then Fallback (or 0 when nil).
// Each roll is reduced modulo n.
type SeqSource struct {
	Rolls    []int
	Fallback Source
	pos      int
}

func (s *SeqSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos < len(s.Rolls) {
		v := s.Rolls[s.pos] % n
		s.pos++
		if v < 0 {
			v += n
		}
		return v
	}
	if s.Fallback != nil {
		return s.Fallback.Intn(n)
	}
	return 0
}

// ConstSource answers every roll with V mod n.
type ConstSource struct{ V int }

func (c ConstSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := c.V % n
	if v < 0 {
		v += n
	}
	return v
}
