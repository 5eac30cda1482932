package route

// Intner draws a uniform integer in [0, n). Implementations must return 0
// when n <= 0.
type Intner interface {
	Intn(n int) int
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
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

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// Offset returns a uniform value in [-rng, rng].
func (r *Rand) Offset(rng float64) float64 {
	return (r.Float64()*2 - 1) * rng
}
