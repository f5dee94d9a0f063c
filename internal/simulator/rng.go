package simulator

import "math"

const lcgModulus = 1 << 31

// Rand is a 31-bit linear congruential generator. Every generated history is
// a pure function of its seed, so two runs with the same seed and config
// produce byte-identical output. Each generator owns its own instance; the
// streams are never shared across generators.
type Rand struct {
	seed int64
}

func NewRand(seed int64) *Rand {
	r := &Rand{}
	r.Reset(seed)
	return r
}

// Reset rewinds the stream to the given seed.
func (r *Rand) Reset(seed int64) {
	r.seed = seed % lcgModulus
	if r.seed < 0 {
		r.seed += lcgModulus
	}
}

// Next returns the next value in [0, 1).
func (r *Rand) Next() float64 {
	r.seed = (r.seed*1103515245 + 12345) % lcgModulus
	return float64(r.seed) / lcgModulus
}

// RandomInt returns an integer in [min, max] inclusive.
func (r *Rand) RandomInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// WeightedIndex picks an index proportionally to weights, by cumulative
// weight subtraction. Returns -1 for an empty or zero-weight slice.
func (r *Rand) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if len(weights) == 0 || total <= 0 {
		return -1
	}

	target := r.Next() * total
	for i, w := range weights {
		target -= w
		if target <= 0 {
			return i
		}
	}
	return len(weights) - 1
}
