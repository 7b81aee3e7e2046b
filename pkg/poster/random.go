package poster

import "math/rand/v2"

// RandomSeed is the seed sentinel that asks for a fresh entropy-derived seed.
// Any negative seed behaves the same way.
const RandomSeed int64 = -1

// RandomSource is the only source of randomness used by generation.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// IntN returns a value in [0,n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded deterministically from seed.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0xdeadbeef))
}

// ResolveSeed returns seed unchanged when it is non-negative. Negative seeds
// are replaced with a random non-negative seed from the runtime's entropy
// source.
func ResolveSeed(seed int64) int64 {
	if seed >= 0 {
		return seed
	}
	return rand.Int64()
}

// Range is a closed sampling interval. Min may exceed Max; sampling then
// runs the interval backwards.
type Range struct {
	Min float64 `json:"min" toml:"min"`
	Max float64 `json:"max" toml:"max"`
}

// Sample draws one value uniformly from r, consuming one draw from rng.
func (r Range) Sample(rng RandomSource) float64 {
	return r.Min + (r.Max-r.Min)*rng.Float64()
}

// Contains reports whether v lies within r, regardless of bound order.
func (r Range) Contains(v float64) bool {
	lo, hi := min(r.Min, r.Max), max(r.Min, r.Max)
	return v >= lo && v <= hi
}
