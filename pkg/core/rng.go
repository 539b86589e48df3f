package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// IntN returns a uniform value in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// NormFloat64 returns a standard normal draw (mean 0, stddev 1).
func (r *RNG) NormFloat64() float64 {
	return r.r.NormFloat64()
}

// FillUniform fills the buffer with uniform draws in [0, 1), in slice order.
func FillUniform(r *rand.Rand, buf []float32) {
	for i := range buf {
		buf[i] = r.Float32()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
