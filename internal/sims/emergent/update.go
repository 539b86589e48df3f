package emergent

import (
	"fmt"
	"math"

	"emergent-ca/internal/core"
)

// Channel indices.
const (
	ChannelStructure = iota
	ChannelSupport
	ChannelMemory
	ChannelOscillator
	ChannelIdentity

	NumChannels
)

// Rule constants.
const (
	DiffusionGain = 0.1
	DecayRate     = 0.01

	MemoryRetain   = 0.98
	MemoryGain     = 0.05
	MemoryFeedback = 0.02

	OscillatorRetain = 0.8
	OscillatorGain   = 0.2
	PhaseRate        = 0.1

	IdentityGain = 0.03

	FlatlineThreshold = 0.3
	NoiseSigma        = 0.4

	Inertia = 0.85
)

// Kernel is the von Neumann diffusion stencil indexed [dr+1][dc+1].
var Kernel = [3][3]float64{
	{0, 0.25, 0},
	{0.25, 0, 0.25},
	{0, 0.25, 0},
}

// Source is the randomness consumed by the flatline perturbation.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	NormFloat64() float64
}

// Perturbation records the noise injected during one tick, if any.
type Perturbation struct {
	Applied bool
	Row     int
	Col     int
	Noise   [3]float64
}

// Update computes the next grid from g. g is not modified.
func Update(g *core.FieldGrid, tick int, rng Source) *core.FieldGrid {
	next, _ := Advance(g, tick, rng)
	return next
}

// Advance is Update that also reports the flatline perturbation. Stages read
// only the input grid or earlier committed stage values, never a partially
// written buffer.
func Advance(g *core.FieldGrid, tick int, rng Source) (*core.FieldGrid, Perturbation) {
	if g == nil || g.C != NumChannels {
		panic(fmt.Sprintf("emergent: grid must have %d channels", NumChannels))
	}
	h, w := g.H, g.W
	prev := g.Values()
	next := g.Clone()
	cand := next.Values()

	// Diffusion and self-decay for structure, support and memory.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			for ch := ChannelStructure; ch <= ChannelMemory; ch++ {
				old := float64(prev[g.Index(r, c, ch)])
				conv := convolve(g, r, c, ch)
				cand[g.Index(r, c, ch)] = float32(math.Tanh(old + DiffusionGain*conv - DecayRate*old))
			}
		}
	}

	for r := 0; r < h; r++ {
		phase := math.Sin(float64(tick)*PhaseRate + rowOffset(r, h))
		for c := 0; c < w; c++ {
			base := g.Index(r, c, 0)
			old0 := float64(prev[base+ChannelStructure])
			old2 := float64(prev[base+ChannelMemory])
			old3 := float64(prev[base+ChannelOscillator])
			mask := float64(prev[base+ChannelIdentity])

			// Memory traces the pre-tick structure, not the diffused one.
			mem := float32(MemoryRetain*old2 + MemoryGain*old0)
			cand[base+ChannelMemory] = mem

			s := float64(cand[base+ChannelStructure])
			s += MemoryFeedback * float64(mem)
			s += IdentityGain * (mask - 0.5)
			cand[base+ChannelStructure] = float32(s)

			cand[base+ChannelOscillator] = float32(OscillatorRetain*old3 + OscillatorGain*phase)
		}
	}

	var p Perturbation
	if g.Mean(ChannelStructure) < FlatlineThreshold {
		p.Applied = true
		p.Row = rng.IntN(h)
		p.Col = rng.IntN(w)
		for ch := range p.Noise {
			p.Noise[ch] = rng.NormFloat64() * NoiseSigma
			cand[g.Index(p.Row, p.Col, ch)] += float32(p.Noise[ch])
		}
	}

	// Inertia blend covers every channel. Identity is untouched in cand, so
	// the blend reduces to the mask itself.
	for i, old := range prev {
		v := Inertia*float64(old) + (1-Inertia)*float64(cand[i])
		cand[i] = float32(clamp01(v))
	}
	return next, p
}

func convolve(g *core.FieldGrid, r, c, ch int) float64 {
	var sum float64
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			k := Kernel[dr+1][dc+1]
			if k == 0 {
				continue
			}
			nr, nc := g.Wrap(r+dr, c+dc)
			sum += k * float64(g.At(nr, nc, ch))
		}
	}
	return sum
}

// rowOffset spreads one full period across the rows, first and last row
// sharing the same phase.
func rowOffset(r, h int) float64 {
	if h <= 1 {
		return 0
	}
	return 2 * math.Pi * float64(r) / float64(h-1)
}

// Phase is the oscillator drive shared by every cell of row r at tick.
func Phase(tick, r, h int) float64 {
	return math.Sin(float64(tick)*PhaseRate + rowOffset(r, h))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
