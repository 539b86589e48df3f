// Package stats collects per-tick readings from a running grid.
package stats

import "emergent-ca/internal/core"

// Tracked is the number of leading channels whose means are recorded.
const Tracked = 4

// Series accumulates one sample per tick.
type Series struct {
	Ticks     []float64
	Means     [Tracked][]float64
	MinFirst  []float64
	MaxFirst  []float64
	Perturbed []bool
}

// Record appends the readings for g at tick.
func (s *Series) Record(tick int, g *core.FieldGrid, perturbed bool) {
	s.Ticks = append(s.Ticks, float64(tick))
	for ch := 0; ch < Tracked && ch < g.C; ch++ {
		s.Means[ch] = append(s.Means[ch], g.Mean(ch))
	}
	lo, hi := channelRange(g, 0)
	s.MinFirst = append(s.MinFirst, lo)
	s.MaxFirst = append(s.MaxFirst, hi)
	s.Perturbed = append(s.Perturbed, perturbed)
}

// Len reports the number of recorded ticks.
func (s *Series) Len() int { return len(s.Ticks) }

// PerturbationCount counts ticks on which noise was injected.
func (s *Series) PerturbationCount() int {
	n := 0
	for _, p := range s.Perturbed {
		if p {
			n++
		}
	}
	return n
}

// TicksBelow counts samples of channel ch whose mean fell below threshold.
func (s *Series) TicksBelow(ch int, threshold float64) int {
	n := 0
	for _, m := range s.Means[ch] {
		if m < threshold {
			n++
		}
	}
	return n
}

func channelRange(g *core.FieldGrid, ch int) (float64, float64) {
	vals := g.Values()
	lo := float64(vals[ch])
	hi := lo
	for i := ch; i < len(vals); i += g.C {
		v := float64(vals[i])
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
