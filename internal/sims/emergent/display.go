package emergent

import "emergent-ca/internal/core"

// DisplayEpsilon keeps Normalize finite on constant input.
const DisplayEpsilon = 1e-5

// Normalize contrast-stretches src into roughly [0,1] using the global min
// and max of the whole slice. The result is not clamped.
func Normalize(src []float32) []float32 {
	out := make([]float32, len(src))
	if len(src) == 0 {
		return out
	}
	lo, hi := src[0], src[0]
	for _, v := range src {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := float64(hi) - float64(lo) + DisplayEpsilon
	for i, v := range src {
		out[i] = float32((float64(v) - float64(lo)) / span)
	}
	return out
}

// RGB extracts structure, support and memory as H×W RGB triples.
func RGB(g *core.FieldGrid) []float32 {
	n := g.H * g.W
	out := make([]float32, 0, n*3)
	vals := g.Values()
	for i := 0; i < n; i++ {
		base := i * g.C
		out = append(out, vals[base+ChannelStructure], vals[base+ChannelSupport], vals[base+ChannelMemory])
	}
	return out
}

// DisplayFrame builds the normalised RGB frame for g.
func DisplayFrame(g *core.FieldGrid, tick int) core.Frame {
	return core.Frame{Tick: tick, W: g.W, H: g.H, Pix: Normalize(RGB(g))}
}
