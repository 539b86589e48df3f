package emergent

import (
	"math/rand/v2"

	"emergent-ca/internal/core"
	pcore "emergent-ca/pkg/core"
)

// NewGrid builds the initial state: every channel uniform in [0,1), then the
// identity channel overwritten with a fair binary mask. Draws are taken in
// that order so a seed fully determines the grid.
func NewGrid(h, w int, rng *rand.Rand) *core.FieldGrid {
	g := core.NewFieldGrid(h, w, NumChannels)
	pcore.FillUniform(rng, g.Values())

	mask := make([]float32, g.H*g.W)
	pcore.FillUniform(rng, mask)
	vals := g.Values()
	for i, v := range mask {
		var bit float32
		if v > 0.5 {
			bit = 1
		}
		vals[i*NumChannels+ChannelIdentity] = bit
	}
	return g
}
