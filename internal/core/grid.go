package core

// FieldGrid stores H×W cells of C float32 channels in row-major order with
// the channel index varying fastest.
type FieldGrid struct {
	H, W, C int
	data    []float32
}

// NewFieldGrid allocates a zeroed grid with the given dimensions.
func NewFieldGrid(h, w, c int) *FieldGrid {
	if h <= 0 {
		h = 1
	}
	if w <= 0 {
		w = 1
	}
	if c <= 0 {
		c = 1
	}
	return &FieldGrid{H: h, W: w, C: c, data: make([]float32, h*w*c)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FieldGrid) Values() []float32 { return g.data }

// Index returns the slice index of channel ch at row r, column col.
func (g *FieldGrid) Index(r, col, ch int) int { return (r*g.W+col)*g.C + ch }

// At returns channel ch at (r, col).
func (g *FieldGrid) At(r, col, ch int) float32 { return g.data[g.Index(r, col, ch)] }

// Set writes channel ch at (r, col).
func (g *FieldGrid) Set(r, col, ch int, v float32) { g.data[g.Index(r, col, ch)] = v }

// Wrap applies toroidal wrapping to the provided row and column.
func (g *FieldGrid) Wrap(r, col int) (int, int) {
	r = (r%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return r, col
}

// Clone returns a deep copy of the grid.
func (g *FieldGrid) Clone() *FieldGrid {
	out := &FieldGrid{H: g.H, W: g.W, C: g.C, data: make([]float32, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Channel copies a single channel into a new H*W slice.
func (g *FieldGrid) Channel(ch int) []float32 {
	out := make([]float32, g.H*g.W)
	for i := range out {
		out[i] = g.data[i*g.C+ch]
	}
	return out
}

// Mean returns the arithmetic mean of channel ch over every cell.
func (g *FieldGrid) Mean(ch int) float64 {
	n := g.H * g.W
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(g.data[i*g.C+ch])
	}
	return sum / float64(n)
}

// Fill sets every value in the grid to v.
func (g *FieldGrid) Fill(v float32) {
	for i := range g.data {
		g.data[i] = v
	}
}
