package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Frame is one displayable image: H×W RGB triples of normalised floats in
// row-major order. Tick counts the updates applied to produce it.
type Frame struct {
	Tick int
	W, H int
	Pix  []float32
}

// Sim defines the minimal contract a continuous-state automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Tick() int
	Frame() Frame
}

// Sink receives one frame per tick. Start and Stop bracket a run.
type Sink interface {
	Start() error
	OnFrame(f Frame) error
	Stop() error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
