package emergent

import (
	"math/rand/v2"

	"emergent-ca/internal/core"
	pcore "emergent-ca/pkg/core"
)

// World owns the current grid and the random stream threaded through
// initialisation and every tick.
type World struct {
	cfg Config

	grid  *core.FieldGrid
	rng   *rand.Rand
	tick  int
	steps int

	last          Perturbation
	perturbations int
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// grid is seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	w := &World{cfg: cfg}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "emergent" }

// Title is the window caption for this sim.
func (w *World) Title() string { return "Emergent CA v5 – Feedback, Identity, Persistence" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the current state. Callers must not mutate it.
func (w *World) Grid() *core.FieldGrid { return w.grid }

// IdentityMask returns a copy of the identity channel.
func (w *World) IdentityMask() []float32 { return w.grid.Channel(ChannelIdentity) }

// OscillatorField returns a copy of the oscillator channel.
func (w *World) OscillatorField() []float32 { return w.grid.Channel(ChannelOscillator) }

// Tick is the index that the next Step passes to the engine.
func (w *World) Tick() int { return w.tick }

// Steps counts updates since the last Reset.
func (w *World) Steps() int { return w.steps }

// Done reports whether the configured tick count has been reached.
func (w *World) Done() bool {
	return !w.cfg.Loop && w.steps >= w.cfg.Ticks
}

// LastPerturbation describes the noise injected by the most recent Step.
func (w *World) LastPerturbation() Perturbation { return w.last }

// Perturbed reports whether the most recent Step injected noise.
func (w *World) Perturbed() bool { return w.last.Applied }

// Perturbations counts ticks since Reset on which noise was injected.
func (w *World) Perturbations() int { return w.perturbations }

// Reset rebuilds the grid from seed, or from the config seed when seed is 0.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective).Source()
	w.grid = NewGrid(w.cfg.Height, w.cfg.Width, w.rng)
	w.tick = 0
	w.steps = 0
	w.last = Perturbation{}
	w.perturbations = 0
}

// Step replaces the grid with one engine update.
func (w *World) Step() {
	next, p := Advance(w.grid, w.tick, w.rng)
	w.grid = next
	w.last = p
	if p.Applied {
		w.perturbations++
	}
	w.steps++
	w.tick++
	if w.cfg.Loop && w.cfg.Ticks > 0 && w.tick >= w.cfg.Ticks {
		w.tick = 0
	}
}

// Frame returns the normalised RGB image of the current grid, tagged with
// the index of the last completed tick.
func (w *World) Frame() core.Frame {
	return DisplayFrame(w.grid, w.steps)
}

func init() {
	core.Register("emergent", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
