//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"emergent-ca/internal/core"
	"emergent-ca/internal/render"
	"emergent-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type finisher interface {
	Done() bool
}

type titled interface {
	Title() string
}

// Game adapts a core simulation to the ebiten.Game interface. It is the
// interactive render sink: it paces ticks, shows each frame and forwards
// it to any extra sinks.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep
	sinks   []core.Sink

	frame core.Frame
	scale int
	panel int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, sinks ...core.Sink) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.Panel),
		stepper: core.NewFixedStep(cfg.Interval),
		sinks:   sinks,
		frame:   sim.Frame(),
		scale:   cfg.Scale,
		panel:   cfg.Panel,
		seed:    cfg.Seed,
	}
}

// Run opens the window and blocks until the user quits. Extra sinks are
// started before the first tick and stopped on exit.
func (g *Game) Run() error {
	for i, s := range g.sinks {
		if err := s.Start(); err != nil {
			g.sinks = g.sinks[:i]
			return errors.Join(fmt.Errorf("start sink: %w", err), g.stopSinks())
		}
	}

	size := g.sim.Size()
	title := "emergent-ca — " + g.sim.Name()
	if t, ok := g.sim.(titled); ok {
		title = t.Title()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size.W*g.scale+g.panel, size.H*g.scale)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return errors.Join(err, g.stopSinks())
}

func (g *Game) stopSinks() error {
	var errs []error
	for _, s := range g.sinks {
		errs = append(errs, s.Stop())
	}
	g.sinks = nil
	return errors.Join(errs...)
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.frame = g.sim.Frame()
	g.tickOnce = false
}

// OnFrame shows f on the next Draw and forwards it to the extra sinks.
func (g *Game) OnFrame(f core.Frame) error {
	g.frame = f
	for _, s := range g.sinks {
		if err := s.OnFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update()

	if f, ok := g.sim.(finisher); ok && f.Done() {
		return nil
	}
	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		g.sim.Step()
		if err := g.OnFrame(g.sim.Frame()); err != nil {
			return fmt.Errorf("frame sink: %w", err)
		}
	}
	return nil
}

// Draw renders the current frame, overlays and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panel, s.H * g.scale
}
