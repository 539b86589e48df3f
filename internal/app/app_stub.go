//go:build !ebiten

package app

import (
	"fmt"

	"emergent-ca/internal/core"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(core.Sim, *Config, ...core.Sink) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Run always reports that the GUI build tag is missing.
func (g *Game) Run() error {
	return fmt.Errorf("app.Game.Run requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// OnFrame is a no-op placeholder.
func (g *Game) OnFrame(core.Frame) error { return nil }
