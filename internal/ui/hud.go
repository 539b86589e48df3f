//go:build ebiten

package ui

import (
	"image/color"

	"emergent-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 15
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = panelLines(h.title, core.ParameterSnapshot{})
		return
	}
	h.lines = panelLines(h.title, provider.Parameters())
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := hudPadding + hudLineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, color.RGBA{R: 220, G: 220, B: 225, A: 255})
		y += hudLineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
