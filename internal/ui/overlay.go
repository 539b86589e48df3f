//go:build ebiten

package ui

import (
	"image/color"

	"emergent-ca/internal/core"
	"emergent-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type maskProvider interface {
	IdentityMask() []float32
}

type oscillatorProvider interface {
	OscillatorField() []float32
}

const (
	maskAlpha       = 70
	oscillatorAlpha = 150
	paletteSize     = 256
)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim            core.Sim
	scale          int
	showMask       bool
	showOscillator bool

	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, palette: render.HuePalette(paletteSize)}
}

// Update toggles overlays from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMask = !o.showMask
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showOscillator = !o.showOscillator
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	if o.showOscillator {
		if provider, ok := o.sim.(oscillatorProvider); ok {
			if field := provider.OscillatorField(); len(field) == total {
				render.FillHueRGBA(o.buf, field, o.palette, oscillatorAlpha)
				o.blit(screen)
			}
		}
	}
	if o.showMask {
		if provider, ok := o.sim.(maskProvider); ok {
			if mask := provider.IdentityMask(); len(mask) == total {
				render.FillMaskRGBA(o.buf, mask, color.RGBA{R: maskAlpha, G: maskAlpha, B: maskAlpha, A: maskAlpha})
				o.blit(screen)
			}
		}
	}
}

func (o *Overlay) blit(screen *ebiten.Image) {
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
