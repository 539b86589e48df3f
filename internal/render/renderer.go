//go:build ebiten

package render

import (
	"emergent-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads normalised RGB frames into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the frame into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, f core.Frame, scale int) {
	if f.W != gp.w || f.H != gp.h || len(f.Pix) != 3*gp.w*gp.h {
		return
	}
	FillFrameRGBA(gp.buf, f.Pix)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
