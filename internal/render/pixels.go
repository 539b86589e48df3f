package render

import (
	"image"
	"image/color"
	"math"

	"emergent-ca/internal/core"

	"github.com/crazy3lf/colorconv"
)

// FillFrameRGBA converts normalised RGB triples into opaque RGBA pixels in buf.
func FillFrameRGBA(buf []byte, pix []float32) {
	n := len(pix) / 3
	for i := 0; i < n; i++ {
		base := i * 4
		buf[base+0] = toByte(pix[i*3+0])
		buf[base+1] = toByte(pix[i*3+1])
		buf[base+2] = toByte(pix[i*3+2])
		buf[base+3] = 0xff
	}
}

// FillMaskRGBA tints cells whose mask value is at least 0.5 and clears the
// rest to transparent black.
func FillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	for i, m := range mask {
		base := i * 4
		if m < 0.5 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = tint.A
	}
}

// FillHueRGBA maps values in [0,1] through palette with a fixed alpha,
// writing premultiplied pixels. When the palette is empty the buffer is
// cleared to transparent black.
func FillHueRGBA(buf []byte, values []float32, palette []color.RGBA, alpha uint8) {
	if len(palette) == 0 {
		for i := range values {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}
	last := len(palette) - 1
	for i, v := range values {
		idx := int(math.Round(clamp01(float64(v)) * float64(last)))
		col := palette[idx]
		base := i * 4
		buf[base+0] = premultiply(col.R, alpha)
		buf[base+1] = premultiply(col.G, alpha)
		buf[base+2] = premultiply(col.B, alpha)
		buf[base+3] = alpha
	}
}

func premultiply(c, alpha uint8) uint8 {
	return uint8(uint16(c) * uint16(alpha) / 255)
}

// HuePalette builds n fully saturated colours sweeping the hue wheel from
// red towards magenta.
func HuePalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	palette := make([]color.RGBA, n)
	for i := range palette {
		hue := 300 * float64(i) / float64(max(n-1, 1))
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			continue
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return palette
}

// FrameImage renders f into an RGBA image, each cell scaled to a
// scale×scale block.
func FrameImage(f core.Frame, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, f.W*scale, f.H*scale))
	cell := make([]byte, 4*f.W*f.H)
	FillFrameRGBA(cell, f.Pix)
	for y := 0; y < f.H*scale; y++ {
		for x := 0; x < f.W*scale; x++ {
			src := ((y/scale)*f.W + x/scale) * 4
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+4], cell[src:src+4])
		}
	}
	return img
}

func toByte(v float32) uint8 {
	return uint8(math.Round(clamp01(float64(v)) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
