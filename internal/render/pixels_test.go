package render

import (
	"image/color"
	"testing"

	"emergent-ca/internal/core"
)

func TestFillFrameRGBAClamps(t *testing.T) {
	buf := make([]byte, 8)
	FillFrameRGBA(buf, []float32{-0.2, 0.5, 1.3, 0, 1, 0.25})
	want := []byte{0, 128, 255, 255, 0, 255, 64, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buf %v)", i, buf[i], want[i], buf)
		}
	}
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 8)
	tint := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	FillMaskRGBA(buf, []float32{1, 0}, tint)
	if buf[0] != 10 || buf[3] != 40 || buf[4] != 0 || buf[7] != 0 {
		t.Fatalf("unexpected mask pixels %v", buf)
	}
}

func TestHuePaletteEndpoints(t *testing.T) {
	p := HuePalette(16)
	if len(p) != 16 {
		t.Fatalf("palette length %d", len(p))
	}
	if p[0] != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Fatalf("first colour %v, want red", p[0])
	}
	if p[15] != (color.RGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Fatalf("last colour %v, want magenta", p[15])
	}
	if HuePalette(0) != nil {
		t.Fatal("empty palette expected for n=0")
	}
}

func TestFillHueRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 10}, {R: 20}, {R: 255}}
	buf := make([]byte, 12)
	FillHueRGBA(buf, []float32{0, 0.5, 2}, palette, 255)
	if buf[0] != 10 || buf[4] != 20 || buf[8] != 255 || buf[11] != 255 {
		t.Fatalf("unexpected hue pixels %v", buf)
	}
	FillHueRGBA(buf, []float32{1}, palette, 51)
	if buf[0] != 51 || buf[3] != 51 {
		t.Fatalf("expected premultiplied pixel, got %v", buf[:4])
	}
	FillHueRGBA(buf, []float32{0, 0.5, 2}, nil, 99)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared buffer", i, b)
		}
	}
}

func TestFrameImageScales(t *testing.T) {
	f := core.Frame{W: 2, H: 1, Pix: []float32{1, 0, 0, 0, 0, 1}}
	img := FrameImage(f, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds %v, want 6x3", b)
	}
	if c := img.RGBAAt(2, 2); c != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("left block colour %v", c)
	}
	if c := img.RGBAAt(3, 0); c != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("right block colour %v", c)
	}
}
