package sink

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"

	"emergent-ca/internal/core"
	"emergent-ca/internal/render"

	"github.com/icza/mjpeg"
)

// Recorder appends every frame to an MJPEG AVI file.
type Recorder struct {
	Path    string
	Scale   int
	FPS     int
	Quality int

	w, h   int
	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	frames int
}

// NewRecorder returns a Recorder for a w×h grid. Each cell becomes a
// scale×scale block; fps sets the playback rate.
func NewRecorder(path string, w, h, scale, fps int) *Recorder {
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = 10
	}
	return &Recorder{Path: path, Scale: scale, FPS: fps, Quality: 90, w: w, h: h}
}

// Start creates the output file.
func (r *Recorder) Start() error {
	aw, err := mjpeg.New(r.Path, int32(r.w*r.Scale), int32(r.h*r.Scale), int32(r.FPS))
	if err != nil {
		return fmt.Errorf("create %s: %w", r.Path, err)
	}
	r.aw = aw
	r.frames = 0
	return nil
}

// OnFrame encodes f as JPEG and appends it to the video.
func (r *Recorder) OnFrame(f core.Frame) error {
	if r.aw == nil {
		return errors.New("recorder not started")
	}
	if f.W != r.w || f.H != r.h {
		return fmt.Errorf("frame is %dx%d, recorder expects %dx%d", f.W, f.H, r.w, r.h)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, render.FrameImage(f, r.Scale), &jpeg.Options{Quality: r.Quality}); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("append frame: %w", err)
	}
	r.frames++
	return nil
}

// Stop finalises the AVI index and closes the file.
func (r *Recorder) Stop() error {
	if r.aw == nil {
		return nil
	}
	err := r.aw.Close()
	r.aw = nil
	return err
}

// Frames reports how many frames were written since Start.
func (r *Recorder) Frames() int { return r.frames }
