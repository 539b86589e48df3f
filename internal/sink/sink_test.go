package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"emergent-ca/internal/core"
	"emergent-ca/internal/sims/emergent"
)

var errBoom = errors.New("boom")

type recordingSink struct {
	ticks    []int
	started  bool
	stopped  bool
	failAt   int
	startErr error
}

func (s *recordingSink) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *recordingSink) OnFrame(f core.Frame) error {
	s.ticks = append(s.ticks, f.Tick)
	if s.failAt > 0 && len(s.ticks) == s.failAt {
		return errBoom
	}
	return nil
}

func (s *recordingSink) Stop() error {
	s.stopped = true
	return nil
}

func TestRunDeliversEveryFrameInOrder(t *testing.T) {
	world := emergent.New(4, 4)
	a, b := &recordingSink{}, &recordingSink{}

	if err := Run(world, 5, a, b); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	want := []int{1, 2, 3, 4, 5}
	if !slices.Equal(a.ticks, want) || !slices.Equal(b.ticks, want) {
		t.Fatalf("frames delivered %v / %v, want %v", a.ticks, b.ticks, want)
	}
	if !a.started || !a.stopped || !b.stopped {
		t.Fatal("sinks must be started and stopped")
	}
	if world.Steps() != 5 {
		t.Fatalf("world stepped %d times, want 5", world.Steps())
	}
}

func TestRunStopsSinksAfterFrameError(t *testing.T) {
	world := emergent.New(4, 4)
	failing := &recordingSink{failAt: 2}
	other := &recordingSink{}

	err := Run(world, 10, failing, other)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if !failing.stopped || !other.stopped {
		t.Fatal("sinks must be stopped after a failure")
	}
	if world.Steps() != 2 || len(other.ticks) != 1 {
		t.Fatalf("loop continued after failure: steps=%d other=%v", world.Steps(), other.ticks)
	}
}

func TestRunStartFailure(t *testing.T) {
	world := emergent.New(4, 4)
	ok := &recordingSink{}
	bad := &recordingSink{startErr: errBoom}

	err := Run(world, 3, ok, bad)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected start error, got %v", err)
	}
	if !ok.stopped {
		t.Fatal("already started sinks must be stopped")
	}
	if bad.stopped || world.Steps() != 0 {
		t.Fatal("nothing should run after a failed start")
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	m := Multi{a, b}
	if err := Run(emergent.New(3, 3), 2, m); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(a.ticks) != 2 || len(b.ticks) != 2 || !a.stopped || !b.stopped {
		t.Fatal("Multi must forward the full lifecycle to each sink")
	}
}

func TestRecorderWritesAVI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	world := emergent.New(8, 8)
	rec := NewRecorder(path, 8, 8, 4, 10)

	if err := Run(world, 3, rec); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if rec.Frames() != 3 {
		t.Fatalf("recorded %d frames, want 3", rec.Frames())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Fatalf("output is not a RIFF container: % x", data[:min(len(data), 8)])
	}
}

func TestRecorderRejectsMismatchedFrame(t *testing.T) {
	rec := NewRecorder(filepath.Join(t.TempDir(), "x.avi"), 8, 8, 1, 10)
	if err := rec.OnFrame(core.Frame{W: 8, H: 8}); err == nil {
		t.Fatal("expected error before Start")
	}
	if err := rec.Start(); err != nil {
		t.Fatal(err)
	}
	defer rec.Stop()
	if err := rec.OnFrame(core.Frame{W: 4, H: 4, Pix: make([]float32, 48)}); err == nil {
		t.Fatal("expected error for a mismatched frame size")
	}
}

func TestChartWriterWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "means.png")
	world := emergent.New(8, 8)
	cw := NewChartWriter(path, world)

	if err := Run(world, 12, cw); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if cw.Series().Len() != 12 {
		t.Fatalf("sampled %d ticks, want 12", cw.Series().Len())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("chart output is not a PNG")
	}
}

type gridlessSim struct{}

func (gridlessSim) Name() string { return "gridless" }
func (gridlessSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (gridlessSim) Reset(int64) {}
func (gridlessSim) Step() {}
func (gridlessSim) Tick() int { return 0 }
func (gridlessSim) Frame() core.Frame { return core.Frame{W: 1, H: 1, Pix: make([]float32, 3)} }

func TestChartWriterNeedsGrid(t *testing.T) {
	cw := NewChartWriter(filepath.Join(t.TempDir(), "x.png"), gridlessSim{})
	if err := cw.Start(); err == nil {
		t.Fatal("expected an error for a sim without a grid")
	}
}
