package stats

import (
	"math"
	"testing"

	"emergent-ca/internal/core"
)

func TestDominantPeriodRecoversSine(t *testing.T) {
	xs := make([]float64, 200)
	for i := range xs {
		xs[i] = 0.5 + 0.3*math.Sin(2*math.Pi*float64(i)/20)
	}
	if got := DominantPeriod(xs); math.Abs(got-20) > 1e-9 {
		t.Fatalf("period = %f, want 20", got)
	}
}

func TestDominantPeriodFlatOrShort(t *testing.T) {
	if got := DominantPeriod([]float64{1, 2}); got != 0 {
		t.Fatalf("short series period = %f, want 0", got)
	}
	if got := DominantPeriod(make([]float64, 32)); got != 0 {
		t.Fatalf("flat series period = %f, want 0", got)
	}
}

func TestSeriesRecord(t *testing.T) {
	g := core.NewFieldGrid(2, 2, 5)
	g.Set(0, 0, 0, 0.2)
	g.Set(1, 1, 0, 0.6)
	g.Set(0, 1, 3, 1)

	var s Series
	s.Record(0, g, false)
	s.Record(1, g, true)

	if s.Len() != 2 || s.PerturbationCount() != 1 {
		t.Fatalf("len=%d perturbations=%d", s.Len(), s.PerturbationCount())
	}
	if math.Abs(s.Means[0][0]-0.2) > 1e-6 || math.Abs(s.Means[3][1]-0.25) > 1e-6 {
		t.Fatalf("unexpected means %v / %v", s.Means[0], s.Means[3])
	}
	if s.MinFirst[0] != 0 || math.Abs(s.MaxFirst[0]-0.6) > 1e-6 {
		t.Fatalf("range = [%f, %f]", s.MinFirst[0], s.MaxFirst[0])
	}
	if s.TicksBelow(0, 0.3) != 2 || s.TicksBelow(0, 0.1) != 0 {
		t.Fatal("TicksBelow miscounted")
	}
}
