package core

import "testing"

func TestFieldGridWrap(t *testing.T) {
	g := NewFieldGrid(4, 3, 2)
	cases := []struct {
		r, c         int
		wantR, wantC int
	}{
		{0, 0, 0, 0},
		{-1, 0, 3, 0},
		{4, 3, 0, 0},
		{2, -1, 2, 2},
		{-5, 7, 3, 1},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.r, tc.c)
		if r != tc.wantR || c != tc.wantC {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.c, r, c, tc.wantR, tc.wantC)
		}
	}
}

func TestFieldGridLayoutAndMean(t *testing.T) {
	g := NewFieldGrid(2, 2, 3)
	g.Set(1, 0, 2, 0.5)
	if got := g.Values()[(1*2+0)*3+2]; got != 0.5 {
		t.Fatalf("expected channel-fastest layout, got %f", got)
	}
	g.Set(0, 0, 1, 1)
	g.Set(1, 1, 1, 1)
	if m := g.Mean(1); m != 0.5 {
		t.Fatalf("mean = %f, want 0.5", m)
	}
	ch := g.Channel(2)
	if len(ch) != 4 || ch[2] != 0.5 {
		t.Fatalf("unexpected channel copy %v", ch)
	}

	c := g.Clone()
	c.Set(1, 0, 2, 0.25)
	if g.At(1, 0, 2) != 0.5 {
		t.Fatal("Clone must not share storage")
	}
}
