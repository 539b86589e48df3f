package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	if !fs.ShouldStepAt(start) {
		t.Fatal("first call should fire immediately")
	}
	if fs.ShouldStepAt(start.Add(40 * time.Millisecond)) {
		t.Fatal("fired before the interval elapsed")
	}
	if !fs.ShouldStepAt(start.Add(100 * time.Millisecond)) {
		t.Fatal("expected a tick once the interval elapsed")
	}
	if fs.ShouldStepAt(start.Add(150 * time.Millisecond)) {
		t.Fatal("fired twice within one interval")
	}
}

func TestFixedStepDefaultsInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %s, want 100ms", fs.Interval())
	}
}
