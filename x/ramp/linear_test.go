package ramp

import (
	"math"
	"testing"
	"time"
)

func TestLinear_HundredStepsStopsShortOfTarget(t *testing.T) {
	var levels []float64
	var ticks []time.Duration
	last, done := Linear(0, 1, Steps, 3*time.Second,
		func(d time.Duration) bool { ticks = append(ticks, d); return true },
		func(l float64) { levels = append(levels, l) })

	if !done {
		t.Fatalf("ramp reported cancellation")
	}
	if len(levels) != Steps || len(ticks) != Steps {
		t.Fatalf("writes=%d ticks=%d, want %d", len(levels), len(ticks), Steps)
	}
	if levels[0] != 0 {
		t.Fatalf("first level %v, want 0", levels[0])
	}
	if math.Abs(last-0.99) > 1e-9 || last != levels[Steps-1] {
		t.Fatalf("last level %v, want 0.99", last)
	}
	for _, d := range ticks {
		if d != 30*time.Millisecond {
			t.Fatalf("tick %v, want 30ms", d)
		}
	}
}

func TestLinear_ZeroDurationStillWrites(t *testing.T) {
	writes := 0
	_, done := Linear(1, 0, Steps, 0,
		func(d time.Duration) bool {
			if d != 0 {
				t.Fatalf("tick %v, want 0", d)
			}
			return true
		},
		func(float64) { writes++ })
	if !done || writes != Steps {
		t.Fatalf("done=%v writes=%d", done, writes)
	}
}

func TestLinear_CancelStopsEarly(t *testing.T) {
	n := 0
	last, done := Linear(0, 1, Steps, time.Second,
		func(time.Duration) bool { return n < 10 },
		func(float64) { n++ })
	if done {
		t.Fatalf("expected cancellation")
	}
	if n != 10 {
		t.Fatalf("writes=%d, want 10", n)
	}
	if math.Abs(last-0.09) > 1e-9 {
		t.Fatalf("last=%v", last)
	}
}

func TestLinear_NoStepsSnaps(t *testing.T) {
	var got float64 = -1
	last, done := Linear(0, 0.7, 0, time.Second, func(time.Duration) bool { t.Fatal("tick"); return false }, func(l float64) { got = l })
	if !done || got != 0.7 || last != 0.7 {
		t.Fatalf("snap failed: got=%v last=%v", got, last)
	}
}
