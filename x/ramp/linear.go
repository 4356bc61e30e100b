package ramp

import (
	"time"

	"motionlight/x/mathx"
	"motionlight/x/timex"
)

// Steps is the fixed write count of a brightness fade.
const Steps = 100

// Step sets the new level.
type Step func(level float64)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear runs a synchronous (caller-driven) ramp from 'from' towards 'to'.
// Step i in [0, steps) writes from + i*(to-from)/steps and then ticks for
// duration/steps, so 'to' itself is never written. A non-positive duration
// still performs every write, with zero-length ticks.
// steps<=0 snaps to 'to'.
// It returns the last level written and false if tick cancelled the ramp.
func Linear(from, to float64, steps int, duration time.Duration, tick Tick, set Step) (float64, bool) {
	if steps <= 0 {
		set(to)
		return to, true
	}
	stepDur := timex.Split(duration, steps)
	last := from
	for i := 0; i < steps; i++ {
		last = mathx.LerpStep(from, to, i, steps)
		set(last)
		if !tick(stepDur) {
			return last, false
		}
	}
	return last, true
}
