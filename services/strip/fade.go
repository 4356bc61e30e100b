package strip

import (
	"context"
	"errors"
	"time"

	"motionlight/types"
	"motionlight/x/ramp"
)

// ErrFadeInterrupted is returned when a fade's interrupt predicate fires.
var ErrFadeInterrupted = errors.New("strip: fade interrupted")

// LinearFade ramps c from start to end in ramp.Steps equal writes spaced
// dur/ramp.Steps apart. The strip is left at the last step, one increment
// short of end; callers wanting the exact end level Apply it afterwards.
func (d *Driver) LinearFade(ctx context.Context, c types.Color, start, end types.Brightness, dur time.Duration) error {
	return d.FadeTo(ctx, c, start, end, dur, nil)
}

// FadeTo is LinearFade with an interrupt predicate polled after each write,
// before the step's sleep. When it reports true the fade stops at the level
// just written and ErrFadeInterrupted is returned.
func (d *Driver) FadeTo(ctx context.Context, c types.Color, start, end types.Brightness, dur time.Duration, interrupt func() bool) error {
	interrupted := false
	tick := func(step time.Duration) bool {
		if interrupt != nil && interrupt() {
			interrupted = true
			return false
		}
		return d.sleep.Sleep(ctx, step)
	}
	set := func(level float64) { d.Apply(c, types.Brightness(level)) }

	if _, ok := ramp.Linear(float64(start), float64(end), ramp.Steps, dur, tick, set); ok {
		return nil
	}
	if interrupted {
		return ErrFadeInterrupted
	}
	return cancelled(ctx)
}
