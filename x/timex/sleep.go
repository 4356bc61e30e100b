package timex

import (
	"context"
	"time"
)

// Sleeper blocks the caller for d. It reports whether the full duration
// elapsed; false means ctx was cancelled first.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) bool
}

// Real sleeps on the wall clock.
type Real struct{}

func (Real) Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Virtual advances a simulated clock instead of blocking. OnSleep, when set,
// runs after every advance with the new simulated time; tests use it to
// change sensor inputs or cancel ctx at a given instant.
type Virtual struct {
	Now     time.Duration
	Calls   int
	OnSleep func(now time.Duration)
}

func (v *Virtual) Sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d > 0 {
		v.Now += d
	}
	v.Calls++
	if v.OnSleep != nil {
		v.OnSleep(v.Now)
	}
	return ctx.Err() == nil
}

// Scaled runs Inner with every duration divided by Factor. Factor <= 1
// sleeps in real proportion.
type Scaled struct {
	Inner  Sleeper
	Factor float64
}

func (s Scaled) Sleep(ctx context.Context, d time.Duration) bool {
	inner := s.Inner
	if inner == nil {
		inner = Real{}
	}
	if s.Factor > 1 {
		d = time.Duration(float64(d) / s.Factor)
	}
	return inner.Sleep(ctx, d)
}
