// Package strip drives the analog RGB strip: color to duty conversion,
// brightness fades and the animation primitives built on them.
package strip

import (
	"context"
	"math"
	"time"

	"motionlight/services/hal"
	"motionlight/types"
	"motionlight/x/timex"
)

// Duty converts one 8-bit channel at brightness b to an active-low duty
// cycle: 65535 - floor(b * channel/255 * 65535). b is clamped to [0,1].
func Duty(channel uint8, b types.Brightness) types.DutyCycle {
	// 65535 == 255*257, so channel*257 is the exact full-scale value. The
	// float form channel/255*65535 can land one count low after rounding;
	// this form is kept on purpose.
	on := math.Floor(float64(b.Clamp()) * float64(channel) * 257)
	if on > float64(types.MaxDuty) {
		on = float64(types.MaxDuty)
	}
	return types.MaxDuty - types.DutyCycle(on)
}

// Driver owns the three strip PWM channels. It is not safe for concurrent
// use; one control loop drives it.
type Driver struct {
	red, green, blue hal.PWMChannel
	sleep            timex.Sleeper

	last  types.Color
	lastB types.Brightness
}

// NewDriver uses the board's red, green and blue channels. A nil sleeper
// means wall-clock sleeps.
func NewDriver(b *hal.Board, s timex.Sleeper) *Driver {
	if s == nil {
		s = timex.Real{}
	}
	return &Driver{red: b.Red, green: b.Green, blue: b.Blue, sleep: s}
}

// Apply writes c at brightness b to the red, green and blue channels, in
// that order.
func (d *Driver) Apply(c types.Color, b types.Brightness) {
	b = b.Clamp()
	d.red.Set(Duty(c.R, b))
	d.green.Set(Duty(c.G, b))
	d.blue.Set(Duty(c.B, b))
	d.last, d.lastB = c, b
}

// Last returns the most recently applied color and brightness.
func (d *Driver) Last() (types.Color, types.Brightness) { return d.last, d.lastB }

// Off drives every channel to MaxDuty.
func (d *Driver) Off() { d.Apply(types.Black, 0) }

// Sleeper exposes the clock the driver paces itself with.
func (d *Driver) Sleeper() timex.Sleeper { return d.sleep }

func (d *Driver) wait(ctx context.Context, dur time.Duration) error {
	if d.sleep.Sleep(ctx, dur) {
		return nil
	}
	return cancelled(ctx)
}

// cancelled returns ctx's error, or context.Canceled when a sleeper
// stopped early without ctx being done.
func cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}
