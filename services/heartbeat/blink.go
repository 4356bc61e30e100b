// Package heartbeat drives the discrete status LED: boot and cycle blinks,
// and the acknowledgement patterns of the test programs.
package heartbeat

import (
	"context"
	"time"

	"motionlight/services/hal"
	"motionlight/x/timex"
)

// Blink lights led for on, then darkens it for off, times times. The LED is
// left dark, including when ctx ends early.
func Blink(ctx context.Context, led hal.StatusLED, on, off time.Duration, times int, s timex.Sleeper) error {
	if s == nil {
		s = timex.Real{}
	}
	for i := 0; i < times; i++ {
		led.On()
		if !s.Sleep(ctx, on) {
			led.Off()
			return stopped(ctx)
		}
		led.Off()
		if !s.Sleep(ctx, off) {
			return stopped(ctx)
		}
	}
	return nil
}

// Pulse is a single blink with equal on and off time.
func Pulse(ctx context.Context, led hal.StatusLED, d time.Duration, s timex.Sleeper) error {
	return Blink(ctx, led, d, d, 1, s)
}

func stopped(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}
