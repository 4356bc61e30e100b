package demo

import (
	"context"
	"time"

	"motionlight/services/hal"
	"motionlight/services/heartbeat"
	"motionlight/services/strip"
	"motionlight/types"
	"motionlight/x/logx"
	"motionlight/x/timex"
)

// Colors of the classic walk-through, ending dark.
var ClassicColors = []types.Color{
	types.Red, types.Green, types.Blue, types.Yellow, types.Purple, types.Black,
}

// Classic is the first bench sketch: one LED blink, the onboard pixel left
// at Color, a fade in and out, a short color cycle and the chase. No
// rainbow and no sensors.
type Classic struct {
	Driver  *strip.Driver
	LED     hal.StatusLED
	Onboard hal.PixelStrip
	Strip   hal.PixelStrip
	Color   types.Color
	Sleeper timex.Sleeper
	Log     logx.Logger
}

func NewClassic(b *hal.Board, color types.Color, s timex.Sleeper, log logx.Logger) *Classic {
	if s == nil {
		s = timex.Real{}
	}
	return &Classic{
		Driver:  strip.NewDriver(b, s),
		LED:     b.LED,
		Onboard: b.Onboard,
		Strip:   b.Strip,
		Color:   color,
		Sleeper: s,
		Log:     logx.OrNop(log),
	}
}

func (c *Classic) Loop(ctx context.Context) error {
	logx.OrNop(c.Log).Info("hello world")

	if err := heartbeat.Blink(ctx, c.LED, time.Second, 0, 1, c.Sleeper); err != nil {
		return err
	}
	strip.SetPixel(c.Onboard, c.Color)

	if err := c.Driver.LinearFade(ctx, c.Color, 0, 1, 2*time.Second); err != nil {
		return err
	}
	if err := sleep(ctx, c.Sleeper, time.Second); err != nil {
		return err
	}
	if err := c.Driver.LinearFade(ctx, c.Color, 1, 0, 2*time.Second); err != nil {
		return err
	}

	if err := c.Driver.CycleColors(ctx, ClassicColors, ShowcaseLevels, 250*time.Millisecond); err != nil {
		return err
	}

	if err := strip.Chase(ctx, c.Strip, ChaseColors, 250*time.Millisecond, 10, c.Sleeper); err != nil {
		return err
	}
	return sleep(ctx, c.Sleeper, time.Second)
}
