// Package demo holds the bench programs: a showcase of the strip primitives
// and a wiring check for the button and PIR sensor.
package demo

import (
	"context"
	"time"

	"motionlight/services/hal"
	"motionlight/services/heartbeat"
	"motionlight/services/sensor"
	"motionlight/services/strip"
	"motionlight/types"
	"motionlight/x/logx"
	"motionlight/x/timex"
)

// Program is one pass of a bench loop.
type Program interface {
	Loop(ctx context.Context) error
}

// Run repeats p.Loop until ctx ends. Cancellation is not an error.
func Run(ctx context.Context, p Program) error {
	for ctx.Err() == nil {
		if err := p.Loop(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
	return nil
}

// Colors cycled by the showcase, ending dark.
var ShowcaseColors = []types.Color{
	types.Red, types.Green, types.Blue, types.Yellow, types.Cyan, types.Magenta, types.Black,
}

// Brightness passes of the color cycle.
var ShowcaseLevels = []types.Brightness{1.0, 0.5, 0.1}

// Colors walked down the pixel strip.
var ChaseColors = []types.Color{types.Purple, types.Red, types.Yellow, types.White}

// Showcase runs every strip primitive in turn. Poller is optional; when set
// and PIRWait is positive the loop also acknowledges the button and waits
// for motion, the way the example sketch did.
type Showcase struct {
	Driver  *strip.Driver
	LED     hal.StatusLED
	Onboard hal.PixelStrip
	Strip   hal.PixelStrip
	Poller  *sensor.Poller
	PIRWait time.Duration
	Color   types.Color
	Sleeper timex.Sleeper
	Log     logx.Logger
}

// NewShowcase wires a showcase to b. Pass a nil poller to skip the sensor
// check.
func NewShowcase(b *hal.Board, color types.Color, poll *sensor.Poller, pirWait time.Duration, s timex.Sleeper, log logx.Logger) *Showcase {
	if s == nil {
		s = timex.Real{}
	}
	return &Showcase{
		Driver:  strip.NewDriver(b, s),
		LED:     b.LED,
		Onboard: b.Onboard,
		Strip:   b.Strip,
		Poller:  poll,
		PIRWait: pirWait,
		Color:   color,
		Sleeper: s,
		Log:     logx.OrNop(log),
	}
}

func (d *Showcase) Loop(ctx context.Context) error {
	log := logx.OrNop(d.Log)
	log.Info("showcase loop")

	if err := heartbeat.Blink(ctx, d.LED, time.Second, time.Second, 1, d.Sleeper); err != nil {
		return err
	}

	strip.SetPixel(d.Onboard, d.Color)
	if err := d.pause(ctx, time.Second); err != nil {
		return err
	}
	strip.SetPixel(d.Onboard, types.Black)
	if err := d.pause(ctx, time.Second); err != nil {
		return err
	}

	if d.Poller != nil && d.PIRWait > 0 {
		if err := d.sensorCheck(ctx, log); err != nil {
			return err
		}
	}

	d.Driver.Apply(d.Color, 1)
	if err := d.pause(ctx, 2*time.Second); err != nil {
		return err
	}

	if err := d.Driver.CycleColors(ctx, ShowcaseColors, ShowcaseLevels, 250*time.Millisecond); err != nil {
		return err
	}

	if err := d.Driver.LinearFade(ctx, d.Color, 0, 1, 2*time.Second); err != nil {
		return err
	}
	if err := d.pause(ctx, time.Second); err != nil {
		return err
	}
	if err := d.Driver.LinearFade(ctx, d.Color, 1, 0, 2*time.Second); err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		if err := d.Driver.Rainbow(ctx, 1, 2*time.Second); err != nil {
			return err
		}
	}

	if err := strip.Chase(ctx, d.Strip, ChaseColors, 250*time.Millisecond, 10, d.Sleeper); err != nil {
		return err
	}

	d.Driver.Off()
	return d.pause(ctx, time.Second)
}

func (d *Showcase) sensorCheck(ctx context.Context, log logx.Logger) error {
	r := d.Poller.Read()
	log.Info("pushbutton", "pressed", r.ButtonPressed)
	if r.ButtonPressed {
		if err := heartbeat.Blink(ctx, d.LED, 500*time.Millisecond, 500*time.Millisecond, 3, d.Sleeper); err != nil {
			return err
		}
	}
	log.Info("waiting for pir sensor", "max_wait", d.PIRWait)
	motion, err := d.Poller.WaitMotion(ctx, d.PIRWait)
	if err != nil {
		return err
	}
	if !motion {
		log.Info("pir timeout")
		return nil
	}
	log.Info("pir detected")
	strip.SetPixel(d.Onboard, types.Cyan)
	if err := d.pause(ctx, time.Second); err != nil {
		return err
	}
	strip.SetPixel(d.Onboard, types.Black)
	return nil
}

func (d *Showcase) pause(ctx context.Context, dur time.Duration) error {
	return sleep(ctx, d.Sleeper, dur)
}

func sleep(ctx context.Context, s timex.Sleeper, d time.Duration) error {
	if s == nil {
		s = timex.Real{}
	}
	if s.Sleep(ctx, d) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}
