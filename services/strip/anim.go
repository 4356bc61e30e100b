package strip

import (
	"context"
	"time"

	"motionlight/services/hal"
	"motionlight/types"
	"motionlight/x/mathx"
	"motionlight/x/ramp"
	"motionlight/x/timex"
)

// RainbowPositions is how many wheel positions one Rainbow sweep visits.
const RainbowPositions = 255

// Colorwheel maps pos onto a red -> green -> blue -> red hue cycle with
// period 256. Negative positions use their absolute value.
func Colorwheel(pos int) types.Color {
	p := 255 - mathx.Abs(pos%256)
	switch {
	case p < 85:
		return types.RGB(255-p*3, 0, p*3)
	case p < 170:
		p -= 85
		return types.RGB(0, p*3, 255-p*3)
	default:
		p -= 170
		return types.RGB(p*3, 255-p*3, 0)
	}
}

// Rainbow sweeps wheel positions 0..254 at brightness b, pausing dur/100
// after each one. A full sweep therefore takes about 2.55*dur.
func (d *Driver) Rainbow(ctx context.Context, b types.Brightness, dur time.Duration) error {
	step := timex.Split(dur, ramp.Steps)
	for j := 0; j < RainbowPositions; j++ {
		d.Apply(Colorwheel(j), b)
		if err := d.wait(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

// CycleColors shows each color at each brightness in turn, holding delay
// between colors. The last color of a pass is not held.
func (d *Driver) CycleColors(ctx context.Context, colors []types.Color, levels []types.Brightness, delay time.Duration) error {
	for _, b := range levels {
		for i, c := range colors {
			d.Apply(c, b)
			if i == len(colors)-1 {
				break
			}
			if err := d.wait(ctx, delay); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetPixel fills every pixel of px with c. A nil strip is ignored.
func SetPixel(px hal.PixelStrip, c types.Color) {
	if px == nil {
		return
	}
	buf := make([]types.Color, px.Len())
	for i := range buf {
		buf[i] = c
	}
	px.Show(buf)
}

// Chase walks single lit pixels down px. For each of loops passes, every
// pixel index in turn is lit with the next color of the sequence (wrapping)
// while the rest are dark, and held for delay. The strip is cleared at the
// end, including on cancellation.
func Chase(ctx context.Context, px hal.PixelStrip, colors []types.Color, delay time.Duration, loops int, s timex.Sleeper) error {
	if px == nil || px.Len() == 0 || len(colors) == 0 || loops <= 0 {
		return nil
	}
	if s == nil {
		s = timex.Real{}
	}
	buf := make([]types.Color, px.Len())
	defer func() {
		clear(buf)
		px.Show(buf)
	}()

	next := 0
	for loop := 0; loop < loops; loop++ {
		for i := range buf {
			clear(buf)
			buf[i] = colors[next]
			next = (next + 1) % len(colors)
			px.Show(buf)
			if !s.Sleep(ctx, delay) {
				return cancelled(ctx)
			}
		}
	}
	return nil
}
