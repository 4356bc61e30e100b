// services/hal/types.go
package hal

import "motionlight/types"

// ---- Raw peripheral handles ----
// Reads and writes are synchronous and infallible; platform code absorbs any
// driver error at construction time.

// PWMChannel accepts a 16-bit duty cycle (0..65535), already inverted for the
// wiring by the caller.
type PWMChannel interface {
	Set(duty types.DutyCycle)
}

// DigitalIn returns the raw pin level.
type DigitalIn interface {
	Get() bool
}

// DigitalOut drives the raw pin level.
type DigitalOut interface {
	Set(level bool)
}

// PixelStrip is a chain of individually addressable pixels.
type PixelStrip interface {
	Len() int
	Show(px []types.Color)
}

// ---- Logical views ----

// Input maps a raw level to a logical "asserted" value.
// Invert is true when asserted == low (e.g. a button to ground with pull-up).
type Input struct {
	Pin    DigitalIn
	Invert bool
}

func (in Input) Asserted() bool {
	lvl := in.Pin.Get()
	if in.Invert {
		return !lvl
	}
	return lvl
}

// StatusLED is a discrete indicator LED. ActiveLow means the LED sinks
// current into the pin and lights when the pin is driven low.
type StatusLED struct {
	Out       DigitalOut
	ActiveLow bool
}

func (l StatusLED) Active(on bool) {
	if l.Out == nil {
		return
	}
	if l.ActiveLow {
		on = !on
	}
	l.Out.Set(on)
}

func (l StatusLED) On()  { l.Active(true) }
func (l StatusLED) Off() { l.Active(false) }
