package types

import "motionlight/x/mathx"

// Brightness scales all channels uniformly: 0 is off, 1 is the full color.
type Brightness float64

// Clamp maps NaN and values below 0 to 0, and values above 1 to 1.
func (b Brightness) Clamp() Brightness { return Brightness(mathx.Unit(float64(b))) }

// DutyCycle is a 16-bit PWM compare value. The strip is wired active-low, so
// MaxDuty is off and 0 is fully on.
type DutyCycle uint16

const MaxDuty DutyCycle = 65535
