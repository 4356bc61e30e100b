// services/hal/platform/board_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"

	"motionlight/services/config"
	"motionlight/services/hal"
	"motionlight/types"
)

// Host exposes the fakes behind a host board so tests and the simulator can
// drive inputs and inspect outputs.
type Host struct {
	Board *hal.Board

	Red, Green, Blue *FakePWM
	Button, PIR, LED *FakePin
	Onboard, Strip   *FakePixels
}

// NewHostBoard builds a board of fakes for p. Inputs start at their idle
// level: button released, no motion.
func NewHostBoard(p config.Pins) (*Host, error) {
	reg := hal.NewPinRegistry(nil)
	for _, rp := range p.Roles() {
		if rp.Pin == config.NotWired {
			continue
		}
		if err := reg.Claim(rp.Role, rp.Pin); err != nil {
			return nil, err
		}
	}

	h := &Host{
		Red:    &FakePWM{duty: types.MaxDuty},
		Green:  &FakePWM{duty: types.MaxDuty},
		Blue:   &FakePWM{duty: types.MaxDuty},
		Button: NewFakePin(types.ParsePull(p.ButtonPull) == types.PullUp),
		PIR:    NewFakePin(false),
		LED:    NewFakePin(p.LEDActiveLow),
	}
	b := &hal.Board{
		Red:    h.Red,
		Green:  h.Green,
		Blue:   h.Blue,
		Button: hal.Input{Pin: h.Button, Invert: buttonInverted(p)},
		PIR:    hal.Input{Pin: h.PIR},
		LED:    hal.StatusLED{Out: h.LED, ActiveLow: p.LEDActiveLow},
	}
	if p.Onboard != config.NotWired && p.OnboardCount > 0 {
		h.Onboard = NewFakePixels(p.OnboardCount)
		b.Onboard = h.Onboard
	}
	if p.Strip != config.NotWired && p.StripCount > 0 {
		h.Strip = NewFakePixels(p.StripCount)
		b.Strip = h.Strip
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	h.Board = b
	return h, nil
}

// NewBoard builds the host board without exposing the fakes.
func NewBoard(p config.Pins) (*hal.Board, error) {
	h, err := NewHostBoard(p)
	if err != nil {
		return nil, err
	}
	return h.Board, nil
}

// PressButton drives the button pin to its pressed level.
func (h *Host) PressButton(pressed bool) {
	h.Button.Set(pressed != h.Board.Button.Invert)
}

// SetMotion drives the PIR output.
func (h *Host) SetMotion(motion bool) { h.PIR.Set(motion) }

// LEDOn reports whether the status LED is lit.
func (h *Host) LEDOn() bool { return h.LED.Get() != h.Board.LED.ActiveLow }

// Duties returns the last red, green, blue duty cycles.
func (h *Host) Duties() [3]types.DutyCycle {
	return [3]types.DutyCycle{h.Red.Duty(), h.Green.Duty(), h.Blue.Duty()}
}

// Console is the diagnostic writer on the host.
func Console(config.LogConfig) io.Writer { return os.Stdout }
