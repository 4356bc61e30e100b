// services/hal/platform/board_rp2040.go
//go:build rp2040

package platform

import (
	"image/color"
	"io"
	"machine"
	"os"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"

	"motionlight/errcode"
	"motionlight/services/config"
	"motionlight/services/hal"
	"motionlight/types"
	"motionlight/x/mathx"
	"motionlight/x/timex"
)

// -----------------------------------------------------------------------------
// PWM
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2PWM is one strip channel. Duty is given on the 16-bit scale and
// rescaled to the slice's wrap value.
type rp2PWM struct {
	ctrl pwmCtrl
	ch   uint8
	top  uint32
}

func (p *rp2PWM) Set(d types.DutyCycle) {
	p.ctrl.Set(p.ch, uint32(mathx.RoundDiv(uint64(d)*uint64(p.top), uint64(types.MaxDuty))))
}

// pwmBuilder configures each slice once; channels A and B of a slice share
// its period.
type pwmBuilder struct {
	freqHz     uint32
	configured [8]bool
}

func (b *pwmBuilder) channel(role types.Role, pin int) (*rp2PWM, error) {
	slice := uint8(pin>>1) & 7
	ctrl := pwmGroupBySlice(slice)
	if !b.configured[slice] {
		if err := ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(b.freqHz)}); err != nil {
			return nil, pwmErr(role, err)
		}
		b.configured[slice] = true
	}
	ch, err := ctrl.Channel(machine.Pin(pin))
	if err != nil {
		return nil, pwmErr(role, err)
	}
	p := &rp2PWM{ctrl: ctrl, ch: ch, top: ctrl.Top()}
	// Active-low wiring: full duty keeps the strip dark until the first write.
	p.Set(types.MaxDuty)
	return p, nil
}

// Driver errors without a code of their own are reported as PWMConfig.
func pwmErr(role types.Role, err error) error {
	c := errcode.MapDriverErr(err)
	if c == errcode.Error {
		c = errcode.PWMConfig
	}
	return errcode.Wrap(c, string(role), err)
}

// -----------------------------------------------------------------------------
// GPIO
// -----------------------------------------------------------------------------

type rp2Pin struct{ p machine.Pin }

func (r rp2Pin) Get() bool      { return r.p.Get() }
func (r rp2Pin) Set(level bool) { r.p.Set(level) }

func configureInput(pin int, pull types.Pull) rp2Pin {
	var mode machine.PinMode
	switch pull {
	case types.PullUp:
		mode = machine.PinInputPullup
	case types.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: mode})
	return rp2Pin{p: p}
}

func configureOutput(pin int, initial bool) rp2Pin {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(initial)
	return rp2Pin{p: p}
}

// -----------------------------------------------------------------------------
// Pixels
// -----------------------------------------------------------------------------

type rp2Pixels struct {
	dev ws2812.Device
	buf []color.RGBA
}

func newPixels(pin, n int) *rp2Pixels {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &rp2Pixels{dev: ws2812.New(p), buf: make([]color.RGBA, n)}
}

func (x *rp2Pixels) Len() int { return len(x.buf) }

func (x *rp2Pixels) Show(px []types.Color) {
	for i := range x.buf {
		var c types.Color
		if i < len(px) {
			c = px[i]
		}
		x.buf[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
	// WriteColors only fails for unsupported CPU clocks, which is fixed per board.
	_ = x.dev.WriteColors(x.buf)
}

// -----------------------------------------------------------------------------
// Board
// -----------------------------------------------------------------------------

// Roles the board cannot run without; machine.Pin(-1) is not a pin.
func required(r types.Role) bool {
	switch r {
	case types.RoleRed, types.RoleGreen, types.RoleBlue, types.RoleButton, types.RolePIR:
		return true
	}
	return false
}

// RP2040 user GPIOs are GP0..GP29.
func validPin(n int) bool { return n >= 0 && n <= 29 }

// NewBoard claims and configures every wired role in p.
func NewBoard(p config.Pins) (*hal.Board, error) {
	reg := hal.NewPinRegistry(validPin)
	for _, rp := range p.Roles() {
		if rp.Pin == config.NotWired {
			if required(rp.Role) {
				return nil, errcode.New(errcode.MissingRole, "board", string(rp.Role))
			}
			continue
		}
		if err := reg.Claim(rp.Role, rp.Pin); err != nil {
			return nil, err
		}
	}

	pb := &pwmBuilder{freqHz: p.PWMFrequency}
	red, err := pb.channel(types.RoleRed, p.Red)
	if err != nil {
		return nil, err
	}
	green, err := pb.channel(types.RoleGreen, p.Green)
	if err != nil {
		return nil, err
	}
	blue, err := pb.channel(types.RoleBlue, p.Blue)
	if err != nil {
		return nil, err
	}

	b := &hal.Board{
		Red:    red,
		Green:  green,
		Blue:   blue,
		Button: hal.Input{Pin: configureInput(p.Button, types.ParsePull(p.ButtonPull)), Invert: buttonInverted(p)},
		PIR:    hal.Input{Pin: configureInput(p.PIR, types.ParsePull(p.PIRPull))},
	}
	if p.LED != config.NotWired {
		// Start with the LED dark.
		b.LED = hal.StatusLED{Out: configureOutput(p.LED, p.LEDActiveLow), ActiveLow: p.LEDActiveLow}
	}
	if p.Onboard != config.NotWired && p.OnboardCount > 0 {
		b.Onboard = newPixels(p.Onboard, p.OnboardCount)
	}
	if p.Strip != config.NotWired && p.StripCount > 0 {
		b.Strip = newPixels(p.Strip, p.StripCount)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Console returns the diagnostic writer: UART0 when configured, otherwise
// the USB CDC console.
func Console(lc config.LogConfig) io.Writer {
	if !lc.UART {
		return os.Stdout
	}
	u := uartx.UART0
	// Defaults inside uartx will apply if zero.
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: lc.UARTBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return u
}
