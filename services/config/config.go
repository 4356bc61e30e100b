package config

import (
	"errors"
	"time"

	"gopkg.in/yaml.v3"

	"motionlight/errcode"
	"motionlight/services/hal"
	"motionlight/types"
)

// Mode selects which program the board runs.
type Mode string

const (
	ModeMotion   Mode = "motion"   // sensor-driven lighting state machine
	ModeShowcase Mode = "showcase" // colors, fades, rainbow and chase demo
	ModePIRTest  Mode = "pir_test" // button and PIR wiring check
	ModeClassic  Mode = "classic"  // blink, fade, color cycle and chase
)

// Config is the whole tunable surface. It is fixed once the program starts.
type Config struct {
	Mode  Mode  `yaml:"mode" envconfig:"MODE"`
	Color Color `yaml:"color" envconfig:"COLOR"`

	MinOn         Duration `yaml:"min_on" envconfig:"MIN_ON"`
	MotionTimeout Duration `yaml:"motion_timeout" envconfig:"MOTION_TIMEOUT"`
	PollInterval  Duration `yaml:"poll_interval" envconfig:"POLL_INTERVAL"`
	HoldTick      Duration `yaml:"hold_tick" envconfig:"HOLD_TICK"`
	FadeDuration  Duration `yaml:"fade_duration" envconfig:"FADE_DURATION"`
	Cooldown      Duration `yaml:"cooldown" envconfig:"COOLDOWN"`
	CycleBlink    Duration `yaml:"cycle_blink" envconfig:"CYCLE_BLINK"`

	// Abort FADE_IN on a fresh button press.
	InterruptFadeIn bool `yaml:"interrupt_fade_in" envconfig:"INTERRUPT_FADE_IN"`

	// Bounded motion wait used by the PIR test and showcase programs.
	// The showcase skips its sensor check when zero.
	PIRWait Duration `yaml:"pir_wait" envconfig:"PIR_WAIT"`

	Pins Pins      `yaml:"pins" envconfig:"PINS"`
	Log  LogConfig `yaml:"log" envconfig:"LOG"`
}

// Pins maps roles to GPIO numbers. -1 means not wired.
type Pins struct {
	LED          int    `yaml:"led" envconfig:"LED"`
	LEDActiveLow bool   `yaml:"led_active_low" envconfig:"LED_ACTIVE_LOW"`
	Button       int    `yaml:"button" envconfig:"BUTTON"`
	ButtonPull   string `yaml:"button_pull" envconfig:"BUTTON_PULL"`
	PIR          int    `yaml:"pir" envconfig:"PIR"`
	PIRPull      string `yaml:"pir_pull" envconfig:"PIR_PULL"`

	Red          int    `yaml:"red" envconfig:"RED"`
	Green        int    `yaml:"green" envconfig:"GREEN"`
	Blue         int    `yaml:"blue" envconfig:"BLUE"`
	PWMFrequency uint32 `yaml:"pwm_frequency" envconfig:"PWM_FREQUENCY"`

	Onboard      int `yaml:"onboard_pixel" envconfig:"ONBOARD_PIXEL"`
	OnboardCount int `yaml:"onboard_count" envconfig:"ONBOARD_COUNT"`
	Strip        int `yaml:"pixel_strip" envconfig:"PIXEL_STRIP"`
	StripCount   int `yaml:"strip_count" envconfig:"STRIP_COUNT"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Colors bool   `yaml:"colors" envconfig:"COLORS"`
	JSON   bool   `yaml:"json" envconfig:"JSON"`

	// Board only: mirror the console to UART0 instead of USB CDC.
	UART     bool   `yaml:"uart" envconfig:"UART"`
	UARTBaud uint32 `yaml:"uart_baud" envconfig:"UART_BAUD"`
}

// NotWired marks an optional role with no pin.
const NotWired = -1

// Default returns the motion-light tunables on the KB2040 wiring.
func Default() Config {
	return Config{
		Mode:          ModeMotion,
		Color:         Color(types.Gold),
		MinOn:         Duration(10 * time.Minute),
		MotionTimeout: Duration(60 * time.Second),
		PollInterval:  Duration(250 * time.Millisecond),
		HoldTick:      Duration(time.Second),
		FadeDuration:  Duration(3 * time.Second),
		Cooldown:      Duration(time.Second),
		CycleBlink:    Duration(500 * time.Millisecond),
		PIRWait:       Duration(10 * time.Second),
		Pins: Pins{
			LED:          29, // A3
			LEDActiveLow: true,
			Button:       6, // D6
			ButtonPull:   "up",
			PIR:          7, // D7
			PIRPull:      "none",
			Red:          3, // D3
			Blue:         4, // D4
			Green:        5, // D5
			PWMFrequency: 5000,
			Onboard:      17, // NEOPIXEL
			OnboardCount: 1,
			Strip:        NotWired,
			StripCount:   0,
		},
		Log: LogConfig{Level: "info", UARTBaud: 115200},
	}
}

// Parse overlays YAML onto Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		if errors.Is(err, types.ErrBadColor) {
			return Config{}, errcode.Wrap(errcode.BadColor, "config", err)
		}
		return Config{}, errcode.Wrap(errcode.InvalidParams, "config", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks intervals, mode and pin uniqueness.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeMotion, ModeShowcase, ModePIRTest, ModeClassic:
	default:
		return errcode.New(errcode.UnknownMode, "config", string(c.Mode))
	}
	if c.PollInterval <= 0 {
		return errcode.New(errcode.InvalidParams, "config", "poll_interval must be > 0")
	}
	if c.HoldTick <= 0 {
		return errcode.New(errcode.InvalidParams, "config", "hold_tick must be > 0")
	}
	if c.MinOn < 0 || c.MotionTimeout < 0 || c.FadeDuration < 0 || c.Cooldown < 0 || c.CycleBlink < 0 || c.PIRWait < 0 {
		return errcode.New(errcode.InvalidParams, "config", "durations must not be negative")
	}
	if c.Pins.PWMFrequency == 0 {
		return errcode.New(errcode.InvalidParams, "config", "pwm_frequency must be > 0")
	}
	if c.Pins.OnboardCount < 0 || c.Pins.StripCount < 0 {
		return errcode.New(errcode.InvalidParams, "config", "pixel counts must not be negative")
	}
	reg := hal.NewPinRegistry(nil)
	for _, rp := range c.Pins.Roles() {
		if rp.Pin == NotWired {
			continue
		}
		if err := reg.Claim(rp.Role, rp.Pin); err != nil {
			return err
		}
	}
	return nil
}

// RolePin pairs a role with its pin.
type RolePin struct {
	Role types.Role
	Pin  int
}

// Roles lists every role in claim order.
func (p Pins) Roles() []RolePin {
	return []RolePin{
		{types.RoleRed, p.Red},
		{types.RoleGreen, p.Green},
		{types.RoleBlue, p.Blue},
		{types.RoleButton, p.Button},
		{types.RolePIR, p.PIR},
		{types.RoleLED, p.LED},
		{types.RoleOnboard, p.Onboard},
		{types.RoleStrip, p.Strip},
	}
}

// HoldTicks converts d into a whole number of hold ticks.
func (c *Config) HoldTicks(d Duration) int {
	if c.HoldTick <= 0 {
		return 0
	}
	return int(d / c.HoldTick)
}
