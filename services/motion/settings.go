package motion

import (
	"time"

	"motionlight/services/config"
	"motionlight/types"
)

// Settings are the controller's tunables. MinOn and MotionTimeout count hold
// ticks, not wall time.
type Settings struct {
	Color types.Color

	MinOn         int
	MotionTimeout int

	PollInterval time.Duration
	HoldTick     time.Duration
	FadeDuration time.Duration
	Cooldown     time.Duration // pause after the strip goes dark
	CycleBlink   time.Duration // status LED on and off time before each wait; 0 disables

	InterruptFadeIn bool
}

// SettingsFrom converts a validated config.
func SettingsFrom(c config.Config) Settings {
	return Settings{
		Color:           c.Color.RGB(),
		MinOn:           c.HoldTicks(c.MinOn),
		MotionTimeout:   c.HoldTicks(c.MotionTimeout),
		PollInterval:    c.PollInterval.Duration(),
		HoldTick:        c.HoldTick.Duration(),
		FadeDuration:    c.FadeDuration.Duration(),
		Cooldown:        c.Cooldown.Duration(),
		CycleBlink:      c.CycleBlink.Duration(),
		InterruptFadeIn: c.InterruptFadeIn,
	}
}

// HoldExpired reports whether a lit strip may go dark: both the minimum on
// time and the motion timeout must have been exceeded.
func HoldExpired(elapsedOn, sinceMotion, minOn, timeout int) bool {
	return elapsedOn > minOn && sinceMotion > timeout
}
