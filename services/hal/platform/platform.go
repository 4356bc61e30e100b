// Package platform builds a hal.Board for the target: RP2040 peripherals on
// the board, recording fakes on the host.
package platform

import (
	"motionlight/services/config"
	"motionlight/types"
)

// A button with a pull-up reads low when pressed.
func buttonInverted(p config.Pins) bool {
	return types.ParsePull(p.ButtonPull) != types.PullDown
}
