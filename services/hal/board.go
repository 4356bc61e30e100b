// services/hal/board.go
package hal

import (
	"motionlight/errcode"
	"motionlight/types"
)

// Board is the hardware context handed to the engines and the state machine.
// It is built once by platform code and owned by a single control loop.
type Board struct {
	Red, Green, Blue PWMChannel

	Button Input // asserted == pressed
	PIR    Input // asserted == motion

	LED StatusLED

	// Optional pixels: the onboard indicator and an external chase strip.
	Onboard PixelStrip
	Strip   PixelStrip
}

// Validate reports the first required role that is not wired.
func (b *Board) Validate() error {
	switch {
	case b.Red == nil:
		return errcode.New(errcode.MissingRole, "board", string(types.RoleRed))
	case b.Green == nil:
		return errcode.New(errcode.MissingRole, "board", string(types.RoleGreen))
	case b.Blue == nil:
		return errcode.New(errcode.MissingRole, "board", string(types.RoleBlue))
	case b.Button.Pin == nil:
		return errcode.New(errcode.MissingRole, "board", string(types.RoleButton))
	case b.PIR.Pin == nil:
		return errcode.New(errcode.MissingRole, "board", string(types.RolePIR))
	}
	return nil
}
