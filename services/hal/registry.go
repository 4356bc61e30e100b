// services/hal/registry.go
package hal

import (
	"strconv"

	"motionlight/errcode"
	"motionlight/types"
)

// PinRegistry hands out each pin to exactly one role. Board construction is
// single-threaded, so there is no locking.
type PinRegistry struct {
	valid func(pin int) bool
	owner map[int]types.Role
}

// NewPinRegistry accepts pins for which valid returns true (all pins >= 0
// when valid is nil).
func NewPinRegistry(valid func(pin int) bool) *PinRegistry {
	if valid == nil {
		valid = func(pin int) bool { return pin >= 0 }
	}
	return &PinRegistry{valid: valid, owner: map[int]types.Role{}}
}

// Claim records pin as used by role.
func (r *PinRegistry) Claim(role types.Role, pin int) error {
	if !r.valid(pin) {
		return errcode.New(errcode.UnknownPin, string(role), strconv.Itoa(pin))
	}
	if prev, busy := r.owner[pin]; busy {
		return errcode.New(errcode.PinInUse, string(role), "pin "+strconv.Itoa(pin)+" held by "+string(prev))
	}
	r.owner[pin] = role
	return nil
}

// Release frees pin if role holds it.
func (r *PinRegistry) Release(role types.Role, pin int) {
	if r.owner[pin] == role {
		delete(r.owner, pin)
	}
}

// Owner reports which role holds pin.
func (r *PinRegistry) Owner(pin int) (types.Role, bool) {
	role, ok := r.owner[pin]
	return role, ok
}
