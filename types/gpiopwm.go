package types

// ------------------------
// Pin roles
// ------------------------

// Role names what a pin is wired to.
type Role string

const (
	RoleRed     Role = "red"
	RoleGreen   Role = "green"
	RoleBlue    Role = "blue"
	RoleButton  Role = "button"
	RolePIR     Role = "pir"
	RoleLED     Role = "led"
	RoleOnboard Role = "onboard_pixel"
	RoleStrip   Role = "pixel_strip"
)

// ------------------------
// Input pull
// ------------------------

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// ParsePull maps "up","down" to a Pull; anything else is PullNone.
func ParsePull(s string) Pull {
	switch s {
	case "up":
		return PullUp
	case "down":
		return PullDown
	default:
		return PullNone
	}
}

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}
