package types

// SensorReading is one instantaneous sample of the inputs, already mapped to
// logical values (button wired active-low, PIR active-high).
type SensorReading struct {
	ButtonPressed bool
	Motion        bool
}

// Trigger names what woke the controller from IDLE_WAIT.
type Trigger uint8

const (
	TriggerNone Trigger = iota
	TriggerButton
	TriggerMotion
)

func (t Trigger) String() string {
	switch t {
	case TriggerButton:
		return "button"
	case TriggerMotion:
		return "motion"
	default:
		return "none"
	}
}
