package types

// Phase is the lighting state machine's current state.
type Phase uint8

const (
	PhaseIdleWait Phase = iota
	PhaseFadeIn
	PhaseHold
	PhaseFadeOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdleWait:
		return "idle_wait"
	case PhaseFadeIn:
		return "fade_in"
	case PhaseHold:
		return "hold"
	case PhaseFadeOut:
		return "fade_out"
	default:
		return "unknown"
	}
}
