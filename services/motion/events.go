package motion

import (
	"motionlight/bus"
	"motionlight/types"
)

var (
	// TopicPhase carries the latest PhaseEvent, retained.
	TopicPhase = bus.T("motion", "phase")
	// TopicSessionEnd carries the closing snapshot of each session.
	TopicSessionEnd = bus.T("motion", "session", "end")
)

// PhaseEvent is a copy of the controller state at a phase change.
type PhaseEvent struct {
	From, To    types.Phase
	SessionID   string
	Trigger     types.Trigger
	ElapsedOn   int
	SinceMotion int
}

// BusObserver publishes phase changes. Publishing never blocks, so the
// controller loop is not held up by slow subscribers.
type BusObserver struct {
	Conn *bus.Connection
}

func (o BusObserver) OnPhase(from, to types.Phase, s *Session) {
	ev := PhaseEvent{From: from, To: to}
	if s != nil {
		ev.SessionID = s.ID
		ev.Trigger = s.Trigger
		ev.ElapsedOn = s.ElapsedOn
		ev.SinceMotion = s.SinceMotion
	}
	o.Conn.Publish(o.Conn.NewMessage(TopicPhase, ev, true))
	if to == types.PhaseIdleWait && s != nil {
		o.Conn.Publish(o.Conn.NewMessage(TopicSessionEnd, ev, false))
	}
}
