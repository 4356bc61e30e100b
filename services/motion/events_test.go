package motion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"motionlight/bus"
	"motionlight/types"
)

func TestBusObserver_PublishesCycle(t *testing.T) {
	set := defaultSettings()
	set.MinOn = 1
	set.MotionTimeout = 0
	x := newHarness(t, set)

	b := bus.NewBus(8)
	conn := b.NewConnection("controller")
	phases := conn.Subscribe(TopicPhase)
	ends := conn.Subscribe(TopicSessionEnd)
	x.c.SetObserver(BusObserver{Conn: conn})

	x.h.SetMotion(true)
	ctx := context.Background()
	require.NoError(t, x.c.Step(ctx)) // idle -> fade_in
	x.h.SetMotion(false)
	require.NoError(t, x.c.Step(ctx)) // fade_in -> hold
	for x.c.Phase() == types.PhaseHold {
		require.NoError(t, x.c.Step(ctx))
	}
	require.NoError(t, x.c.Step(ctx)) // fade_out -> idle

	var seen []types.Phase
	for len(phases.Channel()) > 0 {
		m := <-phases.Channel()
		seen = append(seen, m.Payload.(PhaseEvent).To)
	}
	require.Equal(t, []types.Phase{types.PhaseFadeIn, types.PhaseHold, types.PhaseFadeOut, types.PhaseIdleWait}, seen)

	require.Len(t, ends.Channel(), 1)
	end := (<-ends.Channel()).Payload.(PhaseEvent)
	require.Equal(t, types.TriggerMotion, end.Trigger)
	require.NotEmpty(t, end.SessionID)
	require.Equal(t, 2, end.ElapsedOn)
	require.Equal(t, 2, end.SinceMotion)

	// A late subscriber sees the retained idle state.
	late := b.NewConnection("late").Subscribe(TopicPhase)
	require.Equal(t, types.PhaseIdleWait, (<-late.Channel()).Payload.(PhaseEvent).To)
}
