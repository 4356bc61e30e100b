package motion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"motionlight/services/config"
	"motionlight/services/hal/platform"
	"motionlight/services/strip"
	"motionlight/types"
	"motionlight/x/timex"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	h     *platform.Host
	clock *timex.Virtual
	c     *Controller
	trace []types.Phase
	ended *Session
}

func newHarness(t *testing.T, set Settings) *harness {
	t.Helper()
	h, err := platform.NewHostBoard(config.Default().Pins)
	require.NoError(t, err)
	x := &harness{h: h, clock: &timex.Virtual{}}
	x.c = New(h.Board, set, x.clock, nil)
	x.c.SetObserver(ObserverFunc(func(from, to types.Phase, s *Session) {
		x.trace = append(x.trace, to)
		if to == types.PhaseIdleWait {
			x.ended = s
		}
	}))
	return x
}

func defaultSettings() Settings {
	return SettingsFrom(config.Default())
}

// inHold puts the controller straight into HOLD with the given counters.
func (x *harness) inHold(elapsed, since int) *Session {
	s := &Session{ID: "test", Trigger: types.TriggerMotion, ElapsedOn: elapsed, SinceMotion: since}
	x.c.sess = s
	x.c.phase = types.PhaseHold
	x.c.level = 1
	return s
}

func TestSettingsFrom_Defaults(t *testing.T) {
	s := defaultSettings()
	require.Equal(t, types.Gold, s.Color)
	require.Equal(t, 600, s.MinOn)
	require.Equal(t, 60, s.MotionTimeout)
	require.Equal(t, 250*time.Millisecond, s.PollInterval)
	require.Equal(t, time.Second, s.HoldTick)
	require.Equal(t, 3*time.Second, s.FadeDuration)
	require.False(t, s.InterruptFadeIn)
}

func TestHoldExpired(t *testing.T) {
	cases := []struct {
		elapsed, since int
		want           bool
	}{
		{601, 61, true},
		{601, 59, false},
		{599, 61, false},
		{600, 61, false},
		{601, 60, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, HoldExpired(tc.elapsed, tc.since, 600, 60), "elapsed=%d since=%d", tc.elapsed, tc.since)
	}
}

func TestHold_ExitsWhenBothThresholdsPassed(t *testing.T) {
	x := newHarness(t, defaultSettings())
	s := x.inHold(600, 60)

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, 601, s.ElapsedOn)
	require.Equal(t, 61, s.SinceMotion)
	require.Equal(t, types.PhaseFadeOut, x.c.Phase())
	require.Zero(t, x.clock.Calls, "exit tick must not sleep")
}

func TestHold_StaysWhileMotionRecent(t *testing.T) {
	x := newHarness(t, defaultSettings())
	s := x.inHold(600, 58)

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, 601, s.ElapsedOn)
	require.Equal(t, 59, s.SinceMotion)
	require.Equal(t, types.PhaseHold, x.c.Phase())
	require.Equal(t, time.Second, x.clock.Now)
}

func TestHold_StaysUntilMinimumOn(t *testing.T) {
	x := newHarness(t, defaultSettings())
	s := x.inHold(598, 60)

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, 599, s.ElapsedOn)
	require.Equal(t, 61, s.SinceMotion)
	require.Equal(t, types.PhaseHold, x.c.Phase())
}

func TestHold_ButtonOverrides(t *testing.T) {
	x := newHarness(t, defaultSettings())
	s := x.inHold(0, 0)
	x.h.PressButton(true)
	x.h.SetMotion(true)

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, types.PhaseFadeOut, x.c.Phase())
	require.Equal(t, 0, s.ElapsedOn)
	require.Zero(t, x.clock.Calls)
}

func TestHold_MotionResetsAndLights(t *testing.T) {
	x := newHarness(t, defaultSettings())
	s := x.inHold(10, 30)
	x.h.SetMotion(true)

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, 0, s.SinceMotion)
	require.Equal(t, 11, s.ElapsedOn)
	require.True(t, x.h.LEDOn())
	require.Equal(t, types.Gold, x.h.Onboard.Frame()[0])

	x.h.SetMotion(false)
	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, 1, s.SinceMotion)
	require.False(t, x.h.LEDOn())
	require.Equal(t, types.Black, x.h.Onboard.Frame()[0])
}

func TestEndToEnd_IdleToHold(t *testing.T) {
	set := defaultSettings()
	set.CycleBlink = 0
	x := newHarness(t, set)
	ctx := context.Background()

	injectAt := 2 * time.Second
	x.clock.OnSleep = func(now time.Duration) {
		if now == injectAt {
			x.h.SetMotion(true)
		}
	}

	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseFadeIn, x.c.Phase())
	require.LessOrEqual(t, x.clock.Now-injectAt, 250*time.Millisecond)
	require.NotNil(t, x.c.Session())
	require.Equal(t, types.TriggerMotion, x.c.Session().Trigger)
	require.NotEmpty(t, x.c.Session().ID)
	require.True(t, x.h.LEDOn())

	fadeStart := x.clock.Now
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseHold, x.c.Phase())
	require.Equal(t, 3*time.Second, x.clock.Now-fadeStart)
	require.Equal(t, 0, x.c.Session().ElapsedOn)
	require.Equal(t, 0, x.c.Session().SinceMotion)

	// Exact full gold after the fade, not the step-99 level.
	want := [3]types.DutyCycle{strip.Duty(0xFF, 1), strip.Duty(0xD7, 1), strip.Duty(0x00, 1)}
	require.Equal(t, want, x.h.Duties())
}

func TestRun_FullCycle(t *testing.T) {
	set := defaultSettings()
	set.MinOn = 3
	set.MotionTimeout = 2
	x := newHarness(t, set)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	x.h.SetMotion(true)
	x.c.SetObserver(ObserverFunc(func(from, to types.Phase, s *Session) {
		x.trace = append(x.trace, to)
		switch to {
		case types.PhaseHold:
			x.h.SetMotion(false)
		case types.PhaseIdleWait:
			x.ended = s
			cancel()
		}
	}))

	require.NoError(t, x.c.Run(ctx))
	require.Equal(t, []types.Phase{types.PhaseFadeIn, types.PhaseHold, types.PhaseFadeOut, types.PhaseIdleWait}, x.trace)
	require.Nil(t, x.c.Session())
	require.NotNil(t, x.ended)
	require.Equal(t, 4, x.ended.ElapsedOn)
	require.Equal(t, 4, x.ended.SinceMotion)
	require.Equal(t, [3]types.DutyCycle{types.MaxDuty, types.MaxDuty, types.MaxDuty}, x.h.Duties())
	require.False(t, x.h.LEDOn())
}

func TestFadeOut_CooldownAndIdle(t *testing.T) {
	x := newHarness(t, defaultSettings())
	x.inHold(0, 0)
	x.c.phase = types.PhaseFadeOut

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, types.PhaseIdleWait, x.c.Phase())
	require.Equal(t, 4*time.Second, x.clock.Now)
	require.Nil(t, x.c.Session())
	require.Equal(t, [3]types.DutyCycle{types.MaxDuty, types.MaxDuty, types.MaxDuty}, x.h.Duties())
}

func TestFadeIn_FreshPressInterrupts(t *testing.T) {
	set := defaultSettings()
	set.CycleBlink = 0
	set.InterruptFadeIn = true
	x := newHarness(t, set)
	ctx := context.Background()

	x.h.SetMotion(true)
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseFadeIn, x.c.Phase())

	x.clock.OnSleep = func(time.Duration) {
		if x.clock.Calls == 10 {
			x.h.PressButton(true)
		}
	}
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseFadeOut, x.c.Phase())
	require.InDelta(t, 0.10, float64(x.c.level), 1e-9)

	x.h.PressButton(false)
	x.clock.OnSleep = nil
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseIdleWait, x.c.Phase())
	require.Equal(t, [3]types.DutyCycle{types.MaxDuty, types.MaxDuty, types.MaxDuty}, x.h.Duties())
}

func TestFadeIn_HeldButtonDoesNotInterrupt(t *testing.T) {
	set := defaultSettings()
	set.CycleBlink = 0
	set.InterruptFadeIn = true
	x := newHarness(t, set)
	ctx := context.Background()

	x.h.PressButton(true)
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.TriggerButton, x.c.Session().Trigger)

	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseHold, x.c.Phase())

	// Still held, so the first hold tick turns the light off.
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseFadeOut, x.c.Phase())
}

func TestFadeIn_NotInterruptibleByDefault(t *testing.T) {
	set := defaultSettings()
	set.CycleBlink = 0
	x := newHarness(t, set)
	ctx := context.Background()

	x.h.SetMotion(true)
	require.NoError(t, x.c.Step(ctx))
	x.clock.OnSleep = func(time.Duration) {
		if x.clock.Calls == 10 {
			x.h.PressButton(true)
		}
	}
	require.NoError(t, x.c.Step(ctx))
	require.Equal(t, types.PhaseHold, x.c.Phase())
}

func TestIdle_CycleBlink(t *testing.T) {
	x := newHarness(t, defaultSettings())
	x.h.SetMotion(true)

	require.NoError(t, x.c.Step(context.Background()))
	require.Equal(t, time.Second, x.clock.Now)
	require.Equal(t, types.PhaseFadeIn, x.c.Phase())
	require.True(t, x.h.LEDOn())
}

func TestRun_CancelledWhileIdle(t *testing.T) {
	x := newHarness(t, defaultSettings())
	ctx, cancel := context.WithCancel(context.Background())
	x.clock.OnSleep = func(now time.Duration) {
		if now >= 10*time.Second {
			cancel()
		}
	}
	require.NoError(t, x.c.Run(ctx))
	require.Equal(t, types.PhaseIdleWait, x.c.Phase())
	require.Empty(t, x.trace)
}
