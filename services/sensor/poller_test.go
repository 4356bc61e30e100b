package sensor

import (
	"context"
	"errors"
	"testing"
	"time"

	"motionlight/services/config"
	"motionlight/services/hal/platform"
	"motionlight/types"
	"motionlight/x/timex"
)

func newPoller(t *testing.T) (*Poller, *platform.Host, *timex.Virtual) {
	t.Helper()
	h, err := platform.NewHostBoard(config.Default().Pins)
	if err != nil {
		t.Fatalf("NewHostBoard: %v", err)
	}
	clock := &timex.Virtual{}
	return NewPoller(h.Board, 250*time.Millisecond, clock), h, clock
}

func TestRead_ActiveLevels(t *testing.T) {
	p, h, _ := newPoller(t)
	if r := p.Read(); r.ButtonPressed || r.Motion {
		t.Fatalf("idle read = %+v", r)
	}
	h.PressButton(true)
	h.SetMotion(true)
	if r := p.Read(); !r.ButtonPressed || !r.Motion {
		t.Fatalf("active read = %+v", r)
	}
}

func TestWaitTrigger_MotionWithinOnePoll(t *testing.T) {
	p, h, clock := newPoller(t)
	clock.OnSleep = func(now time.Duration) {
		if now == time.Second {
			h.SetMotion(true)
		}
	}
	dots := 0
	p.OnPoll = func() { dots++ }
	tr, err := p.WaitTrigger(context.Background())
	if err != nil || tr != types.TriggerMotion {
		t.Fatalf("got %v, %v", tr, err)
	}
	if clock.Now != time.Second || dots != 4 {
		t.Fatalf("now=%v dots=%d", clock.Now, dots)
	}
}

func TestWaitTrigger_ButtonWins(t *testing.T) {
	p, h, clock := newPoller(t)
	h.PressButton(true)
	h.SetMotion(true)
	tr, err := p.WaitTrigger(context.Background())
	if err != nil || tr != types.TriggerButton {
		t.Fatalf("got %v, %v", tr, err)
	}
	if clock.Calls != 0 {
		t.Fatalf("should not sleep when already triggered")
	}
}

func TestWaitTrigger_Cancel(t *testing.T) {
	p, _, clock := newPoller(t)
	ctx, cancel := context.WithCancel(context.Background())
	clock.OnSleep = func(now time.Duration) {
		if now >= 5*time.Second {
			cancel()
		}
	}
	tr, err := p.WaitTrigger(ctx)
	if tr != types.TriggerNone || !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, %v", tr, err)
	}
}

func TestWaitMotion_Timeout(t *testing.T) {
	p, _, clock := newPoller(t)
	ok, err := p.WaitMotion(context.Background(), 10*time.Second)
	if err != nil || ok {
		t.Fatalf("got %v, %v", ok, err)
	}
	if clock.Calls != 40 || clock.Now != 10*time.Second {
		t.Fatalf("calls=%d now=%v", clock.Calls, clock.Now)
	}
}

func TestWaitMotion_Detected(t *testing.T) {
	p, h, clock := newPoller(t)
	clock.OnSleep = func(now time.Duration) {
		if now == 2*time.Second {
			h.SetMotion(true)
		}
	}
	ok, err := p.WaitMotion(context.Background(), 10*time.Second)
	if err != nil || !ok || clock.Now != 2*time.Second {
		t.Fatalf("got %v, %v at %v", ok, err, clock.Now)
	}
}

func TestWaitMotion_ZeroWait(t *testing.T) {
	p, h, clock := newPoller(t)
	h.SetMotion(true)
	ok, err := p.WaitMotion(context.Background(), 0)
	if err != nil || ok || clock.Calls != 0 {
		t.Fatalf("zero wait should not poll: %v %v", ok, err)
	}
}

func TestDefaultInterval(t *testing.T) {
	p, _, clock := newPoller(t)
	p.Interval = 0
	_, _ = p.WaitMotion(context.Background(), time.Second)
	if clock.Calls != 4 {
		t.Fatalf("calls=%d", clock.Calls)
	}
}
