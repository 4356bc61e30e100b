// Package motion is the lighting state machine: wait for a trigger, fade
// the strip in, hold it while there is motion, fade it out.
//
// The controller runs on the caller's goroutine. Every wait goes through the
// injected timex.Sleeper, so tests drive it on a virtual clock.
package motion

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"motionlight/services/hal"
	"motionlight/services/heartbeat"
	"motionlight/services/sensor"
	"motionlight/services/strip"
	"motionlight/types"
	"motionlight/x/logx"
	"motionlight/x/timex"
)

// Session is one on/off cycle. It exists from the trigger until the strip
// is dark again.
type Session struct {
	ID          string
	Trigger     types.Trigger
	ElapsedOn   int // hold ticks since FADE_IN completed
	SinceMotion int // hold ticks since motion was last read
}

// Observer is told about every phase change. s is the live session, or the
// one just closed on the way back to IDLE_WAIT.
type Observer interface {
	OnPhase(from, to types.Phase, s *Session)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(from, to types.Phase, s *Session)

func (f ObserverFunc) OnPhase(from, to types.Phase, s *Session) { f(from, to, s) }

type Controller struct {
	set   Settings
	drv   *strip.Driver
	poll  *sensor.Poller
	led   hal.StatusLED
	pixel hal.PixelStrip
	sleep timex.Sleeper
	log   logx.Logger
	obs   Observer

	phase types.Phase
	sess  *Session
	level types.Brightness // where the next fade out starts
}

// New builds a controller on b starting in IDLE_WAIT.
func New(b *hal.Board, set Settings, s timex.Sleeper, log logx.Logger) *Controller {
	if s == nil {
		s = timex.Real{}
	}
	return &Controller{
		set:   set,
		drv:   strip.NewDriver(b, s),
		poll:  sensor.NewPoller(b, set.PollInterval, s),
		led:   b.LED,
		pixel: b.Onboard,
		sleep: s,
		log:   logx.OrNop(log),
		phase: types.PhaseIdleWait,
	}
}

func (c *Controller) SetObserver(o Observer) { c.obs = o }

func (c *Controller) Phase() types.Phase { return c.phase }

// Session returns the live session, nil while idle.
func (c *Controller) Session() *Session { return c.sess }

func (c *Controller) Driver() *strip.Driver { return c.drv }

func (c *Controller) Poller() *sensor.Poller { return c.poll }

// Run steps the machine until ctx ends. Cancellation is not an error.
func (c *Controller) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		if err := c.Step(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
	return nil
}

// Step runs one unit of the current phase: the whole idle wait, a whole
// fade, or a single hold tick. The only errors are from ctx.
func (c *Controller) Step(ctx context.Context) error {
	switch c.phase {
	case types.PhaseIdleWait:
		return c.idle(ctx)
	case types.PhaseFadeIn:
		return c.fadeIn(ctx)
	case types.PhaseHold:
		return c.holdTick(ctx)
	case types.PhaseFadeOut:
		return c.fadeOut(ctx)
	}
	c.log.Warn("unknown phase, resetting", "phase", c.phase.String())
	c.enter(types.PhaseIdleWait, nil)
	return nil
}

func (c *Controller) idle(ctx context.Context) error {
	if c.set.CycleBlink > 0 {
		if err := heartbeat.Pulse(ctx, c.led, c.set.CycleBlink, c.sleep); err != nil {
			return err
		}
	}
	c.log.Info("waiting for pushbutton or motion")
	tr, err := c.poll.WaitTrigger(ctx)
	if err != nil {
		return err
	}
	if tr == types.TriggerMotion {
		c.led.On()
	}
	s := &Session{ID: uuid.NewString(), Trigger: tr}
	c.log.Info("trigger detected", "trigger", tr.String(), "session", s.ID)
	c.sess = s
	c.enter(types.PhaseFadeIn, s)
	return nil
}

func (c *Controller) fadeIn(ctx context.Context) error {
	c.log.Info("turning on light", "color", c.set.Color.Hex())

	var interrupt func() bool
	if c.set.InterruptFadeIn {
		interrupt = c.freshPress()
	}
	err := c.drv.FadeTo(ctx, c.set.Color, 0, 1, c.set.FadeDuration, interrupt)
	if errors.Is(err, strip.ErrFadeInterrupted) {
		_, c.level = c.drv.Last()
		c.log.Info("fade in cut short by button", "brightness", float64(c.level))
		c.enter(types.PhaseFadeOut, c.sess)
		return nil
	}
	if err != nil {
		return err
	}
	c.drv.Apply(c.set.Color, 1)
	c.level = 1
	c.sess.ElapsedOn, c.sess.SinceMotion = 0, 0
	c.enter(types.PhaseHold, c.sess)
	return nil
}

// freshPress reports true once the button has been seen released and then
// pressed. A press held over from the trigger does not count.
func (c *Controller) freshPress() func() bool {
	released := !c.poll.Button.Asserted()
	return func() bool {
		if !c.poll.Button.Asserted() {
			released = true
			return false
		}
		return released
	}
}

func (c *Controller) holdTick(ctx context.Context) error {
	s := c.sess
	r := c.poll.Read()
	if r.ButtonPressed {
		c.log.Info("button press detected", "elapsed_on", s.ElapsedOn)
		c.enter(types.PhaseFadeOut, s)
		return nil
	}
	if r.Motion {
		s.SinceMotion = 0
		c.led.On()
		strip.SetPixel(c.pixel, c.set.Color)
	} else {
		s.SinceMotion++
		c.led.Off()
		strip.SetPixel(c.pixel, types.Black)
	}
	s.ElapsedOn++
	c.log.Debug("hold", "motion", r.Motion, "elapsed_on", s.ElapsedOn, "since_motion", s.SinceMotion)

	if HoldExpired(s.ElapsedOn, s.SinceMotion, c.set.MinOn, c.set.MotionTimeout) {
		c.log.Info("minimum on time expired and no motion",
			"min_on", c.set.MinOn, "motion_timeout", c.set.MotionTimeout)
		c.enter(types.PhaseFadeOut, s)
		return nil
	}
	if !c.sleep.Sleep(ctx, c.set.HoldTick) {
		return ctxErr(ctx)
	}
	return nil
}

func (c *Controller) fadeOut(ctx context.Context) error {
	c.log.Info("turning out light")
	if err := c.drv.LinearFade(ctx, c.set.Color, c.level, 0, c.set.FadeDuration); err != nil {
		return err
	}
	c.drv.Apply(c.set.Color, 0)
	c.level = 0
	c.led.Off()
	strip.SetPixel(c.pixel, types.Black)

	ended := c.sess
	c.sess = nil
	c.enter(types.PhaseIdleWait, ended)

	if c.set.Cooldown > 0 && !c.sleep.Sleep(ctx, c.set.Cooldown) {
		return ctxErr(ctx)
	}
	return nil
}

func (c *Controller) enter(to types.Phase, s *Session) {
	from := c.phase
	c.phase = to
	c.log.Debug("phase", "from", from.String(), "to", to.String())
	if c.obs != nil {
		c.obs.OnPhase(from, to, s)
	}
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}
